package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/s/learningPlatform/internal/models"
	"github.com/s/learningPlatform/internal/storage"
)

type PageData struct {
	Title           string
	IsAuthenticated bool
	UserID          uint
	UserName        string
	CurrentPath     string
	Flashes         []string

	Courses []models.Course
	Course  *models.Course
}

func (h *Handler) render(w http.ResponseWriter, name string, data PageData) {
	if err := h.Tmpl.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("Ошибка рендеринга шаблона", "template", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// flashAndRedirect кладет сообщение во flash-хранилище сессии и уводит
// пользователя на target.
func (h *Handler) flashAndRedirect(w http.ResponseWriter, r *http.Request, message, target string) {
	session, _ := h.Store.Get(r, sessionName)
	session.AddFlash(message)
	session.Save(r, w)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *Handler) popFlashes(w http.ResponseWriter, r *http.Request) []string {
	session, _ := h.Store.Get(r, sessionName)
	raw := session.Flashes()
	if len(raw) > 0 {
		session.Save(r, w)
	}
	flashes := make([]string, 0, len(raw))
	for _, f := range raw {
		flashes = append(flashes, toString(f))
	}
	return flashes
}

// GET /
func (h *Handler) HandleMain(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.GetAuthenticatedUserID(r)
	h.render(w, "index.html", PageData{
		Title:           "Главная",
		IsAuthenticated: ok,
		UserID:          userID,
		CurrentPath:     r.URL.Path,
	})
}

// GET /register
func (h *Handler) HandleRegisterPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, "register.html", PageData{Title: "Регистрация", CurrentPath: r.URL.Path})
}

// GET /login
func (h *Handler) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, "login.html", PageData{Title: "Вход", CurrentPath: r.URL.Path})
}

// GET /dashboard
func (h *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	userID, _ := h.GetAuthenticatedUserID(r)

	user, err := storage.UserByID(h.DB, userID)
	if err != nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	courses, err := storage.ListUserCourses(h.DB, userID)
	if err != nil {
		slog.Error("Не удалось загрузить курсы пользователя", "error", err, "user_id", userID)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.render(w, "dashboard.html", PageData{
		Title:           "Личный кабинет",
		IsAuthenticated: true,
		UserID:          userID,
		UserName:        user.FirstName + " " + user.LastName,
		CurrentPath:     r.URL.Path,
		Flashes:         h.popFlashes(w, r),
		Courses:         courses,
	})
}

// GET /course/{id}
func (h *Handler) HandleCoursePage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	courseID, _ := strconv.ParseUint(vars["id"], 10, 32)
	userID, _ := h.GetAuthenticatedUserID(r)

	course, err := storage.CourseForUser(h.DB, userID, uint(courseID))
	if errors.Is(err, storage.ErrNotEnrolled) {
		h.flashAndRedirect(w, r, "У вас нет доступа к этому курсу", "/dashboard")
		return
	}
	if errors.Is(err, storage.ErrNotFound) {
		h.flashAndRedirect(w, r, "Курс не найден", "/dashboard")
		return
	}
	if err != nil {
		slog.Error("Не удалось загрузить курс", "error", err, "course_id", courseID)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.render(w, "course.html", PageData{
		Title:           course.Title,
		IsAuthenticated: true,
		UserID:          userID,
		CurrentPath:     r.URL.Path,
		Course:          course,
	})
}
