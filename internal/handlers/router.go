package handlers

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/s/learningPlatform/internal/middleware"
)

// NewRouter собирает все маршруты приложения.
func NewRouter(h *Handler) *mux.Router {
	requireAuth := middleware.RequireAuth(h)
	requirePage := middleware.RequirePage(h)

	r := mux.NewRouter()

	// --- Файлы материалов уроков ---
	materialsDir := os.Getenv("MATERIALS_DIR")
	if materialsDir == "" {
		materialsDir = "./materials"
	}
	r.PathPrefix("/materials/").Handler(
		http.StripPrefix("/materials/", http.FileServer(http.Dir(materialsDir))))

	// --- Страницы ---
	r.HandleFunc("/", h.HandleMain).Methods("GET")
	r.HandleFunc("/register", h.HandleRegisterPage).Methods("GET")
	r.HandleFunc("/login", h.HandleLoginPage).Methods("GET")
	r.HandleFunc("/logout", h.HandleLogout).Methods("GET", "POST")
	r.HandleFunc("/dashboard", requirePage(h.HandleDashboard)).Methods("GET")
	r.HandleFunc("/course/{id:[0-9]+}", requirePage(h.HandleCoursePage)).Methods("GET")

	// --- API ---
	r.HandleFunc("/api/register", h.RegisterAPI).Methods("POST")
	r.HandleFunc("/api/login", h.LoginAPI).Methods("POST")
	r.HandleFunc("/api/lessons/{id:[0-9]+}", requireAuth(h.GetLessonAPI)).Methods("GET")
	r.HandleFunc("/api/courses/{id:[0-9]+}/sections", requireAuth(h.GetCourseSectionsAPI)).Methods("GET")
	r.HandleFunc("/api/submissions", requireAuth(h.CreateSubmissionAPI)).Methods("POST")
	r.HandleFunc("/api/submissions/{lesson_id:[0-9]+}", requireAuth(h.GetSubmissionAPI)).Methods("GET")
	r.HandleFunc("/api/user/progress", requireAuth(h.GetUserProgressAPI)).Methods("GET")

	// --- Вход через Google (только если настроен) ---
	if h.Config != nil {
		r.HandleFunc("/auth/google/login", h.HandleGoogleLogin).Methods("GET")
		r.HandleFunc("/auth/google/callback", h.HandleGoogleCallback).Methods("GET")
	}

	return r
}
