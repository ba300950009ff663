package handlers

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

const sessionName = "session"

type Handler struct {
	DB     *gorm.DB
	Store  *sessions.CookieStore
	Config *oauth2.Config
	Tmpl   *template.Template
}

func NewHandler(db *gorm.DB, store *sessions.CookieStore, config *oauth2.Config) *Handler {
	tmpl := template.New("")

	// Страницы необязательны для работы API, поэтому отсутствие
	// шаблонов не фатально
	if _, err := tmpl.ParseGlob("template/*.html"); err != nil {
		slog.Warn("Шаблоны страниц не загружены", "error", err)
	}

	return &Handler{
		DB:     db,
		Store:  store,
		Config: config,
		Tmpl:   tmpl,
	}
}

// GetAuthenticatedUserID достает id пользователя из сессионной куки.
// Второе значение false — запрос анонимный.
func (h *Handler) GetAuthenticatedUserID(r *http.Request) (uint, bool) {
	session, _ := h.Store.Get(r, sessionName)

	userIDValue := session.Values["user_id"]
	userID, ok := userIDValue.(uint)

	return userID, ok && userID != 0
}

func toString(v interface{}) string {
	s, _ := v.(string)
	return s
}
