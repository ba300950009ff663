package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/s/learningPlatform/internal/storage"
)

// POST /api/register
func (h *Handler) RegisterAPI(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Name     string `json:"name"`
		Surname  string `json:"surname"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Некорректный запрос", http.StatusBadRequest)
		return
	}
	if req.Username == "" || req.Password == "" {
		jsonError(w, "Логин и пароль обязательны", http.StatusBadRequest)
		return
	}

	userID, err := storage.CreateUser(h.DB, req.Username, req.Password, req.Name, req.Surname)
	if errors.Is(err, storage.ErrDuplicateUser) {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		internalError(w, "register", err)
		return
	}

	// Автоматически входим после регистрации
	h.establishSession(w, r, userID)

	if err := storage.LogActivity(h.DB, userID, "register", nil); err != nil {
		slog.Warn("Не удалось записать журнал действий", "error", err)
	}

	jsonOK(w, map[string]interface{}{"success": true, "user_id": userID})
}

// POST /api/login
func (h *Handler) LoginAPI(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Некорректный запрос", http.StatusBadRequest)
		return
	}

	userID, err := storage.Authenticate(h.DB, req.Username, req.Password)
	if errors.Is(err, storage.ErrInvalidCredentials) {
		jsonError(w, err.Error(), http.StatusUnauthorized)
		return
	}
	if err != nil {
		internalError(w, "login", err)
		return
	}

	h.establishSession(w, r, userID)

	if err := storage.LogActivity(h.DB, userID, "login", nil); err != nil {
		slog.Warn("Не удалось записать журнал действий", "error", err)
	}

	jsonOK(w, map[string]interface{}{"success": true, "user_id": userID})
}

// GET /logout
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	session, _ := h.Store.Get(r, sessionName)
	session.Options.MaxAge = -1
	session.Save(r, w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// GET /auth/google/login
func (h *Handler) HandleGoogleLogin(w http.ResponseWriter, r *http.Request) {
	url := h.Config.AuthCodeURL("random_state")
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// GET /auth/google/callback
func (h *Handler) HandleGoogleCallback(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("state") != "random_state" {
		jsonError(w, "Invalid state", http.StatusUnauthorized)
		return
	}

	code := r.URL.Query().Get("code")
	token, err := h.Config.Exchange(context.Background(), code)
	if err != nil {
		jsonError(w, "Token exchange error", http.StatusBadRequest)
		return
	}

	client := h.Config.Client(context.Background(), token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		jsonError(w, "Google API error", http.StatusBadRequest)
		return
	}
	defer resp.Body.Close()

	var userInfo struct {
		ID         string `json:"id"`
		GivenName  string `json:"given_name"`
		FamilyName string `json:"family_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		internalError(w, "google_callback", err)
		return
	}

	userID, err := storage.SaveGoogleUser(h.DB, userInfo.ID, userInfo.GivenName, userInfo.FamilyName)
	if err != nil {
		internalError(w, "google_callback", err)
		return
	}

	h.establishSession(w, r, userID)

	if err := storage.LogActivity(h.DB, userID, "login", map[string]interface{}{"via": "google"}); err != nil {
		slog.Warn("Не удалось записать журнал действий", "error", err)
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *Handler) establishSession(w http.ResponseWriter, r *http.Request, userID uint) {
	session, _ := h.Store.Get(r, sessionName)
	session.Values["user_id"] = userID
	if err := session.Save(r, w); err != nil {
		slog.Error("Не удалось сохранить сессию", "error", err)
	}
}
