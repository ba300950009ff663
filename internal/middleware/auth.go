package middleware

import (
	"encoding/json"
	"net/http"
)

// SessionResolver отдает пользователя текущей сессии.
type SessionResolver interface {
	GetAuthenticatedUserID(r *http.Request) (uint, bool)
}

// RequireAuth создает Middleware для API-маршрутов: без сессии — 401 с JSON-телом.
func RequireAuth(h SessionResolver) func(next http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if _, ok := h.GetAuthenticatedUserID(r); !ok {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "Not authorized"})
				return
			}
			next.ServeHTTP(w, r)
		}
	}
}

// RequirePage создает Middleware для страниц: анонимов уводим на /login.
func RequirePage(h SessionResolver) func(next http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if _, ok := h.GetAuthenticatedUserID(r); !ok {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		}
	}
}
