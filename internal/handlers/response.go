package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// internalErrorMessage — единое тело 500-х ответов: текст реальной ошибки
// клиенту не уходит, он остается в логе.
const internalErrorMessage = "Внутренняя ошибка сервера"

func jsonOK(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func internalError(w http.ResponseWriter, op string, err error) {
	slog.Error("Ошибка хранилища", "op", op, "error", err)
	jsonError(w, internalErrorMessage, http.StatusInternalServerError)
}
