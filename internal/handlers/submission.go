package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/s/learningPlatform/internal/storage"
)

// POST /api/submissions
func (h *Handler) CreateSubmissionAPI(w http.ResponseWriter, r *http.Request) {
	userID, _ := h.GetAuthenticatedUserID(r)

	var req struct {
		TaskID uint   `json:"task_id"`
		Answer string `json:"answer"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Некорректный запрос", http.StatusBadRequest)
		return
	}

	if err := storage.CreateSubmission(h.DB, userID, req.TaskID, req.Answer); err != nil {
		internalError(w, "create_submission", err)
		return
	}

	if err := storage.LogActivity(h.DB, userID, "submission", map[string]interface{}{"lesson_id": req.TaskID}); err != nil {
		slog.Warn("Не удалось записать журнал действий", "error", err)
	}

	jsonOK(w, map[string]interface{}{"success": true})
}

// GET /api/submissions/{lesson_id}
func (h *Handler) GetSubmissionAPI(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	lessonID, _ := strconv.ParseUint(vars["lesson_id"], 10, 32)
	userID, _ := h.GetAuthenticatedUserID(r)

	submission, err := storage.LatestSubmission(h.DB, userID, uint(lessonID))
	if err != nil {
		internalError(w, "get_submission", err)
		return
	}

	if submission == nil {
		jsonOK(w, map[string]interface{}{"submission": nil})
		return
	}
	jsonOK(w, submission)
}

// GET /api/user/progress?course_id=
func (h *Handler) GetUserProgressAPI(w http.ResponseWriter, r *http.Request) {
	userID, _ := h.GetAuthenticatedUserID(r)

	var courseID *uint
	if raw := r.URL.Query().Get("course_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			jsonError(w, "Некорректный course_id", http.StatusBadRequest)
			return
		}
		v := uint(id)
		courseID = &v
	}

	view, err := storage.UserProgress(h.DB, userID, courseID)
	if err != nil {
		internalError(w, "get_progress", err)
		return
	}

	jsonOK(w, view)
}
