package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/s/learningPlatform/internal/storage"
)

// Единственное типовое задание к каждому уроку.
const lessonTaskQuestion = "Опишите своими словами основные концепции, рассмотренные в этом уроке."

// GET /api/lessons/{id}
func (h *Handler) GetLessonAPI(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	lessonID, _ := strconv.ParseUint(vars["id"], 10, 32)
	userID, _ := h.GetAuthenticatedUserID(r)

	lesson, err := storage.LessonByID(h.DB, uint(lessonID))
	if errors.Is(err, storage.ErrNotFound) {
		jsonError(w, "Lesson not found", http.StatusNotFound)
		return
	}
	if err != nil {
		internalError(w, "get_lesson", err)
		return
	}

	submission, err := storage.LatestSubmission(h.DB, userID, lesson.ID)
	if err != nil {
		internalError(w, "get_lesson", err)
		return
	}

	jsonOK(w, map[string]interface{}{
		"id":      lesson.ID,
		"title":   lesson.Title,
		"content": lesson.Content,
		"tasks": []map[string]interface{}{
			{"id": lesson.ID, "question": lessonTaskQuestion},
		},
		"materials":  lesson.Materials,
		"submission": submission,
	})
}

// GET /api/courses/{id}/sections
func (h *Handler) GetCourseSectionsAPI(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	courseID, _ := strconv.ParseUint(vars["id"], 10, 32)
	userID, _ := h.GetAuthenticatedUserID(r)

	sections, err := storage.CourseSections(h.DB, userID, uint(courseID))
	if errors.Is(err, storage.ErrNotFound) {
		jsonError(w, "Course not found", http.StatusNotFound)
		return
	}
	if err != nil {
		internalError(w, "get_sections", err)
		return
	}

	jsonOK(w, sections)
}
