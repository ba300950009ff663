package storage

import (
	"errors"
	"time"

	"github.com/s/learningPlatform/internal/models"
	"gorm.io/gorm"
)

// SubmissionView — решение вместе с комментарием проверяющего.
type SubmissionView struct {
	ID          uint      `json:"id"`
	AnswerText  string    `json:"answer_text"`
	SubmittedAt time.Time `json:"submitted_at"`
	Status      string    `json:"status"`
	Comment     *string   `json:"comment"`
}

// LessonByID загружает урок вместе с материалами.
func LessonByID(db *gorm.DB, lessonID uint) (*models.Lesson, error) {
	var lesson models.Lesson
	err := db.Preload("Materials").First(&lesson, lessonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

// CreateSubmission добавляет решение и отмечает урок пройденным.
// Вставка решения и апсерт прогресса коммитятся одной транзакцией:
// либо обе записи, либо ни одной.
func CreateSubmission(db *gorm.DB, userID, lessonID uint, answerText string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		answer := models.HomeworkAnswer{
			LessonID:   lessonID,
			UserID:     userID,
			AnswerText: answerText,
			Status:     models.SubmissionSubmitted,
		}
		if err := tx.Create(&answer).Error; err != nil {
			return err
		}

		return tx.Where("user_id = ? AND lesson_id = ?", userID, lessonID).
			Assign(models.LessonProgress{Completed: true}).
			FirstOrCreate(&models.LessonProgress{UserID: userID, LessonID: lessonID, Completed: true}).Error
	})
}

// LatestSubmission возвращает самое свежее решение пользователя по уроку
// (по submitted_at, без фильтра по статусу). nil без ошибки — решений нет.
func LatestSubmission(db *gorm.DB, userID, lessonID uint) (*SubmissionView, error) {
	var answer models.HomeworkAnswer
	err := db.Preload("Comment").
		Where("lesson_id = ? AND user_id = ?", lessonID, userID).
		Order("submitted_at DESC, id DESC").
		First(&answer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	view := SubmissionView{
		ID:          answer.ID,
		AnswerText:  answer.AnswerText,
		SubmittedAt: answer.SubmittedAt,
		Status:      answer.Status,
	}
	if answer.Comment != nil {
		view.Comment = &answer.Comment.Comment
	}
	return &view, nil
}
