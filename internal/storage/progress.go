package storage

import (
	"github.com/s/learningPlatform/internal/models"
	"gorm.io/gorm"
)

// ProgressView — срез прогресса пользователя.
type ProgressView struct {
	TotalLessons     int64 `json:"total_lessons"`
	CompletedLessons int64 `json:"completed_lessons"`
	Progress         int   `json:"progress"`
}

// UserProgress считает пройденные и общие уроки. С courseID — в рамках
// курса, без него — по всем урокам платформы.
func UserProgress(db *gorm.DB, userID uint, courseID *uint) (ProgressView, error) {
	var view ProgressView
	var err error

	if courseID != nil {
		err = db.Model(&models.Lesson{}).
			Where("course_id = ?", *courseID).
			Count(&view.TotalLessons).Error
		if err != nil {
			return view, err
		}

		err = db.Model(&models.LessonProgress{}).
			Joins("JOIN lessons ON lessons.id = user_progress.lesson_id").
			Where("user_progress.user_id = ? AND user_progress.completed = ? AND lessons.course_id = ?",
				userID, true, *courseID).
			Count(&view.CompletedLessons).Error
		if err != nil {
			return view, err
		}
	} else {
		if err = db.Model(&models.Lesson{}).Count(&view.TotalLessons).Error; err != nil {
			return view, err
		}

		err = db.Model(&models.LessonProgress{}).
			Where("user_id = ? AND completed = ?", userID, true).
			Count(&view.CompletedLessons).Error
		if err != nil {
			return view, err
		}
	}

	// Процент с округлением вниз; на пустом курсе прогресс равен нулю
	if view.TotalLessons > 0 {
		view.Progress = int(100 * view.CompletedLessons / view.TotalLessons)
	}

	return view, nil
}
