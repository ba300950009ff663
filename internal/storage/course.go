package storage

import (
	"errors"

	"github.com/s/learningPlatform/internal/models"
	"gorm.io/gorm"
)

// LessonView — урок в списке секций с отметкой о прохождении.
type LessonView struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	OrderIndex  int    `json:"order_index"`
	IsCompleted bool   `json:"is_completed"`
}

// SectionView — секция курса с ее уроками.
type SectionView struct {
	ID         uint         `json:"id"`
	Title      string       `json:"title"`
	OrderIndex int          `json:"order_index"`
	Lessons    []LessonView `json:"lessons"`
}

// ListUserCourses возвращает курсы, доступные пользователю.
func ListUserCourses(db *gorm.DB, userID uint) ([]models.Course, error) {
	var enrollments []models.Enrollment
	err := db.Preload("Course").Where("user_id = ?", userID).Find(&enrollments).Error
	if err != nil {
		return nil, err
	}

	courses := make([]models.Course, 0, len(enrollments))
	for _, e := range enrollments {
		courses = append(courses, e.Course)
	}
	return courses, nil
}

// CourseForUser отдает курс, если у пользователя есть к нему доступ.
// Сначала проверяется запись доступа (ErrNotEnrolled), затем сам курс (ErrNotFound).
func CourseForUser(db *gorm.DB, userID, courseID uint) (*models.Course, error) {
	var enrollment models.Enrollment
	err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotEnrolled
	}
	if err != nil {
		return nil, err
	}

	var course models.Course
	err = db.First(&course, courseID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// CourseSections собирает секции курса с уроками по order_index и отметками
// о прохождении. Уроки без секции попадают в секцию «Основные модули» —
// в существующую, если она есть у курса, иначе в синтетическую.
func CourseSections(db *gorm.DB, userID, courseID uint) ([]SectionView, error) {
	var course models.Course
	err := db.First(&course, courseID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var sections []models.Section
	if err := db.Where("course_id = ?", courseID).Order("order_index").Find(&sections).Error; err != nil {
		return nil, err
	}

	var lessons []models.Lesson
	if err := db.Where("course_id = ?", courseID).Order("order_index").Find(&lessons).Error; err != nil {
		return nil, err
	}

	// Карта пройденных уроков: достаточно самого наличия строки прогресса
	var progress []models.LessonProgress
	if err := db.Where("user_id = ?", userID).Find(&progress).Error; err != nil {
		return nil, err
	}
	doneMap := make(map[uint]bool)
	for _, p := range progress {
		doneMap[p.LessonID] = true
	}

	views := make([]SectionView, 0, len(sections)+1)
	bySection := make(map[uint]int)
	defaultIdx := -1
	for _, s := range sections {
		views = append(views, SectionView{
			ID:         s.ID,
			Title:      s.Title,
			OrderIndex: s.OrderIndex,
			Lessons:    []LessonView{},
		})
		bySection[s.ID] = len(views) - 1
		if defaultIdx == -1 && s.Title == models.DefaultSectionTitle {
			defaultIdx = len(views) - 1
		}
	}

	appendLesson := func(idx int, l models.Lesson) {
		views[idx].Lessons = append(views[idx].Lessons, LessonView{
			ID:          l.ID,
			Title:       l.Title,
			OrderIndex:  l.OrderIndex,
			IsCompleted: doneMap[l.ID],
		})
	}

	ensureDefault := func() int {
		if defaultIdx == -1 {
			views = append(views, SectionView{
				ID:         1,
				Title:      models.DefaultSectionTitle,
				OrderIndex: 1,
				Lessons:    []LessonView{},
			})
			defaultIdx = len(views) - 1
		}
		return defaultIdx
	}

	for _, l := range lessons {
		if l.SectionID != nil {
			if idx, ok := bySection[*l.SectionID]; ok {
				appendLesson(idx, l)
				continue
			}
		}
		appendLesson(ensureDefault(), l)
	}

	// Курс без единой секции все равно отдает одну пустую, как и раньше
	if len(views) == 0 {
		ensureDefault()
	}

	return views, nil
}
