package database

import (
	"github.com/s/learningPlatform/internal/models"
	"gorm.io/gorm"
)

// Seed создает курс по умолчанию (id=1), на который записываются все новые
// пользователи, и его единственную секцию.
func Seed(db *gorm.DB) error {
	course := models.Course{ID: models.DefaultCourseID, Title: "Вводный курс"}
	if err := db.FirstOrCreate(&course, models.Course{ID: models.DefaultCourseID}).Error; err != nil {
		return err
	}

	section := models.Section{
		CourseID:   course.ID,
		Title:      models.DefaultSectionTitle,
		OrderIndex: 1,
	}
	return db.FirstOrCreate(&section, models.Section{CourseID: course.ID, OrderIndex: 1}).Error
}
