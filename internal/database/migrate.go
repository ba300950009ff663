package database

import (
	"time"

	"github.com/s/learningPlatform/internal/models"
	"gorm.io/gorm"
)

// schemaVersion — текущая версия схемы. Бамп при любом изменении моделей.
const schemaVersion = 1

// SchemaVersion — отметка примененной версии схемы.
type SchemaVersion struct {
	Version   int `gorm:"primaryKey"`
	AppliedAt time.Time
}

// AutoMigrate создает недостающие таблицы (идемпотентно) и ставит отметку
// версии схемы. Эволюцией колонок занимается GORM в пределах AutoMigrate,
// полноценных миграций здесь нет.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Section{},
		&models.Lesson{},
		&models.LessonMaterial{},
		&models.Enrollment{},
		&models.LessonProgress{},
		&models.HomeworkAnswer{},
		&models.Comment{},
		&models.ActivityLog{},
		&SchemaVersion{},
	); err != nil {
		return err
	}

	stamp := SchemaVersion{Version: schemaVersion, AppliedAt: time.Now()}
	return db.FirstOrCreate(&stamp, SchemaVersion{Version: schemaVersion}).Error
}
