package database_test

import (
	"path/filepath"
	"testing"

	"github.com/s/learningPlatform/internal/database"
	"github.com/s/learningPlatform/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("открытие базы: %v", err)
	}
	return db
}

func TestAutoMigrateIdempotent(t *testing.T) {
	db := openDB(t)

	// Бутстрап можно запускать повторно без ошибок
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("первая миграция: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("повторная миграция: %v", err)
	}

	var versions []database.SchemaVersion
	if err := db.Find(&versions).Error; err != nil {
		t.Fatalf("чтение версий схемы: %v", err)
	}
	if len(versions) != 1 {
		t.Fatalf("отметок версии %d, ожидалась 1", len(versions))
	}
}

func TestSeedIdempotent(t *testing.T) {
	db := openDB(t)
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("миграция: %v", err)
	}

	if err := database.Seed(db); err != nil {
		t.Fatalf("первый сид: %v", err)
	}
	if err := database.Seed(db); err != nil {
		t.Fatalf("повторный сид: %v", err)
	}

	var courses int64
	db.Model(&models.Course{}).Count(&courses)
	if courses != 1 {
		t.Fatalf("курсов %d, ожидался 1", courses)
	}

	var sections int64
	db.Model(&models.Section{}).Count(&sections)
	if sections != 1 {
		t.Fatalf("секций %d, ожидалась 1", sections)
	}

	var course models.Course
	if err := db.First(&course, models.DefaultCourseID).Error; err != nil {
		t.Fatalf("курс по умолчанию не создан: %v", err)
	}
}
