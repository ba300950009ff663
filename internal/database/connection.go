package database

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect открывает базу данных.
// Если задан DATABASE_URL — подключаемся к Postgres (с повторами: Docker-база
// иногда «просыпается» пару секунд). Иначе используем локальный файл SQLite,
// он создается при первом обращении.
func Connect() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "learning_platform.db"
		}
		db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("не удалось открыть файл базы %s: %w", path, err)
		}
		slog.Info("База данных открыта", "path", path)
		return db, nil
	}

	var db *gorm.DB
	var err error

	for i := 0; i < 5; i++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			slog.Info("Успешное подключение к базе данных")
			return db, nil
		}
		slog.Warn("Попытка подключения не удалась, ждем", "attempt", i+1, "error", err)
		time.Sleep(2 * time.Second)
	}

	return nil, fmt.Errorf("не удалось подключиться к БД после нескольких попыток: %w", err)
}
