package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/gorilla/sessions"
	"github.com/joho/godotenv"
	"golang.org/x/oauth2"

	"github.com/s/learningPlatform/internal/auth"
	"github.com/s/learningPlatform/internal/database"
	"github.com/s/learningPlatform/internal/handlers"
	"github.com/s/learningPlatform/internal/middleware"
)

func main() {
	// ---------------------------
	// 0. Загрузка переменных окружения
	// ---------------------------
	if err := godotenv.Load(); err != nil {
		slog.Info("Файл .env не загружен, используются системные переменные")
	}

	// ---------------------------
	// 1. Подключаем GORM (База данных)
	// ---------------------------
	db, err := database.Connect()
	if err != nil {
		slog.Error("Ошибка подключения к БД", "error", err)
		os.Exit(1)
	}

	// ---------------------------
	// 2. Делаем миграции
	// ---------------------------
	if err := database.AutoMigrate(db); err != nil {
		slog.Error("Ошибка миграции", "error", err)
		os.Exit(1)
	}

	// ---------------------------
	// 3. Запускаем сиды
	// ---------------------------
	if err := database.Seed(db); err != nil {
		slog.Error("Ошибка сидов", "error", err)
		os.Exit(1)
	}

	// ---------------------------
	// 4. Настраиваем Google OAuth (необязательно)
	// ---------------------------
	var oauthConfig *oauth2.Config
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	if clientID != "" {
		oauthConfig = auth.InitGoogleOAuthConfig(
			clientID,
			os.Getenv("GOOGLE_CLIENT_SECRET"),
			os.Getenv("GOOGLE_REDIRECT_URL"),
		)
	} else {
		slog.Info("GOOGLE_CLIENT_ID не задан, вход через Google отключен")
	}

	// ---------------------------
	// 5. Настройка сессий
	// ---------------------------
	sessionKey := os.Getenv("SESSION_KEY")
	if sessionKey == "" {
		sessionKey = "super-secret-default-key" // Только для разработки!
		slog.Warn("SESSION_KEY не задан, используется дефолтный")
	}
	store := sessions.NewCookieStore([]byte(sessionKey))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   false, // Поставьте true, если используете HTTPS
	}

	// ---------------------------
	// 6. Хендлеры и роутинг
	// ---------------------------
	h := handlers.NewHandler(db, store, oauthConfig)
	r := handlers.NewRouter(h)

	// ---------------------------
	// 7. Запуск сервера
	// ---------------------------
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("Сервер запущен: http://localhost:%s\n", port)
	if err := http.ListenAndServe(":"+port, middleware.Logging(r)); err != nil {
		slog.Error("Сервер остановлен", "error", err)
		os.Exit(1)
	}
}
