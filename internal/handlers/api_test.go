package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/s/learningPlatform/internal/database"
	"github.com/s/learningPlatform/internal/handlers"
	"github.com/s/learningPlatform/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestServer(t *testing.T) (*httptest.Server, *gorm.DB) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("открытие базы: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("миграция: %v", err)
	}
	if err := database.Seed(db); err != nil {
		t.Fatalf("сиды: %v", err)
	}

	store := sessions.NewCookieStore([]byte("test-session-key"))
	h := handlers.NewHandler(db, store, nil)
	ts := httptest.NewServer(handlers.NewRouter(h))
	t.Cleanup(ts.Close)
	return ts, db
}

// newClient возвращает клиент с cookie jar, не следующий за редиректами.
func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func postJSON(t *testing.T, c *http.Client, url string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("сериализация запроса: %v", err)
	}
	resp, err := c.Post(url, "application/json", bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()

	var decoded map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("разбор ответа %s: %v", url, err)
	}
	return resp, decoded
}

func getJSON(t *testing.T, c *http.Client, url string) (*http.Response, map[string]interface{}) {
	t.Helper()
	resp, err := c.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	var decoded map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("разбор ответа %s: %v", url, err)
	}
	return resp, decoded
}

func register(t *testing.T, c *http.Client, baseURL, login string) uint {
	t.Helper()
	resp, body := postJSON(t, c, baseURL+"/api/register", map[string]string{
		"username": login,
		"password": "pw1",
		"name":     "Alice",
		"surname":  "Doe",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("регистрация: статус %d, тело %v", resp.StatusCode, body)
	}
	id, _ := body["user_id"].(float64)
	return uint(id)
}

func TestRegisterAndLogin(t *testing.T) {
	ts, _ := newTestServer(t)
	c := newClient(t)

	resp, body := postJSON(t, c, ts.URL+"/api/register", map[string]string{
		"username": "alice", "password": "pw1", "name": "Alice", "surname": "Doe",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("статус %d, тело %v", resp.StatusCode, body)
	}
	if body["success"] != true {
		t.Fatalf("ожидался success, получено: %v", body)
	}
	if id, _ := body["user_id"].(float64); id != 1 {
		t.Fatalf("user_id %v, ожидался 1", body["user_id"])
	}

	// Повторная регистрация того же логина — 400
	resp, body = postJSON(t, c, ts.URL+"/api/register", map[string]string{
		"username": "alice", "password": "pw2", "name": "B", "surname": "C",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("дубликат: статус %d", resp.StatusCode)
	}
	if body["error"] == "" {
		t.Fatalf("дубликат: ожидалось поле error, получено %v", body)
	}

	// Неверный пароль — 401
	resp, _ = postJSON(t, c, ts.URL+"/api/login", map[string]string{
		"username": "alice", "password": "wrong",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("неверный пароль: статус %d", resp.StatusCode)
	}

	// Верный пароль — 200 и user_id
	resp, body = postJSON(t, c, ts.URL+"/api/login", map[string]string{
		"username": "alice", "password": "pw1",
	})
	if resp.StatusCode != http.StatusOK || body["success"] != true {
		t.Fatalf("вход: статус %d, тело %v", resp.StatusCode, body)
	}
}

func TestLessonAPIRequiresAuth(t *testing.T) {
	ts, _ := newTestServer(t)
	c := newClient(t)

	resp, body := getJSON(t, c, ts.URL+"/api/lessons/1")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("статус %d, ожидался 401", resp.StatusCode)
	}
	if body["error"] != "Not authorized" {
		t.Fatalf("тело: %v", body)
	}
}

func TestLessonAPI(t *testing.T) {
	ts, db := newTestServer(t)
	c := newClient(t)
	register(t, c, ts.URL, "alice")

	lesson := models.Lesson{Title: "Урок 1", Content: "текст", OrderIndex: 1, CourseID: models.DefaultCourseID}
	if err := db.Create(&lesson).Error; err != nil {
		t.Fatalf("создание урока: %v", err)
	}
	material := models.LessonMaterial{LessonID: lesson.ID, Type: "video", Title: "Вводное видео", YoutubeID: "abc123"}
	if err := db.Create(&material).Error; err != nil {
		t.Fatalf("создание материала: %v", err)
	}

	resp, body := getJSON(t, c, ts.URL+"/api/lessons/1")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("статус %d, тело %v", resp.StatusCode, body)
	}
	if body["title"] != "Урок 1" || body["content"] != "текст" {
		t.Fatalf("урок: %v", body)
	}
	tasks, _ := body["tasks"].([]interface{})
	if len(tasks) != 1 {
		t.Fatalf("заданий %d, ожидалось 1", len(tasks))
	}
	task, _ := tasks[0].(map[string]interface{})
	if task["question"] == "" {
		t.Fatalf("задание без вопроса: %v", task)
	}
	materials, _ := body["materials"].([]interface{})
	if len(materials) != 1 {
		t.Fatalf("материалов %d, ожидался 1", len(materials))
	}
	if body["submission"] != nil {
		t.Fatalf("решение должно быть null, получено: %v", body["submission"])
	}

	// Несуществующий урок — 404
	resp, body = getJSON(t, c, ts.URL+"/api/lessons/999")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("статус %d, ожидался 404", resp.StatusCode)
	}
	if body["error"] != "Lesson not found" {
		t.Fatalf("тело: %v", body)
	}
}

func TestSubmissionFlow(t *testing.T) {
	ts, db := newTestServer(t)
	c := newClient(t)
	register(t, c, ts.URL, "alice")

	l1 := models.Lesson{Title: "Урок 1", Content: "текст", OrderIndex: 1, CourseID: models.DefaultCourseID}
	l2 := models.Lesson{Title: "Урок 2", Content: "текст", OrderIndex: 2, CourseID: models.DefaultCourseID}
	if err := db.Create(&l1).Error; err != nil {
		t.Fatalf("создание урока: %v", err)
	}
	if err := db.Create(&l2).Error; err != nil {
		t.Fatalf("создание урока: %v", err)
	}

	// До решения: прогресс нулевой, уроки не отмечены
	resp, body := getJSON(t, c, ts.URL+"/api/user/progress?course_id=1")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("прогресс: статус %d", resp.StatusCode)
	}
	if body["completed_lessons"].(float64) != 0 || body["total_lessons"].(float64) != 2 {
		t.Fatalf("прогресс до: %v", body)
	}

	// Решения еще нет
	resp, body = getJSON(t, c, ts.URL+"/api/submissions/1")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("решение: статус %d", resp.StatusCode)
	}
	if sub, ok := body["submission"]; !ok || sub != nil {
		t.Fatalf("ожидался {\"submission\": null}, получено: %v", body)
	}

	// Отправляем решение
	resp, body = postJSON(t, c, ts.URL+"/api/submissions", map[string]interface{}{
		"task_id": l1.ID, "answer": "мой ответ",
	})
	if resp.StatusCode != http.StatusOK || body["success"] != true {
		t.Fatalf("отправка: статус %d, тело %v", resp.StatusCode, body)
	}

	// Прогресс вырос ровно на один урок
	_, body = getJSON(t, c, ts.URL+"/api/user/progress?course_id=1")
	if body["completed_lessons"].(float64) != 1 {
		t.Fatalf("прогресс после: %v", body)
	}
	if body["progress"].(float64) != 50 {
		t.Fatalf("процент: %v", body["progress"])
	}

	// Урок отмечен в секциях
	resp, err := c.Get(ts.URL + "/api/courses/1/sections")
	if err != nil {
		t.Fatalf("секции: %v", err)
	}
	var sections []struct {
		Title   string `json:"title"`
		Lessons []struct {
			ID          uint `json:"id"`
			IsCompleted bool `json:"is_completed"`
		} `json:"lessons"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&sections); err != nil {
		t.Fatalf("разбор секций: %v", err)
	}
	resp.Body.Close()
	if len(sections) != 1 || len(sections[0].Lessons) != 2 {
		t.Fatalf("секции: %+v", sections)
	}
	if !sections[0].Lessons[0].IsCompleted || sections[0].Lessons[1].IsCompleted {
		t.Fatalf("отметки о прохождении: %+v", sections[0].Lessons)
	}

	// Повторное решение не удваивает прогресс
	postJSON(t, c, ts.URL+"/api/submissions", map[string]interface{}{
		"task_id": l1.ID, "answer": "другой ответ",
	})
	_, body = getJSON(t, c, ts.URL+"/api/user/progress?course_id=1")
	if body["completed_lessons"].(float64) != 1 {
		t.Fatalf("прогресс после повтора: %v", body)
	}

	// Актуально самое свежее решение
	_, body = getJSON(t, c, ts.URL+"/api/submissions/1")
	if body["answer_text"] != "другой ответ" || body["status"] != "submitted" {
		t.Fatalf("последнее решение: %v", body)
	}
}

func TestSectionsCourseNotFound(t *testing.T) {
	ts, _ := newTestServer(t)
	c := newClient(t)
	register(t, c, ts.URL, "alice")

	resp, body := getJSON(t, c, ts.URL+"/api/courses/999/sections")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("статус %d, ожидался 404", resp.StatusCode)
	}
	if body["error"] != "Course not found" {
		t.Fatalf("тело: %v", body)
	}
}

func TestProgressNoLessons(t *testing.T) {
	ts, _ := newTestServer(t)
	c := newClient(t)
	register(t, c, ts.URL, "alice")

	resp, body := getJSON(t, c, ts.URL+"/api/user/progress?course_id=1")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("статус %d", resp.StatusCode)
	}
	if body["total_lessons"].(float64) != 0 || body["progress"].(float64) != 0 {
		t.Fatalf("на пустом курсе ожидались нули: %v", body)
	}
}

func TestPagesRedirectAnonymous(t *testing.T) {
	ts, _ := newTestServer(t)
	c := newClient(t)

	for _, path := range []string{"/dashboard", "/course/1"} {
		resp, err := c.Get(ts.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusSeeOther {
			t.Fatalf("%s: статус %d, ожидался 303", path, resp.StatusCode)
		}
		if loc := resp.Header.Get("Location"); loc != "/login" {
			t.Fatalf("%s: редирект на %q, ожидался /login", path, loc)
		}
	}
}

func TestCoursePageNotEnrolled(t *testing.T) {
	ts, db := newTestServer(t)
	c := newClient(t)
	register(t, c, ts.URL, "alice")

	second := models.Course{Title: "Закрытый курс"}
	if err := db.Create(&second).Error; err != nil {
		t.Fatalf("создание курса: %v", err)
	}

	// Курс существует, но доступа нет: флеш и редирект в кабинет
	resp, err := c.Get(ts.URL + "/course/2")
	if err != nil {
		t.Fatalf("GET /course/2: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("статус %d, ожидался 303", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/dashboard" {
		t.Fatalf("редирект на %q, ожидался /dashboard", loc)
	}
}

func TestLogout(t *testing.T) {
	ts, _ := newTestServer(t)
	c := newClient(t)
	register(t, c, ts.URL, "alice")

	// Пока сессия жива, API отвечает
	resp, _ := getJSON(t, c, ts.URL+"/api/user/progress")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("до выхода: статус %d", resp.StatusCode)
	}

	resp, err := c.Get(ts.URL + "/logout")
	if err != nil {
		t.Fatalf("GET /logout: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("выход: статус %d, ожидался 303", resp.StatusCode)
	}

	resp, _ = getJSON(t, c, ts.URL+"/api/user/progress")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("после выхода: статус %d, ожидался 401", resp.StatusCode)
	}
}
