package models

import "time"

// Статусы решения домашней работы.
const (
	SubmissionPending   = "pending"
	SubmissionSubmitted = "submitted"
)

// HomeworkAnswer (Решение домашней работы).
// Строки только накапливаются: актуальным считается самое свежее по submitted_at.
type HomeworkAnswer struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	LessonID    uint      `gorm:"index;not null" json:"lesson_id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	AnswerText  string    `json:"answer_text"`
	FilePath    string    `gorm:"size:255" json:"-"`
	FileName    string    `gorm:"size:255" json:"-"`
	SubmittedAt time.Time `gorm:"autoCreateTime" json:"submitted_at"`
	Status      string    `gorm:"size:20;default:pending" json:"status"`
	CommentID   *uint     `json:"-"`

	Comment *Comment `json:"-" gorm:"foreignKey:CommentID"`
}

// TableName — историческое имя таблицы.
func (HomeworkAnswer) TableName() string { return "homework_answers" }

// Comment (Комментарий проверяющего к решению).
// Создается вне этого сервиса, здесь только читается.
type Comment struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Comment string `gorm:"column:comment;not null" json:"comment"`
}
