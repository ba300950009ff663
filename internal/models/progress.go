package models

// LessonProgress (Прогресс по уроку).
// Составной ключ: одна строка на пару пользователь×урок, запись идет апсертом.
type LessonProgress struct {
	UserID    uint `gorm:"primaryKey" json:"user_id"`
	LessonID  uint `gorm:"primaryKey" json:"lesson_id"`
	Completed bool `gorm:"not null;default:false" json:"completed"`
}

// TableName — историческое имя таблицы.
func (LessonProgress) TableName() string { return "user_progress" }
