package models

// Course (Курс)
type Course struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Title string `gorm:"size:100;not null" json:"title"`

	Sections []Section `json:"sections" gorm:"constraint:OnDelete:CASCADE;"`
	Lessons  []Lesson  `json:"-" gorm:"constraint:OnDelete:CASCADE;"`
}

// Section (Секция курса) — упорядоченная группа уроков.
// Сид создает одну секцию «Основные модули» на курс; уроки без секции
// хендлер подкладывает в синтетическую секцию с тем же названием.
type Section struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	CourseID   uint   `gorm:"index" json:"course_id"`
	Title      string `json:"title"`
	OrderIndex int    `json:"order_index"`

	Lessons []Lesson `json:"lessons" gorm:"foreignKey:SectionID"`
}

// DefaultSectionTitle — название секции по умолчанию.
const DefaultSectionTitle = "Основные модули"

// DefaultCourseID — курс, доступ к которому выдается при регистрации.
const DefaultCourseID uint = 1
