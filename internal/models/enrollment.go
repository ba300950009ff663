package models

// Enrollment (Доступ пользователя к курсу)
type Enrollment struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	UserID   uint `gorm:"index" json:"user_id"`
	CourseID uint `gorm:"index" json:"course_id"`

	User   User   `json:"-" gorm:"foreignKey:UserID"`
	Course Course `json:"course" gorm:"foreignKey:CourseID"`
}

// TableName — историческое имя таблицы.
func (Enrollment) TableName() string { return "user_courses" }
