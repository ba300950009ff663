package models

// User (Пользователь платформы).
// В поле Password хранится bcrypt-хэш, никогда не открытый пароль.
type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Login     string `gorm:"uniqueIndex;size:25" json:"login"`
	Password  string `json:"-"`
	FirstName string `gorm:"size:50" json:"first_name"`
	LastName  string `gorm:"size:50" json:"last_name"`

	// Заполняется только при входе через Google
	GoogleID string `gorm:"index" json:"-"`

	Enrollments []Enrollment `json:"-" gorm:"foreignKey:UserID"`
}
