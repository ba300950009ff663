package storage

import (
	"errors"

	"github.com/google/uuid"
	"github.com/s/learningPlatform/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser регистрирует нового пользователя и выдает ему доступ к курсу
// по умолчанию. Обе записи идут в одной транзакции. Возвращает
// ErrDuplicateUser, если логин уже занят.
func CreateUser(db *gorm.DB, login, password, firstName, lastName string) (uint, error) {
	var existing models.User
	err := db.Where("login = ?", login).First(&existing).Error
	if err == nil {
		return 0, ErrDuplicateUser
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	user := models.User{
		Login:     login,
		Password:  string(hash),
		FirstName: firstName,
		LastName:  lastName,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&models.Enrollment{
			UserID:   user.ID,
			CourseID: models.DefaultCourseID,
		}).Error
	})
	if err != nil {
		return 0, err
	}

	return user.ID, nil
}

// Authenticate сверяет логин и пароль. На любой промах — неизвестный логин
// или неверный пароль — возвращает одну и ту же ErrInvalidCredentials.
func Authenticate(db *gorm.DB, login, password string) (uint, error) {
	var user models.User
	err := db.Where("login = ?", login).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrInvalidCredentials
	}
	if err != nil {
		return 0, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return 0, ErrInvalidCredentials
	}

	return user.ID, nil
}

// SaveGoogleUser finds a user by Google ID; if found, it updates, otherwise it creates.
// New Google users get a generated login, an unusable random password and the
// default-course enrollment, same as password registration.
func SaveGoogleUser(db *gorm.DB, googleID, firstName, lastName string) (uint, error) {
	var existing models.User

	result := db.Where("google_id = ?", googleID).First(&existing)

	if result.Error == nil {
		db.Model(&existing).Updates(map[string]interface{}{
			"first_name": firstName,
			"last_name":  lastName,
		})
		return existing.ID, nil

	} else if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
		if err != nil {
			return 0, err
		}

		user := models.User{
			Login:     "g_" + uuid.NewString()[:8],
			Password:  string(hash),
			FirstName: firstName,
			LastName:  lastName,
			GoogleID:  googleID,
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			return tx.Create(&models.Enrollment{
				UserID:   user.ID,
				CourseID: models.DefaultCourseID,
			}).Error
		})
		if err != nil {
			return 0, err
		}
		return user.ID, nil

	} else {
		return 0, result.Error
	}
}

// UserByID загружает пользователя по id сессии.
func UserByID(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	err := db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
