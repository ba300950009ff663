package storage

import (
	"encoding/json"

	"github.com/s/learningPlatform/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LogActivity пишет строку в журнал действий пользователя.
// Журнал вспомогательный, ошибку записи вызывающие только логируют.
func LogActivity(db *gorm.DB, userID uint, action string, details map[string]interface{}) error {
	var data datatypes.JSON
	if details != nil {
		raw, err := json.Marshal(details)
		if err != nil {
			return err
		}
		data = datatypes.JSON(raw)
	}

	return db.Create(&models.ActivityLog{
		UserID:  userID,
		Action:  action,
		Details: data,
	}).Error
}
