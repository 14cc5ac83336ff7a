package update_business_config

import (
	"github.com/google/uuid"

	"github.com/reservalo/availability-service/internal/service/schedule/models"
)

// UpdateConfigRequest HTTP request model
// Week заменяет недельное расписание целиком, Settings обновляет настройки частично
type UpdateConfigRequest struct {
	Week     []models.DayHoursInput `json:"week,omitempty"`
	Settings *models.SettingsInput  `json:"settings,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateConfigRequest) ToServiceRequest(userID uuid.UUID) *models.UpdateConfigRequest {
	return &models.UpdateConfigRequest{
		UserID:   userID,
		Week:     r.Week,
		Settings: r.Settings,
	}
}
