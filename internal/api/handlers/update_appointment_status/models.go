package update_appointment_status

import (
	"github.com/google/uuid"

	"github.com/reservalo/availability-service/internal/service/appointments/models"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status       string  `json:"status"`
	Result       *string `json:"result,omitempty"`
	ResultNotes  *string `json:"resultNotes,omitempty"`
	Prescription *string `json:"prescription,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest(userID uuid.UUID) *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		UserID:       userID,
		Status:       r.Status,
		Result:       r.Result,
		ResultNotes:  r.ResultNotes,
		Prescription: r.Prescription,
	}
}
