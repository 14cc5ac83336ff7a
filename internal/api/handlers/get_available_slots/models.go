package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/reservalo/availability-service/internal/domain"
	getAvailableSlots "github.com/reservalo/availability-service/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date                string     `json:"date"`
	BusinessID          uuid.UUID  `json:"businessId"`
	SpecialistID        *uuid.UUID `json:"specialistId,omitempty"`
	SlotDurationMinutes int        `json:"slotDurationMinutes"`
	Slots               []string   `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	return &AvailableSlotsResponse{
		Date:                resp.Date.Format(domain.DateFormat),
		BusinessID:          resp.BusinessID,
		SpecialistID:        resp.SpecialistID,
		SlotDurationMinutes: resp.SlotDurationMinutes,
		Slots:               slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров маршрута
func ToUseCaseRequest(businessID uuid.UUID, specialistID *uuid.UUID, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		BusinessID:   businessID,
		SpecialistID: specialistID,
		Date:         date,
	}, nil
}
