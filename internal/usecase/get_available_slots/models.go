package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/reservalo/availability-service/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	BusinessID   uuid.UUID  // ID бизнеса
	SpecialistID *uuid.UUID // ID специалиста (nil = любой специалист)
	Date         time.Time  // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date                time.Time          // Дата, на которую запрашивались слоты
	BusinessID          uuid.UUID          // ID бизнеса
	SpecialistID        *uuid.UUID         // ID специалиста, если указан в запросе
	SlotDurationMinutes int                // Длительность слота в минутах
	Slots               []types.TimeString // Список свободных слотов в порядке возрастания
}
