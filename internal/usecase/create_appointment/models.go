package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/reservalo/availability-service/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	BusinessID    uuid.UUID        // ID бизнеса
	SpecialistID  *uuid.UUID       // ID специалиста (опционально)
	UserID        *uuid.UUID       // ID аутентифицированного пользователя (опционально)
	CustomerName  string           // Имя клиента
	CustomerPhone string           // Телефон клиента (обязателен при require_phone)
	CustomerEmail string           // Email клиента (обязателен при require_email)
	Date          time.Time        // Дата записи (без времени)
	StartTime     types.TimeString // Время начала слота (например, "10:00")
	Notes         *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              uuid.UUID        // ID созданной записи
	BusinessID      uuid.UUID        // ID бизнеса
	SpecialistID    *uuid.UUID       // ID специалиста
	UserID          *uuid.UUID       // ID пользователя
	CustomerName    string           // Имя клиента
	CustomerPhone   string           // Телефон клиента
	CustomerEmail   string           // Email клиента
	AppointmentDate time.Time        // Дата записи
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус записи (pending или confirmed)
	Notes           *string          // Заметки
	CreatedAt       time.Time        // Время создания
	UpdatedAt       time.Time        // Время обновления
}
