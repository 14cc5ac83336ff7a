package get_available_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/reservalo/availability-service/internal/domain"
	"github.com/reservalo/availability-service/internal/integrations/directory"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetByBusinessWithFilter получает записи бизнеса с фильтрацией
	GetByBusinessWithFilter(ctx context.Context, filter domain.BusinessAppointmentsFilter) ([]*domain.Appointment, error)
}

// ScheduleRepository интерфейс репозитория расписания работы
type ScheduleRepository interface {
	// GetDayHours получает рабочие часы бизнеса на день недели (0 = воскресенье)
	GetDayHours(ctx context.Context, businessID uuid.UUID, weekday int) (*domain.DayHours, error)
}

// SettingsRepository интерфейс репозитория настроек бронирования
type SettingsRepository interface {
	GetByBusinessID(ctx context.Context, businessID uuid.UUID) (*domain.BusinessSettings, error)
}

// DirectoryClient интерфейс клиента для DirectoryService
type DirectoryClient interface {
	GetBusiness(ctx context.Context, businessID uuid.UUID) (*directory.Business, error)
	GetSpecialist(ctx context.Context, businessID, specialistID uuid.UUID) (*directory.Specialist, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
