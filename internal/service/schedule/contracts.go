package schedule

import (
	"context"

	"github.com/google/uuid"

	"github.com/reservalo/availability-service/internal/domain"
	"github.com/reservalo/availability-service/internal/integrations/directory"
)

// ScheduleRepository интерфейс репозитория расписания работы
type ScheduleRepository interface {
	GetWeek(ctx context.Context, businessID uuid.UUID) (*domain.WeekSchedule, error)
	ReplaceWeek(ctx context.Context, businessID uuid.UUID, days []domain.DayHours) error
}

// SettingsRepository интерфейс репозитория настроек бронирования
type SettingsRepository interface {
	GetByBusinessID(ctx context.Context, businessID uuid.UUID) (*domain.BusinessSettings, error)
	Upsert(ctx context.Context, settings *domain.BusinessSettings) (*domain.BusinessSettings, error)
}

// DirectoryClient интерфейс клиента для DirectoryService
type DirectoryClient interface {
	GetBusiness(ctx context.Context, businessID uuid.UUID) (*directory.Business, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
