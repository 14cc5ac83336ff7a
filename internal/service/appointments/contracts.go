package appointments

import (
	"context"

	"github.com/google/uuid"

	"github.com/reservalo/availability-service/internal/domain"
	"github.com/reservalo/availability-service/internal/integrations/directory"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	GetByUserID(ctx context.Context, userID uuid.UUID, status *domain.AppointmentStatus) ([]*domain.Appointment, error)
	GetByBusinessWithFilter(ctx context.Context, filter domain.BusinessAppointmentsFilter) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus) error
	Cancel(ctx context.Context, id uuid.UUID, reason string) error
	SetResult(ctx context.Context, id uuid.UUID, result, resultNotes, prescription *string) error
}

// DirectoryClient интерфейс клиента для DirectoryService
type DirectoryClient interface {
	GetBusiness(ctx context.Context, businessID uuid.UUID) (*directory.Business, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
