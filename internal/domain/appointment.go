package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/reservalo/availability-service/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending    AppointmentStatus = "pending"
	StatusConfirmed  AppointmentStatus = "confirmed"
	StatusInHall     AppointmentStatus = "in_hall"
	StatusInProgress AppointmentStatus = "in_progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
	StatusNoShow     AppointmentStatus = "no_show"
)

// Appointment represents a customer appointment at a business
type Appointment struct {
	ID              uuid.UUID
	BusinessID      uuid.UUID
	SpecialistID    *uuid.UUID // nil = appointment not tied to a particular specialist
	UserID          *uuid.UUID // nil = guest booking, customer identified by contact fields
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	AppointmentDate time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          AppointmentStatus
	Notes           *string

	// Outcome fields filled by the business after the visit
	Result       *string
	ResultNotes  *string
	Prescription *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HoldsSlot returns true if the appointment blocks its time window
// from being offered as available (pending and confirmed only)
func (a *Appointment) HoldsSlot() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// IsActive returns true if the appointment is in an active state
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled && a.Status != StatusNoShow
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanBeUpdated returns true if the appointment can be updated
func (a *Appointment) CanBeUpdated() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// IsFinished returns true if the appointment is completed or was a no-show
func (a *Appointment) IsFinished() bool {
	return a.Status == StatusCompleted || a.Status == StatusNoShow
}

// BusinessAppointmentsFilter фильтр для получения записей бизнеса
type BusinessAppointmentsFilter struct {
	BusinessID      uuid.UUID          // Обязательный параметр
	SpecialistID    *uuid.UUID         // Фильтр по специалисту (опционально, nil - все специалисты)
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	Status          *AppointmentStatus // Фильтр по статусу (опционально)
	SlotHoldingOnly bool               // Только статусы, удерживающие слот (pending, confirmed)
	IncludeInactive bool               // Включать ли отменённые и no-show записи
}
