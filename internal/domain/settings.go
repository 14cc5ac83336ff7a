package domain

import (
	"time"

	"github.com/google/uuid"
)

// BusinessSettings booking configuration of a business
type BusinessSettings struct {
	ID                 uuid.UUID
	BusinessID         uuid.UUID
	SlotDurationMinutes int
	AdvanceBookingDays int // 0 = unlimited
	ReminderHours      int
	AutoConfirm        bool
	RequirePhone       bool
	RequireEmail       bool
	CancellationHours  int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// DefaultSettings returns the settings applied when a business has no stored row
func DefaultSettings(businessID uuid.UUID) *BusinessSettings {
	return &BusinessSettings{
		BusinessID:          businessID,
		SlotDurationMinutes: DefaultSlotDurationMinutes,
		AdvanceBookingDays:  DefaultAdvanceBookingDays,
		ReminderHours:       DefaultReminderHours,
		AutoConfirm:         false,
		RequirePhone:        true,
		RequireEmail:        true,
		CancellationHours:   DefaultCancellationHours,
	}
}

// HasAdvanceBookingLimit returns true if there's a limit on how far in advance
// appointments can be made
func (s *BusinessSettings) HasAdvanceBookingLimit() bool {
	return s.AdvanceBookingDays > 0
}

// InitialStatus returns the status a newly created appointment gets
func (s *BusinessSettings) InitialStatus() AppointmentStatus {
	if s.AutoConfirm {
		return StatusConfirmed
	}
	return StatusPending
}
