package schedule

import (
	"fmt"

	"github.com/reservalo/availability-service/internal/domain"
	"github.com/reservalo/availability-service/internal/service/schedule/models"
	"github.com/reservalo/availability-service/pkg/types"
)

// validateWeek проверяет корректность недельного расписания
func validateWeek(week []models.DayHoursInput) error {
	seen := make(map[int]bool, len(week))

	for _, day := range week {
		if day.Weekday < 0 || day.Weekday > 6 {
			return fmt.Errorf("%w: weekday must be between 0 and 6, got %d", ErrInvalidInput, day.Weekday)
		}

		if seen[day.Weekday] {
			return fmt.Errorf("%w: duplicate weekday %d", ErrInvalidInput, day.Weekday)
		}
		seen[day.Weekday] = true

		// Для закрытого дня часы не проверяем
		if day.IsClosed {
			continue
		}

		if day.OpenTime == nil || day.CloseTime == nil {
			return fmt.Errorf("%w: open day %d requires openTime and closeTime", ErrInvalidInput, day.Weekday)
		}

		open := types.TimeString(*day.OpenTime)
		if err := open.Validate(); err != nil {
			return fmt.Errorf("%w: invalid openTime for weekday %d: %v", ErrInvalidInput, day.Weekday, err)
		}

		closeTime := types.TimeString(*day.CloseTime)
		if err := closeTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid closeTime for weekday %d: %v", ErrInvalidInput, day.Weekday, err)
		}

		if !open.IsBefore(closeTime) {
			return fmt.Errorf("%w: closeTime must be after openTime for weekday %d", ErrInvalidInput, day.Weekday)
		}
	}

	return nil
}

// validateSettings проверяет корректность настроек бронирования
func validateSettings(s *domain.BusinessSettings) error {
	if s.SlotDurationMinutes < domain.MinSlotDurationMinutes || s.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slotDurationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	if s.AdvanceBookingDays < domain.MinAdvanceBookingDays || s.AdvanceBookingDays > domain.MaxAdvanceBookingDays {
		return fmt.Errorf("%w: advanceBookingDays must be between %d and %d",
			ErrInvalidInput, domain.MinAdvanceBookingDays, domain.MaxAdvanceBookingDays)
	}

	if s.ReminderHours < 0 {
		return fmt.Errorf("%w: reminderHours must not be negative", ErrInvalidInput)
	}

	if s.CancellationHours < 0 {
		return fmt.Errorf("%w: cancellationHours must not be negative", ErrInvalidInput)
	}

	return nil
}
