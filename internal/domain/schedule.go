package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/reservalo/availability-service/pkg/types"
)

// DayHours opening hours of a business for one weekday
// Weekday numbering follows the storage convention: 0 = Sunday .. 6 = Saturday
type DayHours struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
	Weekday    int
	OpenTime   *types.TimeString // nil when the day has no configured hours
	CloseTime  *types.TimeString
	IsClosed   bool
	CreatedAt  time.Time
}

// HasHours returns true if both open and close times are configured
func (d *DayHours) HasHours() bool {
	return d.OpenTime != nil && d.CloseTime != nil
}

// WeekSchedule full weekly schedule of a business
type WeekSchedule struct {
	BusinessID uuid.UUID
	Days       []DayHours // at most one entry per weekday
}

// ForWeekday returns the hours for the given weekday (0 = Sunday)
// A missing row means the day is treated as closed
func (w *WeekSchedule) ForWeekday(weekday int) *DayHours {
	for i := range w.Days {
		if w.Days[i].Weekday == weekday {
			return &w.Days[i]
		}
	}
	return nil
}

// ForDate returns the hours for the weekday of the given date
func (w *WeekSchedule) ForDate(date time.Time) *DayHours {
	return w.ForWeekday(WeekdayNumber(date))
}

// WeekdayNumber преобразует time.Weekday в номер дня 0=Sunday..6=Saturday
// (time.Weekday уже использует эту нумерацию, фиксируем контракт явно)
func WeekdayNumber(date time.Time) int {
	return int(date.Weekday())
}
