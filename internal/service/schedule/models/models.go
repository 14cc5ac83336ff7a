package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/reservalo/availability-service/internal/domain"
	"github.com/reservalo/availability-service/pkg/types"
)

// Request модели

// DayHoursInput рабочие часы одного дня недели
type DayHoursInput struct {
	Weekday   int     `json:"weekday"` // 0 = воскресенье ... 6 = суббота
	OpenTime  *string `json:"openTime,omitempty"`
	CloseTime *string `json:"closeTime,omitempty"`
	IsClosed  bool    `json:"isClosed"`
}

// SettingsInput настройки бронирования
// Все поля опциональны - обновляются только переданные значения
type SettingsInput struct {
	SlotDurationMinutes *int  `json:"slotDurationMinutes,omitempty"`
	AdvanceBookingDays  *int  `json:"advanceBookingDays,omitempty"`
	ReminderHours       *int  `json:"reminderHours,omitempty"`
	AutoConfirm         *bool `json:"autoConfirm,omitempty"`
	RequirePhone        *bool `json:"requirePhone,omitempty"`
	RequireEmail        *bool `json:"requireEmail,omitempty"`
	CancellationHours   *int  `json:"cancellationHours,omitempty"`
}

// UpdateConfigRequest запрос на обновление конфигурации бизнеса
// Week заменяет недельное расписание целиком, Settings обновляет настройки частично
type UpdateConfigRequest struct {
	UserID   uuid.UUID       `json:"userId"`
	Week     []DayHoursInput `json:"week,omitempty"`
	Settings *SettingsInput  `json:"settings,omitempty"`
}

// ApplyToSettings применяет обновления к существующим настройкам
// Обновляются только непустые (not nil) поля из request
func (s *SettingsInput) ApplyToSettings(settings *domain.BusinessSettings) {
	if s.SlotDurationMinutes != nil {
		settings.SlotDurationMinutes = *s.SlotDurationMinutes
	}
	if s.AdvanceBookingDays != nil {
		settings.AdvanceBookingDays = *s.AdvanceBookingDays
	}
	if s.ReminderHours != nil {
		settings.ReminderHours = *s.ReminderHours
	}
	if s.AutoConfirm != nil {
		settings.AutoConfirm = *s.AutoConfirm
	}
	if s.RequirePhone != nil {
		settings.RequirePhone = *s.RequirePhone
	}
	if s.RequireEmail != nil {
		settings.RequireEmail = *s.RequireEmail
	}
	if s.CancellationHours != nil {
		settings.CancellationHours = *s.CancellationHours
	}
}

// ToDomainDayHours конвертирует ввод в domain модель
func (d *DayHoursInput) ToDomainDayHours(businessID uuid.UUID) domain.DayHours {
	hours := domain.DayHours{
		BusinessID: businessID,
		Weekday:    d.Weekday,
		IsClosed:   d.IsClosed,
	}

	if d.OpenTime != nil {
		open := types.TimeString(*d.OpenTime)
		hours.OpenTime = &open
	}
	if d.CloseTime != nil {
		closeTime := types.TimeString(*d.CloseTime)
		hours.CloseTime = &closeTime
	}

	return hours
}

// Response модели

// DayHoursResponse рабочие часы одного дня недели
type DayHoursResponse struct {
	Weekday   int     `json:"weekday"`
	OpenTime  *string `json:"openTime,omitempty"`
	CloseTime *string `json:"closeTime,omitempty"`
	IsClosed  bool    `json:"isClosed"`
}

// SettingsResponse настройки бронирования бизнеса
type SettingsResponse struct {
	SlotDurationMinutes int       `json:"slotDurationMinutes"`
	AdvanceBookingDays  int       `json:"advanceBookingDays"`
	ReminderHours       int       `json:"reminderHours"`
	AutoConfirm         bool      `json:"autoConfirm"`
	RequirePhone        bool      `json:"requirePhone"`
	RequireEmail        bool      `json:"requireEmail"`
	CancellationHours   int       `json:"cancellationHours"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// ConfigResponse ответ с конфигурацией бизнеса: недельное расписание и настройки
type ConfigResponse struct {
	BusinessID uuid.UUID          `json:"businessId"`
	Week       []DayHoursResponse `json:"week"`
	Settings   SettingsResponse   `json:"settings"`
}

// Методы конвертации

// FromDomainDayHours конвертирует domain модель в DTO
func FromDomainDayHours(d *domain.DayHours) DayHoursResponse {
	resp := DayHoursResponse{
		Weekday:  d.Weekday,
		IsClosed: d.IsClosed,
	}

	if d.OpenTime != nil {
		open := d.OpenTime.String()
		resp.OpenTime = &open
	}
	if d.CloseTime != nil {
		closeTime := d.CloseTime.String()
		resp.CloseTime = &closeTime
	}

	return resp
}

// FromDomainConfig собирает DTO из недельного расписания и настроек
func FromDomainConfig(businessID uuid.UUID, week *domain.WeekSchedule, settings *domain.BusinessSettings) *ConfigResponse {
	resp := &ConfigResponse{
		BusinessID: businessID,
		Week:       []DayHoursResponse{},
		Settings: SettingsResponse{
			SlotDurationMinutes: settings.SlotDurationMinutes,
			AdvanceBookingDays:  settings.AdvanceBookingDays,
			ReminderHours:       settings.ReminderHours,
			AutoConfirm:         settings.AutoConfirm,
			RequirePhone:        settings.RequirePhone,
			RequireEmail:        settings.RequireEmail,
			CancellationHours:   settings.CancellationHours,
			UpdatedAt:           settings.UpdatedAt,
		},
	}

	if week != nil {
		for i := range week.Days {
			resp.Week = append(resp.Week, FromDomainDayHours(&week.Days[i]))
		}
	}

	return resp
}
