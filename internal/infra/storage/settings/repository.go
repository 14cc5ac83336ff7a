package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/reservalo/availability-service/internal/domain"
	"github.com/reservalo/availability-service/pkg/dbmetrics"
	"github.com/reservalo/availability-service/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

var settingsColumns = []string{
	"id",
	"business_id",
	"slot_duration_minutes",
	"advance_booking_days",
	"reminder_hours",
	"auto_confirm",
	"require_phone",
	"require_email",
	"cancellation_hours",
	"created_at",
	"updated_at",
}

// Repository репозиторий настроек бронирования бизнесов (business_settings)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByBusinessID получает настройки бизнеса
// Отсутствие строки - нормальная ситуация для нового бизнеса: возвращается
// ErrSettingsNotFound, а не дефолты, чтобы вызывающая сторона сама решала,
// подставлять ли их (и логировала этот факт)
func (r *Repository) GetByBusinessID(ctx context.Context, businessID uuid.UUID) (*domain.BusinessSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(settingsColumns...).
		From("business_settings").
		Where(squirrel.Eq{"business_id": businessID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.BusinessSettings
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.BusinessID,
		&s.SlotDurationMinutes,
		&s.AdvanceBookingDays,
		&s.ReminderHours,
		&s.AutoConfirm,
		&s.RequirePhone,
		&s.RequireEmail,
		&s.CancellationHours,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessID - scan settings: %v", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// Upsert создает или обновляет настройки бизнеса (одна строка на бизнес)
func (r *Repository) Upsert(ctx context.Context, s *domain.BusinessSettings) (*domain.BusinessSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("business_settings").
		Columns(
			"business_id",
			"slot_duration_minutes",
			"advance_booking_days",
			"reminder_hours",
			"auto_confirm",
			"require_phone",
			"require_email",
			"cancellation_hours",
		).
		Values(
			s.BusinessID,
			s.SlotDurationMinutes,
			s.AdvanceBookingDays,
			s.ReminderHours,
			s.AutoConfirm,
			s.RequirePhone,
			s.RequireEmail,
			s.CancellationHours,
		).
		Suffix(`ON CONFLICT (business_id) DO UPDATE SET
			slot_duration_minutes = EXCLUDED.slot_duration_minutes,
			advance_booking_days = EXCLUDED.advance_booking_days,
			reminder_hours = EXCLUDED.reminder_hours,
			auto_confirm = EXCLUDED.auto_confirm,
			require_phone = EXCLUDED.require_phone,
			require_email = EXCLUDED.require_email,
			cancellation_hours = EXCLUDED.cancellation_hours,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}
