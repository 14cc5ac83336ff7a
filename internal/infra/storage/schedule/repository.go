package schedule

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
	"github.com/reservalo/availability-service/pkg/types"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

var hoursColumns = []string{
	"id",
	"business_id",
	"day_of_week",
	"open_time",
	"close_time",
	"is_closed",
	"created_at",
}

// Repository репозиторий расписания работы бизнесов (business_hours)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetDayHours получает расписание бизнеса на день недели (0=воскресенье .. 6=суббота)
// Отсутствующая строка означает, что день не сконфигурирован (трактуется как закрытый)
func (r *Repository) GetDayHours(ctx context.Context, businessID uuid.UUID, weekday int) (*domain.DayHours, error) {
	if weekday < 0 || weekday > 6 {
		return nil, ErrInvalidWeekday
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(hoursColumns...).
		From("business_hours").
		Where(squirrel.Eq{"business_id": businessID, "day_of_week": weekday}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDayHours - build select query: %v", ErrBuildQuery, err)
	}

	hours, err := scanDayHours(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDayHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetDayHours - scan day hours: %v", ErrScanRow, err)
	}

	return hours, nil
}

// GetWeek получает полное недельное расписание бизнеса
func (r *Repository) GetWeek(ctx context.Context, businessID uuid.UUID) (*domain.WeekSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(hoursColumns...).
		From("business_hours").
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWeek - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeek - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	week := &domain.WeekSchedule{BusinessID: businessID, Days: make([]domain.DayHours, 0, 7)}

	for rows.Next() {
		hours, err := scanDayHours(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetWeek - scan row: %v", ErrScanRow, err)
		}
		week.Days = append(week.Days, *hours)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWeek - rows error: %v", ErrScanRow, err)
	}

	return week, nil
}

// ReplaceWeek заменяет недельное расписание бизнеса целиком
// Вызывается внутри транзакции (usecase обновления конфигурации)
func (r *Repository) ReplaceWeek(ctx context.Context, businessID uuid.UUID, days []domain.DayHours) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("business_hours").
		Where(squirrel.Eq{"business_id": businessID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWeek - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceWeek - execute delete: %v", ErrExecQuery, err)
	}

	if len(days) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("business_hours").
		Columns("business_id", "day_of_week", "open_time", "close_time", "is_closed")

	for _, day := range days {
		if day.Weekday < 0 || day.Weekday > 6 {
			return ErrInvalidWeekday
		}
		insertBuilder = insertBuilder.Values(
			businessID,
			day.Weekday,
			derefTime(day.OpenTime),
			derefTime(day.CloseTime),
			day.IsClosed,
		)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWeek - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceWeek - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDayHours(row rowScanner) (*domain.DayHours, error) {
	var hours domain.DayHours
	var openTime, closeTime types.TimeString
	var createdAt sql.NullTime

	err := row.Scan(
		&hours.ID,
		&hours.BusinessID,
		&hours.Weekday,
		&openTime,
		&closeTime,
		&hours.IsClosed,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if !openTime.IsZero() {
		hours.OpenTime = &openTime
	}
	if !closeTime.IsZero() {
		hours.CloseTime = &closeTime
	}
	hours.CreatedAt = createdAt.Time

	return &hours, nil
}

func derefTime(t *types.TimeString) interface{} {
	if t == nil {
		return nil
	}
	return *t
}
