package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reservalo/availability-service/internal/domain"
	scheduleRepo "github.com/reservalo/availability-service/internal/infra/storage/schedule"
	settingsRepo "github.com/reservalo/availability-service/internal/infra/storage/settings"
	"github.com/reservalo/availability-service/internal/integrations/directory"
	"github.com/reservalo/availability-service/pkg/ptr"
	"github.com/reservalo/availability-service/pkg/types"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
	lastFilter   domain.BusinessAppointmentsFilter
}

func (f *fakeAppointmentRepo) GetByBusinessWithFilter(_ context.Context, filter domain.BusinessAppointmentsFilter) ([]*domain.Appointment, error) {
	f.lastFilter = filter
	return f.appointments, f.err
}

type fakeScheduleRepo struct {
	dayHours *domain.DayHours
	err      error
}

func (f *fakeScheduleRepo) GetDayHours(_ context.Context, _ uuid.UUID, _ int) (*domain.DayHours, error) {
	return f.dayHours, f.err
}

type fakeSettingsRepo struct {
	settings *domain.BusinessSettings
	err      error
}

func (f *fakeSettingsRepo) GetByBusinessID(_ context.Context, _ uuid.UUID) (*domain.BusinessSettings, error) {
	return f.settings, f.err
}

type fakeDirectoryClient struct {
	business      *directory.Business
	businessErr   error
	specialist    *directory.Specialist
	specialistErr error
}

func (f *fakeDirectoryClient) GetBusiness(_ context.Context, _ uuid.UUID) (*directory.Business, error) {
	return f.business, f.businessErr
}

func (f *fakeDirectoryClient) GetSpecialist(_ context.Context, _, _ uuid.UUID) (*directory.Specialist, error) {
	return f.specialist, f.specialistErr
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func timePtr(s string) *types.TimeString {
	ts := types.TimeString(s)
	return &ts
}

func newTestUseCase(
	appointments *fakeAppointmentRepo,
	schedule *fakeScheduleRepo,
	settings *fakeSettingsRepo,
	dir *fakeDirectoryClient,
	now time.Time,
) *UseCase {
	uc := NewUseCase(appointments, schedule, settings, dir, noopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func activeBusiness(id uuid.UUID) *directory.Business {
	return &directory.Business{ID: id, Name: "Clinica Sol", IsActive: true}
}

func TestExecute_ReturnsFreeSlots(t *testing.T) {
	businessID := uuid.New()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	appointments := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{
			{
				ID:              uuid.New(),
				BusinessID:      businessID,
				AppointmentDate: date,
				StartTime:       "10:00",
				DurationMinutes: 30,
				Status:          domain.StatusConfirmed,
			},
		},
	}
	schedule := &fakeScheduleRepo{
		dayHours: &domain.DayHours{
			BusinessID: businessID,
			Weekday:    2,
			OpenTime:   timePtr("09:00"),
			CloseTime:  timePtr("11:00"),
		},
	}
	settings := &fakeSettingsRepo{
		settings: &domain.BusinessSettings{
			BusinessID:          businessID,
			SlotDurationMinutes: 30,
			AdvanceBookingDays:  30,
		},
	}
	dir := &fakeDirectoryClient{business: activeBusiness(businessID)}

	uc := newTestUseCase(appointments, schedule, settings, dir, now)

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: businessID, Date: date})
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:30"}, resp.Slots)
	assert.Equal(t, 30, resp.SlotDurationMinutes)
	assert.True(t, appointments.lastFilter.SlotHoldingOnly)
}

func TestExecute_MissingScheduleRowMeansClosed(t *testing.T) {
	businessID := uuid.New()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeScheduleRepo{err: scheduleRepo.ErrDayHoursNotFound},
		&fakeSettingsRepo{settings: domain.DefaultSettings(businessID)},
		&fakeDirectoryClient{business: activeBusiness(businessID)},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: businessID, Date: date})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.NotNil(t, resp.Slots)
}

func TestExecute_DefaultSettingsWhenNotConfigured(t *testing.T) {
	businessID := uuid.New()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	schedule := &fakeScheduleRepo{
		dayHours: &domain.DayHours{
			BusinessID: businessID,
			Weekday:    2,
			OpenTime:   timePtr("09:00"),
			CloseTime:  timePtr("10:00"),
		},
	}

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		schedule,
		&fakeSettingsRepo{err: settingsRepo.ErrSettingsNotFound},
		&fakeDirectoryClient{business: activeBusiness(businessID)},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{BusinessID: businessID, Date: date})
	require.NoError(t, err)

	// Дефолтная длительность слота - 30 минут
	assert.Equal(t, domain.DefaultSlotDurationMinutes, resp.SlotDurationMinutes)
	assert.Equal(t, []types.TimeString{"09:00", "09:30"}, resp.Slots)
}

func TestExecute_BusinessNotFound(t *testing.T) {
	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeScheduleRepo{},
		&fakeSettingsRepo{},
		&fakeDirectoryClient{businessErr: directory.ErrBusinessNotFound},
		time.Now(),
	)

	_, err := uc.Execute(context.Background(), &Request{BusinessID: uuid.New(), Date: time.Now().AddDate(0, 0, 1)})
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestExecute_InactiveBusinessTreatedAsNotFound(t *testing.T) {
	businessID := uuid.New()
	business := activeBusiness(businessID)
	business.IsActive = false

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeScheduleRepo{},
		&fakeSettingsRepo{},
		&fakeDirectoryClient{business: business},
		time.Now(),
	)

	_, err := uc.Execute(context.Background(), &Request{BusinessID: businessID, Date: time.Now().AddDate(0, 0, 1)})
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestExecute_SpecialistNotFound(t *testing.T) {
	businessID := uuid.New()

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeScheduleRepo{},
		&fakeSettingsRepo{},
		&fakeDirectoryClient{
			business:      activeBusiness(businessID),
			specialistErr: directory.ErrSpecialistNotFound,
		},
		time.Now(),
	)

	_, err := uc.Execute(context.Background(), &Request{
		BusinessID:   businessID,
		SpecialistID: ptr.Ptr(uuid.New()),
		Date:         time.Now().AddDate(0, 0, 1),
	})
	assert.ErrorIs(t, err, ErrSpecialistNotFound)
}

func TestExecute_DateInPastReturnsEmptyList(t *testing.T) {
	businessID := uuid.New()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	appointments := &fakeAppointmentRepo{}
	uc := newTestUseCase(
		appointments,
		&fakeScheduleRepo{},
		&fakeSettingsRepo{settings: domain.DefaultSettings(businessID)},
		&fakeDirectoryClient{business: activeBusiness(businessID)},
		now,
	)

	// Прошедшая дата - корректный запрос с гарантированно пустым ответом, не ошибка
	resp, err := uc.Execute(context.Background(), &Request{
		BusinessID: businessID,
		Date:       time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
	assert.Equal(t, domain.DefaultSlotDurationMinutes, resp.SlotDurationMinutes)
}

func TestExecute_DateTooFarInFuture(t *testing.T) {
	businessID := uuid.New()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	settings := domain.DefaultSettings(businessID)
	settings.AdvanceBookingDays = 7

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeScheduleRepo{},
		&fakeSettingsRepo{settings: settings},
		&fakeDirectoryClient{business: activeBusiness(businessID)},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{
		BusinessID: businessID,
		Date:       time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestExecute_ZeroAdvanceBookingDaysMeansNoLimit(t *testing.T) {
	businessID := uuid.New()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	settings := domain.DefaultSettings(businessID)
	settings.AdvanceBookingDays = 0

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeScheduleRepo{err: scheduleRepo.ErrDayHoursNotFound},
		&fakeSettingsRepo{settings: settings},
		&fakeDirectoryClient{business: activeBusiness(businessID)},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{
		BusinessID: businessID,
		Date:       time.Date(2027, 3, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
}

func TestExecute_InvalidSlotDurationIsConfigurationError(t *testing.T) {
	businessID := uuid.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	settings := domain.DefaultSettings(businessID)
	settings.SlotDurationMinutes = 0

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeScheduleRepo{
			dayHours: &domain.DayHours{
				BusinessID: businessID,
				OpenTime:   timePtr("09:00"),
				CloseTime:  timePtr("18:00"),
			},
		},
		&fakeSettingsRepo{settings: settings},
		&fakeDirectoryClient{business: activeBusiness(businessID)},
		now,
	)

	_, err := uc.Execute(context.Background(), &Request{
		BusinessID: businessID,
		Date:       time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeScheduleRepo{},
		&fakeSettingsRepo{},
		&fakeDirectoryClient{},
		time.Now(),
	)

	_, err := uc.Execute(context.Background(), &Request{Date: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{BusinessID: uuid.New()})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
