package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reservalo/availability-service/internal/domain"
	appointmentRepo "github.com/reservalo/availability-service/internal/infra/storage/appointment"
	"github.com/reservalo/availability-service/internal/integrations/directory"
	"github.com/reservalo/availability-service/pkg/types"
)

type fakeAppointmentRepo struct {
	existing  []*domain.Appointment
	createErr error
	created   *domain.Appointment
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	stored := *appointment
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.created = &stored
	return &stored, nil
}

func (f *fakeAppointmentRepo) GetByBusinessWithFilter(_ context.Context, _ domain.BusinessAppointmentsFilter) ([]*domain.Appointment, error) {
	return f.existing, nil
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

func (f *fakeDirectoryClient) GetBusinessWithGracefulDegradation(_ context.Context, _ uuid.UUID) (*directory.Business, error) {
	return f.business, f.businessErr
}

func (f *fakeDirectoryClient) GetSpecialist(_ context.Context, _, _ uuid.UUID) (*directory.Specialist, error) {
	return f.specialist, f.specialistErr
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

func workingTuesday(businessID uuid.UUID) *domain.DayHours {
	return &domain.DayHours{
		BusinessID: businessID,
		Weekday:    2,
		OpenTime:   timePtr("09:00"),
		CloseTime:  timePtr("18:00"),
	}
}

func newTestUseCase(
	appointments *fakeAppointmentRepo,
	schedule *fakeScheduleRepo,
	settings *fakeSettingsRepo,
	dir *fakeDirectoryClient,
	now time.Time,
) *UseCase {
	uc := NewUseCase(appointments, schedule, settings, dir, passthroughTxManager{}, noopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func validRequest(businessID uuid.UUID) *Request {
	return &Request{
		BusinessID:    businessID,
		CustomerName:  "Maria Lopez",
		CustomerPhone: "+34 600 000 000",
		CustomerEmail: "maria@example.com",
		Date:          time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime:     "10:00",
	}
}

func TestExecute_CreatesPendingAppointment(t *testing.T) {
	businessID := uuid.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(
		repo,
		&fakeScheduleRepo{dayHours: workingTuesday(businessID)},
		&fakeSettingsRepo{settings: domain.DefaultSettings(businessID)},
		&fakeDirectoryClient{business: &directory.Business{ID: businessID, IsActive: true}},
		now,
	)

	resp, err := uc.Execute(context.Background(), validRequest(businessID))
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, domain.DefaultSlotDurationMinutes, resp.DurationMinutes)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	require.NotNil(t, repo.created)
	assert.Equal(t, domain.StatusPending, repo.created.Status)
}

func TestExecute_AutoConfirmCreatesConfirmed(t *testing.T) {
	businessID := uuid.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	settings := domain.DefaultSettings(businessID)
	settings.AutoConfirm = true

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeScheduleRepo{dayHours: workingTuesday(businessID)},
		&fakeSettingsRepo{settings: settings},
		&fakeDirectoryClient{business: &directory.Business{ID: businessID, IsActive: true}},
		now,
	)

	resp, err := uc.Execute(context.Background(), validRequest(businessID))
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
}

func TestExecute_SlotAlreadyTaken(t *testing.T) {
	businessID := uuid.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	repo := &fakeAppointmentRepo{
		existing: []*domain.Appointment{
			{
				BusinessID:      businessID,
				AppointmentDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
				StartTime:       "10:00",
				DurationMinutes: 30,
				Status:          domain.StatusConfirmed,
			},
		},
	}

	uc := newTestUseCase(
		repo,
		&fakeScheduleRepo{dayHours: workingTuesday(businessID)},
		&fakeSettingsRepo{settings: domain.DefaultSettings(businessID)},
		&fakeDirectoryClient{business: &directory.Business{ID: businessID, IsActive: true}},
		now,
	)

	_, err := uc.Execute(context.Background(), validRequest(businessID))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_CancelledAppointmentDoesNotBlock(t *testing.T) {
	businessID := uuid.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	repo := &fakeAppointmentRepo{
		existing: []*domain.Appointment{
			{
				BusinessID:      businessID,
				AppointmentDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
				StartTime:       "10:00",
				DurationMinutes: 30,
				Status:          domain.StatusCancelled,
			},
		},
	}

	uc := newTestUseCase(
		repo,
		&fakeScheduleRepo{dayHours: workingTuesday(businessID)},
		&fakeSettingsRepo{settings: domain.DefaultSettings(businessID)},
		&fakeDirectoryClient{business: &directory.Business{ID: businessID, IsActive: true}},
		now,
	)

	_, err := uc.Execute(context.Background(), validRequest(businessID))
	require.NoError(t, err)
}

func TestExecute_ConcurrentInsertMapsToSlotNotAvailable(t *testing.T) {
	businessID := uuid.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeAppointmentRepo{createErr: appointmentRepo.ErrSlotTaken},
		&fakeScheduleRepo{dayHours: workingTuesday(businessID)},
		&fakeSettingsRepo{settings: domain.DefaultSettings(businessID)},
		&fakeDirectoryClient{business: &directory.Business{ID: businessID, IsActive: true}},
		now,
	)

	_, err := uc.Execute(context.Background(), validRequest(businessID))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_OffGridStartTime(t *testing.T) {
	businessID := uuid.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeScheduleRepo{dayHours: workingTuesday(businessID)},
		&fakeSettingsRepo{settings: domain.DefaultSettings(businessID)},
		&fakeDirectoryClient{business: &directory.Business{ID: businessID, IsActive: true}},
		now,
	)

	req := validRequest(businessID)
	req.StartTime = "10:15"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_OutsideWorkingHours(t *testing.T) {
	businessID := uuid.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeScheduleRepo{dayHours: workingTuesday(businessID)},
		&fakeSettingsRepo{settings: domain.DefaultSettings(businessID)},
		&fakeDirectoryClient{business: &directory.Business{ID: businessID, IsActive: true}},
		now,
	)

	req := validRequest(businessID)
	req.StartTime = "18:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_BusinessClosed(t *testing.T) {
	businessID := uuid.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	closed := workingTuesday(businessID)
	closed.IsClosed = true

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeScheduleRepo{dayHours: closed},
		&fakeSettingsRepo{settings: domain.DefaultSettings(businessID)},
		&fakeDirectoryClient{business: &directory.Business{ID: businessID, IsActive: true}},
		now,
	)

	_, err := uc.Execute(context.Background(), validRequest(businessID))
	assert.ErrorIs(t, err, ErrBusinessClosed)
}

func TestExecute_PastSlotSameDay(t *testing.T) {
	businessID := uuid.New()
	// Запрос на 10:00 в тот же день в 11:30
	now := time.Date(2026, 3, 10, 11, 30, 0, 0, time.UTC)

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeScheduleRepo{dayHours: workingTuesday(businessID)},
		&fakeSettingsRepo{settings: domain.DefaultSettings(businessID)},
		&fakeDirectoryClient{business: &directory.Business{ID: businessID, IsActive: true}},
		now,
	)

	_, err := uc.Execute(context.Background(), validRequest(businessID))
	assert.ErrorIs(t, err, ErrTooLateToBook)
}

func TestExecute_EarlierClockTimeOnFutureDayAllowed(t *testing.T) {
	businessID := uuid.New()
	// Запись на 10:00 будущего дня в 11:30 текущего: проверка "слот уже прошел"
	// действует только в пределах сегодняшнего дня
	now := time.Date(2026, 3, 3, 11, 30, 0, 0, time.UTC)

	repo := &fakeAppointmentRepo{}
	uc := newTestUseCase(
		repo,
		&fakeScheduleRepo{dayHours: workingTuesday(businessID)},
		&fakeSettingsRepo{settings: domain.DefaultSettings(businessID)},
		&fakeDirectoryClient{business: &directory.Business{ID: businessID, IsActive: true}},
		now,
	)

	resp, err := uc.Execute(context.Background(), validRequest(businessID))
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	require.NotNil(t, repo.created)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), repo.created.AppointmentDate)
}

func TestExecute_PhoneRequired(t *testing.T) {
	businessID := uuid.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	settings := domain.DefaultSettings(businessID)
	settings.RequirePhone = true

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeScheduleRepo{dayHours: workingTuesday(businessID)},
		&fakeSettingsRepo{settings: settings},
		&fakeDirectoryClient{business: &directory.Business{ID: businessID, IsActive: true}},
		now,
	)

	req := validRequest(businessID)
	req.CustomerPhone = ""
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPhoneRequired)

	req = validRequest(businessID)
	req.CustomerPhone = "+34 600 000 000"
	_, err = uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestExecute_EmailRequired(t *testing.T) {
	businessID := uuid.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	settings := domain.DefaultSettings(businessID)
	settings.RequireEmail = true

	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeScheduleRepo{dayHours: workingTuesday(businessID)},
		&fakeSettingsRepo{settings: settings},
		&fakeDirectoryClient{business: &directory.Business{ID: businessID, IsActive: true}},
		now,
	)

	req := validRequest(businessID)
	req.CustomerEmail = "   "
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmailRequired)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(
		&fakeAppointmentRepo{},
		&fakeScheduleRepo{},
		&fakeSettingsRepo{},
		&fakeDirectoryClient{},
		time.Now(),
	)

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"MissingBusinessID", func(req *Request) { req.BusinessID = uuid.Nil }},
		{"MissingCustomerName", func(req *Request) { req.CustomerName = "  " }},
		{"MissingDate", func(req *Request) { req.Date = time.Time{} }},
		{"MissingStartTime", func(req *Request) { req.StartTime = "" }},
		{"MalformedStartTime", func(req *Request) { req.StartTime = "25:99" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(uuid.New())
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
