package appointments

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
	"github.com/reservalo/availability-service/internal/service/appointments/models"
	"github.com/reservalo/availability-service/pkg/ptr"
)

type fakeAppointmentRepo struct {
	appointment *domain.Appointment
	getErr      error

	cancelledID     uuid.UUID
	cancelReason    string
	updatedStatus   domain.AppointmentStatus
	resultSet       bool
	storedResult    *string
	storedNotes     *string
	storedRx        *string
	byUser          []*domain.Appointment
	byBusiness      []*domain.Appointment
	lastUserStatus  *domain.AppointmentStatus
	lastFilterValue domain.BusinessAppointmentsFilter
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, _ uuid.UUID) (*domain.Appointment, error) {
	return f.appointment, f.getErr
}

func (f *fakeAppointmentRepo) GetByUserID(_ context.Context, _ uuid.UUID, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	f.lastUserStatus = status
	return f.byUser, nil
}

func (f *fakeAppointmentRepo) GetByBusinessWithFilter(_ context.Context, filter domain.BusinessAppointmentsFilter) ([]*domain.Appointment, error) {
	f.lastFilterValue = filter
	return f.byBusiness, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, _ uuid.UUID, status domain.AppointmentStatus) error {
	f.updatedStatus = status
	return nil
}

func (f *fakeAppointmentRepo) Cancel(_ context.Context, id uuid.UUID, reason string) error {
	f.cancelledID = id
	f.cancelReason = reason
	return nil
}

func (f *fakeAppointmentRepo) SetResult(_ context.Context, _ uuid.UUID, result, resultNotes, prescription *string) error {
	f.resultSet = true
	f.storedResult = result
	f.storedNotes = resultNotes
	f.storedRx = prescription
	return nil
}

type fakeDirectoryClient struct {
	business *directory.Business
	err      error
}

func (f *fakeDirectoryClient) GetBusiness(_ context.Context, _ uuid.UUID) (*directory.Business, error) {
	return f.business, f.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func pendingAppointment(businessID uuid.UUID, userID *uuid.UUID) *domain.Appointment {
	return &domain.Appointment{
		ID:              uuid.New(),
		BusinessID:      businessID,
		UserID:          userID,
		CustomerName:    "Ana Ruiz",
		AppointmentDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		DurationMinutes: 30,
		Status:          domain.StatusPending,
	}
}

func TestGetByID_OwnerHasAccess(t *testing.T) {
	businessID := uuid.New()
	userID := uuid.New()
	appointment := pendingAppointment(businessID, &userID)

	svc := NewService(
		&fakeAppointmentRepo{appointment: appointment},
		&fakeDirectoryClient{err: directory.ErrBusinessNotFound},
		noopLogger{},
	)

	resp, err := svc.GetByID(context.Background(), appointment.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, appointment.ID, resp.ID)
	assert.Equal(t, "10:00", resp.StartTime)
}

func TestGetByID_StrangerDenied(t *testing.T) {
	businessID := uuid.New()
	ownerID := uuid.New()
	appointment := pendingAppointment(businessID, &ownerID)

	svc := NewService(
		&fakeAppointmentRepo{appointment: appointment},
		&fakeDirectoryClient{business: &directory.Business{ID: businessID, OwnerID: uuid.New(), IsActive: true}},
		noopLogger{},
	)

	_, err := svc.GetByID(context.Background(), appointment.ID, uuid.New())
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_BusinessOwnerHasAccess(t *testing.T) {
	businessID := uuid.New()
	businessOwner := uuid.New()
	customer := uuid.New()
	appointment := pendingAppointment(businessID, &customer)

	svc := NewService(
		&fakeAppointmentRepo{appointment: appointment},
		&fakeDirectoryClient{business: &directory.Business{ID: businessID, OwnerID: businessOwner, IsActive: true}},
		noopLogger{},
	)

	_, err := svc.GetByID(context.Background(), appointment.ID, businessOwner)
	require.NoError(t, err)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(
		&fakeAppointmentRepo{getErr: appointmentRepo.ErrAppointmentNotFound},
		&fakeDirectoryClient{},
		noopLogger{},
	)

	_, err := svc.GetByID(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCancel_OwnerCancelsOwnAppointment(t *testing.T) {
	businessID := uuid.New()
	userID := uuid.New()
	appointment := pendingAppointment(businessID, &userID)

	repo := &fakeAppointmentRepo{appointment: appointment}
	svc := NewService(repo, &fakeDirectoryClient{}, noopLogger{})

	err := svc.Cancel(context.Background(), appointment.ID, &models.CancelAppointmentRequest{
		UserID:             userID,
		CancellationReason: "schedule conflict",
	})
	require.NoError(t, err)
	assert.Equal(t, appointment.ID, repo.cancelledID)
	assert.Equal(t, "schedule conflict", repo.cancelReason)
}

func TestCancel_CompletedCannotBeCancelled(t *testing.T) {
	businessID := uuid.New()
	userID := uuid.New()
	appointment := pendingAppointment(businessID, &userID)
	appointment.Status = domain.StatusCompleted

	svc := NewService(&fakeAppointmentRepo{appointment: appointment}, &fakeDirectoryClient{}, noopLogger{})

	err := svc.Cancel(context.Background(), appointment.ID, &models.CancelAppointmentRequest{UserID: userID})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_StrangerDenied(t *testing.T) {
	businessID := uuid.New()
	ownerID := uuid.New()
	appointment := pendingAppointment(businessID, &ownerID)

	svc := NewService(
		&fakeAppointmentRepo{appointment: appointment},
		&fakeDirectoryClient{business: &directory.Business{ID: businessID, OwnerID: uuid.New(), IsActive: true}},
		noopLogger{},
	)

	err := svc.Cancel(context.Background(), appointment.ID, &models.CancelAppointmentRequest{UserID: uuid.New()})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateStatus_ManagerUpdatesWithResult(t *testing.T) {
	businessID := uuid.New()
	managerID := uuid.New()
	appointment := pendingAppointment(businessID, nil)

	repo := &fakeAppointmentRepo{appointment: appointment}
	svc := NewService(
		repo,
		&fakeDirectoryClient{business: &directory.Business{
			ID:         businessID,
			OwnerID:    uuid.New(),
			ManagerIDs: []uuid.UUID{managerID},
			IsActive:   true,
		}},
		noopLogger{},
	)

	err := svc.UpdateStatus(context.Background(), appointment.ID, &models.UpdateStatusRequest{
		UserID: managerID,
		Status: "completed",
		Result: ptr.Ptr("treatment finished"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, repo.updatedStatus)
	assert.True(t, repo.resultSet)
	assert.Equal(t, "treatment finished", *repo.storedResult)
}

func TestUpdateStatus_InvalidStatusRejected(t *testing.T) {
	businessID := uuid.New()
	managerID := uuid.New()
	appointment := pendingAppointment(businessID, nil)

	svc := NewService(
		&fakeAppointmentRepo{appointment: appointment},
		&fakeDirectoryClient{business: &directory.Business{ID: businessID, OwnerID: managerID, IsActive: true}},
		noopLogger{},
	)

	err := svc.UpdateStatus(context.Background(), appointment.ID, &models.UpdateStatusRequest{
		UserID: managerID,
		Status: "archived",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetUserAppointments_StatusFilter(t *testing.T) {
	userID := uuid.New()
	repo := &fakeAppointmentRepo{}

	svc := NewService(repo, &fakeDirectoryClient{}, noopLogger{})

	resp, err := svc.GetUserAppointments(context.Background(), &models.GetUserAppointmentsRequest{
		UserID: userID,
		Status: ptr.Ptr("confirmed"),
	})
	require.NoError(t, err)
	assert.NotNil(t, resp.Appointments)
	require.NotNil(t, repo.lastUserStatus)
	assert.Equal(t, domain.StatusConfirmed, *repo.lastUserStatus)

	_, err = svc.GetUserAppointments(context.Background(), &models.GetUserAppointmentsRequest{
		UserID: userID,
		Status: ptr.Ptr("bogus"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetBusinessAppointments_RequiresManager(t *testing.T) {
	businessID := uuid.New()

	svc := NewService(
		&fakeAppointmentRepo{},
		&fakeDirectoryClient{business: &directory.Business{ID: businessID, OwnerID: uuid.New(), IsActive: true}},
		noopLogger{},
	)

	_, err := svc.GetBusinessAppointments(context.Background(), &models.GetBusinessAppointmentsRequest{
		UserID:     uuid.New(),
		BusinessID: businessID,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}
