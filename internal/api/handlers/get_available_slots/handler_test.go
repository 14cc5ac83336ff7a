package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reservalo/availability-service/internal/api/handlers"
	getAvailableSlots "github.com/reservalo/availability-service/internal/usecase/get_available_slots"
	"github.com/reservalo/availability-service/pkg/types"
)

type fakeUseCase struct {
	resp    *getAvailableSlots.Response
	err     error
	lastReq *getAvailableSlots.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestRouter(uc GetAvailableSlotsUseCase) *mux.Router {
	r := mux.NewRouter()
	h := NewHandler(uc, noopLogger{})
	r.HandleFunc("/api/v1/businesses/{businessId}/available-slots", h.Handle).Methods(http.MethodGet)
	return r
}

func TestHandle_ReturnsSlots(t *testing.T) {
	businessID := uuid.New()
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	uc := &fakeUseCase{
		resp: &getAvailableSlots.Response{
			Date:                date,
			BusinessID:          businessID,
			SlotDurationMinutes: 30,
			Slots:               []types.TimeString{"09:00", "09:30", "10:30"},
		},
	}
	router := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/businesses/"+businessID.String()+"/available-slots?date=2026-09-10", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2026-09-10", body.Date)
	assert.Equal(t, businessID, body.BusinessID)
	assert.Equal(t, 30, body.SlotDurationMinutes)
	assert.Equal(t, []string{"09:00", "09:30", "10:30"}, body.Slots)

	require.NotNil(t, uc.lastReq)
	assert.Equal(t, businessID, uc.lastReq.BusinessID)
	assert.Nil(t, uc.lastReq.SpecialistID)
}

func TestHandle_SpecialistIDPassedThrough(t *testing.T) {
	businessID := uuid.New()
	specialistID := uuid.New()

	uc := &fakeUseCase{
		resp: &getAvailableSlots.Response{
			Date:                time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
			BusinessID:          businessID,
			SpecialistID:        &specialistID,
			SlotDurationMinutes: 30,
			Slots:               []types.TimeString{},
		},
	}
	router := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/businesses/"+businessID.String()+"/available-slots?date=2026-09-10&specialistId="+specialistID.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.lastReq)
	require.NotNil(t, uc.lastReq.SpecialistID)
	assert.Equal(t, specialistID, *uc.lastReq.SpecialistID)
}

func TestHandle_AnySpecialistTreatedAsAbsent(t *testing.T) {
	businessID := uuid.New()

	uc := &fakeUseCase{
		resp: &getAvailableSlots.Response{
			Date:                time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
			BusinessID:          businessID,
			SlotDurationMinutes: 30,
			Slots:               []types.TimeString{},
		},
	}
	router := newTestRouter(uc)

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/businesses/"+businessID.String()+"/available-slots?date=2026-09-10&specialistId=any", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.lastReq)
	assert.Nil(t, uc.lastReq.SpecialistID)
}

func TestHandle_MissingDate(t *testing.T) {
	router := newTestRouter(&fakeUseCase{})

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/businesses/"+uuid.New().String()+"/available-slots", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidBusinessID(t *testing.T) {
	router := newTestRouter(&fakeUseCase{})

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/businesses/not-a-uuid/available-slots?date=2026-09-10", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_MalformedDate(t *testing.T) {
	router := newTestRouter(&fakeUseCase{})

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/businesses/"+uuid.New().String()+"/available-slots?date=10.09.2026", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"business not found", getAvailableSlots.ErrBusinessNotFound, http.StatusNotFound},
		{"specialist not found", getAvailableSlots.ErrSpecialistNotFound, http.StatusNotFound},
		{"date too far", getAvailableSlots.ErrDateTooFarInFuture, http.StatusBadRequest},
		{"invalid configuration", getAvailableSlots.ErrInvalidConfiguration, http.StatusUnprocessableEntity},
		{"internal", getAvailableSlots.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&fakeUseCase{err: tt.err})

			req := httptest.NewRequest(http.MethodGet,
				"/api/v1/businesses/"+uuid.New().String()+"/available-slots?date=2026-09-10", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Message)
		})
	}
}
