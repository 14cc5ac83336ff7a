package create_appointment

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/reservalo/availability-service/internal/api/handlers"
	"github.com/reservalo/availability-service/internal/api/middleware"
	createAppointment "github.com/reservalo/availability-service/internal/usecase/create_appointment"
)

const (
	msgInvalidBusinessID  = "invalid business ID"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgSlotNotAvailable   = "selected time slot is not available"
	msgBusinessNotFound   = "business not found"
	msgSpecialistNotFound = "specialist not found"
	msgBusinessClosed     = "business is closed on the selected date"
	msgInvalidBookingDate = "invalid appointment date"
	msgDateTooFar         = "appointment date is too far in the future"
	msgInvalidTimeSlot    = "invalid time slot"
	msgTooLateToBook      = "selected time slot has already passed"
	msgPhoneRequired      = "customer phone is required"
	msgEmailRequired      = "customer email is required"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/businesses/{businessId}/appointments
// Маршрут публичный: запись доступна и гостям, авторизованный пользователь
// определяется по опциональному заголовку X-User-ID
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	businessID, err := uuid.Parse(vars["businessId"])
	if err != nil {
		h.logger.Warn("POST /businesses/{id}/appointments - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /businesses/{id}/appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Пользователь опционален - гостевая запись разрешена
	var userID *uuid.UUID
	if raw := r.Header.Get(middleware.HeaderUserID); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			userID = &id
		}
	}

	useCaseReq, err := req.ToUseCaseRequest(businessID, userID)
	if err != nil {
		h.logger.Warn("POST /businesses/{id}/appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /businesses/{id}/appointments - Slot not available: business_id=%s, time=%s", businessID, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createAppointment.ErrBusinessNotFound):
			h.logger.Warn("POST /businesses/{id}/appointments - Business not found: business_id=%s", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, createAppointment.ErrSpecialistNotFound):
			h.logger.Warn("POST /businesses/{id}/appointments - Specialist not found: business_id=%s", businessID)
			handlers.RespondNotFound(w, msgSpecialistNotFound)

		case errors.Is(err, createAppointment.ErrBusinessClosed):
			h.logger.Warn("POST /businesses/{id}/appointments - Business closed: business_id=%s, date=%s", businessID, req.Date)
			handlers.RespondBadRequest(w, msgBusinessClosed)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /businesses/{id}/appointments - Invalid date: business_id=%s, date=%s", businessID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createAppointment.ErrDateTooFarInFuture):
			h.logger.Warn("POST /businesses/{id}/appointments - Date too far in future: business_id=%s, date=%s", businessID, req.Date)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createAppointment.ErrInvalidTimeSlot):
			h.logger.Warn("POST /businesses/{id}/appointments - Invalid time slot: business_id=%s, time=%s", businessID, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createAppointment.ErrTooLateToBook):
			h.logger.Warn("POST /businesses/{id}/appointments - Too late to book: business_id=%s, time=%s", businessID, req.StartTime)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createAppointment.ErrPhoneRequired):
			h.logger.Warn("POST /businesses/{id}/appointments - Phone required: business_id=%s", businessID)
			handlers.RespondBadRequest(w, msgPhoneRequired)

		case errors.Is(err, createAppointment.ErrEmailRequired):
			h.logger.Warn("POST /businesses/{id}/appointments - Email required: business_id=%s", businessID)
			handlers.RespondBadRequest(w, msgEmailRequired)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /businesses/{id}/appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /businesses/{id}/appointments - Failed to create appointment: business_id=%s, error=%v", businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /businesses/{id}/appointments - Appointment created successfully: appointment_id=%s, business_id=%s, status=%s",
		result.ID, businessID, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
