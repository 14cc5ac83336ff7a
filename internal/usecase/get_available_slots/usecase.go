package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/reservalo/availability-service/internal/availability"
	"github.com/reservalo/availability-service/internal/domain"
	scheduleRepo "github.com/reservalo/availability-service/internal/infra/storage/schedule"
	settingsRepo "github.com/reservalo/availability-service/internal/infra/storage/settings"
	"github.com/reservalo/availability-service/internal/integrations/directory"
	"github.com/reservalo/availability-service/pkg/types"
)

// UseCase use case для получения доступных слотов для записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	settingsRepo    SettingsRepository
	directoryClient DirectoryClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	settingsRepo SettingsRepository,
	directoryClient DirectoryClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		settingsRepo:    settingsRepo,
		directoryClient: directoryClient,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: business=%s, specialist=%v, date=%s",
		req.BusinessID, req.SpecialistID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем бизнес
	business, err := uc.directoryClient.GetBusiness(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, directory.ErrBusinessNotFound) {
			uc.logger.Warn("GetAvailableSlots: business id=%s not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get business id=%s: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}
	if !business.IsActive {
		uc.logger.Warn("GetAvailableSlots: business id=%s is inactive", req.BusinessID)
		return nil, ErrBusinessNotFound
	}

	// 4. Проверяем специалиста, если указан
	if req.SpecialistID != nil {
		specialist, err := uc.directoryClient.GetSpecialist(ctx, req.BusinessID, *req.SpecialistID)
		if err != nil {
			if errors.Is(err, directory.ErrSpecialistNotFound) {
				uc.logger.Warn("GetAvailableSlots: specialist id=%s not found", *req.SpecialistID)
				return nil, ErrSpecialistNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to get specialist id=%s: %v", *req.SpecialistID, err)
			return nil, fmt.Errorf("%w: failed to get specialist: %v", ErrInternal, err)
		}
		if !specialist.IsActive {
			return nil, ErrSpecialistNotFound
		}
	}

	// 5. Получаем настройки бизнеса
	settings, err := uc.settingsRepo.GetByBusinessID(ctx, req.BusinessID)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Error("GetAvailableSlots: failed to get settings: %v", err)
			return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}
		// Настройки не заведены - используем дефолтные значения
		settings = domain.DefaultSettings(req.BusinessID)
		uc.logger.Info("GetAvailableSlots: using default settings for business=%s", req.BusinessID)
	}

	// 6. Прошедшая дата - не ошибка, а гарантированно пустой результат:
	// на прошлое записаться нельзя, но запрос корректен
	if availability.IsDateInPast(req.Date, now) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past, returning empty list",
			req.Date.Format(domain.DateFormat))
		return emptyResponse(req, settings.SlotDurationMinutes), nil
	}

	// 6.1. Проверяем ограничение на глубину записи
	if err := validateDate(req.Date, now, settings.AdvanceBookingDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 7. Получаем рабочие часы на день недели запрошенной даты
	weekday := domain.WeekdayNumber(req.Date)
	dayHours, err := uc.scheduleRepo.GetDayHours(ctx, req.BusinessID, weekday)
	if err != nil && !errors.Is(err, scheduleRepo.ErrDayHoursNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get day hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get day hours: %v", ErrInternal, err)
	}
	// Отсутствие записи расписания трактуется как выходной день:
	// dayHours остается nil, движок вернет пустой список

	// 8. Получаем все занимающие слот записи на эту дату
	filter := domain.BusinessAppointmentsFilter{
		BusinessID:      req.BusinessID,
		SpecialistID:    req.SpecialistID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		SlotHoldingOnly: true,
	}

	appointments, err := uc.appointmentRepo.GetByBusinessWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 9. Вычисляем свободные слоты
	booked := availability.IntervalsFromAppointments(req.Date, appointments)

	slots, err := availability.ComputeSlots(dayHours, settings.SlotDurationMinutes, booked, req.Date, now)
	if err != nil {
		// Некорректная длительность слота или рабочие часы - это ошибка
		// конфигурации бизнеса, а не запроса
		if errors.Is(err, availability.ErrInvalidSlotDuration) || errors.Is(err, availability.ErrInvalidDayHours) {
			uc.logger.Error("GetAvailableSlots: invalid configuration for business=%s: %v", req.BusinessID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
		}
		uc.logger.Error("GetAvailableSlots: failed to compute slots: %v", err)
		return nil, fmt.Errorf("%w: failed to compute slots: %v", ErrInternal, err)
	}

	if slots == nil {
		slots = []types.TimeString{}
	}

	uc.logger.Info("GetAvailableSlots: computed %d slots for business=%s, date=%s",
		len(slots), req.BusinessID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:                req.Date,
		BusinessID:          req.BusinessID,
		SpecialistID:        req.SpecialistID,
		SlotDurationMinutes: settings.SlotDurationMinutes,
		Slots:               slots,
	}, nil
}

func emptyResponse(req *Request, slotDurationMinutes int) *Response {
	return &Response{
		Date:                req.Date,
		BusinessID:          req.BusinessID,
		SpecialistID:        req.SpecialistID,
		SlotDurationMinutes: slotDurationMinutes,
		Slots:               []types.TimeString{},
	}
}
