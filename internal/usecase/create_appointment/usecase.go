package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/reservalo/availability-service/internal/availability"
	"github.com/reservalo/availability-service/internal/domain"
	appointmentRepo "github.com/reservalo/availability-service/internal/infra/storage/appointment"
	scheduleRepo "github.com/reservalo/availability-service/internal/infra/storage/schedule"
	settingsRepo "github.com/reservalo/availability-service/internal/infra/storage/settings"
	"github.com/reservalo/availability-service/internal/integrations/directory"
)

// UseCase use case для создания записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	settingsRepo    SettingsRepository
	directoryClient DirectoryClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	settingsRepo SettingsRepository,
	directoryClient DirectoryClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		settingsRepo:    settingsRepo,
		directoryClient: directoryClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// повторная проверка занятости слота выполняется внутри транзакции,
// а exclusion constraint в БД служит финальным арбитром двойного бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: business=%s, specialist=%v, date=%s, time=%s",
		req.BusinessID, req.SpecialistID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем бизнес
	business, err := uc.directoryClient.GetBusinessWithGracefulDegradation(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, directory.ErrBusinessNotFound) {
			uc.logger.Warn("CreateAppointment: business id=%s not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get business id=%s: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}
	if !business.IsActive {
		uc.logger.Warn("CreateAppointment: business id=%s is inactive", req.BusinessID)
		return nil, ErrBusinessNotFound
	}

	// 4. Проверяем специалиста, если указан
	if req.SpecialistID != nil {
		specialist, err := uc.directoryClient.GetSpecialist(ctx, req.BusinessID, *req.SpecialistID)
		if err != nil {
			if errors.Is(err, directory.ErrSpecialistNotFound) {
				uc.logger.Warn("CreateAppointment: specialist id=%s not found", *req.SpecialistID)
				return nil, ErrSpecialistNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get specialist id=%s: %v", *req.SpecialistID, err)
			return nil, fmt.Errorf("%w: failed to get specialist: %v", ErrInternal, err)
		}
		if !specialist.IsActive {
			return nil, ErrSpecialistNotFound
		}
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем настройки бизнеса
		settings, err := uc.settingsRepo.GetByBusinessID(txCtx, req.BusinessID)
		if err != nil {
			if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
				uc.logger.Error("CreateAppointment: failed to get settings: %v", err)
				return fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
			}
			settings = domain.DefaultSettings(req.BusinessID)
			uc.logger.Info("CreateAppointment: using default settings for business=%s", req.BusinessID)
		}

		// 5.2. Проверяем обязательные контактные данные по настройкам бизнеса
		if err := validateContacts(req, settings); err != nil {
			uc.logger.Warn("CreateAppointment: contact validation failed: %v", err)
			return err
		}

		// 5.3. Валидация даты с учетом настроек
		if err := validateDate(req.Date, now, settings.AdvanceBookingDays); err != nil {
			uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
			return err
		}

		// 5.4. Получаем рабочие часы на день недели
		weekday := domain.WeekdayNumber(req.Date)
		dayHours, err := uc.scheduleRepo.GetDayHours(txCtx, req.BusinessID, weekday)
		if err != nil && !errors.Is(err, scheduleRepo.ErrDayHoursNotFound) {
			uc.logger.Error("CreateAppointment: failed to get day hours: %v", err)
			return fmt.Errorf("%w: failed to get day hours: %v", ErrInternal, err)
		}
		if dayHours == nil || dayHours.IsClosed || !dayHours.HasHours() {
			uc.logger.Warn("CreateAppointment: business is closed on %s", req.Date.Format(domain.DateFormat))
			return ErrBusinessClosed
		}

		// 5.5. Проверяем, что время начала лежит на сетке слотов и внутри рабочих часов
		if err := availability.ValidateSlotStart(dayHours, settings.SlotDurationMinutes, req.StartTime); err != nil {
			uc.logger.Warn("CreateAppointment: slot start validation failed: %v", err)
			return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
		}

		// 5.6. Запрет записи на уже прошедшее время
		slotStart, err := req.StartTime.At(req.Date)
		if err != nil {
			uc.logger.Warn("CreateAppointment: invalid start time %s: %v", req.StartTime, err)
			return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
		}
		if availability.IsSameDay(req.Date, now) && slotStart.Before(now) {
			uc.logger.Warn("CreateAppointment: slot %s already passed", req.StartTime)
			return ErrTooLateToBook
		}

		// 5.7. Получаем занимающие слот записи на эту дату с блокировкой (FOR UPDATE)
		filter := domain.BusinessAppointmentsFilter{
			BusinessID:      req.BusinessID,
			SpecialistID:    req.SpecialistID,
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			SlotHoldingOnly: true,
		}

		appointments, err := uc.appointmentRepo.GetByBusinessWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 5.8. Проверяем доступность слота
		slot := availability.Interval{
			Start: slotStart,
			End:   slotStart.Add(time.Duration(settings.SlotDurationMinutes) * time.Minute),
		}
		booked := availability.IntervalsFromAppointments(req.Date, appointments)

		if availability.CountOverlapping(slot, booked) > 0 {
			uc.logger.Warn("CreateAppointment: slot %s on %s is already taken",
				req.StartTime, req.Date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		// 5.9. Создаем запись; начальный статус определяется настройкой auto_confirm
		appointment := &domain.Appointment{
			BusinessID:      req.BusinessID,
			SpecialistID:    req.SpecialistID,
			UserID:          req.UserID,
			CustomerName:    req.CustomerName,
			CustomerPhone:   req.CustomerPhone,
			CustomerEmail:   req.CustomerEmail,
			AppointmentDate: req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: settings.SlotDurationMinutes,
			Status:          settings.InitialStatus(),
			Notes:           req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			// Exclusion constraint в БД - финальный арбитр при конкурентных записях
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateAppointment: slot %s taken by concurrent request", req.StartTime)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s, status=%s", result.ID, result.Status)

	return &Response{
		ID:              result.ID,
		BusinessID:      result.BusinessID,
		SpecialistID:    result.SpecialistID,
		UserID:          result.UserID,
		CustomerName:    result.CustomerName,
		CustomerPhone:   result.CustomerPhone,
		CustomerEmail:   result.CustomerEmail,
		AppointmentDate: result.AppointmentDate,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
