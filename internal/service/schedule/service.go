package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/reservalo/availability-service/internal/domain"
	settingsRepo "github.com/reservalo/availability-service/internal/infra/storage/settings"
	directoryClient "github.com/reservalo/availability-service/internal/integrations/directory"
	"github.com/reservalo/availability-service/internal/service/schedule/models"
)

// Service сервис для работы с конфигурацией бизнеса:
// недельным расписанием работы и настройками бронирования
type Service struct {
	scheduleRepo    ScheduleRepository
	settingsRepo    SettingsRepository
	directoryClient DirectoryClient
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(
	scheduleRepo ScheduleRepository,
	settingsRepo SettingsRepository,
	directoryClient DirectoryClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo:    scheduleRepo,
		settingsRepo:    settingsRepo,
		directoryClient: directoryClient,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetConfig получает конфигурацию бизнеса: недельное расписание и настройки
// Публичный метод - доступен всем, клиенты используют его для выбора даты записи
func (s *Service) GetConfig(ctx context.Context, businessID uuid.UUID) (*models.ConfigResponse, error) {
	s.logger.Info("GetConfig: fetching config for business=%s", businessID)

	business, err := s.directoryClient.GetBusiness(ctx, businessID)
	if err != nil {
		if errors.Is(err, directoryClient.ErrBusinessNotFound) {
			s.logger.Warn("GetConfig: business id=%s not found", businessID)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("GetConfig: failed to get business id=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}
	if !business.IsActive {
		s.logger.Warn("GetConfig: business id=%s is inactive", businessID)
		return nil, ErrBusinessNotFound
	}

	week, err := s.scheduleRepo.GetWeek(ctx, businessID)
	if err != nil {
		s.logger.Error("GetConfig: failed to get week schedule for business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: GetConfig - repository error: %v", ErrInternal, err)
	}

	settings, err := s.settingsRepo.GetByBusinessID(ctx, businessID)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Error("GetConfig: failed to get settings for business=%s: %v", businessID, err)
			return nil, fmt.Errorf("%w: GetConfig - repository error: %v", ErrInternal, err)
		}
		settings = domain.DefaultSettings(businessID)
	}

	s.logger.Info("GetConfig: successfully fetched config for business=%s", businessID)
	return models.FromDomainConfig(businessID, week, settings), nil
}

// UpdateConfig обновляет конфигурацию бизнеса
// Недельное расписание заменяется целиком, настройки обновляются частично
// Доступно только владельцу и менеджерам бизнеса
func (s *Service) UpdateConfig(ctx context.Context, businessID uuid.UUID, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("UpdateConfig: updating config for business=%s by user=%s", businessID, req.UserID)

	// 1. Получаем бизнес для проверки прав доступа
	business, err := s.directoryClient.GetBusiness(ctx, businessID)
	if err != nil {
		if errors.Is(err, directoryClient.ErrBusinessNotFound) {
			s.logger.Warn("UpdateConfig: business id=%s not found", businessID)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("UpdateConfig: failed to get business id=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	// 2. Проверяем права доступа (только владелец или менеджер)
	if !business.IsManagedBy(req.UserID) {
		s.logger.Warn("UpdateConfig: user=%s does not manage business=%s", req.UserID, businessID)
		return nil, ErrAccessDenied
	}

	// 3. Валидируем расписание, если оно передано
	if req.Week != nil {
		if err := validateWeek(req.Week); err != nil {
			s.logger.Warn("UpdateConfig: week validation failed: %v", err)
			return nil, err
		}
	}

	// 4. Готовим новые настройки: частичное обновление поверх текущих
	var newSettings *domain.BusinessSettings
	if req.Settings != nil {
		current, err := s.settingsRepo.GetByBusinessID(ctx, businessID)
		if err != nil {
			if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
				s.logger.Error("UpdateConfig: failed to get settings: %v", err)
				return nil, fmt.Errorf("%w: UpdateConfig - repository error: %v", ErrInternal, err)
			}
			current = domain.DefaultSettings(businessID)
		}

		req.Settings.ApplyToSettings(current)

		if err := validateSettings(current); err != nil {
			s.logger.Warn("UpdateConfig: settings validation failed: %v", err)
			return nil, err
		}
		newSettings = current
	}

	// 5. Применяем изменения в одной транзакции
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if req.Week != nil {
			days := make([]domain.DayHours, len(req.Week))
			for i, day := range req.Week {
				days[i] = day.ToDomainDayHours(businessID)
			}

			if err := s.scheduleRepo.ReplaceWeek(txCtx, businessID, days); err != nil {
				s.logger.Error("UpdateConfig: failed to replace week for business=%s: %v", businessID, err)
				return fmt.Errorf("%w: UpdateConfig - repository error: %v", ErrInternal, err)
			}
		}

		if newSettings != nil {
			if _, err := s.settingsRepo.Upsert(txCtx, newSettings); err != nil {
				s.logger.Error("UpdateConfig: failed to upsert settings for business=%s: %v", businessID, err)
				return fmt.Errorf("%w: UpdateConfig - repository error: %v", ErrInternal, err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateConfig: successfully updated config for business=%s", businessID)

	// 6. Возвращаем актуальную конфигурацию
	return s.GetConfig(ctx, businessID)
}
