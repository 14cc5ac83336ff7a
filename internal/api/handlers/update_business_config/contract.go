package update_business_config

import (
	"context"

	"github.com/google/uuid"

	"github.com/reservalo/availability-service/internal/service/schedule/models"
)

type ConfigService interface {
	UpdateConfig(ctx context.Context, businessID uuid.UUID, req *models.UpdateConfigRequest) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
