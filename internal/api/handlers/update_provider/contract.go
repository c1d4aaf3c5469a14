package update_provider

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/CMG-AppointmentService/internal/service/providers/models"
)

type ProvidersService interface {
	UpdateName(ctx context.Context, id uuid.UUID, req *models.UpdateProviderRequest) (*models.ProviderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
