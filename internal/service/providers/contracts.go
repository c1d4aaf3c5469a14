package providers

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/CMG-AppointmentService/internal/domain"
)

// ProviderRepository интерфейс репозитория страховых (obras sociales)
type ProviderRepository interface {
	Create(ctx context.Context, p *domain.InsuranceProvider) (*domain.InsuranceProvider, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.InsuranceProvider, error)
	ListAll(ctx context.Context) ([]*domain.InsuranceProvider, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
