package auth

import (
	"context"

	"github.com/m04kA/CMG-AppointmentService/internal/domain"
)

// UserRepository интерфейс репозитория операторов
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
