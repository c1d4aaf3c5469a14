package update_appointment_status

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/CMG-AppointmentService/pkg/types"
)

// Request модель запроса на смену статуса записи (панель оператора)
type Request struct {
	ID     uuid.UUID // ID записи на приём
	Status string    // Целевой статус: confirmed | cancelled
}

// Response модель ответа с обновлённой записью
type Response struct {
	ID                uuid.UUID
	FirstName         string
	LastName          string
	Phone             string
	Email             string
	InsuranceProvider string
	Reason            string
	Date              time.Time
	StartTime         types.TimeString
	Status            string
	RequestedAt       time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
