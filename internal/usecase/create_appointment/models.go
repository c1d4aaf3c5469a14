package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/CMG-AppointmentService/pkg/types"
)

// Request модель запроса на создание записи (публичная форма, без авторизации)
type Request struct {
	FirstName         string           // Имя пациента
	LastName          string           // Фамилия пациента
	Phone             string           // Телефон
	Email             string           // Email для уведомлений
	InsuranceProvider string           // Название страховой (obra social)
	Reason            string           // Причина визита из каталога услуг
	Date              time.Time        // Дата приёма (без времени)
	StartTime         types.TimeString // Слот из фиксированной сетки ("10:00")
}

// Response модель ответа с созданной записью
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
	Status            string // Всегда "pending" для новой записи
	RequestedAt       time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
