package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/CMG-AppointmentService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a patient appointment request in the system
type Appointment struct {
	ID uuid.UUID

	// Контактные данные пациента
	FirstName string
	LastName  string
	Phone     string
	Email     string

	// Страховая (obra social) указывается названием, не внешним ключом:
	// форма записи подставляет имя из справочника
	InsuranceProvider string

	// Причина визита из фиксированного каталога услуг
	Reason string

	AppointmentDate time.Time        // Дата приёма (без времени)
	StartTime       types.TimeString // Слот из фиксированной сетки ("10:00")

	Status AppointmentStatus

	// RequestedAt момент подачи заявки пациентом, неизменяемый,
	// используется для сортировки в панели оператора
	RequestedAt time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment occupies its slot
// (pending and confirmed appointments hold the slot, cancelled ones do not)
func (a *Appointment) IsActive() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// PatientFullName returns the patient's full name for notifications
func (a *Appointment) PatientFullName() string {
	return a.FirstName + " " + a.LastName
}

// allowedTransitions таблица допустимых переходов статусов.
// cancelled — терминальный статус: переходов из него нет.
// Переход в тот же самый статус не допускается.
var allowedTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled},
	StatusCancelled: {},
}

// CanTransitionTo returns true if the transition from the current
// status to target is allowed by the lifecycle table
func (a *Appointment) CanTransitionTo(target AppointmentStatus) bool {
	for _, allowed := range allowedTransitions[a.Status] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsValidStatus returns true if s is one of the known appointment statuses
func IsValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// ActiveStatuses статусы, при которых запись занимает слот.
// Используется при проверке доступности и в partial unique index.
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}
