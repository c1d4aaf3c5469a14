package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/CMG-AppointmentService/internal/domain"
)

// AppointmentResponse ответ с данными записи на приём
type AppointmentResponse struct {
	ID                uuid.UUID `json:"id"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	Phone             string    `json:"phone"`
	Email             string    `json:"email"`
	InsuranceProvider string    `json:"insuranceProvider"`
	Reason            string    `json:"reason"`
	Date              string    `json:"date"`      // "2025-06-10"
	StartTime         string    `json:"startTime"` // "10:00"
	Status            string    `json:"status"`
	RequestedAt       time.Time `json:"requestedAt"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:                a.ID,
		FirstName:         a.FirstName,
		LastName:          a.LastName,
		Phone:             a.Phone,
		Email:             a.Email,
		InsuranceProvider: a.InsuranceProvider,
		Reason:            a.Reason,
		Date:              a.AppointmentDate.Format(domain.DateFormat),
		StartTime:         a.StartTime.String(),
		Status:            string(a.Status),
		RequestedAt:       a.RequestedAt,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	result := make([]AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		result = append(result, *FromDomainAppointment(a))
	}
	return &AppointmentListResponse{Appointments: result}
}
