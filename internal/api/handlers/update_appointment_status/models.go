package update_appointment_status

import (
	"time"

	"github.com/m04kA/CMG-AppointmentService/internal/domain"
	updateStatus "github.com/m04kA/CMG-AppointmentService/internal/usecase/update_appointment_status"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"` // confirmed | cancelled
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID                string `json:"id"`
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	Phone             string `json:"phone"`
	Email             string `json:"email"`
	InsuranceProvider string `json:"insuranceProvider"`
	Reason            string `json:"reason"`
	Date              string `json:"date"`
	StartTime         string `json:"startTime"`
	Status            string `json:"status"`
	RequestedAt       string `json:"requestedAt"`
	CreatedAt         string `json:"createdAt"`
	UpdatedAt         string `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateStatus.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                resp.ID.String(),
		FirstName:         resp.FirstName,
		LastName:          resp.LastName,
		Phone:             resp.Phone,
		Email:             resp.Email,
		InsuranceProvider: resp.InsuranceProvider,
		Reason:            resp.Reason,
		Date:              resp.Date.Format(domain.DateFormat),
		StartTime:         resp.StartTime.String(),
		Status:            resp.Status,
		RequestedAt:       resp.RequestedAt.Format(time.RFC3339),
		CreatedAt:         resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         resp.UpdatedAt.Format(time.RFC3339),
	}
}
