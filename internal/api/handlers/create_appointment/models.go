package create_appointment

import (
	"time"

	"github.com/m04kA/CMG-AppointmentService/internal/domain"
	createAppointment "github.com/m04kA/CMG-AppointmentService/internal/usecase/create_appointment"
	"github.com/m04kA/CMG-AppointmentService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	Phone             string `json:"phone"`
	Email             string `json:"email"`
	InsuranceProvider string `json:"insuranceProvider"`
	Reason            string `json:"reason"`
	Date              string `json:"date"`      // "2025-06-10"
	StartTime         string `json:"startTime"` // "10:00"
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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		FirstName:         r.FirstName,
		LastName:          r.LastName,
		Phone:             r.Phone,
		Email:             r.Email,
		InsuranceProvider: r.InsuranceProvider,
		Reason:            r.Reason,
		Date:              date,
		StartTime:         startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
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
