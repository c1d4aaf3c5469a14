package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/CMG-AppointmentService/internal/domain"
)

// CreateProviderRequest запрос на создание страховой
type CreateProviderRequest struct {
	Name string `json:"name"`
}

// UpdateProviderRequest запрос на переименование страховой
type UpdateProviderRequest struct {
	Name string `json:"name"`
}

// ProviderResponse ответ с данными страховой
type ProviderResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProviderListResponse ответ со списком страховых
type ProviderListResponse struct {
	Providers []ProviderResponse `json:"providers"`
}

// FromDomainProvider конвертирует domain модель в DTO
func FromDomainProvider(p *domain.InsuranceProvider) *ProviderResponse {
	if p == nil {
		return nil
	}
	return &ProviderResponse{
		ID:        p.ID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// FromDomainProviderList конвертирует список domain моделей в DTO
func FromDomainProviderList(providers []*domain.InsuranceProvider) *ProviderListResponse {
	result := make([]ProviderResponse, 0, len(providers))
	for _, p := range providers {
		result = append(result, *FromDomainProvider(p))
	}
	return &ProviderListResponse{Providers: result}
}
