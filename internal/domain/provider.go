package domain

import (
	"time"

	"github.com/google/uuid"
)

// InsuranceProvider represents an insurance provider (obra social)
// from the reference list shown on the booking form
type InsuranceProvider struct {
	ID        uuid.UUID
	Name      string // Уникальное название
	CreatedAt time.Time
	UpdatedAt time.Time
}
