package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserRole роль оператора панели администратора
type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleSecretary UserRole = "secretary"
)

// IsValidRole returns true if role is one of the closed role set
func IsValidRole(role UserRole) bool {
	return role == RoleAdmin || role == RoleSecretary
}

// User represents an operator account (admin panel user).
// Пациенты аккаунтов не имеют: публичная форма записи не требует входа.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string // bcrypt, никогда не отдается наружу
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
