package entity

import "time"

// Roles válidos para User.
const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// User representa un usuario del sistema (pertenece a una Organization).
type User struct {
	ID           string
	OrgID        string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // owner, admin, member
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
