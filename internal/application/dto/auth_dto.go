package dto

import "time"

// RegisterRequest alta de organización + usuario propietario.
type RegisterRequest struct {
	OrgName  string `json:"org_name" validate:"required,min=1,max=200"`
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (nunca incluye el hash).
type UserResponse struct {
	ID        string    `json:"id"`
	OrgID     string    `json:"org_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse token de sesión + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// InviteMemberRequest alta de un miembro adicional en la organización.
type InviteMemberRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name"`
	Role     string `json:"role"` // admin | member; por defecto member
	Password string `json:"password" validate:"required,min=8"`
}
