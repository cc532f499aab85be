package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrLimitReached       = errors.New("límite del plan alcanzado")
	ErrForeignKey         = errors.New("referencia a un recurso inexistente")
	ErrCheckViolation     = errors.New("valor fuera del rango permitido")
)

// FieldErrors error de validación con mensajes por campo. Los handlers lo
// traducen a 400 con el detalle en el cuerpo.
type FieldErrors map[string]string

func (f FieldErrors) Error() string { return "validación: campos inválidos" }

