package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tu-usuario/stockpilot/internal/domain"
)

// Códigos de error de PostgreSQL traducidos a errores de dominio.
// La tabla es estática: un código nuevo requiere una entrada nueva aquí.
var pgCodeToDomain = map[string]error{
	"23505": domain.ErrDuplicate,      // unique_violation
	"23503": domain.ErrForeignKey,     // foreign_key_violation
	"23514": domain.ErrCheckViolation, // check_violation
}

// translateConstraint convierte violaciones de constraint conocidas en errores
// de dominio; cualquier otro error se devuelve tal cual.
func translateConstraint(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if domainErr, ok := pgCodeToDomain[pgErr.Code]; ok {
			return domainErr
		}
	}
	return err
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
