package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"hotel-reservas/apierrors"
)

// translateError convierte errores de clave duplicada del motor (MySQL o
// SQLite) en un Conflict de la taxonomía. Cualquier otro error de la base
// se propaga sin clasificar.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apierrors.NewConflict("registro duplicado: %v", err)
	}
	msg := err.Error()
	if strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed") {
		return apierrors.NewConflict("registro duplicado: %v", err)
	}
	return err
}

// notFoundAsNil normaliza la ausencia de fila a (ausente, sin error).
func notFoundAsNil(err error) (bool, error) {
	if err == nil {
		return false, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true, nil
	}
	return false, err
}
