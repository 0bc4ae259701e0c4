package validators

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"hotel-reservas/apierrors"
)

// validate es la instancia compartida de go-playground para los chequeos
// estructurales (formato de email, rangos).
var validate = validator.New()

func emailValido(email string) bool {
	return validate.Var(email, "required,email") == nil
}

// parseID valida un campo con forma de identificador dentro de la fase de
// acumulación: agrega la infracción al builder y devuelve uuid.Nil si el
// valor está vacío o malformado.
func parseID(v *apierrors.Violations, field, raw string) (uuid.UUID, bool) {
	if raw == "" {
		v.Addf(field, "%s es requerido", field)
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		v.Addf(field, "'%s' no es un identificador válido", raw)
		return uuid.Nil, false
	}
	return id, true
}
