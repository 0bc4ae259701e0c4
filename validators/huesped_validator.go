package validators

import (
	"github.com/google/uuid"

	"hotel-reservas/apierrors"
	"hotel-reservas/models"
	"hotel-reservas/repositories"
)

type HuespedValidator struct {
	huespedes repositories.HuespedRepository
	detalles  repositories.DetalleReservaRepository
}

func NewHuespedValidator(huespedes repositories.HuespedRepository, detalles repositories.DetalleReservaRepository) *HuespedValidator {
	return &HuespedValidator{huespedes: huespedes, detalles: detalles}
}

func (v *HuespedValidator) ValidateCreate(req models.CrearHuespedRequest) error {
	viol := apierrors.NewViolations()

	if req.Nombres == "" {
		viol.Add("nombres", "los nombres son requeridos")
	}
	if req.Apellidos == "" {
		viol.Add("apellidos", "los apellidos son requeridos")
	}
	if req.Documento == "" {
		viol.Add("documento", "el documento de identidad es requerido")
	}
	if req.Email != "" && !emailValido(req.Email) {
		viol.Addf("email", "'%s' no tiene formato de email válido", req.Email)
	}

	return viol.Err()
}

func (v *HuespedValidator) ValidateUpdate(id uuid.UUID, req models.ActualizarHuespedRequest) (*models.Huesped, error) {
	existente, err := v.huespedes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existente == nil {
		return nil, apierrors.NewNotFound("huésped", id)
	}

	viol := apierrors.NewViolations()

	if req.Nombres != nil && *req.Nombres == "" {
		viol.Add("nombres", "los nombres no pueden quedar vacíos")
	}
	if req.Apellidos != nil && *req.Apellidos == "" {
		viol.Add("apellidos", "los apellidos no pueden quedar vacíos")
	}
	if req.Documento != nil && *req.Documento == "" {
		viol.Add("documento", "el documento de identidad no puede quedar vacío")
	}
	if req.Email != nil && *req.Email != "" && !emailValido(*req.Email) {
		viol.Addf("email", "'%s' no tiene formato de email válido", *req.Email)
	}

	if err := viol.Err(); err != nil {
		return nil, err
	}
	return existente, nil
}

func (v *HuespedValidator) ValidateDelete(id uuid.UUID) error {
	existe, err := v.huespedes.ExistsByID(id)
	if err != nil {
		return err
	}
	if !existe {
		return apierrors.NewNotFound("huésped", id)
	}

	enUso, err := v.detalles.ExistsByHuespedID(id)
	if err != nil {
		return err
	}
	if enUso {
		return apierrors.NewConflict("el huésped %s está referenciado por detalles de reserva", id)
	}
	return nil
}
