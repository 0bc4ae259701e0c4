package validators

import (
	"github.com/google/uuid"

	"hotel-reservas/apierrors"
	"hotel-reservas/models"
	"hotel-reservas/repositories"
)

type HabitacionValidator struct {
	habitaciones repositories.HabitacionRepository
	tipos        repositories.TipoHabitacionRepository
	detalles     repositories.DetalleReservaRepository
}

func NewHabitacionValidator(
	habitaciones repositories.HabitacionRepository,
	tipos repositories.TipoHabitacionRepository,
	detalles repositories.DetalleReservaRepository,
) *HabitacionValidator {
	return &HabitacionValidator{habitaciones: habitaciones, tipos: tipos, detalles: detalles}
}

func (v *HabitacionValidator) ValidateCreate(req models.CrearHabitacionRequest) error {
	if req.Estado != "" && !models.EstadoHabitacionValido(models.EstadoHabitacion(req.Estado)) {
		return apierrors.NewBadRequest("estado de habitación desconocido: '%s'", req.Estado)
	}

	viol := apierrors.NewViolations()

	if req.Numero == "" {
		viol.Add("numero", "el número de habitación es requerido")
	} else {
		existente, err := v.habitaciones.GetByNumero(req.Numero)
		if err != nil {
			return err
		}
		if existente != nil {
			viol.Addf("numero", "ya existe una habitación con el número '%s'", req.Numero)
		}
	}

	if tipoID, ok := parseID(viol, "tipoHabitacionId", req.TipoHabitacionID); ok {
		existe, err := v.tipos.ExistsByID(tipoID)
		if err != nil {
			return err
		}
		if !existe {
			viol.Addf("tipoHabitacionId", "el tipo de habitación %s no existe", tipoID)
		}
	}

	return viol.Err()
}

func (v *HabitacionValidator) ValidateUpdate(id uuid.UUID, req models.ActualizarHabitacionRequest) (*models.Habitacion, error) {
	if req.Estado != nil && !models.EstadoHabitacionValido(models.EstadoHabitacion(*req.Estado)) {
		return nil, apierrors.NewBadRequest("estado de habitación desconocido: '%s'", *req.Estado)
	}

	existente, err := v.habitaciones.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existente == nil {
		return nil, apierrors.NewNotFound("habitación", id)
	}

	viol := apierrors.NewViolations()

	if req.Numero != nil {
		if *req.Numero == "" {
			viol.Add("numero", "el número de habitación no puede quedar vacío")
		} else {
			duplicada, err := v.habitaciones.GetByNumero(*req.Numero)
			if err != nil {
				return nil, err
			}
			if duplicada != nil && duplicada.ID != id {
				viol.Addf("numero", "ya existe una habitación con el número '%s'", *req.Numero)
			}
		}
	}

	if req.TipoHabitacionID != nil {
		if tipoID, ok := parseID(viol, "tipoHabitacionId", *req.TipoHabitacionID); ok {
			existe, err := v.tipos.ExistsByID(tipoID)
			if err != nil {
				return nil, err
			}
			if !existe {
				viol.Addf("tipoHabitacionId", "el tipo de habitación %s no existe", tipoID)
			}
		}
	}

	if err := viol.Err(); err != nil {
		return nil, err
	}
	return existente, nil
}

func (v *HabitacionValidator) ValidateDelete(id uuid.UUID) error {
	existe, err := v.habitaciones.ExistsByID(id)
	if err != nil {
		return err
	}
	if !existe {
		return apierrors.NewNotFound("habitación", id)
	}

	enUso, err := v.detalles.ExistsByHabitacionID(id)
	if err != nil {
		return err
	}
	if enUso {
		return apierrors.NewConflict("la habitación %s está referenciada por detalles de reserva", id)
	}
	return nil
}
