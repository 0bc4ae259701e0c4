package validators

import (
	"github.com/google/uuid"

	"hotel-reservas/apierrors"
	"hotel-reservas/models"
	"hotel-reservas/repositories"
)

type TipoHabitacionValidator struct {
	tipos        repositories.TipoHabitacionRepository
	habitaciones repositories.HabitacionRepository
}

func NewTipoHabitacionValidator(tipos repositories.TipoHabitacionRepository, habitaciones repositories.HabitacionRepository) *TipoHabitacionValidator {
	return &TipoHabitacionValidator{tipos: tipos, habitaciones: habitaciones}
}

func (v *TipoHabitacionValidator) ValidateCreate(req models.CrearTipoHabitacionRequest) error {
	viol := apierrors.NewViolations()

	if req.Nombre == "" {
		viol.Add("nombre", "el nombre es requerido")
	} else {
		existente, err := v.tipos.GetByNombre(req.Nombre)
		if err != nil {
			return err
		}
		if existente != nil {
			viol.Addf("nombre", "ya existe un tipo de habitación llamado '%s'", req.Nombre)
		}
	}

	if req.CapacidadMaxima <= 0 {
		viol.Add("capacidadMaxima", "la capacidad máxima debe ser mayor que cero")
	}
	if req.PrecioBase <= 0 {
		viol.Add("precioBase", "el precio base debe ser mayor que cero")
	}

	return viol.Err()
}

func (v *TipoHabitacionValidator) ValidateUpdate(id uuid.UUID, req models.ActualizarTipoHabitacionRequest) (*models.TipoHabitacion, error) {
	existente, err := v.tipos.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existente == nil {
		return nil, apierrors.NewNotFound("tipo de habitación", id)
	}

	viol := apierrors.NewViolations()

	if req.Nombre != nil {
		if *req.Nombre == "" {
			viol.Add("nombre", "el nombre no puede quedar vacío")
		} else {
			duplicado, err := v.tipos.GetByNombre(*req.Nombre)
			if err != nil {
				return nil, err
			}
			if duplicado != nil && duplicado.ID != id {
				viol.Addf("nombre", "ya existe un tipo de habitación llamado '%s'", *req.Nombre)
			}
		}
	}

	if req.CapacidadMaxima != nil && *req.CapacidadMaxima <= 0 {
		viol.Add("capacidadMaxima", "la capacidad máxima debe ser mayor que cero")
	}
	if req.PrecioBase != nil && *req.PrecioBase <= 0 {
		viol.Add("precioBase", "el precio base debe ser mayor que cero")
	}

	if err := viol.Err(); err != nil {
		return nil, err
	}
	return existente, nil
}

func (v *TipoHabitacionValidator) ValidateDelete(id uuid.UUID) error {
	existe, err := v.tipos.ExistsByID(id)
	if err != nil {
		return err
	}
	if !existe {
		return apierrors.NewNotFound("tipo de habitación", id)
	}

	enUso, err := v.habitaciones.ExistsByTipoID(id)
	if err != nil {
		return err
	}
	if enUso {
		return apierrors.NewConflict("el tipo de habitación %s tiene habitaciones asociadas", id)
	}
	return nil
}
