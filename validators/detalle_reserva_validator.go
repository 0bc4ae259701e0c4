package validators

import (
	"time"

	"github.com/google/uuid"

	"hotel-reservas/apierrors"
	"hotel-reservas/models"
	"hotel-reservas/repositories"
)

type DetalleReservaValidator struct {
	detalles     repositories.DetalleReservaRepository
	reservas     repositories.ReservaRepository
	habitaciones repositories.HabitacionRepository
	huespedes    repositories.HuespedRepository
}

func NewDetalleReservaValidator(
	detalles repositories.DetalleReservaRepository,
	reservas repositories.ReservaRepository,
	habitaciones repositories.HabitacionRepository,
	huespedes repositories.HuespedRepository,
) *DetalleReservaValidator {
	return &DetalleReservaValidator{
		detalles:     detalles,
		reservas:     reservas,
		habitaciones: habitaciones,
		huespedes:    huespedes,
	}
}

func (v *DetalleReservaValidator) ValidateCreate(req models.CrearDetalleReservaRequest) error {
	viol := apierrors.NewViolations()

	// Cada referencia foránea se valida por separado; cada una que falle
	// aporta su propio mensaje con el id ofensor.
	if reservaID, ok := parseID(viol, "reservaId", req.ReservaID); ok {
		existe, err := v.reservas.ExistsByID(reservaID)
		if err != nil {
			return err
		}
		if !existe {
			viol.Addf("reservaId", "la reserva %s no existe", reservaID)
		}
	}

	if habitacionID, ok := parseID(viol, "habitacionId", req.HabitacionID); ok {
		existe, err := v.habitaciones.ExistsByID(habitacionID)
		if err != nil {
			return err
		}
		if !existe {
			viol.Addf("habitacionId", "la habitación %s no existe", habitacionID)
		}
	}

	if huespedID, ok := parseID(viol, "huespedId", req.HuespedID); ok {
		existe, err := v.huespedes.ExistsByID(huespedID)
		if err != nil {
			return err
		}
		if !existe {
			viol.Addf("huespedId", "el huésped %s no existe", huespedID)
		}
	}

	if req.Precio <= 0 {
		viol.Add("precio", "el precio debe ser mayor que cero")
	}
	if req.CantidadPersonas <= 0 {
		viol.Add("cantidadPersonas", "la cantidad de personas debe ser mayor que cero")
	}

	validarFechas(viol, req.FechaIngreso, req.FechaSalida, true)

	return viol.Err()
}

func (v *DetalleReservaValidator) ValidateUpdate(id uuid.UUID, req models.ActualizarDetalleReservaRequest) (*models.DetalleReserva, error) {
	existente, err := v.detalles.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existente == nil {
		return nil, apierrors.NewNotFound("detalle de reserva", id)
	}

	viol := apierrors.NewViolations()

	// Toda referencia foránea reemplazada se vuelve a validar.
	if req.ReservaID != nil {
		if reservaID, ok := parseID(viol, "reservaId", *req.ReservaID); ok {
			existe, err := v.reservas.ExistsByID(reservaID)
			if err != nil {
				return nil, err
			}
			if !existe {
				viol.Addf("reservaId", "la reserva %s no existe", reservaID)
			}
		}
	}
	if req.HabitacionID != nil {
		if habitacionID, ok := parseID(viol, "habitacionId", *req.HabitacionID); ok {
			existe, err := v.habitaciones.ExistsByID(habitacionID)
			if err != nil {
				return nil, err
			}
			if !existe {
				viol.Addf("habitacionId", "la habitación %s no existe", habitacionID)
			}
		}
	}
	if req.HuespedID != nil {
		if huespedID, ok := parseID(viol, "huespedId", *req.HuespedID); ok {
			existe, err := v.huespedes.ExistsByID(huespedID)
			if err != nil {
				return nil, err
			}
			if !existe {
				viol.Addf("huespedId", "el huésped %s no existe", huespedID)
			}
		}
	}

	if req.Precio != nil && *req.Precio <= 0 {
		viol.Add("precio", "el precio debe ser mayor que cero")
	}
	if req.CantidadPersonas != nil && *req.CantidadPersonas <= 0 {
		viol.Add("cantidadPersonas", "la cantidad de personas debe ser mayor que cero")
	}

	// Las fechas se chequean contra el valor fusionado.
	ingreso := existente.FechaIngreso
	if req.FechaIngreso != nil {
		ingreso = req.FechaIngreso
	}
	salida := existente.FechaSalida
	if req.FechaSalida != nil {
		salida = req.FechaSalida
	}
	validarFechas(viol, ingreso, salida, false)

	if err := viol.Err(); err != nil {
		return nil, err
	}
	return existente, nil
}

func (v *DetalleReservaValidator) ValidateDelete(id uuid.UUID) error {
	existente, err := v.detalles.GetByID(id)
	if err != nil {
		return err
	}
	if existente == nil {
		return apierrors.NewNotFound("detalle de reserva", id)
	}
	return nil
}

func validarFechas(viol *apierrors.Violations, ingreso, salida *time.Time, requeridas bool) {
	if requeridas {
		if ingreso == nil {
			viol.Add("fechaIngreso", "la fecha de ingreso es requerida")
		}
		if salida == nil {
			viol.Add("fechaSalida", "la fecha de salida es requerida")
		}
	}
	if ingreso != nil && salida != nil && !ingreso.Before(*salida) {
		viol.Add("fechaSalida", "la fecha de salida debe ser posterior a la de ingreso")
	}
}
