package validators

import (
	"github.com/google/uuid"

	"hotel-reservas/apierrors"
	"hotel-reservas/models"
	"hotel-reservas/repositories"
)

type ReservaValidator struct {
	reservas repositories.ReservaRepository
	clientes repositories.ClienteRepository
}

func NewReservaValidator(reservas repositories.ReservaRepository, clientes repositories.ClienteRepository) *ReservaValidator {
	return &ReservaValidator{reservas: reservas, clientes: clientes}
}

func (v *ReservaValidator) ValidateCreate(req models.CrearReservaRequest) error {
	// Un estado fuera del conjunto declarado es una solicitud malformada,
	// no una infracción de validación acumulable.
	if req.Estado != "" && !models.EstadoReservaValido(models.EstadoReserva(req.Estado)) {
		return apierrors.NewBadRequest("estado de reserva desconocido: '%s'", req.Estado)
	}

	viol := apierrors.NewViolations()

	if clienteID, ok := parseID(viol, "clienteId", req.ClienteID); ok {
		existe, err := v.clientes.ExistsByID(clienteID)
		if err != nil {
			return err
		}
		if !existe {
			viol.Addf("clienteId", "el cliente %s no existe", clienteID)
		}
	}

	if req.MontoTotal < 0 {
		viol.Add("montoTotal", "el monto total no puede ser negativo")
	}

	return viol.Err()
}

func (v *ReservaValidator) ValidateUpdate(id uuid.UUID, req models.ActualizarReservaRequest) (*models.Reserva, error) {
	if req.Estado != nil && !models.EstadoReservaValido(models.EstadoReserva(*req.Estado)) {
		return nil, apierrors.NewBadRequest("estado de reserva desconocido: '%s'", *req.Estado)
	}

	existente, err := v.reservas.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existente == nil {
		return nil, apierrors.NewNotFound("reserva", id)
	}

	viol := apierrors.NewViolations()

	if req.ClienteID != nil {
		if clienteID, ok := parseID(viol, "clienteId", *req.ClienteID); ok {
			existe, err := v.clientes.ExistsByID(clienteID)
			if err != nil {
				return nil, err
			}
			if !existe {
				viol.Addf("clienteId", "el cliente %s no existe", clienteID)
			}
		}
	}

	if req.MontoTotal != nil && *req.MontoTotal < 0 {
		viol.Add("montoTotal", "el monto total no puede ser negativo")
	}

	if err := viol.Err(); err != nil {
		return nil, err
	}
	return existente, nil
}

// ValidateDelete solo exige que la reserva exista: los detalles
// dependientes se eliminan en cascada junto con ella.
func (v *ReservaValidator) ValidateDelete(id uuid.UUID) error {
	existe, err := v.reservas.ExistsByID(id)
	if err != nil {
		return err
	}
	if !existe {
		return apierrors.NewNotFound("reserva", id)
	}
	return nil
}
