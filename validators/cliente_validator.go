package validators

import (
	"github.com/google/uuid"

	"hotel-reservas/apierrors"
	"hotel-reservas/models"
	"hotel-reservas/repositories"
)

const maxLenRazonSocial = 20

type ClienteValidator struct {
	clientes repositories.ClienteRepository
	reservas repositories.ReservaRepository
}

func NewClienteValidator(clientes repositories.ClienteRepository, reservas repositories.ReservaRepository) *ClienteValidator {
	return &ClienteValidator{clientes: clientes, reservas: reservas}
}

func (v *ClienteValidator) ValidateCreate(req models.CrearClienteRequest) error {
	viol := apierrors.NewViolations()

	if req.RazonSocial == "" {
		viol.Add("razonSocial", "la razón social es requerida")
	} else if len(req.RazonSocial) > maxLenRazonSocial {
		viol.Addf("razonSocial", "la razón social no puede exceder %d caracteres", maxLenRazonSocial)
	}

	if req.Nit == "" {
		viol.Add("nit", "el NIT es requerido")
	} else if len(req.Nit) > maxLenRazonSocial {
		viol.Addf("nit", "el NIT no puede exceder %d caracteres", maxLenRazonSocial)
	}

	switch {
	case req.Email == "":
		viol.Add("email", "el email es requerido")
	case !emailValido(req.Email):
		viol.Addf("email", "'%s' no tiene formato de email válido", req.Email)
	default:
		existente, err := v.clientes.GetByEmail(req.Email)
		if err != nil {
			return err
		}
		if existente != nil {
			viol.Addf("email", "ya existe un cliente con el email '%s'", req.Email)
		}
	}

	return viol.Err()
}

// ValidateUpdate verifica la existencia del cliente y los campos presentes
// en la solicitud parcial. Devuelve el registro vigente para que el
// servicio aplique la fusión.
func (v *ClienteValidator) ValidateUpdate(id uuid.UUID, req models.ActualizarClienteRequest) (*models.Cliente, error) {
	existente, err := v.clientes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existente == nil {
		return nil, apierrors.NewNotFound("cliente", id)
	}

	viol := apierrors.NewViolations()

	if req.RazonSocial != nil {
		if *req.RazonSocial == "" {
			viol.Add("razonSocial", "la razón social no puede quedar vacía")
		} else if len(*req.RazonSocial) > maxLenRazonSocial {
			viol.Addf("razonSocial", "la razón social no puede exceder %d caracteres", maxLenRazonSocial)
		}
	}

	if req.Nit != nil {
		if *req.Nit == "" {
			viol.Add("nit", "el NIT no puede quedar vacío")
		} else if len(*req.Nit) > maxLenRazonSocial {
			viol.Addf("nit", "el NIT no puede exceder %d caracteres", maxLenRazonSocial)
		}
	}

	if req.Email != nil {
		if !emailValido(*req.Email) {
			viol.Addf("email", "'%s' no tiene formato de email válido", *req.Email)
		} else {
			duplicado, err := v.clientes.GetByEmail(*req.Email)
			if err != nil {
				return nil, err
			}
			// El propio registro no cuenta como duplicado.
			if duplicado != nil && duplicado.ID != id {
				viol.Addf("email", "ya existe un cliente con el email '%s'", *req.Email)
			}
		}
	}

	if err := viol.Err(); err != nil {
		return nil, err
	}
	return existente, nil
}

func (v *ClienteValidator) ValidateDelete(id uuid.UUID) error {
	existe, err := v.clientes.ExistsByID(id)
	if err != nil {
		return err
	}
	if !existe {
		return apierrors.NewNotFound("cliente", id)
	}

	tieneReservas, err := v.reservas.ExistsByClienteID(id)
	if err != nil {
		return err
	}
	if tieneReservas {
		return apierrors.NewConflict("el cliente %s tiene reservas asociadas y no puede eliminarse", id)
	}
	return nil
}
