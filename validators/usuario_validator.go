package validators

import (
	"github.com/google/uuid"

	"hotel-reservas/apierrors"
	"hotel-reservas/models"
	"hotel-reservas/repositories"
)

const minLenPassword = 8

type UsuarioValidator struct {
	usuarios repositories.UsuarioRepository
}

func NewUsuarioValidator(usuarios repositories.UsuarioRepository) *UsuarioValidator {
	return &UsuarioValidator{usuarios: usuarios}
}

func (v *UsuarioValidator) ValidateCreate(req models.CrearUsuarioRequest) error {
	viol := apierrors.NewViolations()

	if req.NombreCompleto == "" {
		viol.Add("nombreCompleto", "el nombre completo es requerido")
	}

	if req.Login == "" {
		viol.Add("login", "el login es requerido")
	} else {
		existente, err := v.usuarios.GetByLogin(req.Login)
		if err != nil {
			return err
		}
		if existente != nil {
			viol.Addf("login", "ya existe un usuario con el login '%s'", req.Login)
		}
	}

	if len(req.Password) < minLenPassword {
		viol.Addf("password", "la contraseña debe tener al menos %d caracteres", minLenPassword)
	}

	return viol.Err()
}

func (v *UsuarioValidator) ValidateUpdate(id uuid.UUID, req models.ActualizarUsuarioRequest) (*models.Usuario, error) {
	existente, err := v.usuarios.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existente == nil {
		return nil, apierrors.NewNotFound("usuario", id)
	}

	viol := apierrors.NewViolations()

	if req.NombreCompleto != nil && *req.NombreCompleto == "" {
		viol.Add("nombreCompleto", "el nombre completo no puede quedar vacío")
	}

	if req.Login != nil {
		if *req.Login == "" {
			viol.Add("login", "el login no puede quedar vacío")
		} else {
			duplicado, err := v.usuarios.GetByLogin(*req.Login)
			if err != nil {
				return nil, err
			}
			if duplicado != nil && duplicado.ID != id {
				viol.Addf("login", "ya existe un usuario con el login '%s'", *req.Login)
			}
		}
	}

	if req.Password != nil && len(*req.Password) < minLenPassword {
		viol.Addf("password", "la contraseña debe tener al menos %d caracteres", minLenPassword)
	}

	if err := viol.Err(); err != nil {
		return nil, err
	}
	return existente, nil
}

func (v *UsuarioValidator) ValidateDelete(id uuid.UUID) error {
	existente, err := v.usuarios.GetByID(id)
	if err != nil {
		return err
	}
	if existente == nil {
		return apierrors.NewNotFound("usuario", id)
	}
	return nil
}
