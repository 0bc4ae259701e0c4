package services

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"hotel-reservas/apierrors"
	"hotel-reservas/models"
	"hotel-reservas/repositories"
	"hotel-reservas/validators"
)

type UsuarioService struct {
	usuarios  repositories.UsuarioRepository
	validator *validators.UsuarioValidator
}

func NewUsuarioService(usuarios repositories.UsuarioRepository, validator *validators.UsuarioValidator) *UsuarioService {
	return &UsuarioService{usuarios: usuarios, validator: validator}
}

func (s *UsuarioService) List() ([]models.UsuarioResponse, error) {
	usuarios, err := s.usuarios.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]models.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		out = append(out, u.ToResponse())
	}
	return out, nil
}

func (s *UsuarioService) GetByID(id string) (*models.UsuarioResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apierrors.NewBadRequest("'%s' no es un identificador válido", id)
	}
	usuario, err := s.usuarios.GetByID(uid)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, apierrors.NewNotFound("usuario", id)
	}
	resp := usuario.ToResponse()
	return &resp, nil
}

func (s *UsuarioService) Create(req models.CrearUsuarioRequest) (*models.UsuarioResponse, error) {
	if err := s.validator.ValidateCreate(req); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	usuario := models.Usuario{
		ID:             uuid.New(),
		NombreCompleto: req.NombreCompleto,
		Login:          req.Login,
		PasswordHash:   string(hash),
		Rol:            req.Rol,
		Activo:         true,
	}
	if err := s.usuarios.Create(&usuario); err != nil {
		return nil, err
	}
	resp := usuario.ToResponse()
	return &resp, nil
}

func (s *UsuarioService) Update(id string, req models.ActualizarUsuarioRequest) (*models.UsuarioResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apierrors.NewBadRequest("'%s' no es un identificador válido", id)
	}

	usuario, err := s.validator.ValidateUpdate(uid, req)
	if err != nil {
		return nil, err
	}

	if req.NombreCompleto != nil {
		usuario.NombreCompleto = *req.NombreCompleto
	}
	if req.Login != nil {
		usuario.Login = *req.Login
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		usuario.PasswordHash = string(hash)
	}
	if req.Rol != nil {
		usuario.Rol = *req.Rol
	}
	if req.Activo != nil {
		usuario.Activo = *req.Activo
	}

	if err := s.usuarios.Update(usuario); err != nil {
		return nil, err
	}
	resp := usuario.ToResponse()
	return &resp, nil
}

func (s *UsuarioService) Delete(id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return apierrors.NewBadRequest("'%s' no es un identificador válido", id)
	}
	if err := s.validator.ValidateDelete(uid); err != nil {
		return err
	}
	removed, err := s.usuarios.Delete(uid)
	if err != nil {
		return err
	}
	if !removed {
		return apierrors.NewNotFound("usuario", id)
	}
	return nil
}
