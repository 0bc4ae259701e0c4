package services

import (
	"time"

	"github.com/google/uuid"

	"hotel-reservas/apierrors"
	"hotel-reservas/models"
	"hotel-reservas/repositories"
	"hotel-reservas/validators"
)

type ClienteService struct {
	clientes  repositories.ClienteRepository
	validator *validators.ClienteValidator
}

func NewClienteService(clientes repositories.ClienteRepository, validator *validators.ClienteValidator) *ClienteService {
	return &ClienteService{clientes: clientes, validator: validator}
}

func (s *ClienteService) List() ([]models.ClienteResponse, error) {
	clientes, err := s.clientes.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]models.ClienteResponse, 0, len(clientes))
	for _, c := range clientes {
		out = append(out, c.ToResponse())
	}
	return out, nil
}

func (s *ClienteService) GetByID(id string) (*models.ClienteResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apierrors.NewBadRequest("'%s' no es un identificador válido", id)
	}
	cliente, err := s.clientes.GetByID(uid)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, apierrors.NewNotFound("cliente", id)
	}
	resp := cliente.ToResponse()
	return &resp, nil
}

func (s *ClienteService) Create(req models.CrearClienteRequest) (*models.ClienteResponse, error) {
	if err := s.validator.ValidateCreate(req); err != nil {
		return nil, err
	}

	cliente := models.Cliente{
		ID:          uuid.New(),
		RazonSocial: req.RazonSocial,
		Nit:         req.Nit,
		Email:       req.Email,
		Activo:      true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := s.clientes.Create(&cliente); err != nil {
		return nil, err
	}

	// La respuesta se arma desde el registro persistido: id y marcas de
	// tiempo son siempre los autoritativos.
	resp := cliente.ToResponse()
	return &resp, nil
}

func (s *ClienteService) Update(id string, req models.ActualizarClienteRequest) (*models.ClienteResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apierrors.NewBadRequest("'%s' no es un identificador válido", id)
	}

	cliente, err := s.validator.ValidateUpdate(uid, req)
	if err != nil {
		return nil, err
	}

	// Solo los campos presentes en la solicitud pisan el registro cargado.
	if req.RazonSocial != nil {
		cliente.RazonSocial = *req.RazonSocial
	}
	if req.Nit != nil {
		cliente.Nit = *req.Nit
	}
	if req.Email != nil {
		cliente.Email = *req.Email
	}
	if req.Activo != nil {
		cliente.Activo = *req.Activo
	}
	cliente.UpdatedAt = time.Now()

	if err := s.clientes.Update(cliente); err != nil {
		return nil, err
	}
	resp := cliente.ToResponse()
	return &resp, nil
}

func (s *ClienteService) Delete(id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return apierrors.NewBadRequest("'%s' no es un identificador válido", id)
	}
	if err := s.validator.ValidateDelete(uid); err != nil {
		return err
	}
	removed, err := s.clientes.Delete(uid)
	if err != nil {
		return err
	}
	// La validación confirmó existencia; si aun así no se borró nada,
	// otro borrador ganó la carrera.
	if !removed {
		return apierrors.NewNotFound("cliente", id)
	}
	return nil
}
