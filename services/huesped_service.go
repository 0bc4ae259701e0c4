package services

import (
	"github.com/google/uuid"

	"hotel-reservas/apierrors"
	"hotel-reservas/models"
	"hotel-reservas/repositories"
	"hotel-reservas/validators"
)

type HuespedService struct {
	huespedes repositories.HuespedRepository
	validator *validators.HuespedValidator
}

func NewHuespedService(huespedes repositories.HuespedRepository, validator *validators.HuespedValidator) *HuespedService {
	return &HuespedService{huespedes: huespedes, validator: validator}
}

func (s *HuespedService) List() ([]models.HuespedResponse, error) {
	huespedes, err := s.huespedes.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]models.HuespedResponse, 0, len(huespedes))
	for _, h := range huespedes {
		out = append(out, h.ToResponse())
	}
	return out, nil
}

func (s *HuespedService) GetByID(id string) (*models.HuespedResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apierrors.NewBadRequest("'%s' no es un identificador válido", id)
	}
	huesped, err := s.huespedes.GetByID(uid)
	if err != nil {
		return nil, err
	}
	if huesped == nil {
		return nil, apierrors.NewNotFound("huésped", id)
	}
	resp := huesped.ToResponse()
	return &resp, nil
}

func (s *HuespedService) GetByDocumento(documento string) (*models.HuespedResponse, error) {
	huesped, err := s.huespedes.GetByDocumento(documento)
	if err != nil {
		return nil, err
	}
	if huesped == nil {
		return nil, apierrors.NewNotFound("huésped con documento", documento)
	}
	resp := huesped.ToResponse()
	return &resp, nil
}

func (s *HuespedService) Create(req models.CrearHuespedRequest) (*models.HuespedResponse, error) {
	if err := s.validator.ValidateCreate(req); err != nil {
		return nil, err
	}

	huesped := models.Huesped{
		ID:              uuid.New(),
		Nombres:         req.Nombres,
		Apellidos:       req.Apellidos,
		Documento:       req.Documento,
		Telefono:        req.Telefono,
		Email:           req.Email,
		FechaNacimiento: req.FechaNacimiento,
		Activo:          true,
	}
	if err := s.huespedes.Create(&huesped); err != nil {
		return nil, err
	}
	resp := huesped.ToResponse()
	return &resp, nil
}

func (s *HuespedService) Update(id string, req models.ActualizarHuespedRequest) (*models.HuespedResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apierrors.NewBadRequest("'%s' no es un identificador válido", id)
	}

	huesped, err := s.validator.ValidateUpdate(uid, req)
	if err != nil {
		return nil, err
	}

	if req.Nombres != nil {
		huesped.Nombres = *req.Nombres
	}
	if req.Apellidos != nil {
		huesped.Apellidos = *req.Apellidos
	}
	if req.Documento != nil {
		huesped.Documento = *req.Documento
	}
	if req.Telefono != nil {
		huesped.Telefono = *req.Telefono
	}
	if req.Email != nil {
		huesped.Email = *req.Email
	}
	if req.FechaNacimiento != nil {
		huesped.FechaNacimiento = req.FechaNacimiento
	}
	if req.Activo != nil {
		huesped.Activo = *req.Activo
	}

	if err := s.huespedes.Update(huesped); err != nil {
		return nil, err
	}
	resp := huesped.ToResponse()
	return &resp, nil
}

func (s *HuespedService) Delete(id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return apierrors.NewBadRequest("'%s' no es un identificador válido", id)
	}
	if err := s.validator.ValidateDelete(uid); err != nil {
		return err
	}
	removed, err := s.huespedes.Delete(uid)
	if err != nil {
		return err
	}
	if !removed {
		return apierrors.NewNotFound("huésped", id)
	}
	return nil
}
