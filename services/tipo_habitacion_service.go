package services

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"hotel-reservas/apierrors"
	"hotel-reservas/models"
	"hotel-reservas/repositories"
	"hotel-reservas/validators"
)

type TipoHabitacionService struct {
	tipos     repositories.TipoHabitacionRepository
	validator *validators.TipoHabitacionValidator
}

func NewTipoHabitacionService(tipos repositories.TipoHabitacionRepository, validator *validators.TipoHabitacionValidator) *TipoHabitacionService {
	return &TipoHabitacionService{tipos: tipos, validator: validator}
}

func (s *TipoHabitacionService) List() ([]models.TipoHabitacionResponse, error) {
	tipos, err := s.tipos.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]models.TipoHabitacionResponse, 0, len(tipos))
	for _, t := range tipos {
		out = append(out, t.ToResponse())
	}
	return out, nil
}

func (s *TipoHabitacionService) GetByID(id string) (*models.TipoHabitacionResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apierrors.NewBadRequest("'%s' no es un identificador válido", id)
	}
	tipo, err := s.tipos.GetByID(uid)
	if err != nil {
		return nil, err
	}
	if tipo == nil {
		return nil, apierrors.NewNotFound("tipo de habitación", id)
	}
	resp := tipo.ToResponse()
	return &resp, nil
}

func (s *TipoHabitacionService) Create(req models.CrearTipoHabitacionRequest) (*models.TipoHabitacionResponse, error) {
	if err := s.validator.ValidateCreate(req); err != nil {
		return nil, err
	}

	tipo := models.TipoHabitacion{
		ID:              uuid.New(),
		Nombre:          req.Nombre,
		Descripcion:     req.Descripcion,
		CapacidadMaxima: req.CapacidadMaxima,
		PrecioBase:      req.PrecioBase,
	}
	if len(req.Amenidades) > 0 {
		raw, err := json.Marshal(req.Amenidades)
		if err != nil {
			return nil, err
		}
		tipo.Amenidades = datatypes.JSON(raw)
	}

	if err := s.tipos.Create(&tipo); err != nil {
		return nil, err
	}
	resp := tipo.ToResponse()
	return &resp, nil
}

func (s *TipoHabitacionService) Update(id string, req models.ActualizarTipoHabitacionRequest) (*models.TipoHabitacionResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apierrors.NewBadRequest("'%s' no es un identificador válido", id)
	}

	tipo, err := s.validator.ValidateUpdate(uid, req)
	if err != nil {
		return nil, err
	}

	if req.Nombre != nil {
		tipo.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		tipo.Descripcion = *req.Descripcion
	}
	if req.CapacidadMaxima != nil {
		tipo.CapacidadMaxima = *req.CapacidadMaxima
	}
	if req.PrecioBase != nil {
		tipo.PrecioBase = *req.PrecioBase
	}
	if req.Amenidades != nil {
		raw, err := json.Marshal(*req.Amenidades)
		if err != nil {
			return nil, err
		}
		tipo.Amenidades = datatypes.JSON(raw)
	}

	if err := s.tipos.Update(tipo); err != nil {
		return nil, err
	}
	resp := tipo.ToResponse()
	return &resp, nil
}

func (s *TipoHabitacionService) Delete(id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return apierrors.NewBadRequest("'%s' no es un identificador válido", id)
	}
	if err := s.validator.ValidateDelete(uid); err != nil {
		return err
	}
	removed, err := s.tipos.Delete(uid)
	if err != nil {
		return err
	}
	if !removed {
		return apierrors.NewNotFound("tipo de habitación", id)
	}
	return nil
}
