package services

import (
	"github.com/google/uuid"

	"hotel-reservas/apierrors"
	"hotel-reservas/models"
	"hotel-reservas/repositories"
	"hotel-reservas/validators"
)

type HabitacionService struct {
	habitaciones repositories.HabitacionRepository
	validator    *validators.HabitacionValidator
}

func NewHabitacionService(habitaciones repositories.HabitacionRepository, validator *validators.HabitacionValidator) *HabitacionService {
	return &HabitacionService{habitaciones: habitaciones, validator: validator}
}

func (s *HabitacionService) List() ([]models.HabitacionResponse, error) {
	habitaciones, err := s.habitaciones.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]models.HabitacionResponse, 0, len(habitaciones))
	for _, h := range habitaciones {
		out = append(out, h.ToResponse())
	}
	return out, nil
}

func (s *HabitacionService) GetByID(id string) (*models.HabitacionResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apierrors.NewBadRequest("'%s' no es un identificador válido", id)
	}
	habitacion, err := s.habitaciones.GetByID(uid)
	if err != nil {
		return nil, err
	}
	if habitacion == nil {
		return nil, apierrors.NewNotFound("habitación", id)
	}
	resp := habitacion.ToResponse()
	return &resp, nil
}

func (s *HabitacionService) Create(req models.CrearHabitacionRequest) (*models.HabitacionResponse, error) {
	if err := s.validator.ValidateCreate(req); err != nil {
		return nil, err
	}

	estado := models.EstadoHabitacion(req.Estado)
	if req.Estado == "" {
		estado = models.HabitacionLibre
	}

	habitacion := models.Habitacion{
		ID:               uuid.New(),
		TipoHabitacionID: uuid.MustParse(req.TipoHabitacionID),
		Numero:           req.Numero,
		Piso:             req.Piso,
		Estado:           estado,
		Activa:           true,
	}
	if err := s.habitaciones.Create(&habitacion); err != nil {
		return nil, err
	}

	persistida, err := s.habitaciones.GetByID(habitacion.ID)
	if err != nil {
		return nil, err
	}
	if persistida == nil {
		return nil, apierrors.NewNotFound("habitación", habitacion.ID)
	}
	resp := persistida.ToResponse()
	return &resp, nil
}

func (s *HabitacionService) Update(id string, req models.ActualizarHabitacionRequest) (*models.HabitacionResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apierrors.NewBadRequest("'%s' no es un identificador válido", id)
	}

	habitacion, err := s.validator.ValidateUpdate(uid, req)
	if err != nil {
		return nil, err
	}

	if req.TipoHabitacionID != nil {
		habitacion.TipoHabitacionID = uuid.MustParse(*req.TipoHabitacionID)
		habitacion.TipoHabitacion = nil
	}
	if req.Numero != nil {
		habitacion.Numero = *req.Numero
	}
	if req.Piso != nil {
		habitacion.Piso = *req.Piso
	}
	if req.Estado != nil {
		habitacion.Estado = models.EstadoHabitacion(*req.Estado)
	}
	if req.Activa != nil {
		habitacion.Activa = *req.Activa
	}

	if err := s.habitaciones.Update(habitacion); err != nil {
		return nil, err
	}

	persistida, err := s.habitaciones.GetByID(uid)
	if err != nil {
		return nil, err
	}
	if persistida == nil {
		return nil, apierrors.NewNotFound("habitación", id)
	}
	resp := persistida.ToResponse()
	return &resp, nil
}

func (s *HabitacionService) Delete(id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return apierrors.NewBadRequest("'%s' no es un identificador válido", id)
	}
	if err := s.validator.ValidateDelete(uid); err != nil {
		return err
	}
	removed, err := s.habitaciones.Delete(uid)
	if err != nil {
		return err
	}
	if !removed {
		return apierrors.NewNotFound("habitación", id)
	}
	return nil
}
