package services

import (
	"github.com/google/uuid"

	"hotel-reservas/apierrors"
	"hotel-reservas/models"
	"hotel-reservas/repositories"
	"hotel-reservas/validators"
)

type DetalleReservaService struct {
	detalles  repositories.DetalleReservaRepository
	validator *validators.DetalleReservaValidator
}

func NewDetalleReservaService(detalles repositories.DetalleReservaRepository, validator *validators.DetalleReservaValidator) *DetalleReservaService {
	return &DetalleReservaService{detalles: detalles, validator: validator}
}

func (s *DetalleReservaService) List() ([]models.DetalleReservaResponse, error) {
	detalles, err := s.detalles.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]models.DetalleReservaResponse, 0, len(detalles))
	for _, d := range detalles {
		out = append(out, d.ToResponse())
	}
	return out, nil
}

func (s *DetalleReservaService) GetByID(id string) (*models.DetalleReservaResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apierrors.NewBadRequest("'%s' no es un identificador válido", id)
	}
	detalle, err := s.detalles.GetByID(uid)
	if err != nil {
		return nil, err
	}
	if detalle == nil {
		return nil, apierrors.NewNotFound("detalle de reserva", id)
	}
	resp := detalle.ToResponse()
	return &resp, nil
}

func (s *DetalleReservaService) ListByReserva(reservaID string) ([]models.DetalleReservaResponse, error) {
	uid, err := uuid.Parse(reservaID)
	if err != nil {
		return nil, apierrors.NewBadRequest("'%s' no es un identificador válido", reservaID)
	}
	detalles, err := s.detalles.GetByReservaID(uid)
	if err != nil {
		return nil, err
	}
	out := make([]models.DetalleReservaResponse, 0, len(detalles))
	for _, d := range detalles {
		out = append(out, d.ToResponse())
	}
	return out, nil
}

func (s *DetalleReservaService) Create(req models.CrearDetalleReservaRequest) (*models.DetalleReservaResponse, error) {
	if err := s.validator.ValidateCreate(req); err != nil {
		return nil, err
	}

	detalle := models.DetalleReserva{
		ID:               uuid.New(),
		ReservaID:        uuid.MustParse(req.ReservaID),
		HabitacionID:     uuid.MustParse(req.HabitacionID),
		HuespedID:        uuid.MustParse(req.HuespedID),
		FechaIngreso:     req.FechaIngreso,
		FechaSalida:      req.FechaSalida,
		Precio:           req.Precio,
		CantidadPersonas: req.CantidadPersonas,
	}
	if err := s.detalles.Create(&detalle); err != nil {
		return nil, err
	}

	// Se recarga para poblar los campos de despliegue (número de
	// habitación, nombre del huésped) desde las relaciones.
	persistido, err := s.detalles.GetByID(detalle.ID)
	if err != nil {
		return nil, err
	}
	if persistido == nil {
		return nil, apierrors.NewNotFound("detalle de reserva", detalle.ID)
	}
	resp := persistido.ToResponse()
	return &resp, nil
}

func (s *DetalleReservaService) Update(id string, req models.ActualizarDetalleReservaRequest) (*models.DetalleReservaResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apierrors.NewBadRequest("'%s' no es un identificador válido", id)
	}

	detalle, err := s.validator.ValidateUpdate(uid, req)
	if err != nil {
		return nil, err
	}

	if req.ReservaID != nil {
		detalle.ReservaID = uuid.MustParse(*req.ReservaID)
	}
	if req.HabitacionID != nil {
		detalle.HabitacionID = uuid.MustParse(*req.HabitacionID)
		detalle.Habitacion = nil
	}
	if req.HuespedID != nil {
		detalle.HuespedID = uuid.MustParse(*req.HuespedID)
		detalle.Huesped = nil
	}
	if req.FechaIngreso != nil {
		detalle.FechaIngreso = req.FechaIngreso
	}
	if req.FechaSalida != nil {
		detalle.FechaSalida = req.FechaSalida
	}
	if req.Precio != nil {
		detalle.Precio = *req.Precio
	}
	if req.CantidadPersonas != nil {
		detalle.CantidadPersonas = *req.CantidadPersonas
	}

	if err := s.detalles.Update(detalle); err != nil {
		return nil, err
	}

	persistido, err := s.detalles.GetByID(uid)
	if err != nil {
		return nil, err
	}
	if persistido == nil {
		return nil, apierrors.NewNotFound("detalle de reserva", id)
	}
	resp := persistido.ToResponse()
	return &resp, nil
}

func (s *DetalleReservaService) Delete(id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return apierrors.NewBadRequest("'%s' no es un identificador válido", id)
	}
	if err := s.validator.ValidateDelete(uid); err != nil {
		return err
	}
	removed, err := s.detalles.Delete(uid)
	if err != nil {
		return err
	}
	if !removed {
		return apierrors.NewNotFound("detalle de reserva", id)
	}
	return nil
}
