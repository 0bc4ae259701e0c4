package services

import (
	"time"

	"github.com/google/uuid"

	"hotel-reservas/apierrors"
	"hotel-reservas/models"
	"hotel-reservas/repositories"
	"hotel-reservas/validators"
)

type ReservaService struct {
	reservas  repositories.ReservaRepository
	validator *validators.ReservaValidator
}

func NewReservaService(reservas repositories.ReservaRepository, validator *validators.ReservaValidator) *ReservaService {
	return &ReservaService{reservas: reservas, validator: validator}
}

func (s *ReservaService) List() ([]models.ReservaResponse, error) {
	reservas, err := s.reservas.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]models.ReservaResponse, 0, len(reservas))
	for _, r := range reservas {
		out = append(out, r.ToResponse())
	}
	return out, nil
}

func (s *ReservaService) GetByID(id string) (*models.ReservaResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apierrors.NewBadRequest("'%s' no es un identificador válido", id)
	}
	reserva, err := s.reservas.GetByID(uid)
	if err != nil {
		return nil, err
	}
	if reserva == nil {
		return nil, apierrors.NewNotFound("reserva", id)
	}
	resp := reserva.ToResponse()
	return &resp, nil
}

func (s *ReservaService) ListByCliente(clienteID string) ([]models.ReservaResponse, error) {
	uid, err := uuid.Parse(clienteID)
	if err != nil {
		return nil, apierrors.NewBadRequest("'%s' no es un identificador válido", clienteID)
	}
	reservas, err := s.reservas.GetByClienteID(uid)
	if err != nil {
		return nil, err
	}
	out := make([]models.ReservaResponse, 0, len(reservas))
	for _, r := range reservas {
		out = append(out, r.ToResponse())
	}
	return out, nil
}

func (s *ReservaService) Create(req models.CrearReservaRequest) (*models.ReservaResponse, error) {
	if err := s.validator.ValidateCreate(req); err != nil {
		return nil, err
	}

	estado := models.EstadoReserva(req.Estado)
	if req.Estado == "" {
		estado = models.ReservaPendiente
	}

	reserva := models.Reserva{
		ID:            uuid.New(),
		ClienteID:     uuid.MustParse(req.ClienteID),
		Estado:        estado,
		MontoTotal:    req.MontoTotal,
		FechaCreacion: time.Now(),
	}
	if err := s.reservas.Create(&reserva); err != nil {
		return nil, err
	}
	resp := reserva.ToResponse()
	return &resp, nil
}

func (s *ReservaService) Update(id string, req models.ActualizarReservaRequest) (*models.ReservaResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, apierrors.NewBadRequest("'%s' no es un identificador válido", id)
	}

	reserva, err := s.validator.ValidateUpdate(uid, req)
	if err != nil {
		return nil, err
	}

	if req.ClienteID != nil {
		reserva.ClienteID = uuid.MustParse(*req.ClienteID)
	}
	if req.Estado != nil {
		reserva.Estado = models.EstadoReserva(*req.Estado)
	}
	if req.MontoTotal != nil {
		reserva.MontoTotal = *req.MontoTotal
	}

	if err := s.reservas.Update(reserva); err != nil {
		return nil, err
	}
	resp := reserva.ToResponse()
	return &resp, nil
}

func (s *ReservaService) Delete(id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return apierrors.NewBadRequest("'%s' no es un identificador válido", id)
	}
	if err := s.validator.ValidateDelete(uid); err != nil {
		return err
	}
	removed, err := s.reservas.Delete(uid)
	if err != nil {
		return err
	}
	if !removed {
		return apierrors.NewNotFound("reserva", id)
	}
	return nil
}
