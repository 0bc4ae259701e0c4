package repositories

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hotel-reservas/models"
)

type DetalleReservaRepository interface {
	GetAll() ([]models.DetalleReserva, error)
	GetByID(id uuid.UUID) (*models.DetalleReserva, error)
	GetByReservaID(reservaID uuid.UUID) ([]models.DetalleReserva, error)
	ExistsByHabitacionID(habitacionID uuid.UUID) (bool, error)
	ExistsByHuespedID(huespedID uuid.UUID) (bool, error)
	Create(detalle *models.DetalleReserva) error
	Update(detalle *models.DetalleReserva) error
	Delete(id uuid.UUID) (bool, error)
}

type detalleReservaRepository struct {
	db *gorm.DB
}

func NewDetalleReservaRepository(db *gorm.DB) DetalleReservaRepository {
	return &detalleReservaRepository{db: db}
}

func (r *detalleReservaRepository) GetAll() ([]models.DetalleReserva, error) {
	var detalles []models.DetalleReserva
	err := r.db.
		Preload("Habitacion").
		Preload("Huesped").
		Find(&detalles).Error
	return detalles, err
}

func (r *detalleReservaRepository) GetByID(id uuid.UUID) (*models.DetalleReserva, error) {
	var detalle models.DetalleReserva
	err := r.db.
		Preload("Habitacion").
		Preload("Huesped").
		First(&detalle, "id = ?", id).Error
	if absent, err := notFoundAsNil(err); absent || err != nil {
		return nil, err
	}
	return &detalle, nil
}

func (r *detalleReservaRepository) GetByReservaID(reservaID uuid.UUID) ([]models.DetalleReserva, error) {
	var detalles []models.DetalleReserva
	err := r.db.
		Preload("Habitacion").
		Preload("Huesped").
		Where("reserva_id = ?", reservaID).
		Find(&detalles).Error
	return detalles, err
}

func (r *detalleReservaRepository) ExistsByHabitacionID(habitacionID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.DetalleReserva{}).Where("habitacion_id = ?", habitacionID).Count(&count).Error
	return count > 0, err
}

func (r *detalleReservaRepository) ExistsByHuespedID(huespedID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.DetalleReserva{}).Where("huesped_id = ?", huespedID).Count(&count).Error
	return count > 0, err
}

func (r *detalleReservaRepository) Create(detalle *models.DetalleReserva) error {
	return translateError(r.db.Create(detalle).Error)
}

func (r *detalleReservaRepository) Update(detalle *models.DetalleReserva) error {
	return translateError(r.db.Omit("Habitacion", "Huesped").Save(detalle).Error)
}

func (r *detalleReservaRepository) Delete(id uuid.UUID) (bool, error) {
	res := r.db.Delete(&models.DetalleReserva{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
