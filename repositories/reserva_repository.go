package repositories

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hotel-reservas/models"
)

type ReservaRepository interface {
	GetAll() ([]models.Reserva, error)
	GetByID(id uuid.UUID) (*models.Reserva, error)
	GetByClienteID(clienteID uuid.UUID) ([]models.Reserva, error)
	ExistsByID(id uuid.UUID) (bool, error)
	ExistsByClienteID(clienteID uuid.UUID) (bool, error)
	Create(reserva *models.Reserva) error
	Update(reserva *models.Reserva) error
	Delete(id uuid.UUID) (bool, error)
}

type reservaRepository struct {
	db *gorm.DB
}

func NewReservaRepository(db *gorm.DB) ReservaRepository {
	return &reservaRepository{db: db}
}

func (r *reservaRepository) GetAll() ([]models.Reserva, error) {
	var reservas []models.Reserva
	err := r.db.
		Preload("Detalles").
		Order("fecha_creacion DESC").
		Find(&reservas).Error
	return reservas, err
}

func (r *reservaRepository) GetByID(id uuid.UUID) (*models.Reserva, error) {
	var reserva models.Reserva
	err := r.db.
		Preload("Detalles.Habitacion").
		Preload("Detalles.Huesped").
		First(&reserva, "id = ?", id).Error
	if absent, err := notFoundAsNil(err); absent || err != nil {
		return nil, err
	}
	return &reserva, nil
}

func (r *reservaRepository) GetByClienteID(clienteID uuid.UUID) ([]models.Reserva, error) {
	var reservas []models.Reserva
	err := r.db.
		Preload("Detalles").
		Where("cliente_id = ?", clienteID).
		Order("fecha_creacion DESC").
		Find(&reservas).Error
	return reservas, err
}

func (r *reservaRepository) ExistsByID(id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Reserva{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *reservaRepository) ExistsByClienteID(clienteID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Reserva{}).Where("cliente_id = ?", clienteID).Count(&count).Error
	return count > 0, err
}

func (r *reservaRepository) Create(reserva *models.Reserva) error {
	return translateError(r.db.Create(reserva).Error)
}

func (r *reservaRepository) Update(reserva *models.Reserva) error {
	// Save sin tocar la colección de detalles; los detalles tienen su
	// propio repositorio.
	return translateError(r.db.Omit("Detalles").Save(reserva).Error)
}

// Delete elimina la reserva y sus detalles en la misma transacción,
// reproduciendo el cascade declarativo del esquema.
func (r *reservaRepository) Delete(id uuid.UUID) (bool, error) {
	var removed int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.DetalleReserva{}, "reserva_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Reserva{}, "id = ?", id)
		removed = res.RowsAffected
		return res.Error
	})
	return removed > 0, err
}
