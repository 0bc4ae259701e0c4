package repositories

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hotel-reservas/models"
)

type HabitacionRepository interface {
	GetAll() ([]models.Habitacion, error)
	GetByID(id uuid.UUID) (*models.Habitacion, error)
	GetByNumero(numero string) (*models.Habitacion, error)
	ExistsByID(id uuid.UUID) (bool, error)
	ExistsByTipoID(tipoID uuid.UUID) (bool, error)
	Create(habitacion *models.Habitacion) error
	Update(habitacion *models.Habitacion) error
	Delete(id uuid.UUID) (bool, error)
}

type habitacionRepository struct {
	db *gorm.DB
}

func NewHabitacionRepository(db *gorm.DB) HabitacionRepository {
	return &habitacionRepository{db: db}
}

func (r *habitacionRepository) GetAll() ([]models.Habitacion, error) {
	var habitaciones []models.Habitacion
	err := r.db.
		Preload("TipoHabitacion").
		Order("numero ASC").
		Find(&habitaciones).Error
	return habitaciones, err
}

func (r *habitacionRepository) GetByID(id uuid.UUID) (*models.Habitacion, error) {
	var habitacion models.Habitacion
	err := r.db.Preload("TipoHabitacion").First(&habitacion, "id = ?", id).Error
	if absent, err := notFoundAsNil(err); absent || err != nil {
		return nil, err
	}
	return &habitacion, nil
}

func (r *habitacionRepository) GetByNumero(numero string) (*models.Habitacion, error) {
	var habitacion models.Habitacion
	err := r.db.First(&habitacion, "numero = ?", numero).Error
	if absent, err := notFoundAsNil(err); absent || err != nil {
		return nil, err
	}
	return &habitacion, nil
}

func (r *habitacionRepository) ExistsByID(id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Habitacion{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *habitacionRepository) ExistsByTipoID(tipoID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Habitacion{}).Where("tipo_habitacion_id = ?", tipoID).Count(&count).Error
	return count > 0, err
}

func (r *habitacionRepository) Create(habitacion *models.Habitacion) error {
	return translateError(r.db.Create(habitacion).Error)
}

func (r *habitacionRepository) Update(habitacion *models.Habitacion) error {
	return translateError(r.db.Omit("TipoHabitacion").Save(habitacion).Error)
}

func (r *habitacionRepository) Delete(id uuid.UUID) (bool, error) {
	res := r.db.Delete(&models.Habitacion{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
