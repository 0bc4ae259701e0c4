package repositories

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hotel-reservas/models"
)

type TipoHabitacionRepository interface {
	GetAll() ([]models.TipoHabitacion, error)
	GetByID(id uuid.UUID) (*models.TipoHabitacion, error)
	GetByNombre(nombre string) (*models.TipoHabitacion, error)
	ExistsByID(id uuid.UUID) (bool, error)
	Create(tipo *models.TipoHabitacion) error
	Update(tipo *models.TipoHabitacion) error
	Delete(id uuid.UUID) (bool, error)
}

type tipoHabitacionRepository struct {
	db *gorm.DB
}

func NewTipoHabitacionRepository(db *gorm.DB) TipoHabitacionRepository {
	return &tipoHabitacionRepository{db: db}
}

func (r *tipoHabitacionRepository) GetAll() ([]models.TipoHabitacion, error) {
	var tipos []models.TipoHabitacion
	err := r.db.Order("nombre ASC").Find(&tipos).Error
	return tipos, err
}

func (r *tipoHabitacionRepository) GetByID(id uuid.UUID) (*models.TipoHabitacion, error) {
	var tipo models.TipoHabitacion
	err := r.db.First(&tipo, "id = ?", id).Error
	if absent, err := notFoundAsNil(err); absent || err != nil {
		return nil, err
	}
	return &tipo, nil
}

func (r *tipoHabitacionRepository) GetByNombre(nombre string) (*models.TipoHabitacion, error) {
	var tipo models.TipoHabitacion
	err := r.db.First(&tipo, "nombre = ?", nombre).Error
	if absent, err := notFoundAsNil(err); absent || err != nil {
		return nil, err
	}
	return &tipo, nil
}

func (r *tipoHabitacionRepository) ExistsByID(id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.TipoHabitacion{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *tipoHabitacionRepository) Create(tipo *models.TipoHabitacion) error {
	return translateError(r.db.Create(tipo).Error)
}

func (r *tipoHabitacionRepository) Update(tipo *models.TipoHabitacion) error {
	return translateError(r.db.Save(tipo).Error)
}

func (r *tipoHabitacionRepository) Delete(id uuid.UUID) (bool, error) {
	res := r.db.Delete(&models.TipoHabitacion{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
