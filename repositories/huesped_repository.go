package repositories

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hotel-reservas/models"
)

type HuespedRepository interface {
	GetAll() ([]models.Huesped, error)
	GetByID(id uuid.UUID) (*models.Huesped, error)
	GetByDocumento(documento string) (*models.Huesped, error)
	ExistsByID(id uuid.UUID) (bool, error)
	Create(huesped *models.Huesped) error
	Update(huesped *models.Huesped) error
	Delete(id uuid.UUID) (bool, error)
}

type huespedRepository struct {
	db *gorm.DB
}

func NewHuespedRepository(db *gorm.DB) HuespedRepository {
	return &huespedRepository{db: db}
}

func (r *huespedRepository) GetAll() ([]models.Huesped, error) {
	var huespedes []models.Huesped
	err := r.db.Order("apellidos ASC, nombres ASC").Find(&huespedes).Error
	return huespedes, err
}

func (r *huespedRepository) GetByID(id uuid.UUID) (*models.Huesped, error) {
	var huesped models.Huesped
	err := r.db.First(&huesped, "id = ?", id).Error
	if absent, err := notFoundAsNil(err); absent || err != nil {
		return nil, err
	}
	return &huesped, nil
}

func (r *huespedRepository) GetByDocumento(documento string) (*models.Huesped, error) {
	var huesped models.Huesped
	err := r.db.First(&huesped, "documento = ?", documento).Error
	if absent, err := notFoundAsNil(err); absent || err != nil {
		return nil, err
	}
	return &huesped, nil
}

func (r *huespedRepository) ExistsByID(id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Huesped{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *huespedRepository) Create(huesped *models.Huesped) error {
	return translateError(r.db.Create(huesped).Error)
}

func (r *huespedRepository) Update(huesped *models.Huesped) error {
	return translateError(r.db.Save(huesped).Error)
}

func (r *huespedRepository) Delete(id uuid.UUID) (bool, error) {
	res := r.db.Delete(&models.Huesped{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
