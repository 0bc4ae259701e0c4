package repositories

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hotel-reservas/models"
)

// ClienteRepository es el contrato de almacenamiento para clientes.
// GetByID y GetByEmail devuelven (nil, nil) cuando la fila no existe.
type ClienteRepository interface {
	GetAll() ([]models.Cliente, error)
	GetByID(id uuid.UUID) (*models.Cliente, error)
	GetByEmail(email string) (*models.Cliente, error)
	ExistsByID(id uuid.UUID) (bool, error)
	Create(cliente *models.Cliente) error
	Update(cliente *models.Cliente) error
	Delete(id uuid.UUID) (bool, error)
}

type clienteRepository struct {
	db *gorm.DB
}

func NewClienteRepository(db *gorm.DB) ClienteRepository {
	return &clienteRepository{db: db}
}

func (r *clienteRepository) GetAll() ([]models.Cliente, error) {
	var clientes []models.Cliente
	err := r.db.Order("created_at DESC").Find(&clientes).Error
	return clientes, err
}

func (r *clienteRepository) GetByID(id uuid.UUID) (*models.Cliente, error) {
	var cliente models.Cliente
	err := r.db.First(&cliente, "id = ?", id).Error
	if absent, err := notFoundAsNil(err); absent || err != nil {
		return nil, err
	}
	return &cliente, nil
}

func (r *clienteRepository) GetByEmail(email string) (*models.Cliente, error) {
	var cliente models.Cliente
	err := r.db.First(&cliente, "email = ?", email).Error
	if absent, err := notFoundAsNil(err); absent || err != nil {
		return nil, err
	}
	return &cliente, nil
}

func (r *clienteRepository) ExistsByID(id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Cliente{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *clienteRepository) Create(cliente *models.Cliente) error {
	return translateError(r.db.Create(cliente).Error)
}

func (r *clienteRepository) Update(cliente *models.Cliente) error {
	return translateError(r.db.Save(cliente).Error)
}

func (r *clienteRepository) Delete(id uuid.UUID) (bool, error) {
	res := r.db.Delete(&models.Cliente{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
