package repositories

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hotel-reservas/models"
)

type UsuarioRepository interface {
	GetAll() ([]models.Usuario, error)
	GetByID(id uuid.UUID) (*models.Usuario, error)
	GetByLogin(login string) (*models.Usuario, error)
	Create(usuario *models.Usuario) error
	Update(usuario *models.Usuario) error
	Delete(id uuid.UUID) (bool, error)
}

type usuarioRepository struct {
	db *gorm.DB
}

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository {
	return &usuarioRepository{db: db}
}

func (r *usuarioRepository) GetAll() ([]models.Usuario, error) {
	var usuarios []models.Usuario
	err := r.db.Order("login ASC").Find(&usuarios).Error
	return usuarios, err
}

func (r *usuarioRepository) GetByID(id uuid.UUID) (*models.Usuario, error) {
	var usuario models.Usuario
	err := r.db.First(&usuario, "id = ?", id).Error
	if absent, err := notFoundAsNil(err); absent || err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *usuarioRepository) GetByLogin(login string) (*models.Usuario, error) {
	var usuario models.Usuario
	err := r.db.First(&usuario, "login = ?", login).Error
	if absent, err := notFoundAsNil(err); absent || err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *usuarioRepository) Create(usuario *models.Usuario) error {
	return translateError(r.db.Create(usuario).Error)
}

func (r *usuarioRepository) Update(usuario *models.Usuario) error {
	return translateError(r.db.Save(usuario).Error)
}

func (r *usuarioRepository) Delete(id uuid.UUID) (bool, error) {
	res := r.db.Delete(&models.Usuario{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}
