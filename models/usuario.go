package models

import (
	"time"

	"github.com/google/uuid"
)

type Usuario struct {
	ID uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`

	NombreCompleto string `gorm:"column:nombre_completo;size:120" json:"nombreCompleto"`
	Login          string `gorm:"column:login;size:60;uniqueIndex" json:"login"`
	PasswordHash   string `gorm:"column:password_hash;size:120" json:"-"`
	Rol            string `gorm:"column:rol;size:30" json:"rol"`
	Activo         bool   `gorm:"column:activo;default:true" json:"activo"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CrearUsuarioRequest struct {
	NombreCompleto string `json:"nombreCompleto"`
	Login          string `json:"login"`
	Password       string `json:"password"`
	Rol            string `json:"rol"`
}

type ActualizarUsuarioRequest struct {
	NombreCompleto *string `json:"nombreCompleto,omitempty"`
	Login          *string `json:"login,omitempty"`
	Password       *string `json:"password,omitempty"`
	Rol            *string `json:"rol,omitempty"`
	Activo         *bool   `json:"activo,omitempty"`
}

type UsuarioResponse struct {
	ID             string    `json:"id"`
	NombreCompleto string    `json:"nombreCompleto"`
	Login          string    `json:"login"`
	Rol            string    `json:"rol"`
	Activo         bool      `json:"activo"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (u Usuario) ToResponse() UsuarioResponse {
	return UsuarioResponse{
		ID:             u.ID.String(),
		NombreCompleto: u.NombreCompleto,
		Login:          u.Login,
		Rol:            u.Rol,
		Activo:         u.Activo,
		CreatedAt:      u.CreatedAt,
	}
}

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}
