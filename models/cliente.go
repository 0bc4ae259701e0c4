package models

import (
	"time"

	"github.com/google/uuid"
)

type Cliente struct {
	ID uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`

	RazonSocial string `gorm:"column:razon_social;size:20" json:"razonSocial"`
	Nit         string `gorm:"column:nit;size:20" json:"nit"`
	Email       string `gorm:"column:email;size:120;uniqueIndex" json:"email"`
	Activo      bool   `gorm:"column:activo;default:true" json:"activo"`

	CreadoPorID      *uuid.UUID `gorm:"type:char(36);column:creado_por_id" json:"creadoPorId,omitempty"`
	ActualizadoPorID *uuid.UUID `gorm:"type:char(36);column:actualizado_por_id" json:"actualizadoPorId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	CreadoPor      *Usuario `gorm:"foreignKey:CreadoPorID;constraint:OnDelete:SET NULL" json:"-"`
	ActualizadoPor *Usuario `gorm:"foreignKey:ActualizadoPorID;constraint:OnDelete:SET NULL" json:"-"`
}

type CrearClienteRequest struct {
	RazonSocial string `json:"razonSocial"`
	Nit         string `json:"nit"`
	Email       string `json:"email"`
}

// ActualizarClienteRequest usa punteros: nil significa "sin cambio",
// un puntero presente (incluso a cadena vacía) significa "asignar".
type ActualizarClienteRequest struct {
	RazonSocial *string `json:"razonSocial,omitempty"`
	Nit         *string `json:"nit,omitempty"`
	Email       *string `json:"email,omitempty"`
	Activo      *bool   `json:"activo,omitempty"`
}

type ClienteResponse struct {
	ID          string    `json:"id"`
	RazonSocial string    `json:"razonSocial"`
	Nit         string    `json:"nit"`
	Email       string    `json:"email"`
	Activo      bool      `json:"activo"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (c Cliente) ToResponse() ClienteResponse {
	return ClienteResponse{
		ID:          c.ID.String(),
		RazonSocial: c.RazonSocial,
		Nit:         c.Nit,
		Email:       c.Email,
		Activo:      c.Activo,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
