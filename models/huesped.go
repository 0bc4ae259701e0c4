package models

import (
	"time"

	"github.com/google/uuid"
)

type Huesped struct {
	ID uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`

	Nombres   string `gorm:"column:nombres;size:60" json:"nombres"`
	Apellidos string `gorm:"column:apellidos;size:60" json:"apellidos"`
	Documento string `gorm:"column:documento;size:30;index" json:"documento"`

	Telefono        string     `gorm:"column:telefono;size:20" json:"telefono,omitempty"`
	Email           string     `gorm:"column:email;size:120" json:"email,omitempty"`
	FechaNacimiento *time.Time `gorm:"column:fecha_nacimiento" json:"fechaNacimiento,omitempty"`
	Activo          bool       `gorm:"column:activo;default:true" json:"activo"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CrearHuespedRequest struct {
	Nombres         string     `json:"nombres"`
	Apellidos       string     `json:"apellidos"`
	Documento       string     `json:"documento"`
	Telefono        string     `json:"telefono,omitempty"`
	Email           string     `json:"email,omitempty"`
	FechaNacimiento *time.Time `json:"fechaNacimiento,omitempty"`
}

type ActualizarHuespedRequest struct {
	Nombres         *string    `json:"nombres,omitempty"`
	Apellidos       *string    `json:"apellidos,omitempty"`
	Documento       *string    `json:"documento,omitempty"`
	Telefono        *string    `json:"telefono,omitempty"`
	Email           *string    `json:"email,omitempty"`
	FechaNacimiento *time.Time `json:"fechaNacimiento,omitempty"`
	Activo          *bool      `json:"activo,omitempty"`
}

type HuespedResponse struct {
	ID              string     `json:"id"`
	Nombres         string     `json:"nombres"`
	Apellidos       string     `json:"apellidos"`
	Documento       string     `json:"documento"`
	Telefono        string     `json:"telefono,omitempty"`
	Email           string     `json:"email,omitempty"`
	FechaNacimiento *time.Time `json:"fechaNacimiento,omitempty"`
	Activo          bool       `json:"activo"`
	CreatedAt       time.Time  `json:"createdAt"`
}

func (h Huesped) ToResponse() HuespedResponse {
	return HuespedResponse{
		ID:              h.ID.String(),
		Nombres:         h.Nombres,
		Apellidos:       h.Apellidos,
		Documento:       h.Documento,
		Telefono:        h.Telefono,
		Email:           h.Email,
		FechaNacimiento: h.FechaNacimiento,
		Activo:          h.Activo,
		CreatedAt:       h.CreatedAt,
	}
}
