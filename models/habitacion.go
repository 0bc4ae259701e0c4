package models

import (
	"time"

	"github.com/google/uuid"
)

type EstadoHabitacion string

const (
	HabitacionLibre           EstadoHabitacion = "Libre"
	HabitacionReservada       EstadoHabitacion = "Reservada"
	HabitacionOcupada         EstadoHabitacion = "Ocupada"
	HabitacionMantenimiento   EstadoHabitacion = "Mantenimiento"
	HabitacionFueraDeServicio EstadoHabitacion = "FueraDeServicio"
)

// EstadosHabitacion es el conjunto cerrado de estados admitidos.
var EstadosHabitacion = []EstadoHabitacion{
	HabitacionLibre,
	HabitacionReservada,
	HabitacionOcupada,
	HabitacionMantenimiento,
	HabitacionFueraDeServicio,
}

func EstadoHabitacionValido(e EstadoHabitacion) bool {
	for _, v := range EstadosHabitacion {
		if v == e {
			return true
		}
	}
	return false
}

type Habitacion struct {
	ID uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`

	TipoHabitacionID uuid.UUID        `gorm:"type:char(36);column:tipo_habitacion_id;index" json:"tipoHabitacionId"`
	Numero           string           `gorm:"column:numero;size:20;uniqueIndex" json:"numero"`
	Piso             int              `gorm:"column:piso" json:"piso"`
	Estado           EstadoHabitacion `gorm:"column:estado;size:30;default:'Libre'" json:"estado"`
	Activa           bool             `gorm:"column:activa;default:true" json:"activa"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	TipoHabitacion *TipoHabitacion `gorm:"foreignKey:TipoHabitacionID;constraint:OnDelete:RESTRICT" json:"tipoHabitacion,omitempty"`
}

type CrearHabitacionRequest struct {
	TipoHabitacionID string `json:"tipoHabitacionId"`
	Numero           string `json:"numero"`
	Piso             int    `json:"piso"`
	Estado           string `json:"estado,omitempty"`
}

type ActualizarHabitacionRequest struct {
	TipoHabitacionID *string `json:"tipoHabitacionId,omitempty"`
	Numero           *string `json:"numero,omitempty"`
	Piso             *int    `json:"piso,omitempty"`
	Estado           *string `json:"estado,omitempty"`
	Activa           *bool   `json:"activa,omitempty"`
}

type HabitacionResponse struct {
	ID               string    `json:"id"`
	TipoHabitacionID string    `json:"tipoHabitacionId"`
	Numero           string    `json:"numero"`
	Piso             int       `json:"piso"`
	Estado           string    `json:"estado"`
	Activa           bool      `json:"activa"`
	// NombreTipo solo se llena cuando la relación viene precargada.
	NombreTipo string    `json:"nombreTipo,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (h Habitacion) ToResponse() HabitacionResponse {
	resp := HabitacionResponse{
		ID:               h.ID.String(),
		TipoHabitacionID: h.TipoHabitacionID.String(),
		Numero:           h.Numero,
		Piso:             h.Piso,
		Estado:           string(h.Estado),
		Activa:           h.Activa,
		CreatedAt:        h.CreatedAt,
	}
	if h.TipoHabitacion != nil {
		resp.NombreTipo = h.TipoHabitacion.Nombre
	}
	return resp
}
