package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TipoHabitacion struct {
	ID uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`

	Nombre          string  `gorm:"column:nombre;size:60;uniqueIndex" json:"nombre"`
	Descripcion     string  `gorm:"column:descripcion;type:text" json:"descripcion"`
	CapacidadMaxima int     `gorm:"column:capacidad_maxima" json:"capacidadMaxima"`
	PrecioBase      float64 `gorm:"column:precio_base" json:"precioBase"`

	// Lista de amenidades serializada como JSON (["wifi","minibar",...]).
	Amenidades datatypes.JSON `gorm:"column:amenidades" json:"amenidades,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CrearTipoHabitacionRequest struct {
	Nombre          string   `json:"nombre"`
	Descripcion     string   `json:"descripcion"`
	CapacidadMaxima int      `json:"capacidadMaxima"`
	PrecioBase      float64  `json:"precioBase"`
	Amenidades      []string `json:"amenidades,omitempty"`
}

type ActualizarTipoHabitacionRequest struct {
	Nombre          *string   `json:"nombre,omitempty"`
	Descripcion     *string   `json:"descripcion,omitempty"`
	CapacidadMaxima *int      `json:"capacidadMaxima,omitempty"`
	PrecioBase      *float64  `json:"precioBase,omitempty"`
	Amenidades      *[]string `json:"amenidades,omitempty"`
}

type TipoHabitacionResponse struct {
	ID              string         `json:"id"`
	Nombre          string         `json:"nombre"`
	Descripcion     string         `json:"descripcion"`
	CapacidadMaxima int            `json:"capacidadMaxima"`
	PrecioBase      float64        `json:"precioBase"`
	Amenidades      datatypes.JSON `json:"amenidades,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
}

func (t TipoHabitacion) ToResponse() TipoHabitacionResponse {
	return TipoHabitacionResponse{
		ID:              t.ID.String(),
		Nombre:          t.Nombre,
		Descripcion:     t.Descripcion,
		CapacidadMaxima: t.CapacidadMaxima,
		PrecioBase:      t.PrecioBase,
		Amenidades:      t.Amenidades,
		CreatedAt:       t.CreatedAt,
	}
}
