package models

import (
	"time"

	"github.com/google/uuid"
)

type DetalleReserva struct {
	ID uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`

	ReservaID    uuid.UUID `gorm:"type:char(36);column:reserva_id;index" json:"reservaId"`
	HabitacionID uuid.UUID `gorm:"type:char(36);column:habitacion_id;index" json:"habitacionId"`
	HuespedID    uuid.UUID `gorm:"type:char(36);column:huesped_id;index" json:"huespedId"`

	FechaIngreso     *time.Time `gorm:"column:fecha_ingreso" json:"fechaIngreso,omitempty"`
	FechaSalida      *time.Time `gorm:"column:fecha_salida" json:"fechaSalida,omitempty"`
	Precio           float64    `gorm:"column:precio" json:"precio"`
	CantidadPersonas int        `gorm:"column:cantidad_personas" json:"cantidadPersonas"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Habitacion *Habitacion `gorm:"foreignKey:HabitacionID;constraint:OnDelete:RESTRICT" json:"habitacion,omitempty"`
	Huesped    *Huesped    `gorm:"foreignKey:HuespedID;constraint:OnDelete:RESTRICT" json:"huesped,omitempty"`
}

type CrearDetalleReservaRequest struct {
	ReservaID        string     `json:"reservaId"`
	HabitacionID     string     `json:"habitacionId"`
	HuespedID        string     `json:"huespedId"`
	FechaIngreso     *time.Time `json:"fechaIngreso,omitempty"`
	FechaSalida      *time.Time `json:"fechaSalida,omitempty"`
	Precio           float64    `json:"precio"`
	CantidadPersonas int        `json:"cantidadPersonas"`
}

type ActualizarDetalleReservaRequest struct {
	ReservaID        *string    `json:"reservaId,omitempty"`
	HabitacionID     *string    `json:"habitacionId,omitempty"`
	HuespedID        *string    `json:"huespedId,omitempty"`
	FechaIngreso     *time.Time `json:"fechaIngreso,omitempty"`
	FechaSalida      *time.Time `json:"fechaSalida,omitempty"`
	Precio           *float64   `json:"precio,omitempty"`
	CantidadPersonas *int       `json:"cantidadPersonas,omitempty"`
}

type DetalleReservaResponse struct {
	ID               string     `json:"id"`
	ReservaID        string     `json:"reservaId"`
	HabitacionID     string     `json:"habitacionId"`
	HuespedID        string     `json:"huespedId"`
	FechaIngreso     *time.Time `json:"fechaIngreso,omitempty"`
	FechaSalida      *time.Time `json:"fechaSalida,omitempty"`
	Precio           float64    `json:"precio"`
	CantidadPersonas int        `json:"cantidadPersonas"`
	// Campos de despliegue; solo se llenan con la relación precargada.
	NumeroHabitacion string `json:"numeroHabitacion,omitempty"`
	NombreHuesped    string `json:"nombreHuesped,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

func (d DetalleReserva) ToResponse() DetalleReservaResponse {
	resp := DetalleReservaResponse{
		ID:               d.ID.String(),
		ReservaID:        d.ReservaID.String(),
		HabitacionID:     d.HabitacionID.String(),
		HuespedID:        d.HuespedID.String(),
		FechaIngreso:     d.FechaIngreso,
		FechaSalida:      d.FechaSalida,
		Precio:           d.Precio,
		CantidadPersonas: d.CantidadPersonas,
		CreatedAt:        d.CreatedAt,
	}
	if d.Habitacion != nil {
		resp.NumeroHabitacion = d.Habitacion.Numero
	}
	if d.Huesped != nil {
		resp.NombreHuesped = d.Huesped.Nombres + " " + d.Huesped.Apellidos
	}
	return resp
}
