package models

import (
	"time"

	"github.com/google/uuid"
)

type EstadoReserva string

const (
	ReservaPendiente  EstadoReserva = "Pendiente"
	ReservaConfirmada EstadoReserva = "Confirmada"
	ReservaCancelada  EstadoReserva = "Cancelada"
	ReservaCompletada EstadoReserva = "Completada"
	ReservaNoShow     EstadoReserva = "NoShow"
)

var EstadosReserva = []EstadoReserva{
	ReservaPendiente,
	ReservaConfirmada,
	ReservaCancelada,
	ReservaCompletada,
	ReservaNoShow,
}

func EstadoReservaValido(e EstadoReserva) bool {
	for _, v := range EstadosReserva {
		if v == e {
			return true
		}
	}
	return false
}

type Reserva struct {
	ID uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`

	ClienteID     uuid.UUID     `gorm:"type:char(36);column:cliente_id;index" json:"clienteId"`
	Estado        EstadoReserva `gorm:"column:estado;size:30;default:'Pendiente'" json:"estado"`
	MontoTotal    float64       `gorm:"column:monto_total" json:"montoTotal"`
	FechaCreacion time.Time     `gorm:"column:fecha_creacion" json:"fechaCreacion"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Cliente  *Cliente         `gorm:"foreignKey:ClienteID;constraint:OnDelete:RESTRICT" json:"cliente,omitempty"`
	Detalles []DetalleReserva `gorm:"foreignKey:ReservaID;constraint:OnDelete:CASCADE" json:"detalles,omitempty"`
}

type CrearReservaRequest struct {
	ClienteID  string  `json:"clienteId"`
	Estado     string  `json:"estado,omitempty"`
	MontoTotal float64 `json:"montoTotal"`
}

type ActualizarReservaRequest struct {
	ClienteID  *string  `json:"clienteId,omitempty"`
	Estado     *string  `json:"estado,omitempty"`
	MontoTotal *float64 `json:"montoTotal,omitempty"`
}

type ReservaResponse struct {
	ID            string    `json:"id"`
	ClienteID     string    `json:"clienteId"`
	Estado        string    `json:"estado"`
	MontoTotal    float64   `json:"montoTotal"`
	FechaCreacion time.Time `json:"fechaCreacion"`
	// Fechas de estadía derivadas del detalle más temprano; solo se
	// llenan cuando los detalles vienen precargados.
	FechaIngreso *time.Time               `json:"fechaIngreso,omitempty"`
	FechaSalida  *time.Time               `json:"fechaSalida,omitempty"`
	Detalles     []DetalleReservaResponse `json:"detalles,omitempty"`
}

func (r Reserva) ToResponse() ReservaResponse {
	resp := ReservaResponse{
		ID:            r.ID.String(),
		ClienteID:     r.ClienteID.String(),
		Estado:        string(r.Estado),
		MontoTotal:    r.MontoTotal,
		FechaCreacion: r.FechaCreacion,
	}
	for _, d := range r.Detalles {
		resp.Detalles = append(resp.Detalles, d.ToResponse())
		if d.FechaIngreso != nil && (resp.FechaIngreso == nil || d.FechaIngreso.Before(*resp.FechaIngreso)) {
			resp.FechaIngreso = d.FechaIngreso
		}
		if d.FechaSalida != nil && (resp.FechaSalida == nil || d.FechaSalida.After(*resp.FechaSalida)) {
			resp.FechaSalida = d.FechaSalida
		}
	}
	return resp
}
