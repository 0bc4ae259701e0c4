package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-reservas/apierrors"
	"hotel-reservas/models"
)

func TestDetalleCreatePoblaCamposDeDespliegue(t *testing.T) {
	env := newTestEnv(t)
	cliente := env.crearCliente(t, "a@b.com")
	reserva := env.crearReserva(t, cliente.ID)
	habitacion := env.crearHabitacion(t, "101")
	huesped := env.crearHuesped(t, "CC-123")

	detalle := env.crearDetalle(t, reserva.ID, habitacion.ID, huesped.ID)

	assert.Equal(t, "101", detalle.NumeroHabitacion)
	assert.Equal(t, "Ana Pérez", detalle.NombreHuesped)
}

func TestDetalleCreateSoloLaReferenciaRotaFalla(t *testing.T) {
	env := newTestEnv(t)
	habitacion := env.crearHabitacion(t, "101")
	huesped := env.crearHuesped(t, "CC-123")

	ingreso := time.Date(2026, 10, 1, 14, 0, 0, 0, time.UTC)
	salida := time.Date(2026, 10, 5, 11, 0, 0, 0, time.UTC)
	_, err := env.detalles.Create(models.CrearDetalleReservaRequest{
		ReservaID:        uuid.NewString(),
		HabitacionID:     habitacion.ID,
		HuespedID:        huesped.ID,
		FechaIngreso:     &ingreso,
		FechaSalida:      &salida,
		Precio:           150,
		CantidadPersonas: 2,
	})
	require.Error(t, err)
	require.True(t, apierrors.IsValidation(err))

	// Exactamente un mensaje: el de la reserva faltante.
	apiErr := err.(*apierrors.Error)
	total := 0
	for _, msgs := range apiErr.Fields {
		total += len(msgs)
	}
	assert.Equal(t, 1, total)
	assert.Contains(t, apiErr.Fields, "reservaId")
}

func TestDetalleCreateAcumulaTodasLasReferenciasRotas(t *testing.T) {
	env := newTestEnv(t)

	ingreso := time.Date(2026, 10, 5, 14, 0, 0, 0, time.UTC)
	salida := time.Date(2026, 10, 1, 11, 0, 0, 0, time.UTC)
	_, err := env.detalles.Create(models.CrearDetalleReservaRequest{
		ReservaID:        uuid.NewString(),
		HabitacionID:     uuid.NewString(),
		HuespedID:        uuid.NewString(),
		FechaIngreso:     &ingreso,
		FechaSalida:      &salida,
		Precio:           0,
		CantidadPersonas: 0,
	})
	require.Error(t, err)
	require.True(t, apierrors.IsValidation(err))

	apiErr := err.(*apierrors.Error)
	assert.Contains(t, apiErr.Fields, "reservaId")
	assert.Contains(t, apiErr.Fields, "habitacionId")
	assert.Contains(t, apiErr.Fields, "huespedId")
	assert.Contains(t, apiErr.Fields, "precio")
	assert.Contains(t, apiErr.Fields, "cantidadPersonas")
	assert.Contains(t, apiErr.Fields, "fechaSalida")

	// Nada quedó escrito.
	detalles, err := env.detalles.List()
	require.NoError(t, err)
	assert.Empty(t, detalles)
}

func TestDetalleUpdateRevalidaReferenciaReemplazada(t *testing.T) {
	env := newTestEnv(t)
	cliente := env.crearCliente(t, "a@b.com")
	reserva := env.crearReserva(t, cliente.ID)
	habitacion := env.crearHabitacion(t, "101")
	huesped := env.crearHuesped(t, "CC-123")
	detalle := env.crearDetalle(t, reserva.ID, habitacion.ID, huesped.ID)

	_, err := env.detalles.Update(detalle.ID, models.ActualizarDetalleReservaRequest{
		HabitacionID: strPtr(uuid.NewString()),
	})
	require.Error(t, err)
	assert.True(t, apierrors.IsValidation(err))

	// Una referencia válida sí se aplica.
	otra := env.crearHabitacion(t, "202")
	resp, err := env.detalles.Update(detalle.ID, models.ActualizarDetalleReservaRequest{
		HabitacionID: strPtr(otra.ID),
	})
	require.NoError(t, err)
	assert.Equal(t, otra.ID, resp.HabitacionID)
	assert.Equal(t, "202", resp.NumeroHabitacion)
	// El resto quedó como estaba.
	assert.Equal(t, detalle.Precio, resp.Precio)
	assert.Equal(t, detalle.HuespedID, resp.HuespedID)
}

func TestDetalleUpdateFechasContraValorFusionado(t *testing.T) {
	env := newTestEnv(t)
	cliente := env.crearCliente(t, "a@b.com")
	reserva := env.crearReserva(t, cliente.ID)
	habitacion := env.crearHabitacion(t, "101")
	huesped := env.crearHuesped(t, "CC-123")
	detalle := env.crearDetalle(t, reserva.ID, habitacion.ID, huesped.ID)

	// Mover la salida antes del ingreso vigente debe fallar.
	salida := time.Date(2026, 9, 30, 11, 0, 0, 0, time.UTC)
	_, err := env.detalles.Update(detalle.ID, models.ActualizarDetalleReservaRequest{
		FechaSalida: &salida,
	})
	require.Error(t, err)
	assert.True(t, apierrors.IsValidation(err))
}

func TestDetalleDeleteYNotFound(t *testing.T) {
	env := newTestEnv(t)
	cliente := env.crearCliente(t, "a@b.com")
	reserva := env.crearReserva(t, cliente.ID)
	habitacion := env.crearHabitacion(t, "101")
	huesped := env.crearHuesped(t, "CC-123")
	detalle := env.crearDetalle(t, reserva.ID, habitacion.ID, huesped.ID)

	require.NoError(t, env.detalles.Delete(detalle.ID))
	err := env.detalles.Delete(detalle.ID)
	assert.True(t, apierrors.IsNotFound(err))
}
