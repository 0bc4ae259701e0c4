package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-reservas/apierrors"
	"hotel-reservas/models"
)

func TestReservaCreateConClienteInexistente(t *testing.T) {
	env := newTestEnv(t)
	fantasma := uuid.NewString()

	_, err := env.reservas.Create(models.CrearReservaRequest{
		ClienteID:  fantasma,
		MontoTotal: 100,
	})
	require.Error(t, err)
	assert.True(t, apierrors.IsValidation(err))

	// Ninguna fila quedó escrita.
	reservas, err := env.reservas.List()
	require.NoError(t, err)
	assert.Empty(t, reservas)
}

func TestReservaCreateEstadoPorDefecto(t *testing.T) {
	env := newTestEnv(t)
	cliente := env.crearCliente(t, "a@b.com")

	reserva := env.crearReserva(t, cliente.ID)
	assert.Equal(t, string(models.ReservaPendiente), reserva.Estado)
	assert.Equal(t, cliente.ID, reserva.ClienteID)
	assert.False(t, reserva.FechaCreacion.IsZero())
}

func TestReservaEstadoDesconocidoEsBadRequest(t *testing.T) {
	env := newTestEnv(t)
	cliente := env.crearCliente(t, "a@b.com")

	_, err := env.reservas.Create(models.CrearReservaRequest{
		ClienteID: cliente.ID,
		Estado:    "EnLimbo",
	})
	assert.True(t, apierrors.IsBadRequest(err))

	reserva := env.crearReserva(t, cliente.ID)
	_, err = env.reservas.Update(reserva.ID, models.ActualizarReservaRequest{
		Estado: strPtr("EnLimbo"),
	})
	assert.True(t, apierrors.IsBadRequest(err))
}

func TestReservaMontoNegativo(t *testing.T) {
	env := newTestEnv(t)
	cliente := env.crearCliente(t, "a@b.com")

	_, err := env.reservas.Create(models.CrearReservaRequest{
		ClienteID:  cliente.ID,
		MontoTotal: -1,
	})
	require.Error(t, err)
	assert.True(t, apierrors.IsValidation(err))
}

func TestReservaUpdateSoloEstado(t *testing.T) {
	env := newTestEnv(t)
	cliente := env.crearCliente(t, "a@b.com")
	reserva := env.crearReserva(t, cliente.ID)

	resp, err := env.reservas.Update(reserva.ID, models.ActualizarReservaRequest{
		Estado: strPtr(string(models.ReservaCancelada)),
	})
	require.NoError(t, err)

	assert.Equal(t, string(models.ReservaCancelada), resp.Estado)
	// Monto y cliente conservan los valores previos.
	assert.Equal(t, reserva.MontoTotal, resp.MontoTotal)
	assert.Equal(t, reserva.ClienteID, resp.ClienteID)
}

func TestReservaUpdateClienteInexistente(t *testing.T) {
	env := newTestEnv(t)
	cliente := env.crearCliente(t, "a@b.com")
	reserva := env.crearReserva(t, cliente.ID)

	_, err := env.reservas.Update(reserva.ID, models.ActualizarReservaRequest{
		ClienteID: strPtr(uuid.NewString()),
	})
	require.Error(t, err)
	assert.True(t, apierrors.IsValidation(err))
}

func TestReservaDeleteEliminaDetallesEnCascada(t *testing.T) {
	env := newTestEnv(t)
	cliente := env.crearCliente(t, "a@b.com")
	reserva := env.crearReserva(t, cliente.ID)
	habitacion := env.crearHabitacion(t, "101")
	huesped := env.crearHuesped(t, "CC-123")
	detalle := env.crearDetalle(t, reserva.ID, habitacion.ID, huesped.ID)

	require.NoError(t, env.reservas.Delete(reserva.ID))

	_, err := env.reservas.GetByID(reserva.ID)
	assert.True(t, apierrors.IsNotFound(err))
	_, err = env.detalles.GetByID(detalle.ID)
	assert.True(t, apierrors.IsNotFound(err))
}

func TestReservaFechasDerivadasDelDetalleMasTemprano(t *testing.T) {
	env := newTestEnv(t)
	cliente := env.crearCliente(t, "a@b.com")
	reserva := env.crearReserva(t, cliente.ID)
	habitacion := env.crearHabitacion(t, "101")
	huesped := env.crearHuesped(t, "CC-123")
	detalle := env.crearDetalle(t, reserva.ID, habitacion.ID, huesped.ID)

	resp, err := env.reservas.GetByID(reserva.ID)
	require.NoError(t, err)
	require.NotNil(t, resp.FechaIngreso)
	require.NotNil(t, resp.FechaSalida)
	assert.Equal(t, detalle.FechaIngreso.UTC(), resp.FechaIngreso.UTC())
	assert.Equal(t, detalle.FechaSalida.UTC(), resp.FechaSalida.UTC())
}

func TestReservaListPorCliente(t *testing.T) {
	env := newTestEnv(t)
	cliente := env.crearCliente(t, "a@b.com")
	otro := env.crearCliente(t, "c@d.com")
	env.crearReserva(t, cliente.ID)
	env.crearReserva(t, cliente.ID)
	env.crearReserva(t, otro.ID)

	reservas, err := env.reservas.ListByCliente(cliente.ID)
	require.NoError(t, err)
	assert.Len(t, reservas, 2)
}
