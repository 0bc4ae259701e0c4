package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-reservas/apierrors"
	"hotel-reservas/models"
)

func TestHuespedCreateAcumulaRequeridos(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.huespedes.Create(models.CrearHuespedRequest{
		Email: "no-es-email",
	})
	require.Error(t, err)
	require.True(t, apierrors.IsValidation(err))

	apiErr := err.(*apierrors.Error)
	assert.Contains(t, apiErr.Fields, "nombres")
	assert.Contains(t, apiErr.Fields, "apellidos")
	assert.Contains(t, apiErr.Fields, "documento")
	assert.Contains(t, apiErr.Fields, "email")
}

func TestHuespedBusquedaPorDocumento(t *testing.T) {
	env := newTestEnv(t)
	creado := env.crearHuesped(t, "CC-9988")

	resp, err := env.huespedes.GetByDocumento("CC-9988")
	require.NoError(t, err)
	assert.Equal(t, creado.ID, resp.ID)

	_, err = env.huespedes.GetByDocumento("CC-0000")
	assert.True(t, apierrors.IsNotFound(err))
}

func TestHuespedUpdateParcial(t *testing.T) {
	env := newTestEnv(t)
	creado := env.crearHuesped(t, "CC-123")

	resp, err := env.huespedes.Update(creado.ID, models.ActualizarHuespedRequest{
		Telefono: strPtr("555-0101"),
	})
	require.NoError(t, err)
	assert.Equal(t, "555-0101", resp.Telefono)
	assert.Equal(t, creado.Nombres, resp.Nombres)
	assert.Equal(t, creado.Documento, resp.Documento)
}

func TestHuespedDeleteBloqueadoPorDetalles(t *testing.T) {
	env := newTestEnv(t)
	cliente := env.crearCliente(t, "a@b.com")
	reserva := env.crearReserva(t, cliente.ID)
	habitacion := env.crearHabitacion(t, "101")
	huesped := env.crearHuesped(t, "CC-123")
	env.crearDetalle(t, reserva.ID, habitacion.ID, huesped.ID)

	err := env.huespedes.Delete(huesped.ID)
	require.Error(t, err)
	assert.True(t, apierrors.IsConflict(err))
}

func TestHuespedDeleteLibre(t *testing.T) {
	env := newTestEnv(t)
	huesped := env.crearHuesped(t, "CC-123")

	require.NoError(t, env.huespedes.Delete(huesped.ID))
	_, err := env.huespedes.GetByID(huesped.ID)
	assert.True(t, apierrors.IsNotFound(err))
}
