package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-reservas/apierrors"
	"hotel-reservas/models"
)

func TestHabitacionNumeroDuplicado(t *testing.T) {
	env := newTestEnv(t)
	env.crearHabitacion(t, "101")
	tipo := env.crearTipo(t, "Queen")

	_, err := env.habitaciones.Create(models.CrearHabitacionRequest{
		TipoHabitacionID: tipo.ID,
		Numero:           "101",
		Piso:             1,
	})
	require.Error(t, err)
	assert.True(t, apierrors.IsValidation(err))
}

func TestHabitacionNumeroPropioNoEsDuplicado(t *testing.T) {
	env := newTestEnv(t)
	habitacion := env.crearHabitacion(t, "101")

	resp, err := env.habitaciones.Update(habitacion.ID, models.ActualizarHabitacionRequest{
		Numero: strPtr("101"),
	})
	require.NoError(t, err)
	assert.Equal(t, "101", resp.Numero)
}

func TestHabitacionTipoInexistente(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.habitaciones.Create(models.CrearHabitacionRequest{
		TipoHabitacionID: uuid.NewString(),
		Numero:           "101",
		Piso:             1,
	})
	require.Error(t, err)
	assert.True(t, apierrors.IsValidation(err))
}

func TestHabitacionEstadoDesconocido(t *testing.T) {
	env := newTestEnv(t)
	tipo := env.crearTipo(t, "Queen")

	_, err := env.habitaciones.Create(models.CrearHabitacionRequest{
		TipoHabitacionID: tipo.ID,
		Numero:           "101",
		Estado:           "Flotando",
	})
	assert.True(t, apierrors.IsBadRequest(err))
}

func TestHabitacionCreateIncluyeNombreTipo(t *testing.T) {
	env := newTestEnv(t)
	tipo := env.crearTipo(t, "Queen")

	resp, err := env.habitaciones.Create(models.CrearHabitacionRequest{
		TipoHabitacionID: tipo.ID,
		Numero:           "305",
		Piso:             3,
	})
	require.NoError(t, err)
	assert.Equal(t, "Queen", resp.NombreTipo)
	assert.Equal(t, string(models.HabitacionLibre), resp.Estado)
}

func TestHabitacionDeleteBloqueadoPorDetalles(t *testing.T) {
	env := newTestEnv(t)
	cliente := env.crearCliente(t, "a@b.com")
	reserva := env.crearReserva(t, cliente.ID)
	habitacion := env.crearHabitacion(t, "101")
	huesped := env.crearHuesped(t, "CC-123")
	env.crearDetalle(t, reserva.ID, habitacion.ID, huesped.ID)

	err := env.habitaciones.Delete(habitacion.ID)
	require.Error(t, err)
	assert.True(t, apierrors.IsConflict(err))

	_, err = env.habitaciones.GetByID(habitacion.ID)
	assert.NoError(t, err)
}

func TestHabitacionUpdateParcialEstado(t *testing.T) {
	env := newTestEnv(t)
	habitacion := env.crearHabitacion(t, "101")

	resp, err := env.habitaciones.Update(habitacion.ID, models.ActualizarHabitacionRequest{
		Estado: strPtr(string(models.HabitacionMantenimiento)),
	})
	require.NoError(t, err)
	assert.Equal(t, string(models.HabitacionMantenimiento), resp.Estado)
	assert.Equal(t, habitacion.Numero, resp.Numero)
	assert.Equal(t, habitacion.TipoHabitacionID, resp.TipoHabitacionID)
}
