package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-reservas/apierrors"
	"hotel-reservas/models"
)

func TestClienteCreateDevuelveRegistroPersistido(t *testing.T) {
	env := newTestEnv(t)

	resp := env.crearCliente(t, "a@b.com")

	// El id de la respuesta es un UUID textual válido.
	id, err := uuid.Parse(resp.ID)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	assert.True(t, resp.Activo)

	got, err := env.clientes.GetByID(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", got.Email)
}

func TestClienteEmailDuplicado(t *testing.T) {
	env := newTestEnv(t)
	env.crearCliente(t, "a@b.com")

	_, err := env.clientes.Create(models.CrearClienteRequest{
		RazonSocial: "Otro Hotel",
		Nit:         "800999",
		Email:       "a@b.com",
	})
	require.Error(t, err)
	assert.True(t, apierrors.IsValidation(err))

	apiErr := err.(*apierrors.Error)
	require.Contains(t, apiErr.Fields, "email")
	assert.Contains(t, apiErr.Fields["email"][0], "a@b.com")

	// La tienda sigue conteniendo exactamente un cliente.
	clientes, err := env.clientes.List()
	require.NoError(t, err)
	assert.Len(t, clientes, 1)
}

func TestClienteCreateAcumulaTodasLasInfracciones(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.clientes.Create(models.CrearClienteRequest{
		RazonSocial: "",
		Nit:         "",
		Email:       "no-es-email",
	})
	require.Error(t, err)
	require.True(t, apierrors.IsValidation(err))

	apiErr := err.(*apierrors.Error)
	// Tres reglas independientes violadas, tres mensajes.
	assert.Contains(t, apiErr.Fields, "razonSocial")
	assert.Contains(t, apiErr.Fields, "nit")
	assert.Contains(t, apiErr.Fields, "email")
}

func TestClienteUpdateParcial(t *testing.T) {
	env := newTestEnv(t)
	creado := env.crearCliente(t, "a@b.com")

	resp, err := env.clientes.Update(creado.ID, models.ActualizarClienteRequest{
		RazonSocial: strPtr("Hotel Pacífico"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Hotel Pacífico", resp.RazonSocial)
	// Los campos ausentes de la solicitud no cambian.
	assert.Equal(t, "a@b.com", resp.Email)
	assert.Equal(t, "900123456-7", resp.Nit)
}

func TestClienteUpdateVacioEsNoOp(t *testing.T) {
	env := newTestEnv(t)
	creado := env.crearCliente(t, "a@b.com")

	resp, err := env.clientes.Update(creado.ID, models.ActualizarClienteRequest{})
	require.NoError(t, err)
	assert.Equal(t, creado.RazonSocial, resp.RazonSocial)
	assert.Equal(t, creado.Nit, resp.Nit)
	assert.Equal(t, creado.Email, resp.Email)
	assert.Equal(t, creado.Activo, resp.Activo)
}

func TestClienteUpdateEmailPropioNoEsDuplicado(t *testing.T) {
	env := newTestEnv(t)
	creado := env.crearCliente(t, "a@b.com")

	// Reasignar el valor vigente nunca dispara un falso duplicado.
	resp, err := env.clientes.Update(creado.ID, models.ActualizarClienteRequest{
		Email: strPtr("a@b.com"),
	})
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", resp.Email)
}

func TestClienteUpdateEmailAjenoEsDuplicado(t *testing.T) {
	env := newTestEnv(t)
	env.crearCliente(t, "a@b.com")

	otro, err := env.clientes.Create(models.CrearClienteRequest{
		RazonSocial: "Otro Hotel",
		Nit:         "800999",
		Email:       "c@d.com",
	})
	require.NoError(t, err)

	_, err = env.clientes.Update(otro.ID, models.ActualizarClienteRequest{
		Email: strPtr("a@b.com"),
	})
	require.Error(t, err)
	assert.True(t, apierrors.IsValidation(err))
}

func TestClienteDeleteBloqueadoPorReservas(t *testing.T) {
	env := newTestEnv(t)
	cliente := env.crearCliente(t, "a@b.com")
	reserva := env.crearReserva(t, cliente.ID)

	err := env.clientes.Delete(cliente.ID)
	require.Error(t, err)
	assert.True(t, apierrors.IsConflict(err))

	// Ambas filas siguen intactas.
	_, err = env.clientes.GetByID(cliente.ID)
	assert.NoError(t, err)
	_, err = env.reservas.GetByID(reserva.ID)
	assert.NoError(t, err)
}

func TestClienteDeleteSinDependientes(t *testing.T) {
	env := newTestEnv(t)
	cliente := env.crearCliente(t, "a@b.com")

	require.NoError(t, env.clientes.Delete(cliente.ID))

	_, err := env.clientes.GetByID(cliente.ID)
	assert.True(t, apierrors.IsNotFound(err))
}

func TestClienteNotFoundIdempotente(t *testing.T) {
	env := newTestEnv(t)
	inexistente := uuid.NewString()

	for i := 0; i < 2; i++ {
		_, err := env.clientes.GetByID(inexistente)
		assert.True(t, apierrors.IsNotFound(err))

		_, err = env.clientes.Update(inexistente, models.ActualizarClienteRequest{Nit: strPtr("1")})
		assert.True(t, apierrors.IsNotFound(err))

		err = env.clientes.Delete(inexistente)
		assert.True(t, apierrors.IsNotFound(err))
	}

	clientes, err := env.clientes.List()
	require.NoError(t, err)
	assert.Empty(t, clientes)
}

func TestClienteIDMalformado(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.clientes.GetByID("no-un-uuid")
	assert.True(t, apierrors.IsBadRequest(err))

	_, err = env.clientes.Update("no-un-uuid", models.ActualizarClienteRequest{})
	assert.True(t, apierrors.IsBadRequest(err))

	err = env.clientes.Delete("no-un-uuid")
	assert.True(t, apierrors.IsBadRequest(err))
}
