package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-reservas/apierrors"
	"hotel-reservas/models"
)

func crearUsuario(t *testing.T, env *testEnv, login string) models.UsuarioResponse {
	t.Helper()
	resp, err := env.usuarios.Create(models.CrearUsuarioRequest{
		NombreCompleto: "Recepcionista Uno",
		Login:          login,
		Password:       "secreto-123",
		Rol:            "recepcion",
	})
	require.NoError(t, err)
	return *resp
}

func TestUsuarioLoginDuplicado(t *testing.T) {
	env := newTestEnv(t)
	crearUsuario(t, env, "recepcion1")

	_, err := env.usuarios.Create(models.CrearUsuarioRequest{
		NombreCompleto: "Otro",
		Login:          "recepcion1",
		Password:       "secreto-123",
	})
	require.Error(t, err)
	assert.True(t, apierrors.IsValidation(err))
}

func TestUsuarioPasswordCorta(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.usuarios.Create(models.CrearUsuarioRequest{
		NombreCompleto: "Recepcionista",
		Login:          "recepcion1",
		Password:       "corta",
	})
	require.Error(t, err)
	require.True(t, apierrors.IsValidation(err))
	assert.Contains(t, err.(*apierrors.Error).Fields, "password")
}

func TestAuthLoginEmiteToken(t *testing.T) {
	env := newTestEnv(t)
	crearUsuario(t, env, "recepcion1")

	resp, err := env.auth.Login(models.LoginRequest{
		Login:    "recepcion1",
		Password: "secreto-123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "recepcion1", resp.Usuario.Login)
}

func TestAuthLoginCredencialesInvalidas(t *testing.T) {
	env := newTestEnv(t)
	crearUsuario(t, env, "recepcion1")

	_, err := env.auth.Login(models.LoginRequest{
		Login:    "recepcion1",
		Password: "equivocada",
	})
	assert.True(t, apierrors.IsBadRequest(err))

	_, err = env.auth.Login(models.LoginRequest{
		Login:    "nadie",
		Password: "secreto-123",
	})
	assert.True(t, apierrors.IsBadRequest(err))
}

func TestUsuarioUpdateCambiaPassword(t *testing.T) {
	env := newTestEnv(t)
	usuario := crearUsuario(t, env, "recepcion1")

	_, err := env.usuarios.Update(usuario.ID, models.ActualizarUsuarioRequest{
		Password: strPtr("nueva-clave-99"),
	})
	require.NoError(t, err)

	_, err = env.auth.Login(models.LoginRequest{Login: "recepcion1", Password: "nueva-clave-99"})
	assert.NoError(t, err)
	_, err = env.auth.Login(models.LoginRequest{Login: "recepcion1", Password: "secreto-123"})
	assert.True(t, apierrors.IsBadRequest(err))
}

func TestUsuarioInactivoNoPuedeAutenticarse(t *testing.T) {
	env := newTestEnv(t)
	usuario := crearUsuario(t, env, "recepcion1")

	activo := false
	_, err := env.usuarios.Update(usuario.ID, models.ActualizarUsuarioRequest{Activo: &activo})
	require.NoError(t, err)

	_, err = env.auth.Login(models.LoginRequest{Login: "recepcion1", Password: "secreto-123"})
	assert.True(t, apierrors.IsBadRequest(err))
}
