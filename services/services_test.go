package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-reservas/config"
	"hotel-reservas/models"
	"hotel-reservas/repositories"
	"hotel-reservas/validators"
)

// testEnv arma el grafo completo repositorio -> validador -> servicio
// sobre una base sqlite en memoria.
type testEnv struct {
	db *gorm.DB

	clienteRepo repositories.ClienteRepository
	reservaRepo repositories.ReservaRepository
	detalleRepo repositories.DetalleReservaRepository

	clientes     *ClienteService
	reservas     *ReservaService
	detalles     *DetalleReservaService
	habitaciones *HabitacionService
	tipos        *TipoHabitacionService
	huespedes    *HuespedService
	usuarios     *UsuarioService
	auth         *AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	clienteRepo := repositories.NewClienteRepository(db)
	reservaRepo := repositories.NewReservaRepository(db)
	detalleRepo := repositories.NewDetalleReservaRepository(db)
	habitacionRepo := repositories.NewHabitacionRepository(db)
	tipoRepo := repositories.NewTipoHabitacionRepository(db)
	huespedRepo := repositories.NewHuespedRepository(db)
	usuarioRepo := repositories.NewUsuarioRepository(db)

	return &testEnv{
		db:          db,
		clienteRepo: clienteRepo,
		reservaRepo: reservaRepo,
		detalleRepo: detalleRepo,

		clientes: NewClienteService(clienteRepo,
			validators.NewClienteValidator(clienteRepo, reservaRepo)),
		reservas: NewReservaService(reservaRepo,
			validators.NewReservaValidator(reservaRepo, clienteRepo)),
		detalles: NewDetalleReservaService(detalleRepo,
			validators.NewDetalleReservaValidator(detalleRepo, reservaRepo, habitacionRepo, huespedRepo)),
		habitaciones: NewHabitacionService(habitacionRepo,
			validators.NewHabitacionValidator(habitacionRepo, tipoRepo, detalleRepo)),
		tipos: NewTipoHabitacionService(tipoRepo,
			validators.NewTipoHabitacionValidator(tipoRepo, habitacionRepo)),
		huespedes: NewHuespedService(huespedRepo,
			validators.NewHuespedValidator(huespedRepo, detalleRepo)),
		usuarios: NewUsuarioService(usuarioRepo,
			validators.NewUsuarioValidator(usuarioRepo)),
		auth: NewAuthService(usuarioRepo),
	}
}

func (e *testEnv) crearCliente(t *testing.T, email string) models.ClienteResponse {
	t.Helper()
	resp, err := e.clientes.Create(models.CrearClienteRequest{
		RazonSocial: "Hotel Andino",
		Nit:         "900123456-7",
		Email:       email,
	})
	require.NoError(t, err)
	return *resp
}

func (e *testEnv) crearTipo(t *testing.T, nombre string) models.TipoHabitacionResponse {
	t.Helper()
	resp, err := e.tipos.Create(models.CrearTipoHabitacionRequest{
		Nombre:          nombre,
		Descripcion:     "tipo de prueba",
		CapacidadMaxima: 2,
		PrecioBase:      150,
	})
	require.NoError(t, err)
	return *resp
}

func (e *testEnv) crearHabitacion(t *testing.T, numero string) models.HabitacionResponse {
	t.Helper()
	tipo := e.crearTipo(t, "Tipo-"+numero)
	resp, err := e.habitaciones.Create(models.CrearHabitacionRequest{
		TipoHabitacionID: tipo.ID,
		Numero:           numero,
		Piso:             1,
	})
	require.NoError(t, err)
	return *resp
}

func (e *testEnv) crearHuesped(t *testing.T, documento string) models.HuespedResponse {
	t.Helper()
	resp, err := e.huespedes.Create(models.CrearHuespedRequest{
		Nombres:   "Ana",
		Apellidos: "Pérez",
		Documento: documento,
	})
	require.NoError(t, err)
	return *resp
}

func (e *testEnv) crearReserva(t *testing.T, clienteID string) models.ReservaResponse {
	t.Helper()
	resp, err := e.reservas.Create(models.CrearReservaRequest{
		ClienteID:  clienteID,
		MontoTotal: 300,
	})
	require.NoError(t, err)
	return *resp
}

func (e *testEnv) crearDetalle(t *testing.T, reservaID, habitacionID, huespedID string) models.DetalleReservaResponse {
	t.Helper()
	ingreso := time.Date(2026, 10, 1, 14, 0, 0, 0, time.UTC)
	salida := time.Date(2026, 10, 5, 11, 0, 0, 0, time.UTC)
	resp, err := e.detalles.Create(models.CrearDetalleReservaRequest{
		ReservaID:        reservaID,
		HabitacionID:     habitacionID,
		HuespedID:        huespedID,
		FechaIngreso:     &ingreso,
		FechaSalida:      &salida,
		Precio:           150,
		CantidadPersonas: 2,
	})
	require.NoError(t, err)
	return *resp
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
