package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"hotel-reservas/config"
	"hotel-reservas/controllers"
	"hotel-reservas/repositories"
	"hotel-reservas/routes"
	"hotel-reservas/services"
	"hotel-reservas/validators"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if err := godotenv.Load(); err != nil {
		log.Info().Msg(".env not found; continuing with environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal().Msg("JWT_SECRET environment variable is not set")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatal().Err(err).Msg("database connect failed")
	}
	db := config.DB

	// Repositorios
	clienteRepo := repositories.NewClienteRepository(db)
	reservaRepo := repositories.NewReservaRepository(db)
	detalleRepo := repositories.NewDetalleReservaRepository(db)
	habitacionRepo := repositories.NewHabitacionRepository(db)
	tipoRepo := repositories.NewTipoHabitacionRepository(db)
	huespedRepo := repositories.NewHuespedRepository(db)
	usuarioRepo := repositories.NewUsuarioRepository(db)

	// Validadores
	clienteValidator := validators.NewClienteValidator(clienteRepo, reservaRepo)
	reservaValidator := validators.NewReservaValidator(reservaRepo, clienteRepo)
	detalleValidator := validators.NewDetalleReservaValidator(detalleRepo, reservaRepo, habitacionRepo, huespedRepo)
	habitacionValidator := validators.NewHabitacionValidator(habitacionRepo, tipoRepo, detalleRepo)
	tipoValidator := validators.NewTipoHabitacionValidator(tipoRepo, habitacionRepo)
	huespedValidator := validators.NewHuespedValidator(huespedRepo, detalleRepo)
	usuarioValidator := validators.NewUsuarioValidator(usuarioRepo)

	// Servicios
	clienteService := services.NewClienteService(clienteRepo, clienteValidator)
	reservaService := services.NewReservaService(reservaRepo, reservaValidator)
	detalleService := services.NewDetalleReservaService(detalleRepo, detalleValidator)
	habitacionService := services.NewHabitacionService(habitacionRepo, habitacionValidator)
	tipoService := services.NewTipoHabitacionService(tipoRepo, tipoValidator)
	huespedService := services.NewHuespedService(huespedRepo, huespedValidator)
	usuarioService := services.NewUsuarioService(usuarioRepo, usuarioValidator)
	authService := services.NewAuthService(usuarioRepo)

	// Controladores
	router := routes.SetupRouter(
		controllers.NewClienteController(clienteService),
		controllers.NewReservaController(reservaService, detalleService),
		controllers.NewDetalleReservaController(detalleService),
		controllers.NewHabitacionController(habitacionService),
		controllers.NewTipoHabitacionController(tipoService),
		controllers.NewHuespedController(huespedService),
		controllers.NewUsuarioController(usuarioService, authService),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
