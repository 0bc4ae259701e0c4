package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-reservas/models"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "hotel_reservas")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// Migrate aplica el esquema en orden padre->hijo. Las restricciones
// declarativas (RESTRICT/CASCADE) quedan en la base como respaldo de los
// chequeos de los validadores.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Usuario{},
		&models.Cliente{},
		&models.TipoHabitacion{},
		&models.Habitacion{},
		&models.Huesped{},
		&models.Reserva{},
		&models.DetalleReserva{},
	)
}

func SeedDatabase() {
	var usuarioCount int64
	DB.Model(&models.Usuario{}).Count(&usuarioCount)
	if usuarioCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(envOrDefault("ADMIN_PASSWORD", "admin12345")), bcrypt.DefaultCost)
		if err != nil {
			log.Warn().Err(err).Msg("failed to hash default admin password")
		} else {
			admin := models.Usuario{
				ID:             uuid.New(),
				NombreCompleto: "Administrador",
				Login:          "admin",
				PasswordHash:   string(hash),
				Rol:            "admin",
				Activo:         true,
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Warn().Err(err).Msg("failed to create default admin user")
			} else {
				log.Info().Msg("default admin user seeded")
			}
		}
	}

	var tipoCount int64
	DB.Model(&models.TipoHabitacion{}).Count(&tipoCount)
	if tipoCount == 0 {
		tipos := []models.TipoHabitacion{
			{ID: uuid.New(), Nombre: "Sencilla", Descripcion: "Habitación sencilla", CapacidadMaxima: 1, PrecioBase: 120},
			{ID: uuid.New(), Nombre: "Doble", Descripcion: "Habitación doble", CapacidadMaxima: 2, PrecioBase: 180},
			{ID: uuid.New(), Nombre: "Suite", Descripcion: "Suite ejecutiva", CapacidadMaxima: 4, PrecioBase: 320},
		}
		if err := DB.Create(&tipos).Error; err != nil {
			log.Warn().Err(err).Msg("failed to seed room types")
		} else {
			log.Info().Msg("room types seeded")
		}
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// El driver traduce errores de clave duplicada a
		// gorm.ErrDuplicatedKey.
		TranslateError: true,
	})
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	DB = db

	if err := Migrate(DB); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
