package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-reservas/controllers"
	"hotel-reservas/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	cc *controllers.ClienteController,
	rc *controllers.ReservaController,
	dc *controllers.DetalleReservaController,
	hc *controllers.HabitacionController,
	tc *controllers.TipoHabitacionController,
	gc *controllers.HuespedController,
	uc *controllers.UsuarioController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/auth/login", uc.Login)

	api := r.Group("/api")
	api.Use(middleware.Auth())
	{
		clientes := api.Group("/clientes")
		{
			clientes.GET("", cc.List)
			clientes.GET("/:id", cc.GetByID)
			clientes.POST("", cc.Create)
			clientes.PUT("/:id", cc.Update)
			clientes.DELETE("/:id", cc.Delete)
		}

		reservas := api.Group("/reservas")
		{
			reservas.GET("", rc.List)
			reservas.GET("/:id", rc.GetByID)
			reservas.GET("/:id/detalles", rc.ListDetalles)
			reservas.POST("", rc.Create)
			reservas.PUT("/:id", rc.Update)
			reservas.DELETE("/:id", rc.Delete)
		}

		detalles := api.Group("/detalles-reserva")
		{
			detalles.GET("", dc.List)
			detalles.GET("/:id", dc.GetByID)
			detalles.POST("", dc.Create)
			detalles.PUT("/:id", dc.Update)
			detalles.DELETE("/:id", dc.Delete)
		}

		habitaciones := api.Group("/habitaciones")
		{
			habitaciones.GET("", hc.List)
			habitaciones.GET("/:id", hc.GetByID)
			habitaciones.POST("", hc.Create)
			habitaciones.PUT("/:id", hc.Update)
			habitaciones.DELETE("/:id", hc.Delete)
		}

		tipos := api.Group("/tipos-habitacion")
		{
			tipos.GET("", tc.List)
			tipos.GET("/:id", tc.GetByID)
			tipos.POST("", tc.Create)
			tipos.PUT("/:id", tc.Update)
			tipos.DELETE("/:id", tc.Delete)
		}

		huespedes := api.Group("/huespedes")
		{
			huespedes.GET("", gc.List)
			huespedes.GET("/:id", gc.GetByID)
			huespedes.POST("", gc.Create)
			huespedes.PUT("/:id", gc.Update)
			huespedes.DELETE("/:id", gc.Delete)
		}

		usuarios := api.Group("/usuarios")
		{
			usuarios.GET("", uc.List)
			usuarios.GET("/:id", uc.GetByID)
			usuarios.POST("", uc.Create)
			usuarios.PUT("/:id", uc.Update)
			usuarios.DELETE("/:id", uc.Delete)
		}
	}

	return r
}
