package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hostal-backend/controllers"
	"hostal-backend/middleware"
	"hostal-backend/models"
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

// SetupRouter wires every controller into the route tree.
func SetupRouter(
	ac *controllers.AuthController,
	uc *controllers.UserController,
	cc *controllers.ClientController,
	hc *controllers.RoomController,
	pc *controllers.PaymentController,
	rc *controllers.ReservationController,
	rpc *controllers.ReportController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

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

	api := r.Group("/api")

	// Public: login and registration
	api.POST("/auth/login", ac.Login)
	api.POST("/usuarios", uc.Register)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		clientes := protected.Group("/clientes")
		{
			clientes.GET("", cc.List)
			clientes.POST("", cc.Create)
			clientes.GET("/:id", cc.Get)
			clientes.PUT("/:id", cc.Update)
			clientes.DELETE("/:id", cc.Delete)
		}

		habitaciones := protected.Group("/habitaciones")
		{
			habitaciones.GET("", hc.List)
			habitaciones.POST("", hc.Create)

			// static route must be registered alongside /:id
			habitaciones.GET("/disponibles", hc.Available)

			habitaciones.GET("/:id", hc.Get)
			habitaciones.PUT("/:id", hc.Update)
			habitaciones.DELETE("/:id", hc.Delete)
		}

		pagos := protected.Group("/pagos")
		{
			pagos.GET("", pc.List)
			pagos.POST("", pc.Create)
			pagos.GET("/:id", pc.Get)
			pagos.PUT("/:id", pc.Update)
			pagos.DELETE("/:id", pc.Delete)
		}

		reservas := protected.Group("/reservas")
		{
			reservas.GET("", rc.List)
			reservas.POST("", rc.Create)
			reservas.GET("/:id", rc.Get)
			reservas.PUT("/:id", rc.Update)
			reservas.DELETE("/:id", rc.Delete)
			reservas.POST("/:id/checkin", rc.CheckIn)
			reservas.POST("/:id/checkout", rc.CheckOut)
			reservas.POST("/:id/cancelar", rc.Cancel)
		}

		reportes := protected.Group("/reportes")
		reportes.Use(middleware.RequireRoles(models.RoleAdministrator, models.RoleManager))
		{
			reportes.GET("", rpc.List)
			reportes.POST("", rpc.Create)
			reportes.GET("/reservas", rpc.Reservations)
			reportes.GET("/ingresos", rpc.Income)
			reportes.GET("/:id", rpc.Get)
			reportes.PUT("/:id", rpc.Update)
			reportes.DELETE("/:id", rpc.Delete)
		}

		usuarios := protected.Group("/usuarios")
		usuarios.Use(middleware.RequireRoles(models.RoleAdministrator))
		{
			usuarios.GET("", uc.List)
			usuarios.GET("/:id", uc.Get)
			usuarios.PUT("/:id", uc.Update)
			usuarios.DELETE("/:id", uc.Delete)
		}
	}

	return r
}
