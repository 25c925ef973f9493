package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"hotel-gestion/config"
	"hotel-gestion/controllers"
	"hotel-gestion/middleware"
	"hotel-gestion/models"
	"hotel-gestion/services"
)

// enumValido backs the `enum=<tabla>` binding tag with the folded lookup tables.
func enumValido(fl validator.FieldLevel) bool {
	tabla, ok := models.EnumTables[fl.Param()]
	if !ok {
		return false
	}
	_, ok = tabla.Normalize(fl.Field().String())
	return ok
}

func registrarValidaciones() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("enum", enumValido)
	}
}

func corsConfig(origins []string) cors.Config {
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}
	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}
}

// SetupRouter builds the controllers on top of svc and registers every route.
func SetupRouter(settings config.Settings, svc *services.Services) *gin.Engine {
	registrarValidaciones()

	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())
	r.Use(cors.New(corsConfig(settings.CORSOrigins)))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	hc := controllers.NewHabitacionController(svc.Habitaciones)
	rc := controllers.NewReservaController(svc.Reservas)
	ec := controllers.NewEstadiaController(svc.Estadias)
	huc := controllers.NewHuespedController(svc.Huespedes)
	rpc := controllers.NewResponsableController(svc.Responsables, svc.Facturas)
	fc := controllers.NewFacturaController(svc.Facturas)
	pc := controllers.NewPagoController(svc.Pagos)
	uc := controllers.NewUsuarioController(svc.Usuarios)

	api := r.Group("/api")
	api.POST("/usuarios/login", uc.Login)

	auth := api.Group("", middleware.Autenticar(svc.Usuarios))
	{
		usuarios := auth.Group("/usuarios")
		{
			usuarios.POST("", uc.Registrar)
			usuarios.POST("/logout", uc.Logout)
			usuarios.PATCH("/contrasenia", uc.CambiarContrasenia)
		}

		habitaciones := auth.Group("/habitaciones")
		{
			habitaciones.GET("", hc.Listar)
			habitaciones.POST("", hc.Crear)

			// before /:numero
			habitaciones.GET("/grilla", hc.Grilla)

			habitaciones.GET("/:numero", hc.Obtener)
			habitaciones.PATCH("/:numero/estado", hc.CambiarEstado)
			habitaciones.GET("/:numero/disponibilidad", hc.Disponibilidad)
			habitaciones.GET("/:numero/estadia", ec.ActivaPorHabitacion)
		}

		reservas := auth.Group("/reservas")
		{
			reservas.POST("", rc.Crear)
			reservas.GET("", rc.Buscar)
			reservas.POST("/cancelar", rc.Cancelar)
		}

		estadias := auth.Group("/estadias")
		{
			estadias.POST("", ec.CheckIn)
			estadias.GET("/:id", ec.Obtener)
		}

		huespedes := auth.Group("/huespedes")
		{
			huespedes.GET("", huc.Buscar)
			huespedes.POST("", huc.Guardar)
			huespedes.GET("/:tipo/:numero", huc.Obtener)
			huespedes.DELETE("/:tipo/:numero", huc.Eliminar)
		}

		responsables := auth.Group("/responsables")
		{
			responsables.POST("", rpc.CrearJuridica)
			responsables.GET("", rpc.Buscar)
			responsables.GET("/:id", rpc.Obtener)
			responsables.GET("/:id/facturas-pendientes", rpc.FacturasPendientes)
		}

		factura := auth.Group("/factura")
		{
			factura.POST("/detalle", fc.Detalle)
			factura.POST("", fc.Facturar)
			factura.POST("/notas-credito", fc.NotaCredito)
			factura.GET("/:id", fc.Obtener)
			factura.GET("/:id/pdf", fc.PDF)
		}

		pagos := auth.Group("/pagos")
		{
			pagos.POST("", pc.Registrar)
			pagos.GET("", pc.DeFactura)
		}
	}

	return r
}
