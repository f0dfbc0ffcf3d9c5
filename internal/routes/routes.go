package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TallerTurnos01/taller-scheduler/internal/cache"
	"github.com/TallerTurnos01/taller-scheduler/internal/config"
	"github.com/TallerTurnos01/taller-scheduler/internal/handlers"
	infraRepo "github.com/TallerTurnos01/taller-scheduler/internal/infra/repository"
	"github.com/TallerTurnos01/taller-scheduler/internal/middleware"
	"github.com/TallerTurnos01/taller-scheduler/internal/models"
	"github.com/TallerTurnos01/taller-scheduler/internal/notify"
	"github.com/TallerTurnos01/taller-scheduler/internal/payments"
	"github.com/TallerTurnos01/taller-scheduler/internal/storage"
	ucPago "github.com/TallerTurnos01/taller-scheduler/internal/usecase/pago"
	ucTurno "github.com/TallerTurnos01/taller-scheduler/internal/usecase/turno"
)

// Deps son los colaboradores externos construidos una sola vez en main.
type Deps struct {
	Cache    *cache.AvailabilityCache
	Notify   *notify.Dispatcher
	Provider payments.PreferenceClient
	Photos   *storage.PhotoStore
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, deps Deps) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewTallerGormRepository(db)

	// ======================================================
	// USE CASES
	// ======================================================
	availabilityUC := ucTurno.NewGetAvailability(repo, deps.Cache)
	createTurnoUC := ucTurno.NewCreateTurno(repo, deps.Notify, deps.Cache)
	listClienteUC := ucTurno.NewListForCliente(repo)
	listTallerUC := ucTurno.NewListForTaller(repo)
	setMontoUC := ucTurno.NewSetMonto(repo)
	cancelTurnoUC := ucTurno.NewCancelTurno(repo, deps.Cache)

	initiatePagoUC := ucPago.NewInitiatePago(repo, deps.Provider)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	publicHandler := handlers.NewPublicHandler(db)
	usuarioHandler := handlers.NewUsuarioHandler(db)
	dashboardHandler := handlers.NewDashboardHandler(db)
	fotoHandler := handlers.NewFotoHandler(db, deps.Photos)

	turnoHandler := handlers.NewTurnoHandler(
		availabilityUC,
		createTurnoUC,
		listClienteUC,
		listTallerUC,
		setMontoUC,
		cancelTurnoUC,
	)

	pagoHandler := handlers.NewPagoHandler(initiatePagoUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/barrios", publicHandler.ListBarrios)
			publicAPI.GET("/talleres", publicHandler.ListTalleres)
			publicAPI.GET("/barrios/:id/talleres", publicHandler.ListTalleresByBarrio)
			publicAPI.GET("/talleres/:id", publicHandler.GetTaller)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/register-taller", authHandler.RegisterTaller)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/taller",
				middleware.RequireRole(models.RoleTaller),
				meHandler.GetMeTaller)
			secured.PATCH("/me/taller",
				middleware.RequireRole(models.RoleTaller),
				meHandler.UpdateMeTaller)
			secured.POST("/me/taller/foto",
				middleware.RequireRole(models.RoleTaller),
				fotoHandler.Upload)

			// ------------------------------
			// TURNOS
			// ------------------------------
			secured.GET("/talleres/:taller_id/disponibilidad/:fecha", turnoHandler.Availability)
			secured.POST("/talleres/:taller_id/turnos",
				middleware.RequireRole(models.RoleCliente),
				turnoHandler.Create)
			secured.GET("/me/turnos", turnoHandler.ListMine)
			secured.PATCH("/turnos/:id/monto",
				middleware.RequireRole(models.RoleTaller),
				turnoHandler.SetMonto)
			secured.PATCH("/turnos/:id/cancelar",
				middleware.RequireRole(models.RoleCliente),
				turnoHandler.Cancel)

			// ------------------------------
			// PAGOS
			// ------------------------------
			secured.POST("/pagos/preferencia",
				middleware.RequireRole(models.RoleCliente),
				pagoHandler.CreatePreferencia)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.GET("/dashboard", dashboardHandler.Get)
				admin.GET("/usuarios", usuarioHandler.List)
				admin.GET("/usuarios/:id", usuarioHandler.Get)
				admin.PUT("/usuarios/:id", usuarioHandler.Update)
				admin.DELETE("/usuarios/:id", usuarioHandler.Delete)
			}
		}
	}
}
