package routes

import (
	"github.com/gin-gonic/gin"
	_ "github.com/linskybing/client-intake/docs"
	"github.com/linskybing/client-intake/internal/api/handlers"
	"github.com/linskybing/client-intake/internal/api/middleware"
	"github.com/linskybing/client-intake/internal/application"
	"github.com/linskybing/client-intake/internal/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func RegisterRoutes(r *gin.Engine, svc *application.Services) {
	// init
	handlers_instance := handlers.New(svc, r)
	adminOnly := middleware.AdminAuthMiddleware()
	listGuard := middleware.OptionalAdminAuth(config.RequireAdminToken)

	r.GET("/", handlers.Health)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		admin := api.Group("/admin")
		{
			admin.POST("/login", handlers_instance.Admin.Login)
			admin.GET("/export", adminOnly, handlers_instance.Admin.Export)
			admin.GET("/audit", adminOnly, handlers_instance.Audit.ListAuditLogs)
			admin.GET("/ws/submissions", adminOnly, handlers_instance.Feed)
		}

		WizardRoutes(api, handlers_instance.Wizard)

		api.POST("/submit", handlers_instance.Submission.CreateSubmission)
		api.GET("/all", listGuard, handlers_instance.Submission.ListSubmissions)
		api.GET("/:id", listGuard, handlers_instance.Submission.GetSubmission)
		api.DELETE("/:id", listGuard, handlers_instance.Submission.DeleteSubmission)
	}
}

// WizardRoutes registers the server-side wizard session endpoints
func WizardRoutes(rg *gin.RouterGroup, h *handlers.WizardHandler) {
	wizard := rg.Group("/wizard")
	{
		wizard.POST("", h.StartDraft)
		wizard.GET("/:id", h.GetDraft)
		wizard.PATCH("/:id", h.PatchForm)
		wizard.POST("/:id/toggle", h.ToggleOption)
		wizard.POST("/:id/next", h.Next)
		wizard.POST("/:id/back", h.Back)
		wizard.POST("/:id/submit", h.Submit)
	}
}
