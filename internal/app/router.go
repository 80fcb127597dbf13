package app

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Little-Town-Labs/homeschooltranscripttracker/docs"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/config"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/middleware"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/internal/model"
	"github.com/Little-Town-Labs/homeschooltranscripttracker/pkg/monitoring"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerGuardianRoutes(authGroup, c, repos)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		// gateway-to-server webhook, authenticated by payload not JWT
		public.POST("/billing/notifications", c.billing.Notifications)
	}
}

func (a *App) registerGuardianRoutes(rg *gin.RouterGroup, c *controllers, repos *repositories) {
	rg.GET("/profile", c.auth.GetProfile)
	rg.PUT("/profile", c.auth.UpdateProfile)
	rg.GET("/dashboard", c.dashboard.GetDashboard)

	// academic records; writes need a live subscription, reads never do
	academic := rg.Group("/")
	academic.Use(middleware.SubscriptionRequired(repos.subscription))
	{
		academic.GET("/students", c.student.List)
		academic.POST("/students", c.student.Create)
		academic.GET("/students/:id", c.student.Get)
		academic.PUT("/students/:id", c.student.Update)
		academic.DELETE("/students/:id", c.student.Delete)

		academic.GET("/students/:id/courses", c.course.ListByStudent)
		academic.POST("/students/:id/courses", c.course.Create)
		academic.GET("/students/:id/test-scores", c.testScore.ListByStudent)
		academic.POST("/students/:id/test-scores", c.testScore.Create)
		academic.GET("/students/:id/activities", c.activity.ListByStudent)
		academic.POST("/students/:id/activities", c.activity.Create)
		academic.GET("/students/:id/transcript", c.transcript.GetTranscript)
		academic.GET("/students/:id/requirements", c.transcript.GetRequirements)
		academic.POST("/students/:id/grades/recalculate", c.grade.Recalculate)

		academic.GET("/courses/:id", c.course.Get)
		academic.PUT("/courses/:id", c.course.Update)
		academic.DELETE("/courses/:id", c.course.Delete)
		academic.PUT("/courses/:id/grade", c.grade.Record)
		academic.DELETE("/courses/:id/grade", c.grade.Delete)

		academic.PUT("/test-scores/:id", c.testScore.Update)
		academic.DELETE("/test-scores/:id", c.testScore.Delete)
		academic.POST("/test-scores/:id/report", c.testScore.UploadReport)
		academic.PUT("/activities/:id", c.activity.Update)
		academic.DELETE("/activities/:id", c.activity.Delete)
	}

	// household management and billing, primary guardian only
	primary := rg.Group("/")
	primary.Use(middleware.RoleMiddleware(model.PrimaryGuardian))
	{
		primary.POST("/guardians/invite", c.auth.InviteGuardian)
		primary.POST("/billing/checkout", c.billing.Checkout)
		primary.POST("/billing/cancel", c.billing.Cancel)
	}

	rg.GET("/billing/subscription", c.billing.GetSubscription)
}
