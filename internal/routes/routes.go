package routes

import (
	"github.com/gin-gonic/gin"

	"simplecrm/internal/handlers"
	"simplecrm/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	jwtSecret []byte,
	authHandler *handlers.AuthHandler,
	agentHandler *handlers.AgentHandler,
	leadHandler *handlers.LeadHandler,
	categoryHandler *handlers.CategoryHandler,
	reportHandler *handlers.ReportHandler,
) *gin.Engine {

	// ---- public
	r.POST("/login", authHandler.Login)
	r.POST("/signup", authHandler.Signup)

	// ---- protected
	r.Use(middleware.AuthMiddleware(jwtSecret))

	// AGENTS (организатор)
	agents := r.Group("/agents", middleware.RequireOrganizer())
	{
		agents.POST("/", agentHandler.Create)
		agents.GET("/", agentHandler.List)
		agents.GET("/:id", agentHandler.GetByID)
		agents.PUT("/:id", agentHandler.Update)
		agents.DELETE("/:id", agentHandler.Delete)
	}

	// LEADS
	leads := r.Group("/leads")
	{
		// чтение доступно обеим ролям, запись сервис ограничивает сам
		leads.GET("/", leadHandler.List)
		leads.GET("/unassigned", leadHandler.ListUnassigned)
		leads.GET("/:id", leadHandler.GetByID)
		leads.POST("/", middleware.RequireOrganizer(), leadHandler.Create)
		leads.PUT("/:id", middleware.RequireOrganizer(), leadHandler.Update)
		leads.DELETE("/:id", middleware.RequireOrganizer(), leadHandler.Delete)
		leads.GET("/:id/assign", middleware.RequireOrganizer(), leadHandler.AssignableAgents)
		leads.POST("/:id/assign", middleware.RequireOrganizer(), leadHandler.Assign)
		// смену категории разрешаем и агенту
		leads.POST("/:id/category", leadHandler.UpdateCategory)
	}

	// CATEGORIES
	categories := r.Group("/categories")
	{
		categories.GET("/", categoryHandler.List)
		categories.GET("/:id", categoryHandler.GetByID)
		categories.POST("/", middleware.RequireOrganizer(), categoryHandler.Create)
		categories.PUT("/:id", middleware.RequireOrganizer(), categoryHandler.Update)
		categories.DELETE("/:id", middleware.RequireOrganizer(), categoryHandler.Delete)
	}

	// REPORTS (организатор)
	reports := r.Group("/reports", middleware.RequireOrganizer())
	{
		reports.GET("/summary", reportHandler.GetSummary)
		reports.GET("/leads/export", reportHandler.ExportLeads)
	}

	return r
}
