package app

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"simplecrm/internal/config"
	"simplecrm/internal/handlers"
	"simplecrm/internal/pdf"
	"simplecrm/internal/repositories"
	"simplecrm/internal/routes"
	"simplecrm/internal/services"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "simplecrm/docs"
)

func Run() {
	cfg := config.LoadConfig()

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("failed to open database: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()

	// === Repos ===
	userRepo := repositories.NewUserRepository(db)
	orgRepo := repositories.NewOrganizationRepository(db)
	agentRepo := repositories.NewAgentRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	leadRepo := repositories.NewLeadRepository(db)

	// === Services ===
	jwtSecret := []byte(cfg.JWT.Secret)
	authService := services.NewAuthService(jwtSecret)
	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
	)

	userService := services.NewUserService(userRepo, orgRepo, agentRepo, authService)
	agentService := services.NewAgentService(agentRepo, userRepo, authService, emailService)
	leadService := services.NewLeadService(leadRepo, agentRepo, categoryRepo, emailService, cfg.Email.NotifyEmail)
	categoryService := services.NewCategoryService(categoryRepo)
	reportService := services.NewReportService(leadRepo, agentRepo, pdf.NewReportGenerator())

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(userService)
	agentHandler := handlers.NewAgentHandler(agentService)
	leadHandler := handlers.NewLeadHandler(leadService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	reportHandler := handlers.NewReportHandler(reportService)

	// === Gin ===
	router := gin.Default()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	router.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(
		router,
		jwtSecret,
		authHandler,
		agentHandler,
		leadHandler,
		categoryHandler,
		reportHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("server listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("failed to start server: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
