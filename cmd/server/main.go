package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/propdesk/property-management-api/internal/config"
	"github.com/propdesk/property-management-api/internal/constants"
	"github.com/propdesk/property-management-api/internal/database"
	"github.com/propdesk/property-management-api/internal/handlers"
	"github.com/propdesk/property-management-api/internal/logger"
	"github.com/propdesk/property-management-api/internal/middleware"
	"github.com/propdesk/property-management-api/internal/realtime"
	"github.com/propdesk/property-management-api/internal/repository"
	"github.com/propdesk/property-management-api/internal/services"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if err := logger.Init(&logger.LogConfig{
		Level:       cfg.LogLevel,
		Environment: cfg.Environment,
		ServiceName: cfg.ServiceName,
	}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Get().Sync()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		logger.Get().Fatal("Failed to connect to database", zap.Error(err))
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		logger.Get().Fatal("Failed to run migrations", zap.Error(err))
	}
	if err := database.AddIndexes(database.GetDB()); err != nil {
		logger.Get().Fatal("Failed to add indexes", zap.Error(err))
	}

	// Push surfaces: shared chat channel and the task board event stream.
	chatHub := realtime.NewChatHub()
	taskHub := realtime.NewHub()
	go chatHub.Run()
	go taskHub.Run()

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(logger.Middleware())

	metrics := middleware.NewHTTPMetrics(cfg.ServiceName)
	r.Use(metrics.Middleware())

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // username (empty for default user)
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		logger.Get().Fatal("Failed to create Redis store", zap.Error(err))
	}
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax (1=Strict, 2=Lax, 3=None)
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize repositories
	db := database.GetDB()
	propertyRepo := repository.NewPropertyRepository(db)
	tenantRepo := repository.NewTenantRepository(db)
	leaseRepo := repository.NewLeaseRepository(db)
	maintenanceRepo := repository.NewMaintenanceRepository(db)
	financialRepo := repository.NewFinancialRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	userRepo := repository.NewUserRepository(db)
	contactRepo := repository.NewContactRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	propertyService := services.NewPropertyService(propertyRepo)
	tenantService := services.NewTenantService(tenantRepo, propertyRepo, leaseRepo)
	leaseService := services.NewLeaseService(leaseRepo)
	maintenanceService := services.NewMaintenanceService(maintenanceRepo, propertyRepo, tenantRepo)
	financeService := services.NewFinanceService(propertyRepo, maintenanceRepo, financialRepo)
	taskService := services.NewTaskService(taskRepo, taskHub)
	dashboardService := services.NewDashboardService(propertyRepo, tenantRepo, leaseRepo, maintenanceRepo, financialRepo, taskRepo)
	contactService := services.NewContactService(contactRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	propertyHandler := handlers.NewPropertyHandler(propertyService)
	tenantHandler := handlers.NewTenantHandler(tenantService)
	leaseHandler := handlers.NewLeaseHandler(leaseService)
	maintenanceHandler := handlers.NewMaintenanceHandler(maintenanceService)
	financialsHandler := handlers.NewFinancialsHandler(financeService)
	taskHandler := handlers.NewTaskHandler(taskService, taskHub)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	contactHandler := handlers.NewContactHandler(contactService)
	chatHandler := handlers.NewChatHandler(chatHub)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Property Management API is running",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Support chat is open to visitors, like the contact form.
	r.GET("/ws/chat", chatHandler.Connect)

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.POST("/forgot-password", authHandler.ForgotPassword)
			auth.POST("/reset-password", authHandler.ResetPassword)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// Contact form (public)
		api.POST("/contact", contactHandler.Submit)

		// Property routes (protected)
		properties := api.Group("/properties")
		properties.Use(middleware.RequireAuth())
		{
			properties.GET("", propertyHandler.ListProperties)
			properties.POST("", propertyHandler.CreateProperty)
			properties.GET("/:id", propertyHandler.GetProperty)
			properties.PUT("/:id", propertyHandler.UpdateProperty)
			properties.DELETE("/:id", propertyHandler.DeleteProperty)
		}

		// Tenant routes (protected)
		tenants := api.Group("/tenants")
		tenants.Use(middleware.RequireAuth())
		{
			tenants.GET("", tenantHandler.ListTenants)
			tenants.POST("", tenantHandler.CreateTenant)
			tenants.GET("/:id", tenantHandler.GetTenant)
			tenants.PUT("/:id", tenantHandler.UpdateTenant)
			tenants.DELETE("/:id", tenantHandler.DeleteTenant)
		}

		// Lease routes (protected)
		leases := api.Group("/leases")
		leases.Use(middleware.RequireAuth())
		{
			leases.GET("", leaseHandler.ListLeases)
			leases.POST("", leaseHandler.CreateLease)
			leases.GET("/:id", leaseHandler.GetLease)
			leases.PUT("/:id", leaseHandler.UpdateLease)
			leases.DELETE("/:id", leaseHandler.DeleteLease)
		}

		// Maintenance routes (protected)
		maintenance := api.Group("/maintenance")
		maintenance.Use(middleware.RequireAuth())
		{
			maintenance.GET("/board", maintenanceHandler.GetBoard)
			maintenance.POST("", maintenanceHandler.CreateRequest)
			maintenance.GET("/:id", maintenanceHandler.GetRequest)
			maintenance.PUT("/:id", maintenanceHandler.UpdateRequest)
			maintenance.DELETE("/:id", maintenanceHandler.DeleteRequest)
		}

		// Financial routes (protected)
		financials := api.Group("/financials")
		financials.Use(middleware.RequireAuth())
		{
			financials.GET("", financialsHandler.GetReport)
			financials.GET("/:propertyId/issues", financialsHandler.GetPropertyIssues)
			financials.POST("/payments", financialsHandler.SavePayments)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(middleware.RequireAuth())
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.GET("/board", taskHandler.GetBoard)
			tasks.GET("/stream", taskHandler.StreamEvents)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PATCH("/:id", taskHandler.UpdateTask)
			tasks.POST("/:id/archive", taskHandler.ArchiveTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}

		// Dashboard (protected)
		api.GET("/dashboard", middleware.RequireAuth(), dashboardHandler.GetOverview)
	}

	// Start server
	logger.Get().Info("Server starting", zap.String("addr", cfg.HTTPAddr))
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logger.Get().Fatal("Failed to start server", zap.Error(err))
	}
}
