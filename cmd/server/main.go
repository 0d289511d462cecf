package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/hmorita/group-task-api/internal/config"
	"github.com/hmorita/group-task-api/internal/constants"
	"github.com/hmorita/group-task-api/internal/database"
	"github.com/hmorita/group-task-api/internal/handlers"
	"github.com/hmorita/group-task-api/internal/logger"
	"github.com/hmorita/group-task-api/internal/middleware"
	"github.com/hmorita/group-task-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zlog, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		zlog.Fatal("failed to connect to database", "error", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		zlog.Fatal("failed to run migrations", "error", err)
	}

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Logger(), middleware.Recovery(zlog))

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
		zlog.Fatal("failed to create redis store", "error", err)
	}
	// Configure session options based on environment
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax (1=Strict, 2=Lax, 3=None)
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	db := database.GetDB()

	// Initialize handlers
	userHandler := handlers.NewUserHandler(services.NewUserService(db), zlog)
	groupHandler := handlers.NewGroupHandler(services.NewGroupService(db), zlog)
	inviteHandler := handlers.NewInviteHandler(services.NewInviteService(db), zlog)
	taskHandler := handlers.NewTaskHandler(services.NewTaskService(db), zlog)
	imageHandler := handlers.NewImageHandler(services.NewImageService(db, cfg.UploadDir), zlog)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Group Task API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", userHandler.Signup)
			auth.POST("/login", userHandler.Login)
			auth.POST("/logout", userHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), userHandler.GetCurrentUser)
		}

		// User account routes
		users := api.Group("/users")
		{
			users.POST("/edit", userHandler.Edit)
			users.POST("/delete", userHandler.Delete)
		}

		// Group routes
		groups := api.Group("/groups")
		{
			groups.POST("/create", groupHandler.Create)
			groups.POST("/join", groupHandler.Join)
			groups.POST("/leave", groupHandler.Leave)
			groups.POST("/delete", groupHandler.Delete)
			groups.POST("/list", groupHandler.List)
			groups.POST("/members", groupHandler.Members)
		}

		// Invite routes
		invites := api.Group("/invites")
		{
			invites.POST("/create", inviteHandler.Create)
			invites.POST("/pending", inviteHandler.Pending)
			invites.POST("/sent", inviteHandler.Sent)
			invites.POST("/respond", inviteHandler.Respond)
			invites.POST("/delete", inviteHandler.Delete)
		}

		// Task routes
		tasks := api.Group("/tasks")
		{
			tasks.POST("/add", taskHandler.Add)
			tasks.POST("/edit", taskHandler.Edit)
			tasks.POST("/delete", taskHandler.Delete)
			tasks.POST("/list/user", taskHandler.ListUser)
			tasks.POST("/list/group", taskHandler.ListGroup)
			tasks.POST("/list/completed", taskHandler.ListCompleted)
			tasks.POST("/toggle", taskHandler.Toggle)
		}

		// Image routes
		images := api.Group("/images")
		{
			images.POST("/user/upload", imageHandler.UploadUser)
			images.POST("/user/get", imageHandler.GetUser)
			images.POST("/user/remove", imageHandler.RemoveUser)
			images.POST("/task/upload", imageHandler.UploadTask)
			images.POST("/task/get", imageHandler.GetTask)
		}
	}

	// Start server
	zlog.Info("starting server", "port", "8080")
	if err := r.Run(":8080"); err != nil {
		zlog.Fatal("server exited", "error", err)
	}
}
