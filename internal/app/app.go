package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appHTTP "linkup/internal/controller/http"
	"linkup/internal/realtime"
	"linkup/internal/repo/persistent"
	"linkup/internal/usecase"
	"linkup/pkg/config"
	"linkup/pkg/jwt"
	"linkup/pkg/logger"
	"linkup/pkg/middleware"
	"linkup/pkg/queue"
	"linkup/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, queueClient *queue.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Repositories
	postRepo := persistent.NewPostRepository(db)
	commentRepo := persistent.NewCommentRepository(db)
	likeRepo := persistent.NewLikeRepository(db)
	profileRepo := persistent.NewProfileRepository(db)
	notificationRepo := persistent.NewNotificationRepository(db)

	// Realtime change feed
	bus := realtime.NewBus(redisClient)

	// Use cases
	mediaUseCase := usecase.NewMediaUseCase(s3Client, cfg, log)
	postUseCase := usecase.NewPostUseCase(postRepo, likeRepo, mediaUseCase, log)
	var notifier usecase.NotificationPublisher
	if queueClient != nil {
		notifier = queueClient
	}
	commentUseCase := usecase.NewCommentUseCase(commentRepo, postRepo, bus, notifier, log)
	profileUseCase := usecase.NewProfileUseCase(profileRepo, log)
	authUseCase := usecase.NewAuthUseCase(profileRepo, jwtService, log)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo, log)

	// Drain queued notification tasks into the notifications table
	if queueClient != nil {
		if err := queueClient.ConsumeNotificationTasks(notificationUseCase.HandleTask); err != nil {
			log.Error("Failed to start notification consumer: %v", err)
		}
	}

	// HTTP handlers
	authHandler := appHTTP.NewAuthHandler(authUseCase, log)
	postHandler := appHTTP.NewPostHandler(postUseCase, log)
	commentHandler := appHTTP.NewCommentHandler(commentUseCase, bus, profileRepo, log)
	profileHandler := appHTTP.NewProfileHandler(profileUseCase, mediaUseCase, log)
	notificationHandler := appHTTP.NewNotificationHandler(notificationUseCase, log)
	mediaHandler := appHTTP.NewMediaHandler(mediaUseCase, log)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.POST("/api/v1/auth/register", authHandler.Register)
	r.POST("/api/v1/auth/login", authHandler.Login)

	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(jwtService))
	api.Use(middleware.RateLimitMiddleware(redisClient, 100, time.Minute))

	{
		api.POST("/posts", postHandler.UpsertPost)
		api.GET("/posts", postHandler.ListPosts)
		api.GET("/posts/:id", postHandler.GetPost)
		api.DELETE("/posts/:id", postHandler.DeletePost)
		api.POST("/posts/:id/likes", postHandler.LikePost)
		api.DELETE("/posts/:id/likes", postHandler.UnlikePost)

		api.POST("/posts/:id/comments", commentHandler.CreateComment)
		api.GET("/posts/:id/comments/stream", commentHandler.StreamComments)
		api.DELETE("/comments/:id", commentHandler.DeleteComment)

		api.GET("/profiles/:id", profileHandler.GetProfile)
		api.PUT("/profile", profileHandler.UpdateProfile)

		api.GET("/notifications", notificationHandler.ListNotifications)

		api.GET("/media/url", mediaHandler.ResolveURL)
		api.POST("/media/download", mediaHandler.Download)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		log.Info("LinkUp server starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	if queueClient != nil {
		queueClient.Close()
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Server exited")
}
