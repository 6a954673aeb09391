package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"adwallet/pkg/cache"
	"adwallet/pkg/config"
	"adwallet/pkg/database"
	"adwallet/pkg/jwt"
	"adwallet/pkg/logger"
	"adwallet/pkg/middleware"
	"adwallet/pkg/queue"
	"adwallet/pkg/s3"
	adsHTTP "adwallet/services/ads/controller/http"
	adsPersistent "adwallet/services/ads/repo/persistent"
	adsUsecase "adwallet/services/ads/usecase"
	authHTTP "adwallet/services/auth/controller/http"
	authPersistent "adwallet/services/auth/repo/persistent"
	authUsecase "adwallet/services/auth/usecase"
	walletHTTP "adwallet/services/wallet/controller/http"
	walletPersistent "adwallet/services/wallet/repo/persistent"
	walletUsecase "adwallet/services/wallet/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "adwallet/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	jwtService  *jwt.Service
	queueClient *queue.Client
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v (continuing without cache)", err)
		redisClient = nil
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		return nil, err
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v (continuing without queue)", err)
		queueClient = nil
	}

	jwtService := jwt.NewService(cfg.JWTSecret, cfg.JWTRefreshSecret)

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		jwtService:  jwtService,
		queueClient: queueClient,
	}, nil
}

func (a *App) Run() error {
	// Initialize repositories
	userRepo := authPersistent.NewUserRepository(a.db)
	adminRepo := authPersistent.NewAdminRepository(a.db)
	adRepo := adsPersistent.NewAdRepository(a.db)
	interactionRepo := adsPersistent.NewInteractionRepository(a.db)
	walletRepo := walletPersistent.NewWalletRepository(a.db)

	// Initialize use cases
	authUC := authUsecase.NewAuthUseCase(userRepo, adminRepo, a.jwtService, a.log)
	adUC := adsUsecase.NewAdUseCase(adRepo, a.s3Client, a.log)
	interactionUC := adsUsecase.NewInteractionUseCase(interactionRepo, a.redisClient, a.queueClient, a.log)
	walletUC := walletUsecase.NewWalletUseCase(walletRepo, a.log)

	// Initialize HTTP handlers
	authHandler := authHTTP.NewAuthHandler(authUC)
	adminHandler := authHTTP.NewAdminHandler(authUC)
	adHandler := adsHTTP.NewAdHandler(adUC, interactionUC, a.log)
	walletHandler := walletHTTP.NewWalletHandler(walletUC, a.log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Rate limiting (no-op when redis is unavailable)
	r.Use(middleware.RateLimitMiddleware(
		a.redisClient,
		a.cfg.RateLimitRequests,
		time.Duration(a.cfg.RateLimitWindow)*time.Minute,
	))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	users := r.Group("/users")
	{
		users.POST("/register", authHandler.Register)
		users.POST("/login", authHandler.Login)
		users.POST("/refresh-token", authHandler.RefreshToken)
		users.PUT("/wallet", walletHandler.UpdateWallet)
		users.GET("/wallet/:id", walletHandler.GetBalance)
		users.GET("/wallet/:id/transactions", walletHandler.GetTransactions)
	}

	admin := r.Group("/admin")
	{
		admin.POST("/register", adminHandler.Register)
		admin.POST("/login", adminHandler.Login)
		admin.POST("/refresh-token", adminHandler.RefreshToken)
	}

	ads := r.Group("/ads")
	{
		ads.GET("/view/:adId", adHandler.ViewAd)
		ads.POST("/click/:adId", adHandler.ClickAd)
		ads.GET("/all", adHandler.GetAllAds)

		protected := ads.Group("")
		protected.Use(middleware.AuthMiddleware(a.jwtService))
		{
			protected.POST("/create", adHandler.CreateAd)
			protected.POST("/media", adHandler.UploadMedia)
		}
	}

	// Create HTTP server
	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		a.log.Info("Ad wallet service starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down ad wallet service...")
}

func (a *App) Shutdown() error {
	// The context is used to inform the server it has 5 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	// Close queue connection
	if a.queueClient != nil {
		a.queueClient.Close()
	}

	// Shutdown server
	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	a.log.Info("Ad wallet service exited")
	return nil
}
