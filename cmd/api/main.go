package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/vibra-app/vibra/internal/domain/contract"
	handlerHttp "github.com/vibra-app/vibra/internal/handler/http"
	"github.com/vibra-app/vibra/internal/infrastructure/config"
	"github.com/vibra-app/vibra/internal/infrastructure/idgen"
	"github.com/vibra-app/vibra/internal/infrastructure/jwt"
	"github.com/vibra-app/vibra/internal/infrastructure/logger"
	"github.com/vibra-app/vibra/internal/infrastructure/memstore"
	"github.com/vibra-app/vibra/internal/infrastructure/sessionstore"
	"github.com/vibra-app/vibra/internal/infrastructure/validator"
	"github.com/vibra-app/vibra/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Register custom validators
	validator.RegisterCustomValidators()

	// Initialize Gin router
	router := gin.Default()

	appConfig := config.NewConfig()
	appLogger := logger.NewStdLogger()
	appValidator := validator.NewValidator()
	uuidGenerator := idgen.NewUUIDGenerator()
	idGenerator := idgen.NewTimestampGenerator()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}
	jwtManager := jwt.NewJWTManager(jwtSecret, appConfig.GetAccessTokenExpiry())
	jwtService := jwt.NewJWTService(jwtManager)

	// Dependency Injection: Repositories over the seeded dataset
	store := memstore.NewStore(memstore.Seed())
	userRepo := memstore.NewUserRepository(store)
	videoRepo := memstore.NewVideoRepository(store)
	commentRepo := memstore.NewCommentRepository(store)
	txRepo := memstore.NewTransactionRepository(store)
	reportRepo := memstore.NewReportRepository(store)

	// Optional Dependency Injection: Redis-backed session store
	var sessionStore contract.ISessionStore = sessionstore.NewMemoryStore()
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		rdb, err := sessionstore.NewRedisFromURL(context.Background(), redisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer rdb.Close()
		sessionStore = sessionstore.NewRedisStore(rdb, appConfig.GetAccessTokenExpiry())
	}

	sessionUsecase := usecase.NewSessionUsecase(
		userRepo, sessionStore, jwtService, appLogger,
		appConfig, appValidator, uuidGenerator, idGenerator,
	)

	// Dependency Injection: Usecases
	feedUsecase := usecase.NewFeedUsecase(videoRepo, appLogger, appConfig, nil)
	sessionUsecase.SetFeedRegistry(feedUsecase)
	walletUsecase := usecase.NewWalletUsecase(userRepo, txRepo, appLogger, appConfig)
	discoverUsecase := usecase.NewDiscoverUsecase(videoRepo)
	uploadUsecase := usecase.NewUploadUsecase(userRepo, videoRepo, idGenerator, appLogger, appConfig)
	moderationUsecase := usecase.NewModerationUsecase(reportRepo, userRepo, videoRepo, commentRepo, appLogger)
	adminUsecase := usecase.NewAdminUsecase(userRepo, videoRepo, txRepo)

	// Setup API routes
	appRouter := handlerHttp.NewRouter(
		sessionUsecase, feedUsecase, walletUsecase, discoverUsecase,
		uploadUsecase, moderationUsecase, adminUsecase,
		userRepo, videoRepo, commentRepo, jwtService,
	)
	appRouter.SetupRoutes(router)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
