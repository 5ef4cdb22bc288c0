package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"mirnito/internal/adapter/api"
	"mirnito/internal/adapter/api/handler"
	apimiddleware "mirnito/internal/adapter/api/middleware"
	"mirnito/internal/adapter/api/router"
	"mirnito/internal/adapter/repository"
	"mirnito/internal/infrastructure/genai"
	"mirnito/internal/infrastructure/scheduler"
	"mirnito/internal/infrastructure/websocket"
	"mirnito/internal/usecase"
	"mirnito/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	// All state is in-memory and resets to the seed data on restart;
	// the session snapshot file is the one durable key.
	listingRepo := repository.NewMemoryListingRepository(repository.SeedListings())
	userRepo := repository.NewMemoryUserRepository(repository.SeedUsers())
	chatRepo := repository.NewMemoryChatRepository(repository.SeedChats(), repository.SeedMessages())
	sessionRepo := repository.NewFileSessionRepository(cfg.SessionFile)

	sched := scheduler.NewTimerScheduler(cfg.TimeUnit)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	descService, err := genai.NewGeminiDescriptionService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("Failed to initialize description service: %v", err)
	}

	notificationUseCase := usecase.NewNotificationUseCase(sched, wsManager, repository.SeedNotifications())
	authUseCase := usecase.NewAuthUseCase(userRepo, sessionRepo)
	userUseCase := usecase.NewUserUseCase(userRepo)
	listingUseCase := usecase.NewListingUseCase(listingRepo, notificationUseCase, sched, descService)
	chatUseCase := usecase.NewChatUseCase(chatRepo, listingRepo, notificationUseCase, sched, wsManager)
	navigationUseCase := usecase.NewNavigationUseCase(listingRepo)

	authUseCase.RestoreOnStartup(ctx)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(userRepo)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)

	handlers := router.Handlers{
		Auth:         handler.NewAuthHandler(authUseCase, userUseCase),
		Listing:      handler.NewListingHandler(listingUseCase, userUseCase),
		Admin:        handler.NewAdminHandler(listingUseCase, userUseCase),
		Chat:         handler.NewChatHandler(chatUseCase),
		Notification: handler.NewNotificationHandler(notificationUseCase),
		Navigation:   handler.NewNavigationHandler(navigationUseCase),
		WebSocket:    handler.NewWebSocketHandler(wsManager),
		Health:       handler.NewHealthHandler(),
	}

	router.Setup(e, handlers, authMiddleware, adminMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
