package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	api_middleware "github.com/vertuarena/arena/api/middleware"
	v1 "github.com/vertuarena/arena/api/v1"
	"github.com/vertuarena/arena/internal/apperrors"
	"github.com/vertuarena/arena/internal/chat"
	"github.com/vertuarena/arena/internal/game"
	"github.com/vertuarena/arena/internal/matchmaking"
	"github.com/vertuarena/arena/internal/notify"
	"github.com/vertuarena/arena/internal/stats"
	"github.com/vertuarena/arena/internal/user"
	"github.com/vertuarena/arena/pkg/db"
	"github.com/vertuarena/arena/websocket"
	"github.com/vertuarena/arena/websocket/actions"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️File .env not found, using system values")
	}

	db.Init()
	db.DB.AutoMigrate(
		&user.User{},
		&stats.PlayerStats{},
		&game.Game{},
		&matchmaking.QueueEntry{},
		&chat.ChatMessage{},
	)

	publisher := notify.NewRedisPublisher(db.Rdb)
	if err := publisher.SubscribeMessages(); err != nil {
		log.Fatalf("error subscribing to events: %v", err)
	}

	userRepo := user.NewGormUserRepository(db.DB)
	statsRepo := stats.NewGormStatsRepository(db.DB)
	gameRepo := game.NewGormGameRepository(db.DB)
	queueRepo := matchmaking.NewGormQueueRepository(db.DB)
	chatRepo := chat.NewGormChatRepository(db.DB)

	statsService := stats.NewStatsService(statsRepo)
	userService := user.NewUserService(userRepo, statsService)
	gameService := game.NewGameService(gameRepo, userRepo, statsService, publisher)
	matchmakingService := matchmaking.NewMatchmakingService(queueRepo, statsService, gameService)
	chatService := chat.NewChatService(chatRepo, gameRepo, userRepo, publisher)

	v1.UserService = userService
	v1.GameService = gameService
	v1.StatsService = statsService
	v1.MatchmakingService = matchmakingService
	v1.ChatService = chatService
	actions.ChatService = chatService

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.HTTPErrorHandler = apperrors.HTTPErrorHandler

	auth := api_middleware.SetupJWTMiddleware()

	api := e.Group("/api/v1")
	v1.RegisterUserRoutes(api.Group("/users"), auth)
	v1.RegisterGameRoutes(api.Group("/games", auth))
	v1.RegisterMatchmakingRoutes(api.Group("/matchmaking", auth))
	v1.RegisterStatsRoutes(api.Group("", auth))
	v1.RegisterChatRoutes(api.Group("/chat", auth))

	e.GET("/ws", websocket.WebSocketHandler)

	e.Logger.Fatal(e.Start(":8080"))
}
