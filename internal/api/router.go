package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/kanbanhq/board-api/docs"
	"github.com/kanbanhq/board-api/internal/api/handler"
	"github.com/kanbanhq/board-api/internal/api/middleware"
	"github.com/kanbanhq/board-api/internal/core/service"
	"github.com/kanbanhq/board-api/internal/infrastructure/config"
	mongodb "github.com/kanbanhq/board-api/internal/infrastructure/db/mongo"
	redisdb "github.com/kanbanhq/board-api/internal/infrastructure/db/redis"
	"github.com/kanbanhq/board-api/internal/infrastructure/queue"
)

// NewRouter builds the Echo instance with all routes registered and returns
// it together with the stats refresher, which the caller must Start.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, *queue.StatsRefresher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("kanban"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	boardRepo := mongodb.NewBoardRepository(db)
	taskRepo := mongodb.NewTaskRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	loader := mongodb.NewSnapshotLoader(boardRepo, taskRepo, commentRepo)
	statsCache := redisdb.NewStatsCache(rdb)

	// --- Services ---
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	boardService := service.NewBoardService(boardRepo, taskRepo, commentRepo, userRepo, loader, statsCache, log)
	refresher := queue.NewStatsRefresher(cfg.StatsWorkers, boardService, log)
	boardService.SetStatsNotifier(refresher)
	taskService := service.NewTaskService(taskRepo, commentRepo, userRepo, loader, refresher, log)
	commentService := service.NewCommentService(commentRepo, userRepo, loader, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	boardHandler := handler.NewBoardHandler(boardService)
	taskHandler := handler.NewTaskHandler(taskService)
	commentHandler := handler.NewCommentHandler(commentService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	// --- Public routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Authenticated API ---
	v1 := e.Group("/v1", middleware.Auth(cfg.JWTSecret))

	v1.GET("/email-check", authHandler.EmailCheck)

	v1.GET("/boards", boardHandler.List)
	v1.POST("/boards", boardHandler.Create)
	v1.GET("/boards/:board_id", boardHandler.Get)
	v1.PATCH("/boards/:board_id", boardHandler.Update)
	v1.DELETE("/boards/:board_id", boardHandler.Delete)
	v1.GET("/boards/:board_id/members", boardHandler.Members)

	v1.POST("/tasks", taskHandler.Create)
	v1.GET("/tasks/assigned-to-me", taskHandler.AssignedToMe)
	v1.GET("/tasks/reviewing", taskHandler.Reviewing)
	v1.PATCH("/tasks/:task_id", taskHandler.Update)
	v1.DELETE("/tasks/:task_id", taskHandler.Delete)

	v1.GET("/tasks/:task_id/comments", commentHandler.List)
	v1.POST("/tasks/:task_id/comments", commentHandler.Create)
	v1.DELETE("/tasks/:task_id/comments/:comment_id", commentHandler.Delete)

	return e, refresher
}
