package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wfunc/rogue-chain/internal/config"
	"github.com/wfunc/rogue-chain/internal/middleware"
	"github.com/wfunc/rogue-chain/internal/service"
	"github.com/wfunc/rogue-chain/internal/websocket"
)

// Router API路由器
type Router struct {
	engine         *gin.Engine
	db             *gorm.DB
	services       *service.Services
	authHandler    *AuthHandler
	gameHandler    *GameHandler
	wsHandler      *WebSocketHandler
	authMiddleware *middleware.AuthMiddleware
	log            *zap.Logger
}

// NewRouter 创建路由器
func NewRouter(db *gorm.DB, svcConfig *service.Config, wsConfig *config.WebSocketConfig, log *zap.Logger) *Router {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(gin.Logger())

	// 事件经Hub推送给在线玩家
	hub := websocket.NewHub(log)
	go hub.Run()

	services := service.NewServices(db, svcConfig, hub, log)

	router := &Router{
		engine:         engine,
		db:             db,
		services:       services,
		authHandler:    NewAuthHandler(services.Auth),
		gameHandler:    NewGameHandler(services.Engine),
		wsHandler:      NewWebSocketHandler(hub, wsConfig, log),
		authMiddleware: middleware.NewAuthMiddleware(services.Auth),
		log:            log,
	}

	router.setupRoutes()

	return router
}

// setupRoutes 设置路由
func (r *Router) setupRoutes() {
	// 健康检查
	r.engine.GET("/health", r.healthCheck)

	v1 := r.engine.Group("/api/v1")
	{
		// 认证相关路由（不需要认证）
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
			auth.POST("/refresh", r.authHandler.RefreshToken)
		}

		// 游戏生命周期路由（需要认证）
		games := v1.Group("/games")
		games.Use(r.authMiddleware.RequireAuth())
		{
			games.POST("", r.gameHandler.CreateGame)
			games.GET("", r.gameHandler.ListGames)
			games.GET("/:id", r.gameHandler.GetGame)
			games.POST("/:id/levels/:level/start", r.gameHandler.StartLevel)
			games.POST("/:id/levels/:level/complete", r.gameHandler.CompleteLevel)
			games.GET("/:id/levels/:level/items", r.gameHandler.GetLevelItems)
			games.GET("/:id/levels/:level/world-items", r.gameHandler.ListWorldItems)
			games.POST("/:id/pause", r.gameHandler.PauseGame)
			games.POST("/:id/resume", r.gameHandler.ResumeGame)
			games.POST("/:id/end", r.gameHandler.EndGame)
			games.POST("/:id/items/:item_id/pickup", r.gameHandler.PickupItem)
		}

		// 玩家状态与背包路由（需要认证）
		player := v1.Group("/player")
		player.Use(r.authMiddleware.RequireAuth())
		{
			player.GET("/stats", r.gameHandler.GetPlayerStats)
			player.GET("/inventory", r.gameHandler.GetInventory)
			player.GET("/inventory/summary", r.gameHandler.GetInventorySummary)
			player.POST("/inventory/use", r.gameHandler.UseItem)
			player.POST("/inventory/transfer", r.gameHandler.TransferItem)
		}
	}

	// WebSocket事件推送
	ws := r.engine.Group("/ws")
	ws.Use(r.authMiddleware.RequireAuth())
	{
		ws.GET("", r.wsHandler.Handle)
	}

	// 404处理
	r.engine.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"code":    "NOT_FOUND",
			"message": "接口不存在",
		})
	})
}

// healthCheck 健康检查
func (r *Router) healthCheck(c *gin.Context) {
	sqlDB, err := r.db.DB()
	if err != nil {
		c.JSON(500, gin.H{
			"status":  "unhealthy",
			"message": "数据库连接失败",
		})
		return
	}

	if err := sqlDB.Ping(); err != nil {
		c.JSON(500, gin.H{
			"status":  "unhealthy",
			"message": "数据库ping失败",
		})
		return
	}

	c.JSON(200, gin.H{
		"status":  "healthy",
		"message": "服务运行正常",
	})
}

// Run 运行服务器
func (r *Router) Run(addr string) error {
	r.log.Info("API服务启动", zap.String("address", addr))
	return r.engine.Run(addr)
}

// GetEngine 获取Gin引擎（用于测试）
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
