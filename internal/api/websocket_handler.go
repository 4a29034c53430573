package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	gorillaws "github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/wfunc/rogue-chain/internal/config"
	"github.com/wfunc/rogue-chain/internal/middleware"
	"github.com/wfunc/rogue-chain/internal/websocket"
)

// WebSocketHandler WebSocket升级处理器
type WebSocketHandler struct {
	hub      *websocket.Hub
	upgrader gorillaws.Upgrader
	log      *zap.Logger
}

// NewWebSocketHandler 创建WebSocket处理器
func NewWebSocketHandler(hub *websocket.Hub, cfg *config.WebSocketConfig, log *zap.Logger) *WebSocketHandler {
	return &WebSocketHandler{
		hub: hub,
		upgrader: gorillaws.Upgrader{
			ReadBufferSize:    cfg.ReadBufferSize,
			WriteBufferSize:   cfg.WriteBufferSize,
			EnableCompression: cfg.EnableCompression,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		log: log,
	}
}

// Handle 升级连接并绑定玩家地址
func (h *WebSocketHandler) Handle(c *gin.Context) {
	player, ok := middleware.GetAddress(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Message: "未登录",
		})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error("WebSocket升级失败",
			zap.String("player", player),
			zap.Error(err))
		return
	}

	client := websocket.NewClient(h.hub, conn, player)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
