package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/wfunc/rogue-chain/internal/game"
)

// Hub WebSocket连接管理中心
type Hub struct {
	// 客户端连接池
	clients   map[string]*Client
	clientsMu sync.RWMutex

	// 玩家地址到客户端的映射
	playerClients map[string][]*Client
	playerMu      sync.RWMutex

	// 消息广播通道
	broadcast chan *Message

	// 注册/注销通道
	register   chan *Client
	unregister chan *Client

	logger *zap.Logger
}

// Message WebSocket消息
type Message struct {
	Type      string          `json:"type"`
	Player    string          `json:"player,omitempty"`
	GameID    uint64          `json:"game_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp int64           `json:"timestamp"`
}

// 消息类型
const (
	MessageTypeConnected    = "connected"
	MessageTypeDisconnected = "disconnected"
	MessageTypePing         = "ping"
	MessageTypePong         = "pong"
	MessageTypeError        = "error"

	// 游戏事件消息复用引擎事件类型（game_created、level_started等）
	MessageTypeGameEvent = "game_event"
)

// NewHub 创建Hub
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:       make(map[string]*Client),
		playerClients: make(map[string][]*Client),
		broadcast:     make(chan *Message, 256),
		register:      make(chan *Client),
		unregister:    make(chan *Client),
		logger:        logger,
	}
}

// Run 运行Hub
func (h *Hub) Run() {
	go h.runHeartbeat()

	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.broadcastMessage(message)
		}
	}
}

// Notify 实现引擎的事件推送接口：事件发给拥有者的所有连接
func (h *Hub) Notify(event *game.Event) {
	data, err := json.Marshal(event.Payload)
	if err != nil {
		h.logger.Error("事件序列化失败", zap.String("type", event.Type), zap.Error(err))
		return
	}

	msg := &Message{
		Type:      event.Type,
		Player:    event.Player,
		GameID:    event.GameID,
		Data:      data,
		Timestamp: time.Now().Unix(),
	}

	if err := h.SendToPlayer(event.Player, msg); err != nil {
		// 玩家不在线是常态，降级为调试日志
		h.logger.Debug("事件推送未送达",
			zap.String("type", event.Type),
			zap.String("player", event.Player))
	}
}

// registerClient 注册客户端
func (h *Hub) registerClient(client *Client) {
	h.clientsMu.Lock()
	h.clients[client.ID] = client
	h.clientsMu.Unlock()

	if client.Player != "" {
		h.playerMu.Lock()
		h.playerClients[client.Player] = append(h.playerClients[client.Player], client)
		h.playerMu.Unlock()
	}

	h.logger.Info("WebSocket客户端连接",
		zap.String("client_id", client.ID),
		zap.String("player", client.Player))

	msg := &Message{
		Type:      MessageTypeConnected,
		Timestamp: time.Now().Unix(),
		Data:      json.RawMessage(`{"message":"连接成功"}`),
	}
	h.SendToClient(client.ID, msg)
}

// unregisterClient 注销客户端
func (h *Hub) unregisterClient(client *Client) {
	h.clientsMu.Lock()
	if _, ok := h.clients[client.ID]; ok {
		delete(h.clients, client.ID)
		close(client.Send)
	}
	h.clientsMu.Unlock()

	if client.Player != "" {
		h.playerMu.Lock()
		clients := h.playerClients[client.Player]
		for i, c := range clients {
			if c.ID == client.ID {
				h.playerClients[client.Player] = append(clients[:i], clients[i+1:]...)
				break
			}
		}
		if len(h.playerClients[client.Player]) == 0 {
			delete(h.playerClients, client.Player)
		}
		h.playerMu.Unlock()
	}

	h.logger.Info("WebSocket客户端断开",
		zap.String("client_id", client.ID),
		zap.String("player", client.Player))
}

// broadcastMessage 广播消息
func (h *Hub) broadcastMessage(message *Message) {
	data, err := json.Marshal(message)
	if err != nil {
		h.logger.Error("序列化消息失败", zap.Error(err))
		return
	}

	h.clientsMu.RLock()
	for _, client := range h.clients {
		select {
		case client.Send <- data:
		default:
			h.logger.Warn("客户端发送缓冲区满",
				zap.String("client_id", client.ID))
		}
	}
	h.clientsMu.RUnlock()
}

// SendToClient 发送消息给指定客户端
func (h *Hub) SendToClient(clientID string, message *Message) error {
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}

	h.clientsMu.RLock()
	client, ok := h.clients[clientID]
	h.clientsMu.RUnlock()

	if !ok {
		return ErrClientNotFound
	}

	select {
	case client.Send <- data:
		return nil
	default:
		return ErrSendBufferFull
	}
}

// SendToPlayer 发送消息给指定玩家的所有客户端
func (h *Hub) SendToPlayer(player string, message *Message) error {
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}

	h.playerMu.RLock()
	clients := h.playerClients[player]
	h.playerMu.RUnlock()

	if len(clients) == 0 {
		return ErrPlayerNotConnected
	}

	for _, client := range clients {
		select {
		case client.Send <- data:
		default:
			h.logger.Warn("玩家客户端发送缓冲区满",
				zap.String("client_id", client.ID),
				zap.String("player", player))
		}
	}

	return nil
}

// GetOnlinePlayers 获取在线玩家列表
func (h *Hub) GetOnlinePlayers() []string {
	h.playerMu.RLock()
	defer h.playerMu.RUnlock()

	players := make([]string, 0, len(h.playerClients))
	for player := range h.playerClients {
		players = append(players, player)
	}
	return players
}

// GetOnlineCount 获取在线连接数
func (h *Hub) GetOnlineCount() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients)
}

// runHeartbeat 运行心跳检测
func (h *Hub) runHeartbeat() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		<-ticker.C
		ping := &Message{
			Type:      MessageTypePing,
			Timestamp: time.Now().Unix(),
		}
		h.broadcast <- ping
	}
}

// Broadcast 广播消息（公开方法）
func (h *Hub) Broadcast(message *Message) {
	h.broadcast <- message
}

// Register 注册客户端（公开方法）
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister 注销客户端（公开方法）
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}
