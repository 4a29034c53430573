package game

// 事件类型
const (
	EventGameCreated     = "game_created"
	EventLevelStarted    = "level_started"
	EventLevelCompleted  = "level_completed"
	EventItemPickedUp    = "item_picked_up"
	EventItemUsed        = "item_used"
	EventItemTransferred = "item_transferred"
	EventGamePaused      = "game_paused"
	EventGameResumed     = "game_resumed"
	EventGameEnded       = "game_ended"
)

// Event 引擎产生的通知（落库后推送给外部消费者）
type Event struct {
	Type    string                 `json:"type"`
	Player  string                 `json:"player"`
	GameID  uint64                 `json:"game_id"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}

// Notifier 事件推送接口（由websocket等外部消费者实现）
type Notifier interface {
	Notify(event *Event)
}

// NopNotifier 空实现，用于测试或不需要推送的场景
type NopNotifier struct{}

// Notify 丢弃事件
func (NopNotifier) Notify(event *Event) {}
