package models

// Game 游戏实例表（一个玩家的一次通关记录）
type Game struct {
	BaseModel
	GameID       uint64 `gorm:"uniqueIndex;not null" json:"game_id"`
	Player       string `gorm:"size:64;not null;index" json:"player"` // 所有者地址，创建后不可变
	Status       string `gorm:"size:20;default:'in_progress'" json:"status"` // not_started, in_progress, paused, completed, abandoned, failed
	CurrentLevel int    `gorm:"default:0" json:"current_level"`
	Score        int64  `gorm:"default:0" json:"score"`
	StartedAt    int64  `gorm:"not null" json:"started_at"` // 创建时间戳（由调用方提供，单位秒）
}

// GameCounter 游戏ID计数器表（全局单例，唯一的全局可变状态）
type GameCounter struct {
	CounterID  uint   `gorm:"primaryKey" json:"counter_id"`
	NextGameID uint64 `gorm:"default:0" json:"next_game_id"` // 0视为未初始化，首次使用时置1
}

// TableName 指定表名
func (GameCounter) TableName() string {
	return "game_counters"
}

// GameEvent 游戏事件流水表（引擎产生的通知，供索引/推送消费）
type GameEvent struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Type      string  `gorm:"size:50;not null;index" json:"type"` // game_created, level_started, item_picked_up
	Player    string  `gorm:"size:64;not null;index" json:"player"`
	GameID    uint64  `gorm:"not null;index" json:"game_id"`
	Payload   JSONMap `gorm:"type:json" json:"payload"`
	CreatedAt int64   `gorm:"autoCreateTime" json:"created_at"`
}
