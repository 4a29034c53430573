package models

// WorldItem 世界物品表（复合键 game_id + item_id）
// 不变式：IsCollected 一旦为 true 不再回退
type WorldItem struct {
	BaseModel
	GameID      uint64 `gorm:"not null;uniqueIndex:idx_game_item" json:"game_id"`
	ItemID      uint32 `gorm:"not null;uniqueIndex:idx_game_item" json:"item_id"`
	ItemType    string `gorm:"size:20;not null" json:"item_type"` // health_potion, survival_kit, book
	XPosition   int    `json:"x_position"`
	YPosition   int    `json:"y_position"`
	IsCollected bool   `gorm:"default:false" json:"is_collected"`
	Level       int    `gorm:"not null" json:"level"`
}

// LevelItems 关卡物品统计表（复合键 game_id + level）
// 不变式：每一类 Collected <= Total
type LevelItems struct {
	BaseModel
	GameID                uint64 `gorm:"not null;uniqueIndex:idx_game_level" json:"game_id"`
	Level                 int    `gorm:"not null;uniqueIndex:idx_game_level" json:"level"`
	TotalHealthPotions    int    `gorm:"default:0" json:"total_health_potions"`
	TotalSurvivalKits     int    `gorm:"default:0" json:"total_survival_kits"`
	TotalBooks            int    `gorm:"default:0" json:"total_books"`
	CollectedHealthPotions int   `gorm:"default:0" json:"collected_health_potions"`
	CollectedSurvivalKits  int   `gorm:"default:0" json:"collected_survival_kits"`
	CollectedBooks         int   `gorm:"default:0" json:"collected_books"`
}

// TotalItems 关卡生成的物品总数
func (l *LevelItems) TotalItems() int {
	return l.TotalHealthPotions + l.TotalSurvivalKits + l.TotalBooks
}

// IsComplete 是否所有类别都已收集完
func (l *LevelItems) IsComplete() bool {
	return l.CollectedHealthPotions == l.TotalHealthPotions &&
		l.CollectedSurvivalKits == l.TotalSurvivalKits &&
		l.CollectedBooks == l.TotalBooks
}
