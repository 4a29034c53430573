package models

import "time"

// Player 玩家状态表（以地址为唯一键）
type Player struct {
	BaseModel
	Address        string `gorm:"uniqueIndex;size:64;not null" json:"address"`
	Health         int    `gorm:"default:100" json:"health"`
	MaxHealth      int    `gorm:"default:100" json:"max_health"`
	Level          int    `gorm:"default:1" json:"level"` // level = experience/100 + 1，单调不减
	Experience     int64  `gorm:"default:0" json:"experience"`
	ItemsCollected int    `gorm:"default:0" json:"items_collected"`
}

// PlayerInventory 玩家背包表
// 不变式：HealthPotions + SurvivalKits + Books <= Capacity
type PlayerInventory struct {
	BaseModel
	Address       string `gorm:"uniqueIndex;size:64;not null" json:"address"`
	HealthPotions int    `gorm:"default:0" json:"health_potions"`
	SurvivalKits  int    `gorm:"default:0" json:"survival_kits"`
	Books         int    `gorm:"default:0" json:"books"`
	Capacity      int    `gorm:"default:50" json:"capacity"`
}

// TotalItems 背包内物品总数
func (i *PlayerInventory) TotalItems() int {
	return i.HealthPotions + i.SurvivalKits + i.Books
}

// FreeSlots 背包剩余空位
func (i *PlayerInventory) FreeSlots() int {
	return i.Capacity - i.TotalItems()
}

// PlayerAccount 玩家账号表（登录身份，引擎只使用Address）
type PlayerAccount struct {
	BaseModel
	Address     string     `gorm:"uniqueIndex;size:64;not null" json:"address"`
	Username    string     `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Password    string     `gorm:"size:255;not null" json:"-"`
	Status      string     `gorm:"size:20;default:'active'" json:"status"` // active, banned
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// IsActive 账号是否可用
func (a *PlayerAccount) IsActive() bool {
	return a.Status == "active"
}
