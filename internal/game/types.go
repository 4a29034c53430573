package game

import (
	apperrors "github.com/wfunc/rogue-chain/internal/errors"
)

// 游戏生命周期状态
const (
	StatusNotStarted = "not_started" // 预留状态，当前流程创建即进入in_progress
	StatusInProgress = "in_progress"
	StatusPaused     = "paused"
	StatusCompleted  = "completed"
	StatusAbandoned  = "abandoned"
	StatusFailed     = "failed"
)

// 物品类型
const (
	ItemHealthPotion = "health_potion"
	ItemSurvivalKit  = "survival_kit"
	ItemBook         = "book"
)

// ItemTypes 全部合法物品类型
var ItemTypes = []string{ItemHealthPotion, ItemSurvivalKit, ItemBook}

// IsValidItemType 校验物品类型
func IsValidItemType(itemType string) bool {
	switch itemType {
	case ItemHealthPotion, ItemSurvivalKit, ItemBook:
		return true
	default:
		return false
	}
}

// SpawnCounts 关卡生成数量（按物品类别）
type SpawnCounts struct {
	HealthPotions int
	SurvivalKits  int
	Books         int
}

// Total 生成总数
func (s SpawnCounts) Total() int {
	return s.HealthPotions + s.SurvivalKits + s.Books
}

// SpawnCountsForLevel 计算关卡L的生成数量
// 血瓶 = min(3+L, 10)，生存包 = min((L+1)/2, 3)，书本 = min(L/3, 2)
func SpawnCountsForLevel(level int) SpawnCounts {
	return SpawnCounts{
		HealthPotions: minInt(3+level, 10),
		SurvivalKits:  minInt((level+1)/2, 3),
		Books:         minInt(level/3, 2),
	}
}

// ItemEffect 物品使用效果（封闭的变体集合，按类型分派）
type ItemEffect struct {
	HealAmount int   // 回复生命值
	Experience int64 // 获得经验
}

// EffectFor 返回单个物品的使用效果
func EffectFor(itemType string, healAmount int, kitExp, bookExp int64) (ItemEffect, error) {
	switch itemType {
	case ItemHealthPotion:
		return ItemEffect{HealAmount: healAmount}, nil
	case ItemSurvivalKit:
		return ItemEffect{Experience: kitExp}, nil
	case ItemBook:
		return ItemEffect{Experience: bookExp}, nil
	default:
		return ItemEffect{}, apperrors.Newf(apperrors.ErrInvalidItemType, "未知物品类型: %s", itemType)
	}
}

// LevelForExperience 由经验推导等级：level = experience/100 + 1
func LevelForExperience(experience int64) int {
	return int(experience/100) + 1
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
