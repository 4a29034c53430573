package repository

import (
	"github.com/wfunc/rogue-chain/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB 为测试套件设置测试数据库
func SetupTestDB() *gorm.DB {
	// 使用内存数据库进行测试（更快，不需要文件系统，在所有环境中都能工作）
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(err)
	}

	// 自动迁移所有模型
	err = db.AutoMigrate(
		// 账号
		&models.PlayerAccount{},

		// 游戏状态
		&models.Game{},
		&models.GameCounter{},
		&models.Player{},
		&models.PlayerInventory{},
		&models.WorldItem{},
		&models.LevelItems{},

		// 事件流水
		&models.GameEvent{},
	)
	if err != nil {
		panic(err)
	}

	return db
}

// CleanupTestDB 清理测试数据库
func CleanupTestDB(db *gorm.DB) {
	sqlDB, _ := db.DB()
	if sqlDB != nil {
		sqlDB.Close()
	}
}

// CreateTestGame 创建测试游戏
func CreateTestGame(gameID uint64, player string) *models.Game {
	return &models.Game{
		GameID:       gameID,
		Player:       player,
		Status:       "in_progress",
		CurrentLevel: 0,
		Score:        0,
		StartedAt:    1700000000,
	}
}

// CreateTestPlayer 创建测试玩家
func CreateTestPlayer(address string) *models.Player {
	return &models.Player{
		Address:        address,
		Health:         100,
		MaxHealth:      100,
		Level:          1,
		Experience:     0,
		ItemsCollected: 0,
	}
}

// CreateTestInventory 创建测试背包
func CreateTestInventory(address string) *models.PlayerInventory {
	return &models.PlayerInventory{
		Address:  address,
		Capacity: 50,
	}
}

// CreateTestWorldItem 创建测试世界物品
func CreateTestWorldItem(gameID uint64, itemID uint32, itemType string, level int) *models.WorldItem {
	return &models.WorldItem{
		GameID:    gameID,
		ItemID:    itemID,
		ItemType:  itemType,
		XPosition: 42,
		YPosition: 77,
		Level:     level,
	}
}
