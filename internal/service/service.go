package service

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wfunc/rogue-chain/internal/config"
	"github.com/wfunc/rogue-chain/internal/game"
	"github.com/wfunc/rogue-chain/internal/repository"
	"github.com/wfunc/rogue-chain/internal/utils"
)

// Config 服务配置
type Config struct {
	JWTSecret          string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
	Game               *config.GameConfig
}

// DefaultConfig 默认配置
func DefaultConfig() *Config {
	return &Config{
		JWTSecret:          "change-me-in-production",
		AccessTokenExpiry:  24 * time.Hour,
		RefreshTokenExpiry: 7 * 24 * time.Hour,
		Game: &config.GameConfig{
			BaseHealth:        100,
			InventoryCapacity: 50,
			PickupExperience:  10,
			LevelBonusHealth:  10,
			CompletionBonus:   100,
			PotionHealAmount:  25,
			KitExperience:     50,
			BookExperience:    100,
		},
	}
}

// Services 服务集合
type Services struct {
	Auth   AuthService
	Engine *game.Engine
}

// NewServices 创建服务集合
func NewServices(db *gorm.DB, cfg *Config, notifier game.Notifier, log *zap.Logger) *Services {
	accountRepo := repository.NewAccountRepository(db)

	jwtManager := utils.NewJWTManager(
		cfg.JWTSecret,
		cfg.AccessTokenExpiry,
		cfg.RefreshTokenExpiry,
	)

	return &Services{
		Auth:   NewAuthService(db, accountRepo, jwtManager, cfg.AccessTokenExpiry, log),
		Engine: game.NewEngine(db, cfg.Game, notifier),
	}
}
