package game

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wfunc/rogue-chain/internal/config"
	apperrors "github.com/wfunc/rogue-chain/internal/errors"
	"github.com/wfunc/rogue-chain/internal/logger"
	"github.com/wfunc/rogue-chain/internal/models"
	"github.com/wfunc/rogue-chain/internal/repository"
)

// Engine 游戏状态引擎
// 每个公开操作要么全部写入成功，要么全部回滚，失败时不留下部分状态
type Engine struct {
	db       *gorm.DB
	cfg      *config.GameConfig
	notifier Notifier
	log      *zap.Logger
}

// NewEngine 创建游戏引擎
func NewEngine(db *gorm.DB, cfg *config.GameConfig, notifier Notifier) *Engine {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &Engine{
		db:       db,
		cfg:      cfg,
		notifier: notifier,
		log:      logger.GetModuleLogger("game"),
	}
}

// runTx 在单个事务内执行操作，成功后推送事务期间收集的事件
// 事件流水属于原子写入集合：落库失败时整个操作回滚
func (e *Engine) runTx(ctx context.Context, fn func(tx *gorm.DB, emit func(*Event)) error) error {
	var events []*Event

	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		eventRepo := repository.NewGameEventRepository(tx)
		var emitErr error
		emit := func(ev *Event) {
			if emitErr != nil {
				return
			}
			record := &models.GameEvent{
				Type:    ev.Type,
				Player:  ev.Player,
				GameID:  ev.GameID,
				Payload: models.JSONMap(ev.Payload),
			}
			if err := eventRepo.Append(ctx, record); err != nil {
				emitErr = apperrors.Wrap(err, apperrors.ErrDatabaseQuery, "事件落库失败")
				return
			}
			events = append(events, ev)
		}
		if err := fn(tx, emit); err != nil {
			return err
		}
		return emitErr
	})
	if err != nil {
		return err
	}

	// 事务提交后才对外推送
	for _, ev := range events {
		e.notifier.Notify(ev)
	}
	return nil
}

// loadOwnedGame 加载游戏并校验调用者所有权
func (e *Engine) loadOwnedGame(ctx context.Context, tx *gorm.DB, player string, gameID uint64) (*models.Game, error) {
	game, err := repository.NewGameRepository(tx).FindByGameID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.Player != player {
		return nil, apperrors.Newf(apperrors.ErrNotYourGame, "游戏 %d 属于 %s", gameID, game.Player)
	}
	return game, nil
}

// applyExperience 增加经验并按 level = experience/100 + 1 重算等级
// fullHeal为真时，升级额外获得 +10*升级数 的生命与生命上限，并回满生命
func (e *Engine) applyExperience(player *models.Player, exp int64, fullHeal bool) {
	player.Experience += exp
	newLevel := LevelForExperience(player.Experience)
	if newLevel <= player.Level {
		return
	}

	if fullHeal {
		bonus := e.cfg.LevelBonusHealth * (newLevel - player.Level)
		player.MaxHealth += bonus
		player.Health = player.MaxHealth
	}
	player.Level = newLevel
}

// GetPlayerStats 查询玩家状态（只读）
func (e *Engine) GetPlayerStats(ctx context.Context, player string) (*models.Player, error) {
	return repository.NewPlayerRepository(e.db).FindByAddress(ctx, player)
}

// GetPlayerInventory 查询玩家背包（只读）
func (e *Engine) GetPlayerInventory(ctx context.Context, player string) (*models.PlayerInventory, error) {
	return repository.NewInventoryRepository(e.db).FindByAddress(ctx, player)
}

// GetLevelItems 查询关卡物品统计（只读）
func (e *Engine) GetLevelItems(ctx context.Context, gameID uint64, level int) (*models.LevelItems, error) {
	return repository.NewLevelItemsRepository(e.db).FindByKey(ctx, gameID, level)
}

// GetGame 查询游戏实例（只读）
func (e *Engine) GetGame(ctx context.Context, gameID uint64) (*models.Game, error) {
	return repository.NewGameRepository(e.db).FindByGameID(ctx, gameID)
}

// ListGames 查询玩家的游戏列表（只读，分页）
func (e *Engine) ListGames(ctx context.Context, player string, p *repository.Pagination) ([]*models.Game, error) {
	return repository.NewGameRepository(e.db).FindByPlayer(ctx, player, p)
}

// ListWorldItems 查询关卡生成的全部物品（只读）
func (e *Engine) ListWorldItems(ctx context.Context, gameID uint64, level int) ([]*models.WorldItem, error) {
	return repository.NewWorldItemRepository(e.db).FindByLevel(ctx, gameID, level)
}
