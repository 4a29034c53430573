package game

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "github.com/wfunc/rogue-chain/internal/errors"
	"github.com/wfunc/rogue-chain/internal/models"
	"github.com/wfunc/rogue-chain/internal/repository"
)

// CreateGame 创建游戏
// 分配下一个游戏ID，创建游戏实例；玩家状态与背包不存在时一并初始化
func (e *Engine) CreateGame(ctx context.Context, player string, timestamp int64) (uint64, error) {
	var gameID uint64

	err := e.runTx(ctx, func(tx *gorm.DB, emit func(*Event)) error {
		var err error
		gameID, err = repository.NewGameCounterRepository(tx).Allocate(ctx)
		if err != nil {
			return apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
		}

		game := &models.Game{
			GameID:       gameID,
			Player:       player,
			Status:       StatusInProgress,
			CurrentLevel: 0,
			Score:        0,
			StartedAt:    timestamp,
		}
		if err := repository.NewGameRepository(tx).Create(ctx, game); err != nil {
			return apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
		}

		// 同一玩家再开新局时复用已有的状态与背包
		playerRepo := repository.NewPlayerRepository(tx)
		exists, err := playerRepo.Exists(ctx, player)
		if err != nil {
			return apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
		}
		if !exists {
			if err := playerRepo.Create(ctx, &models.Player{
				Address:   player,
				Health:    e.cfg.BaseHealth,
				MaxHealth: e.cfg.BaseHealth,
				Level:     1,
			}); err != nil {
				return apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
			}
			if err := repository.NewInventoryRepository(tx).Create(ctx, &models.PlayerInventory{
				Address:  player,
				Capacity: e.cfg.InventoryCapacity,
			}); err != nil {
				return apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
			}
		}

		emit(&Event{
			Type:   EventGameCreated,
			Player: player,
			GameID: gameID,
			Payload: map[string]interface{}{
				"created_at": timestamp,
			},
		})
		return nil
	})
	if err != nil {
		return 0, err
	}

	e.log.Info("游戏创建成功",
		zap.String("player", player),
		zap.Uint64("game_id", gameID))
	return gameID, nil
}

// StartLevel 开始关卡
// 生成关卡物品并重置收集进度；重开同一关卡会清空旧的生成结果
func (e *Engine) StartLevel(ctx context.Context, player string, gameID uint64, level int) (int, error) {
	var totalSpawned int

	err := e.runTx(ctx, func(tx *gorm.DB, emit func(*Event)) error {
		game, err := e.loadOwnedGame(ctx, tx, player, gameID)
		if err != nil {
			return err
		}
		if game.Status != StatusInProgress {
			return apperrors.Newf(apperrors.ErrGameState, "游戏状态为 %s，无法开始关卡", game.Status)
		}

		counts := SpawnCountsForLevel(level)
		totalSpawned = counts.Total()

		// 重开关卡时先清理旧物品
		itemRepo := repository.NewWorldItemRepository(tx)
		if err := itemRepo.DeleteByLevel(ctx, gameID, level); err != nil {
			return apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
		}

		items := make([]*models.WorldItem, 0, totalSpawned)
		counter := uint32(0)
		spawn := func(itemType string, n int) {
			for i := 0; i < n; i++ {
				itemID := DeriveItemID(gameID, level, counter)
				x, y := DerivePosition(gameID, level, counter)
				items = append(items, &models.WorldItem{
					GameID:    gameID,
					ItemID:    itemID,
					ItemType:  itemType,
					XPosition: x,
					YPosition: y,
					Level:     level,
				})
				counter++
			}
		}
		spawn(ItemHealthPotion, counts.HealthPotions)
		spawn(ItemSurvivalKit, counts.SurvivalKits)
		spawn(ItemBook, counts.Books)

		if err := itemRepo.BatchCreate(ctx, items); err != nil {
			return apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
		}

		// 收集计数全部归零
		if err := repository.NewLevelItemsRepository(tx).Save(ctx, &models.LevelItems{
			GameID:             gameID,
			Level:              level,
			TotalHealthPotions: counts.HealthPotions,
			TotalSurvivalKits:  counts.SurvivalKits,
			TotalBooks:         counts.Books,
		}); err != nil {
			return apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
		}

		game.CurrentLevel = level
		if err := repository.NewGameRepository(tx).Update(ctx, game); err != nil {
			return apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
		}

		emit(&Event{
			Type:   EventLevelStarted,
			Player: player,
			GameID: gameID,
			Payload: map[string]interface{}{
				"level":         level,
				"items_spawned": totalSpawned,
			},
		})
		return nil
	})
	if err != nil {
		return 0, err
	}

	e.log.Info("关卡开始",
		zap.Uint64("game_id", gameID),
		zap.Int("level", level),
		zap.Int("items_spawned", totalSpawned))
	return totalSpawned, nil
}

// CompleteLevel 完成关卡
// 所有类别的物品都收集完时返回true并发放通关奖励经验；不改变游戏状态和当前关卡
func (e *Engine) CompleteLevel(ctx context.Context, player string, gameID uint64, level int) (bool, error) {
	var completed bool

	err := e.runTx(ctx, func(tx *gorm.DB, emit func(*Event)) error {
		game, err := e.loadOwnedGame(ctx, tx, player, gameID)
		if err != nil {
			return err
		}
		if game.CurrentLevel != level {
			return apperrors.Newf(apperrors.ErrLevelMismatch, "当前关卡为 %d，不是 %d", game.CurrentLevel, level)
		}

		record, err := repository.NewLevelItemsRepository(tx).FindByKey(ctx, gameID, level)
		if err != nil {
			return err
		}
		if !record.IsComplete() {
			completed = false
			return nil
		}

		playerRepo := repository.NewPlayerRepository(tx)
		stats, err := playerRepo.FindByAddress(ctx, player)
		if err != nil {
			return err
		}

		// 通关奖励只加经验，升级不附带生命加成
		e.applyExperience(stats, e.cfg.CompletionBonus, false)
		if err := playerRepo.Update(ctx, stats); err != nil {
			return apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
		}

		completed = true
		emit(&Event{
			Type:   EventLevelCompleted,
			Player: player,
			GameID: gameID,
			Payload: map[string]interface{}{
				"level": level,
				"bonus": e.cfg.CompletionBonus,
			},
		})
		return nil
	})
	if err != nil {
		return false, err
	}
	return completed, nil
}

// PauseGame 暂停游戏（仅允许从in_progress进入paused）
func (e *Engine) PauseGame(ctx context.Context, player string, gameID uint64) error {
	return e.runTx(ctx, func(tx *gorm.DB, emit func(*Event)) error {
		game, err := e.loadOwnedGame(ctx, tx, player, gameID)
		if err != nil {
			return err
		}
		if game.Status != StatusInProgress {
			return apperrors.Newf(apperrors.ErrGameState, "游戏状态为 %s，无法暂停", game.Status)
		}

		if err := repository.NewGameRepository(tx).UpdateStatus(ctx, gameID, StatusPaused); err != nil {
			return apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
		}

		emit(&Event{Type: EventGamePaused, Player: player, GameID: gameID})
		return nil
	})
}

// ResumeGame 恢复游戏（仅允许从paused回到in_progress）
func (e *Engine) ResumeGame(ctx context.Context, player string, gameID uint64) error {
	return e.runTx(ctx, func(tx *gorm.DB, emit func(*Event)) error {
		game, err := e.loadOwnedGame(ctx, tx, player, gameID)
		if err != nil {
			return err
		}
		if game.Status != StatusPaused {
			return apperrors.Newf(apperrors.ErrGameState, "游戏状态为 %s，无法恢复", game.Status)
		}

		if err := repository.NewGameRepository(tx).UpdateStatus(ctx, gameID, StatusInProgress); err != nil {
			return apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
		}

		emit(&Event{Type: EventGameResumed, Player: player, GameID: gameID})
		return nil
	})
}

// EndGame 结束游戏
// 只校验所有权，不校验当前状态：任何状态下都可以终结并记录最终分数
func (e *Engine) EndGame(ctx context.Context, player string, gameID uint64, finalScore int64) error {
	return e.runTx(ctx, func(tx *gorm.DB, emit func(*Event)) error {
		game, err := e.loadOwnedGame(ctx, tx, player, gameID)
		if err != nil {
			return err
		}

		game.Status = StatusCompleted
		game.Score = finalScore
		if err := repository.NewGameRepository(tx).Update(ctx, game); err != nil {
			return apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
		}

		emit(&Event{
			Type:   EventGameEnded,
			Player: player,
			GameID: gameID,
			Payload: map[string]interface{}{
				"final_score": finalScore,
			},
		})
		return nil
	})
}
