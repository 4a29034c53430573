package game

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "github.com/wfunc/rogue-chain/internal/errors"
	"github.com/wfunc/rogue-chain/internal/repository"
)

// InventorySummary 背包摘要（只读视图）
type InventorySummary struct {
	TotalItems    int `json:"total_items"`
	FreeSlots     int `json:"free_slots"`
	Capacity      int `json:"capacity"`
	HealthPotions int `json:"health_potions"`
	SurvivalKits  int `json:"survival_kits"`
	Books         int `json:"books"`
}

// PickupItem 拾取物品
// 物品入包、世界物品置为已收集、关卡收集计数+1、玩家获得经验，全部在同一事务内完成
func (e *Engine) PickupItem(ctx context.Context, player string, gameID uint64, itemID uint32) error {
	var pickedType string

	err := e.runTx(ctx, func(tx *gorm.DB, emit func(*Event)) error {
		if _, err := e.loadOwnedGame(ctx, tx, player, gameID); err != nil {
			return err
		}

		itemRepo := repository.NewWorldItemRepository(tx)
		item, err := itemRepo.FindByKey(ctx, gameID, itemID)
		if err != nil {
			return err
		}
		if item.IsCollected {
			return apperrors.Newf(apperrors.ErrItemCollected, "物品 %d 已被拾取", itemID)
		}

		invRepo := repository.NewInventoryRepository(tx)
		inv, err := invRepo.FindByAddress(ctx, player)
		if err != nil {
			return err
		}
		if inv.FreeSlots() <= 0 {
			return apperrors.Newf(apperrors.ErrInventoryFull, "背包已满: %d/%d", inv.TotalItems(), inv.Capacity)
		}

		switch item.ItemType {
		case ItemHealthPotion:
			inv.HealthPotions++
		case ItemSurvivalKit:
			inv.SurvivalKits++
		case ItemBook:
			inv.Books++
		default:
			return apperrors.Newf(apperrors.ErrInvalidItemType, "未知物品类型: %s", item.ItemType)
		}
		if err := invRepo.Update(ctx, inv); err != nil {
			return apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
		}

		// 收集标记一旦置真不再回退
		item.IsCollected = true
		if err := itemRepo.Update(ctx, item); err != nil {
			return apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
		}

		// 同步关卡收集计数，保证CompleteLevel的判定有意义
		levelRepo := repository.NewLevelItemsRepository(tx)
		record, err := levelRepo.FindByKey(ctx, gameID, item.Level)
		if err == nil {
			switch item.ItemType {
			case ItemHealthPotion:
				record.CollectedHealthPotions++
			case ItemSurvivalKit:
				record.CollectedSurvivalKits++
			case ItemBook:
				record.CollectedBooks++
			}
			if err := levelRepo.Save(ctx, record); err != nil {
				return apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
			}
		} else if !apperrors.Is(err, apperrors.ErrNotFound) {
			return err
		}

		playerRepo := repository.NewPlayerRepository(tx)
		stats, err := playerRepo.FindByAddress(ctx, player)
		if err != nil {
			return err
		}
		stats.ItemsCollected++
		// 拾取路径升级附带生命加成并回满
		e.applyExperience(stats, e.cfg.PickupExperience, true)
		if err := playerRepo.Update(ctx, stats); err != nil {
			return apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
		}

		pickedType = item.ItemType
		emit(&Event{
			Type:   EventItemPickedUp,
			Player: player,
			GameID: gameID,
			Payload: map[string]interface{}{
				"item_id":   itemID,
				"item_type": item.ItemType,
				"level":     item.Level,
			},
		})
		return nil
	})
	if err != nil {
		return err
	}

	e.log.Debug("物品拾取成功",
		zap.String("player", player),
		zap.Uint64("game_id", gameID),
		zap.Uint32("item_id", itemID),
		zap.String("item_type", pickedType))
	return nil
}

// UseItem 使用消耗品
// 血瓶回复25*数量（不超过上限）；生存包+50经验/个；书本+100经验/个
// 使用路径升级不附带生命加成
func (e *Engine) UseItem(ctx context.Context, player string, itemType string, quantity int) error {
	if quantity <= 0 {
		return apperrors.Newf(apperrors.ErrInvalidParam, "数量必须为正: %d", quantity)
	}

	return e.runTx(ctx, func(tx *gorm.DB, emit func(*Event)) error {
		invRepo := repository.NewInventoryRepository(tx)
		inv, err := invRepo.FindByAddress(ctx, player)
		if err != nil {
			return err
		}

		var available *int
		switch itemType {
		case ItemHealthPotion:
			available = &inv.HealthPotions
		case ItemSurvivalKit:
			available = &inv.SurvivalKits
		case ItemBook:
			available = &inv.Books
		default:
			return apperrors.Newf(apperrors.ErrInvalidItemType, "未知物品类型: %s", itemType)
		}
		if *available < quantity {
			return apperrors.Newf(apperrors.ErrInsufficientItems, "%s 数量不足: 有 %d 需要 %d", itemType, *available, quantity)
		}
		*available -= quantity

		if err := invRepo.Update(ctx, inv); err != nil {
			return apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
		}

		effect, err := EffectFor(itemType, e.cfg.PotionHealAmount, e.cfg.KitExperience, e.cfg.BookExperience)
		if err != nil {
			return err
		}

		playerRepo := repository.NewPlayerRepository(tx)
		stats, err := playerRepo.FindByAddress(ctx, player)
		if err != nil {
			return err
		}

		if effect.HealAmount > 0 {
			stats.Health += effect.HealAmount * quantity
			if stats.Health > stats.MaxHealth {
				stats.Health = stats.MaxHealth
			}
		}
		if effect.Experience > 0 {
			e.applyExperience(stats, effect.Experience*int64(quantity), false)
		}

		if err := playerRepo.Update(ctx, stats); err != nil {
			return apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
		}

		emit(&Event{
			Type:   EventItemUsed,
			Player: player,
			Payload: map[string]interface{}{
				"item_type": itemType,
				"quantity":  quantity,
			},
		})
		return nil
	})
}

// TransferItem 转移物品
// 发送方余额和接收方容量都校验通过后，原子地完成扣减与入账
func (e *Engine) TransferItem(ctx context.Context, from, to string, itemType string, quantity int) error {
	if quantity <= 0 {
		return apperrors.Newf(apperrors.ErrInvalidParam, "数量必须为正: %d", quantity)
	}
	if from == to {
		return apperrors.New(apperrors.ErrInvalidParam, "不能转移给自己")
	}

	return e.runTx(ctx, func(tx *gorm.DB, emit func(*Event)) error {
		invRepo := repository.NewInventoryRepository(tx)

		sender, err := invRepo.FindByAddress(ctx, from)
		if err != nil {
			return err
		}
		recipient, err := invRepo.FindByAddress(ctx, to)
		if err != nil {
			return err
		}

		var senderCount, recipientCount *int
		switch itemType {
		case ItemHealthPotion:
			senderCount, recipientCount = &sender.HealthPotions, &recipient.HealthPotions
		case ItemSurvivalKit:
			senderCount, recipientCount = &sender.SurvivalKits, &recipient.SurvivalKits
		case ItemBook:
			senderCount, recipientCount = &sender.Books, &recipient.Books
		default:
			return apperrors.Newf(apperrors.ErrInvalidItemType, "未知物品类型: %s", itemType)
		}

		if *senderCount < quantity {
			return apperrors.Newf(apperrors.ErrInsufficientItems, "%s 数量不足: 有 %d 需要 %d", itemType, *senderCount, quantity)
		}
		if recipient.TotalItems()+quantity > recipient.Capacity {
			return apperrors.Newf(apperrors.ErrInventoryFull, "接收方背包空间不足: %d/%d", recipient.TotalItems(), recipient.Capacity)
		}

		*senderCount -= quantity
		*recipientCount += quantity

		if err := invRepo.Update(ctx, sender); err != nil {
			return apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
		}
		if err := invRepo.Update(ctx, recipient); err != nil {
			return apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
		}

		emit(&Event{
			Type:   EventItemTransferred,
			Player: from,
			Payload: map[string]interface{}{
				"to":        to,
				"item_type": itemType,
				"quantity":  quantity,
			},
		})
		return nil
	})
}

// GetInventorySummary 背包摘要（纯读，无副作用）
func (e *Engine) GetInventorySummary(ctx context.Context, player string) (*InventorySummary, error) {
	inv, err := repository.NewInventoryRepository(e.db).FindByAddress(ctx, player)
	if err != nil {
		return nil, err
	}
	return &InventorySummary{
		TotalItems:    inv.TotalItems(),
		FreeSlots:     inv.FreeSlots(),
		Capacity:      inv.Capacity,
		HealthPotions: inv.HealthPotions,
		SurvivalKits:  inv.SurvivalKits,
		Books:         inv.Books,
	}, nil
}
