package repository

import (
	"context"
	"errors"

	apperrors "github.com/wfunc/rogue-chain/internal/errors"
	"github.com/wfunc/rogue-chain/internal/models"
	"gorm.io/gorm"
)

// WorldItemRepository 世界物品仓储接口
type WorldItemRepository interface {
	BaseRepository
	Create(ctx context.Context, item *models.WorldItem) error
	BatchCreate(ctx context.Context, items []*models.WorldItem) error
	Update(ctx context.Context, item *models.WorldItem) error
	FindByKey(ctx context.Context, gameID uint64, itemID uint32) (*models.WorldItem, error)
	FindByLevel(ctx context.Context, gameID uint64, level int) ([]*models.WorldItem, error)
	DeleteByLevel(ctx context.Context, gameID uint64, level int) error
	CountCollected(ctx context.Context, gameID uint64, level int) (int64, error)
}

// worldItemRepo 世界物品仓储实现
type worldItemRepo struct {
	*BaseRepo
}

// NewWorldItemRepository 创建世界物品仓储
func NewWorldItemRepository(db *gorm.DB) WorldItemRepository {
	return &worldItemRepo{
		BaseRepo: NewBaseRepo(db),
	}
}

// Create 创建物品
func (r *worldItemRepo) Create(ctx context.Context, item *models.WorldItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// BatchCreate 批量创建物品
func (r *worldItemRepo) BatchCreate(ctx context.Context, items []*models.WorldItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

// Update 更新物品
func (r *worldItemRepo) Update(ctx context.Context, item *models.WorldItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// FindByKey 根据复合键(game_id, item_id)查找
func (r *worldItemRepo) FindByKey(ctx context.Context, gameID uint64, itemID uint32) (*models.WorldItem, error) {
	var item models.WorldItem
	err := r.db.WithContext(ctx).
		Where("game_id = ? AND item_id = ?", gameID, itemID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Newf(apperrors.ErrNotFound, "物品不存在: 游戏 %d 物品 %d", gameID, itemID)
		}
		return nil, err
	}
	return &item, nil
}

// FindByLevel 查找某一关卡的全部物品
func (r *worldItemRepo) FindByLevel(ctx context.Context, gameID uint64, level int) ([]*models.WorldItem, error) {
	var items []*models.WorldItem
	err := r.db.WithContext(ctx).
		Where("game_id = ? AND level = ?", gameID, level).
		Order("item_id").
		Find(&items).Error
	return items, err
}

// DeleteByLevel 删除某一关卡的全部物品（关卡重开时清理旧的生成结果）
func (r *worldItemRepo) DeleteByLevel(ctx context.Context, gameID uint64, level int) error {
	return r.db.WithContext(ctx).
		Unscoped().
		Where("game_id = ? AND level = ?", gameID, level).
		Delete(&models.WorldItem{}).Error
}

// CountCollected 统计某关卡已收集的物品数
func (r *worldItemRepo) CountCollected(ctx context.Context, gameID uint64, level int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.WorldItem{}).
		Where("game_id = ? AND level = ? AND is_collected = ?", gameID, level, true).
		Count(&count).Error
	return count, err
}

// WithTx 使用事务
func (r *worldItemRepo) WithTx(tx *gorm.DB) BaseRepository {
	return &worldItemRepo{
		BaseRepo: NewBaseRepo(tx),
	}
}

// LevelItemsRepository 关卡物品统计仓储接口
type LevelItemsRepository interface {
	BaseRepository
	Save(ctx context.Context, record *models.LevelItems) error
	FindByKey(ctx context.Context, gameID uint64, level int) (*models.LevelItems, error)
}

// levelItemsRepo 关卡统计仓储实现
type levelItemsRepo struct {
	*BaseRepo
}

// NewLevelItemsRepository 创建关卡统计仓储
func NewLevelItemsRepository(db *gorm.DB) LevelItemsRepository {
	return &levelItemsRepo{
		BaseRepo: NewBaseRepo(db),
	}
}

// Save 写入关卡统计（同一复合键重复写入时覆盖旧记录）
func (r *levelItemsRepo) Save(ctx context.Context, record *models.LevelItems) error {
	if record.ID == 0 {
		var existing models.LevelItems
		err := r.db.WithContext(ctx).
			Where("game_id = ? AND level = ?", record.GameID, record.Level).
			First(&existing).Error
		if err == nil {
			record.ID = existing.ID
			record.CreatedAt = existing.CreatedAt
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}
	return r.db.WithContext(ctx).Save(record).Error
}

// FindByKey 根据复合键(game_id, level)查找
func (r *levelItemsRepo) FindByKey(ctx context.Context, gameID uint64, level int) (*models.LevelItems, error) {
	var record models.LevelItems
	err := r.db.WithContext(ctx).
		Where("game_id = ? AND level = ?", gameID, level).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Newf(apperrors.ErrNotFound, "关卡统计不存在: 游戏 %d 关卡 %d", gameID, level)
		}
		return nil, err
	}
	return &record, nil
}

// WithTx 使用事务
func (r *levelItemsRepo) WithTx(tx *gorm.DB) BaseRepository {
	return &levelItemsRepo{
		BaseRepo: NewBaseRepo(tx),
	}
}
