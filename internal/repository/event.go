package repository

import (
	"context"

	"github.com/wfunc/rogue-chain/internal/models"
	"gorm.io/gorm"
)

// GameEventRepository 游戏事件流水仓储接口
type GameEventRepository interface {
	BaseRepository
	Append(ctx context.Context, event *models.GameEvent) error
	FindByGameID(ctx context.Context, gameID uint64, p *Pagination) ([]*models.GameEvent, error)
	FindByPlayer(ctx context.Context, player string, p *Pagination) ([]*models.GameEvent, error)
}

// gameEventRepo 事件流水仓储实现
type gameEventRepo struct {
	*BaseRepo
}

// NewGameEventRepository 创建事件流水仓储
func NewGameEventRepository(db *gorm.DB) GameEventRepository {
	return &gameEventRepo{
		BaseRepo: NewBaseRepo(db),
	}
}

// Append 追加事件（只增不改）
func (r *gameEventRepo) Append(ctx context.Context, event *models.GameEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// FindByGameID 查询某个游戏的事件流水（分页）
func (r *gameEventRepo) FindByGameID(ctx context.Context, gameID uint64, p *Pagination) ([]*models.GameEvent, error) {
	var events []*models.GameEvent

	r.db.WithContext(ctx).
		Model(&models.GameEvent{}).
		Where("game_id = ?", gameID).
		Count(&p.Total)

	err := r.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Order("id desc").
		Scopes(Paginate(p)).
		Find(&events).Error

	return events, err
}

// FindByPlayer 查询某个玩家的事件流水（分页）
func (r *gameEventRepo) FindByPlayer(ctx context.Context, player string, p *Pagination) ([]*models.GameEvent, error) {
	var events []*models.GameEvent

	r.db.WithContext(ctx).
		Model(&models.GameEvent{}).
		Where("player = ?", player).
		Count(&p.Total)

	err := r.db.WithContext(ctx).
		Where("player = ?", player).
		Order("id desc").
		Scopes(Paginate(p)).
		Find(&events).Error

	return events, err
}

// WithTx 使用事务
func (r *gameEventRepo) WithTx(tx *gorm.DB) BaseRepository {
	return &gameEventRepo{
		BaseRepo: NewBaseRepo(tx),
	}
}
