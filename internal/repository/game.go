package repository

import (
	"context"
	"errors"

	apperrors "github.com/wfunc/rogue-chain/internal/errors"
	"github.com/wfunc/rogue-chain/internal/models"
	"gorm.io/gorm"
)

// GameRepository 游戏仓储接口
type GameRepository interface {
	BaseRepository
	Create(ctx context.Context, game *models.Game) error
	Update(ctx context.Context, game *models.Game) error
	FindByGameID(ctx context.Context, gameID uint64) (*models.Game, error)
	FindByPlayer(ctx context.Context, player string, p *Pagination) ([]*models.Game, error)
	UpdateStatus(ctx context.Context, gameID uint64, status string) error
}

// gameRepo 游戏仓储实现
type gameRepo struct {
	*BaseRepo
}

// NewGameRepository 创建游戏仓储
func NewGameRepository(db *gorm.DB) GameRepository {
	return &gameRepo{
		BaseRepo: NewBaseRepo(db),
	}
}

// Create 创建游戏
func (r *gameRepo) Create(ctx context.Context, game *models.Game) error {
	return r.db.WithContext(ctx).Create(game).Error
}

// Update 更新游戏
func (r *gameRepo) Update(ctx context.Context, game *models.Game) error {
	return r.db.WithContext(ctx).Save(game).Error
}

// FindByGameID 根据游戏ID查找
func (r *gameRepo) FindByGameID(ctx context.Context, gameID uint64) (*models.Game, error) {
	var game models.Game
	err := r.db.WithContext(ctx).Where("game_id = ?", gameID).First(&game).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Newf(apperrors.ErrNotFound, "游戏不存在: %d", gameID)
		}
		return nil, err
	}
	return &game, nil
}

// FindByPlayer 根据玩家地址查找（分页）
func (r *gameRepo) FindByPlayer(ctx context.Context, player string, p *Pagination) ([]*models.Game, error) {
	var games []*models.Game

	// 查询总数
	r.db.WithContext(ctx).
		Model(&models.Game{}).
		Where("player = ?", player).
		Count(&p.Total)

	// 分页查询
	err := r.db.WithContext(ctx).
		Where("player = ?", player).
		Order("game_id desc").
		Scopes(Paginate(p)).
		Find(&games).Error

	return games, err
}

// UpdateStatus 更新游戏状态
func (r *gameRepo) UpdateStatus(ctx context.Context, gameID uint64, status string) error {
	return r.db.WithContext(ctx).
		Model(&models.Game{}).
		Where("game_id = ?", gameID).
		Update("status", status).Error
}

// WithTx 使用事务
func (r *gameRepo) WithTx(tx *gorm.DB) BaseRepository {
	return &gameRepo{
		BaseRepo: NewBaseRepo(tx),
	}
}

// GameCounterRepository 游戏ID计数器仓储接口
type GameCounterRepository interface {
	BaseRepository
	// Allocate 分配下一个游戏ID（计数器为0时视为未初始化，先置1再分配）
	Allocate(ctx context.Context) (uint64, error)
	Current(ctx context.Context) (uint64, error)
}

// gameCounterRepo 计数器仓储实现
type gameCounterRepo struct {
	*BaseRepo
}

// NewGameCounterRepository 创建计数器仓储
func NewGameCounterRepository(db *gorm.DB) GameCounterRepository {
	return &gameCounterRepo{
		BaseRepo: NewBaseRepo(db),
	}
}

// counterKey 单例行主键
const counterKey = 1

// Allocate 分配下一个游戏ID
func (r *gameCounterRepo) Allocate(ctx context.Context) (uint64, error) {
	var counter models.GameCounter
	err := r.db.WithContext(ctx).Where("counter_id = ?", counterKey).First(&counter).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, err
		}
		counter = models.GameCounter{CounterID: counterKey}
	}

	// 零值计数器视为未初始化
	if counter.NextGameID == 0 {
		counter.NextGameID = 1
	}

	id := counter.NextGameID
	counter.NextGameID++

	if err := r.db.WithContext(ctx).Save(&counter).Error; err != nil {
		return 0, err
	}

	return id, nil
}

// Current 查看当前计数器值（不分配）
func (r *gameCounterRepo) Current(ctx context.Context) (uint64, error) {
	var counter models.GameCounter
	err := r.db.WithContext(ctx).Where("counter_id = ?", counterKey).First(&counter).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return counter.NextGameID, nil
}

// WithTx 使用事务
func (r *gameCounterRepo) WithTx(tx *gorm.DB) BaseRepository {
	return &gameCounterRepo{
		BaseRepo: NewBaseRepo(tx),
	}
}
