package repository

import (
	"context"
	"errors"
	"time"

	apperrors "github.com/wfunc/rogue-chain/internal/errors"
	"github.com/wfunc/rogue-chain/internal/models"
	"gorm.io/gorm"
)

// PlayerRepository 玩家状态仓储接口
type PlayerRepository interface {
	BaseRepository
	Create(ctx context.Context, player *models.Player) error
	Update(ctx context.Context, player *models.Player) error
	FindByAddress(ctx context.Context, address string) (*models.Player, error)
	Exists(ctx context.Context, address string) (bool, error)
}

// playerRepo 玩家状态仓储实现
type playerRepo struct {
	*BaseRepo
}

// NewPlayerRepository 创建玩家状态仓储
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepo{
		BaseRepo: NewBaseRepo(db),
	}
}

// Create 创建玩家状态
func (r *playerRepo) Create(ctx context.Context, player *models.Player) error {
	return r.db.WithContext(ctx).Create(player).Error
}

// Update 更新玩家状态
func (r *playerRepo) Update(ctx context.Context, player *models.Player) error {
	return r.db.WithContext(ctx).Save(player).Error
}

// FindByAddress 根据地址查找玩家
func (r *playerRepo) FindByAddress(ctx context.Context, address string) (*models.Player, error) {
	var player models.Player
	err := r.db.WithContext(ctx).Where("address = ?", address).First(&player).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Newf(apperrors.ErrNotFound, "玩家不存在: %s", address)
		}
		return nil, err
	}
	return &player, nil
}

// Exists 玩家是否已存在
func (r *playerRepo) Exists(ctx context.Context, address string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Player{}).
		Where("address = ?", address).
		Count(&count).Error
	return count > 0, err
}

// WithTx 使用事务
func (r *playerRepo) WithTx(tx *gorm.DB) BaseRepository {
	return &playerRepo{
		BaseRepo: NewBaseRepo(tx),
	}
}

// InventoryRepository 玩家背包仓储接口
type InventoryRepository interface {
	BaseRepository
	Create(ctx context.Context, inv *models.PlayerInventory) error
	Update(ctx context.Context, inv *models.PlayerInventory) error
	FindByAddress(ctx context.Context, address string) (*models.PlayerInventory, error)
}

// inventoryRepo 玩家背包仓储实现
type inventoryRepo struct {
	*BaseRepo
}

// NewInventoryRepository 创建背包仓储
func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{
		BaseRepo: NewBaseRepo(db),
	}
}

// Create 创建背包
func (r *inventoryRepo) Create(ctx context.Context, inv *models.PlayerInventory) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

// Update 更新背包
func (r *inventoryRepo) Update(ctx context.Context, inv *models.PlayerInventory) error {
	return r.db.WithContext(ctx).Save(inv).Error
}

// FindByAddress 根据地址查找背包
func (r *inventoryRepo) FindByAddress(ctx context.Context, address string) (*models.PlayerInventory, error) {
	var inv models.PlayerInventory
	err := r.db.WithContext(ctx).Where("address = ?", address).First(&inv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Newf(apperrors.ErrNotFound, "背包不存在: %s", address)
		}
		return nil, err
	}
	return &inv, nil
}

// WithTx 使用事务
func (r *inventoryRepo) WithTx(tx *gorm.DB) BaseRepository {
	return &inventoryRepo{
		BaseRepo: NewBaseRepo(tx),
	}
}

// AccountRepository 玩家账号仓储接口
type AccountRepository interface {
	BaseRepository
	Create(ctx context.Context, account *models.PlayerAccount) error
	FindByUsername(ctx context.Context, username string) (*models.PlayerAccount, error)
	FindByAddress(ctx context.Context, address string) (*models.PlayerAccount, error)
	UpdateLastLogin(ctx context.Context, address string, at time.Time) error
}

// accountRepo 玩家账号仓储实现
type accountRepo struct {
	*BaseRepo
}

// NewAccountRepository 创建账号仓储
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepo{
		BaseRepo: NewBaseRepo(db),
	}
}

// Create 创建账号
func (r *accountRepo) Create(ctx context.Context, account *models.PlayerAccount) error {
	return r.db.WithContext(ctx).Create(account).Error
}

// FindByUsername 根据用户名查找账号
func (r *accountRepo) FindByUsername(ctx context.Context, username string) (*models.PlayerAccount, error) {
	var account models.PlayerAccount
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ErrNotFound, "账号不存在")
		}
		return nil, err
	}
	return &account, nil
}

// FindByAddress 根据地址查找账号
func (r *accountRepo) FindByAddress(ctx context.Context, address string) (*models.PlayerAccount, error) {
	var account models.PlayerAccount
	err := r.db.WithContext(ctx).Where("address = ?", address).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ErrNotFound, "账号不存在")
		}
		return nil, err
	}
	return &account, nil
}

// UpdateLastLogin 更新最后登录时间
func (r *accountRepo) UpdateLastLogin(ctx context.Context, address string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.PlayerAccount{}).
		Where("address = ?", address).
		Update("last_login_at", at).Error
}

// WithTx 使用事务
func (r *accountRepo) WithTx(tx *gorm.DB) BaseRepository {
	return &accountRepo{
		BaseRepo: NewBaseRepo(tx),
	}
}
