package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wfunc/rogue-chain/internal/models"
)

func TestWorldItemRepository_BatchCreateAndFind(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	repo := NewWorldItemRepository(db)
	ctx := context.Background()

	items := []*models.WorldItem{
		CreateTestWorldItem(1, 1001, "health_potion", 2),
		CreateTestWorldItem(1, 1002, "survival_kit", 2),
		CreateTestWorldItem(1, 1003, "book", 2),
	}
	require.NoError(t, repo.BatchCreate(ctx, items))

	found, err := repo.FindByKey(ctx, 1, 1002)
	require.NoError(t, err)
	assert.Equal(t, "survival_kit", found.ItemType)
	assert.False(t, found.IsCollected)

	all, err := repo.FindByLevel(ctx, 1, 2)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestWorldItemRepository_MarkCollected(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	repo := NewWorldItemRepository(db)
	ctx := context.Background()

	item := CreateTestWorldItem(1, 1001, "health_potion", 2)
	require.NoError(t, repo.Create(ctx, item))

	item.IsCollected = true
	require.NoError(t, repo.Update(ctx, item))

	found, err := repo.FindByKey(ctx, 1, 1001)
	require.NoError(t, err)
	assert.True(t, found.IsCollected)

	count, err := repo.CountCollected(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestWorldItemRepository_DeleteByLevel(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	repo := NewWorldItemRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.BatchCreate(ctx, []*models.WorldItem{
		CreateTestWorldItem(1, 1001, "health_potion", 2),
		CreateTestWorldItem(1, 1002, "book", 2),
		CreateTestWorldItem(1, 2001, "book", 3),
	}))

	require.NoError(t, repo.DeleteByLevel(ctx, 1, 2))

	// 只清理目标关卡
	remaining, err := repo.FindByLevel(ctx, 1, 2)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	other, err := repo.FindByLevel(ctx, 1, 3)
	require.NoError(t, err)
	assert.Len(t, other, 1)
}

func TestLevelItemsRepository_SaveAndFind(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	repo := NewLevelItemsRepository(db)
	ctx := context.Background()

	record := &models.LevelItems{
		GameID:             1,
		Level:              4,
		TotalHealthPotions: 7,
		TotalSurvivalKits:  2,
		TotalBooks:         1,
	}
	require.NoError(t, repo.Save(ctx, record))

	found, err := repo.FindByKey(ctx, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, 7, found.TotalHealthPotions)
	assert.Equal(t, 10, found.TotalItems())
	assert.False(t, found.IsComplete())
}

func TestLevelItemsRepository_SaveOverwritesSameKey(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	repo := NewLevelItemsRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &models.LevelItems{
		GameID:                 1,
		Level:                  4,
		TotalHealthPotions:     7,
		CollectedHealthPotions: 5,
	}))

	// 重开关卡：同一复合键重新写入，收集进度归零
	require.NoError(t, repo.Save(ctx, &models.LevelItems{
		GameID:             1,
		Level:              4,
		TotalHealthPotions: 7,
	}))

	found, err := repo.FindByKey(ctx, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, found.CollectedHealthPotions)

	// 没有产生第二条记录
	var count int64
	db.Model(&models.LevelItems{}).Where("game_id = ? AND level = ?", 1, 4).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestLevelItemsRepository_IsComplete(t *testing.T) {
	db := SetupTestDB()
	defer CleanupTestDB(db)
	repo := NewLevelItemsRepository(db)
	ctx := context.Background()

	record := &models.LevelItems{
		GameID:                 1,
		Level:                  1,
		TotalHealthPotions:     4,
		TotalSurvivalKits:      1,
		CollectedHealthPotions: 4,
		CollectedSurvivalKits:  1,
	}
	require.NoError(t, repo.Save(ctx, record))

	found, err := repo.FindByKey(ctx, 1, 1)
	require.NoError(t, err)
	assert.True(t, found.IsComplete())
}
