package game

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/wfunc/rogue-chain/internal/config"
	apperrors "github.com/wfunc/rogue-chain/internal/errors"
	"github.com/wfunc/rogue-chain/internal/models"
	"github.com/wfunc/rogue-chain/internal/repository"
)

// recordingNotifier 记录推送事件，供断言使用
type recordingNotifier struct {
	mu     sync.Mutex
	events []*Event
}

func (n *recordingNotifier) Notify(event *Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func (n *recordingNotifier) byType(eventType string) []*Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []*Event
	for _, ev := range n.events {
		if ev.Type == eventType {
			out = append(out, ev)
		}
	}
	return out
}

func testGameConfig() *config.GameConfig {
	return &config.GameConfig{
		BaseHealth:        100,
		InventoryCapacity: 50,
		PickupExperience:  10,
		LevelBonusHealth:  10,
		CompletionBonus:   100,
		PotionHealAmount:  25,
		KitExperience:     50,
		BookExperience:    100,
	}
}

func setupTestEngine(t *testing.T) (*Engine, *gorm.DB, *recordingNotifier) {
	t.Helper()
	db := repository.SetupTestDB()
	t.Cleanup(func() { repository.CleanupTestDB(db) })

	notifier := &recordingNotifier{}
	return NewEngine(db, testGameConfig(), notifier), db, notifier
}

func TestCreateGame_FreshPlayer(t *testing.T) {
	engine, _, notifier := setupTestEngine(t)
	ctx := context.Background()

	gameID, err := engine.CreateGame(ctx, "player_one", 1700000000)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), gameID)

	game, err := engine.GetGame(ctx, gameID)
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, game.Status)
	assert.Equal(t, 0, game.CurrentLevel)
	assert.Equal(t, int64(0), game.Score)

	// 新玩家初始状态
	stats, err := engine.GetPlayerStats(ctx, "player_one")
	require.NoError(t, err)
	assert.Equal(t, 100, stats.Health)
	assert.Equal(t, 100, stats.MaxHealth)
	assert.Equal(t, 1, stats.Level)
	assert.Equal(t, int64(0), stats.Experience)

	inv, err := engine.GetPlayerInventory(ctx, "player_one")
	require.NoError(t, err)
	assert.Equal(t, 50, inv.Capacity)
	assert.Equal(t, 0, inv.TotalItems())

	require.Len(t, notifier.byType(EventGameCreated), 1)
}

func TestCreateGame_SequentialIDs(t *testing.T) {
	engine, _, _ := setupTestEngine(t)
	ctx := context.Background()

	first, err := engine.CreateGame(ctx, "player_one", 1700000000)
	require.NoError(t, err)
	second, err := engine.CreateGame(ctx, "player_one", 1700000001)
	require.NoError(t, err)
	assert.Equal(t, first+1, second)

	// 再开新局不会重置玩家状态
	stats, err := engine.GetPlayerStats(ctx, "player_one")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Level)
}

func TestStartLevel_SpawnCounts(t *testing.T) {
	engine, _, notifier := setupTestEngine(t)
	ctx := context.Background()

	gameID, err := engine.CreateGame(ctx, "player_one", 1700000000)
	require.NoError(t, err)

	// 第4关：血瓶min(3+4,10)=7，生存包min(5/2,3)=2，书本min(4/3,2)=1
	total, err := engine.StartLevel(ctx, "player_one", gameID, 4)
	require.NoError(t, err)
	assert.Equal(t, 10, total)

	record, err := engine.GetLevelItems(ctx, gameID, 4)
	require.NoError(t, err)
	assert.Equal(t, 7, record.TotalHealthPotions)
	assert.Equal(t, 2, record.TotalSurvivalKits)
	assert.Equal(t, 1, record.TotalBooks)
	assert.Equal(t, 0, record.CollectedHealthPotions)

	items, err := engine.ListWorldItems(ctx, gameID, 4)
	require.NoError(t, err)
	assert.Len(t, items, 10)

	game, err := engine.GetGame(ctx, gameID)
	require.NoError(t, err)
	assert.Equal(t, 4, game.CurrentLevel)

	require.Len(t, notifier.byType(EventLevelStarted), 1)
	assert.Equal(t, 10, notifier.byType(EventLevelStarted)[0].Payload["items_spawned"])
}

func TestStartLevel_OwnershipRequired(t *testing.T) {
	engine, _, _ := setupTestEngine(t)
	ctx := context.Background()

	gameID, err := engine.CreateGame(ctx, "player_one", 1700000000)
	require.NoError(t, err)

	_, err = engine.StartLevel(ctx, "player_two", gameID, 1)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotYourGame))
}

func TestStartLevel_RequiresInProgress(t *testing.T) {
	engine, _, _ := setupTestEngine(t)
	ctx := context.Background()

	gameID, err := engine.CreateGame(ctx, "player_one", 1700000000)
	require.NoError(t, err)
	require.NoError(t, engine.PauseGame(ctx, "player_one", gameID))

	_, err = engine.StartLevel(ctx, "player_one", gameID, 1)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrGameState))
}

func TestStartLevel_RestartResetsProgress(t *testing.T) {
	engine, _, _ := setupTestEngine(t)
	ctx := context.Background()

	gameID, err := engine.CreateGame(ctx, "player_one", 1700000000)
	require.NoError(t, err)

	_, err = engine.StartLevel(ctx, "player_one", gameID, 2)
	require.NoError(t, err)

	// 拾取一个物品后重开关卡
	items, err := engine.ListWorldItems(ctx, gameID, 2)
	require.NoError(t, err)
	require.NoError(t, engine.PickupItem(ctx, "player_one", gameID, items[0].ItemID))

	_, err = engine.StartLevel(ctx, "player_one", gameID, 2)
	require.NoError(t, err)

	record, err := engine.GetLevelItems(ctx, gameID, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, record.CollectedHealthPotions)
	assert.Equal(t, 0, record.CollectedSurvivalKits)
	assert.Equal(t, 0, record.CollectedBooks)

	// 重新生成后的物品全部未收集
	items, err = engine.ListWorldItems(ctx, gameID, 2)
	require.NoError(t, err)
	for _, item := range items {
		assert.False(t, item.IsCollected)
	}
}

func TestPickupItem_Success(t *testing.T) {
	engine, _, notifier := setupTestEngine(t)
	ctx := context.Background()

	gameID, err := engine.CreateGame(ctx, "player_one", 1700000000)
	require.NoError(t, err)
	_, err = engine.StartLevel(ctx, "player_one", gameID, 1)
	require.NoError(t, err)

	items, err := engine.ListWorldItems(ctx, gameID, 1)
	require.NoError(t, err)
	target := items[0]

	require.NoError(t, engine.PickupItem(ctx, "player_one", gameID, target.ItemID))

	// 背包计数+1
	inv, err := engine.GetPlayerInventory(ctx, "player_one")
	require.NoError(t, err)
	assert.Equal(t, 1, inv.TotalItems())

	// 物品已标记为已收集
	collected, err := engine.ListWorldItems(ctx, gameID, 1)
	require.NoError(t, err)
	for _, item := range collected {
		if item.ItemID == target.ItemID {
			assert.True(t, item.IsCollected)
		}
	}

	// 经验+10，收集数+1
	stats, err := engine.GetPlayerStats(ctx, "player_one")
	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.Experience)
	assert.Equal(t, 1, stats.ItemsCollected)

	// 关卡收集计数同步更新
	record, err := engine.GetLevelItems(ctx, gameID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1,
		record.CollectedHealthPotions+record.CollectedSurvivalKits+record.CollectedBooks)

	require.Len(t, notifier.byType(EventItemPickedUp), 1)
}

func TestPickupItem_AlreadyCollected(t *testing.T) {
	engine, _, _ := setupTestEngine(t)
	ctx := context.Background()

	gameID, err := engine.CreateGame(ctx, "player_one", 1700000000)
	require.NoError(t, err)
	_, err = engine.StartLevel(ctx, "player_one", gameID, 1)
	require.NoError(t, err)

	items, err := engine.ListWorldItems(ctx, gameID, 1)
	require.NoError(t, err)
	target := items[0]

	require.NoError(t, engine.PickupItem(ctx, "player_one", gameID, target.ItemID))

	statsBefore, err := engine.GetPlayerStats(ctx, "player_one")
	require.NoError(t, err)
	invBefore, err := engine.GetPlayerInventory(ctx, "player_one")
	require.NoError(t, err)

	// 第二次拾取失败，且所有记录保持第一次拾取后的状态
	err = engine.PickupItem(ctx, "player_one", gameID, target.ItemID)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrItemCollected))

	statsAfter, err := engine.GetPlayerStats(ctx, "player_one")
	require.NoError(t, err)
	assert.Equal(t, statsBefore.Experience, statsAfter.Experience)
	assert.Equal(t, statsBefore.ItemsCollected, statsAfter.ItemsCollected)

	invAfter, err := engine.GetPlayerInventory(ctx, "player_one")
	require.NoError(t, err)
	assert.Equal(t, invBefore.TotalItems(), invAfter.TotalItems())
}

func TestPickupItem_LevelUpFullHeal(t *testing.T) {
	engine, db, _ := setupTestEngine(t)
	ctx := context.Background()

	gameID, err := engine.CreateGame(ctx, "player_one", 1700000000)
	require.NoError(t, err)
	_, err = engine.StartLevel(ctx, "player_one", gameID, 1)
	require.NoError(t, err)

	// 预置90经验、受伤状态
	playerRepo := repository.NewPlayerRepository(db)
	stats, err := playerRepo.FindByAddress(ctx, "player_one")
	require.NoError(t, err)
	stats.Experience = 90
	stats.Health = 40
	require.NoError(t, playerRepo.Update(ctx, stats))

	items, err := engine.ListWorldItems(ctx, gameID, 1)
	require.NoError(t, err)
	require.NoError(t, engine.PickupItem(ctx, "player_one", gameID, items[0].ItemID))

	// 100经验→2级，生命上限+10且回满
	stats, err = playerRepo.FindByAddress(ctx, "player_one")
	require.NoError(t, err)
	assert.Equal(t, int64(100), stats.Experience)
	assert.Equal(t, 2, stats.Level)
	assert.Equal(t, 110, stats.MaxHealth)
	assert.Equal(t, 110, stats.Health)
}

func TestPickupItem_InventoryFull(t *testing.T) {
	engine, db, _ := setupTestEngine(t)
	ctx := context.Background()

	gameID, err := engine.CreateGame(ctx, "player_one", 1700000000)
	require.NoError(t, err)
	_, err = engine.StartLevel(ctx, "player_one", gameID, 1)
	require.NoError(t, err)

	// 预置满背包
	invRepo := repository.NewInventoryRepository(db)
	inv, err := invRepo.FindByAddress(ctx, "player_one")
	require.NoError(t, err)
	inv.HealthPotions = inv.Capacity
	require.NoError(t, invRepo.Update(ctx, inv))

	items, err := engine.ListWorldItems(ctx, gameID, 1)
	require.NoError(t, err)

	err = engine.PickupItem(ctx, "player_one", gameID, items[0].ItemID)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInventoryFull))

	// 失败时物品保持未收集
	after, err := engine.ListWorldItems(ctx, gameID, 1)
	require.NoError(t, err)
	for _, item := range after {
		assert.False(t, item.IsCollected)
	}
}

func TestCompleteLevel_AllCollected(t *testing.T) {
	engine, _, notifier := setupTestEngine(t)
	ctx := context.Background()

	gameID, err := engine.CreateGame(ctx, "player_one", 1700000000)
	require.NoError(t, err)

	// 第0关：血瓶3个，其余为0
	total, err := engine.StartLevel(ctx, "player_one", gameID, 0)
	require.NoError(t, err)
	require.Equal(t, 3, total)

	items, err := engine.ListWorldItems(ctx, gameID, 0)
	require.NoError(t, err)
	for _, item := range items {
		require.NoError(t, engine.PickupItem(ctx, "player_one", gameID, item.ItemID))
	}

	done, err := engine.CompleteLevel(ctx, "player_one", gameID, 0)
	require.NoError(t, err)
	assert.True(t, done)

	// 3次拾取30经验 + 通关奖励100经验
	stats, err := engine.GetPlayerStats(ctx, "player_one")
	require.NoError(t, err)
	assert.Equal(t, int64(130), stats.Experience)
	assert.Equal(t, 2, stats.Level)

	require.Len(t, notifier.byType(EventLevelCompleted), 1)
}

func TestCompleteLevel_Incomplete(t *testing.T) {
	engine, _, _ := setupTestEngine(t)
	ctx := context.Background()

	gameID, err := engine.CreateGame(ctx, "player_one", 1700000000)
	require.NoError(t, err)
	_, err = engine.StartLevel(ctx, "player_one", gameID, 1)
	require.NoError(t, err)

	// 一个都没收集：返回false但不报错，也不发奖励
	done, err := engine.CompleteLevel(ctx, "player_one", gameID, 1)
	require.NoError(t, err)
	assert.False(t, done)

	stats, err := engine.GetPlayerStats(ctx, "player_one")
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.Experience)
}

func TestCompleteLevel_LevelMismatch(t *testing.T) {
	engine, _, _ := setupTestEngine(t)
	ctx := context.Background()

	gameID, err := engine.CreateGame(ctx, "player_one", 1700000000)
	require.NoError(t, err)
	_, err = engine.StartLevel(ctx, "player_one", gameID, 2)
	require.NoError(t, err)

	_, err = engine.CompleteLevel(ctx, "player_one", gameID, 3)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrLevelMismatch))
}

func TestPauseResume(t *testing.T) {
	engine, _, _ := setupTestEngine(t)
	ctx := context.Background()

	gameID, err := engine.CreateGame(ctx, "player_one", 1700000000)
	require.NoError(t, err)

	require.NoError(t, engine.PauseGame(ctx, "player_one", gameID))
	game, err := engine.GetGame(ctx, gameID)
	require.NoError(t, err)
	assert.Equal(t, StatusPaused, game.Status)

	// 重复暂停失败
	err = engine.PauseGame(ctx, "player_one", gameID)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrGameState))

	require.NoError(t, engine.ResumeGame(ctx, "player_one", gameID))
	game, err = engine.GetGame(ctx, gameID)
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, game.Status)

	// 未暂停时恢复失败
	err = engine.ResumeGame(ctx, "player_one", gameID)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrGameState))
}

func TestPauseGame_EventWriteFailureRollsBack(t *testing.T) {
	engine, db, notifier := setupTestEngine(t)
	ctx := context.Background()

	gameID, err := engine.CreateGame(ctx, "player_one", 1700000000)
	require.NoError(t, err)
	created := len(notifier.byType(EventGameCreated))

	// 事件表写不进去时，状态变更必须一并回滚
	require.NoError(t, db.Migrator().DropTable(&models.GameEvent{}))

	err = engine.PauseGame(ctx, "player_one", gameID)
	require.Error(t, err)

	game, err := engine.GetGame(ctx, gameID)
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, game.Status)

	// 失败的操作不对外推送
	assert.Len(t, notifier.byType(EventGamePaused), 0)
	assert.Len(t, notifier.byType(EventGameCreated), created)
}

func TestEndGame_NoStatusPrecondition(t *testing.T) {
	engine, _, _ := setupTestEngine(t)
	ctx := context.Background()

	gameID, err := engine.CreateGame(ctx, "player_one", 1700000000)
	require.NoError(t, err)

	// 暂停状态下结束同样成功
	require.NoError(t, engine.PauseGame(ctx, "player_one", gameID))
	require.NoError(t, engine.EndGame(ctx, "player_one", gameID, 4200))

	game, err := engine.GetGame(ctx, gameID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, game.Status)
	assert.Equal(t, int64(4200), game.Score)
}

func TestEndGame_OwnershipRequired(t *testing.T) {
	engine, _, _ := setupTestEngine(t)
	ctx := context.Background()

	gameID, err := engine.CreateGame(ctx, "player_one", 1700000000)
	require.NoError(t, err)

	err = engine.EndGame(ctx, "player_two", gameID, 100)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotYourGame))
}

func TestUseItem_HealthPotion(t *testing.T) {
	engine, db, _ := setupTestEngine(t)
	ctx := context.Background()

	_, err := engine.CreateGame(ctx, "player_one", 1700000000)
	require.NoError(t, err)

	invRepo := repository.NewInventoryRepository(db)
	inv, err := invRepo.FindByAddress(ctx, "player_one")
	require.NoError(t, err)
	inv.HealthPotions = 3
	require.NoError(t, invRepo.Update(ctx, inv))

	playerRepo := repository.NewPlayerRepository(db)
	stats, err := playerRepo.FindByAddress(ctx, "player_one")
	require.NoError(t, err)
	stats.Health = 30
	require.NoError(t, playerRepo.Update(ctx, stats))

	// 2瓶回复50点：30 → 80
	require.NoError(t, engine.UseItem(ctx, "player_one", ItemHealthPotion, 2))

	stats, err = playerRepo.FindByAddress(ctx, "player_one")
	require.NoError(t, err)
	assert.Equal(t, 80, stats.Health)

	inv, err = invRepo.FindByAddress(ctx, "player_one")
	require.NoError(t, err)
	assert.Equal(t, 1, inv.HealthPotions)

	// 再用1瓶：80 + 25 = 105，超过上限按100封顶
	require.NoError(t, engine.UseItem(ctx, "player_one", ItemHealthPotion, 1))
	stats, err = playerRepo.FindByAddress(ctx, "player_one")
	require.NoError(t, err)
	assert.Equal(t, 100, stats.Health)
}

func TestUseItem_BookNoHealOnLevelUp(t *testing.T) {
	engine, db, _ := setupTestEngine(t)
	ctx := context.Background()

	_, err := engine.CreateGame(ctx, "player_one", 1700000000)
	require.NoError(t, err)

	invRepo := repository.NewInventoryRepository(db)
	inv, err := invRepo.FindByAddress(ctx, "player_one")
	require.NoError(t, err)
	inv.Books = 1
	require.NoError(t, invRepo.Update(ctx, inv))

	playerRepo := repository.NewPlayerRepository(db)
	stats, err := playerRepo.FindByAddress(ctx, "player_one")
	require.NoError(t, err)
	stats.Health = 40
	require.NoError(t, playerRepo.Update(ctx, stats))

	// 书本+100经验升到2级，但使用路径不回血也不加上限
	require.NoError(t, engine.UseItem(ctx, "player_one", ItemBook, 1))

	stats, err = playerRepo.FindByAddress(ctx, "player_one")
	require.NoError(t, err)
	assert.Equal(t, int64(100), stats.Experience)
	assert.Equal(t, 2, stats.Level)
	assert.Equal(t, 100, stats.MaxHealth)
	assert.Equal(t, 40, stats.Health)
}

func TestUseItem_Insufficient(t *testing.T) {
	engine, _, _ := setupTestEngine(t)
	ctx := context.Background()

	_, err := engine.CreateGame(ctx, "player_one", 1700000000)
	require.NoError(t, err)

	err = engine.UseItem(ctx, "player_one", ItemHealthPotion, 1)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInsufficientItems))
}

func TestTransferItem(t *testing.T) {
	engine, db, _ := setupTestEngine(t)
	ctx := context.Background()

	_, err := engine.CreateGame(ctx, "alice", 1700000000)
	require.NoError(t, err)
	_, err = engine.CreateGame(ctx, "bob", 1700000001)
	require.NoError(t, err)

	invRepo := repository.NewInventoryRepository(db)
	inv, err := invRepo.FindByAddress(ctx, "alice")
	require.NoError(t, err)
	inv.Books = 5
	require.NoError(t, invRepo.Update(ctx, inv))

	require.NoError(t, engine.TransferItem(ctx, "alice", "bob", ItemBook, 3))

	sender, err := invRepo.FindByAddress(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 2, sender.Books)

	recipient, err := invRepo.FindByAddress(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, 3, recipient.Books)
}

func TestTransferItem_RecipientCapacity(t *testing.T) {
	engine, db, _ := setupTestEngine(t)
	ctx := context.Background()

	_, err := engine.CreateGame(ctx, "alice", 1700000000)
	require.NoError(t, err)
	_, err = engine.CreateGame(ctx, "bob", 1700000001)
	require.NoError(t, err)

	invRepo := repository.NewInventoryRepository(db)

	inv, err := invRepo.FindByAddress(ctx, "alice")
	require.NoError(t, err)
	inv.Books = 5
	require.NoError(t, invRepo.Update(ctx, inv))

	inv, err = invRepo.FindByAddress(ctx, "bob")
	require.NoError(t, err)
	inv.HealthPotions = 48
	require.NoError(t, invRepo.Update(ctx, inv))

	// 接收方只剩2个空位，转3个失败且双方余额不变
	err = engine.TransferItem(ctx, "alice", "bob", ItemBook, 3)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInventoryFull))

	sender, err := invRepo.FindByAddress(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 5, sender.Books)

	recipient, err := invRepo.FindByAddress(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, 0, recipient.Books)
}

func TestGetInventorySummary(t *testing.T) {
	engine, db, _ := setupTestEngine(t)
	ctx := context.Background()

	_, err := engine.CreateGame(ctx, "player_one", 1700000000)
	require.NoError(t, err)

	invRepo := repository.NewInventoryRepository(db)
	inv, err := invRepo.FindByAddress(ctx, "player_one")
	require.NoError(t, err)
	inv.HealthPotions = 3
	inv.SurvivalKits = 2
	inv.Books = 1
	require.NoError(t, invRepo.Update(ctx, inv))

	summary, err := engine.GetInventorySummary(ctx, "player_one")
	require.NoError(t, err)
	assert.Equal(t, 6, summary.TotalItems)
	assert.Equal(t, 44, summary.FreeSlots)
	assert.Equal(t, 50, summary.Capacity)
	assert.Equal(t, 3, summary.HealthPotions)
}

func TestSpawnCountsForLevel(t *testing.T) {
	cases := []struct {
		level   int
		potions int
		kits    int
		books   int
	}{
		{0, 3, 0, 0},
		{1, 4, 1, 0},
		{3, 6, 2, 1},
		{4, 7, 2, 1},
		{7, 10, 3, 2},
		{100, 10, 3, 2}, // 高关卡封顶
	}

	for _, tc := range cases {
		counts := SpawnCountsForLevel(tc.level)
		assert.Equal(t, tc.potions, counts.HealthPotions, "level %d", tc.level)
		assert.Equal(t, tc.kits, counts.SurvivalKits, "level %d", tc.level)
		assert.Equal(t, tc.books, counts.Books, "level %d", tc.level)
	}
}

func TestLevelForExperience(t *testing.T) {
	assert.Equal(t, 1, LevelForExperience(0))
	assert.Equal(t, 1, LevelForExperience(99))
	assert.Equal(t, 2, LevelForExperience(100))
	assert.Equal(t, 3, LevelForExperience(250))
}
