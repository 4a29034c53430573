package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveItemID_Deterministic(t *testing.T) {
	// 相同输入必须产生相同的ID
	first := DeriveItemID(42, 3, 0)
	second := DeriveItemID(42, 3, 0)
	assert.Equal(t, first, second)

	x1, y1 := DerivePosition(42, 3, 0)
	x2, y2 := DerivePosition(42, 3, 0)
	assert.Equal(t, x1, x2)
	assert.Equal(t, y1, y2)
}

func TestDeriveItemID_InputSensitive(t *testing.T) {
	base := DeriveItemID(42, 3, 0)

	// 任一输入变化都应产生不同的ID
	assert.NotEqual(t, base, DeriveItemID(43, 3, 0))
	assert.NotEqual(t, base, DeriveItemID(42, 4, 0))
	assert.NotEqual(t, base, DeriveItemID(42, 3, 1))
}

func TestDerivePosition_Range(t *testing.T) {
	// 坐标范围[10, 109]
	for counter := uint32(0); counter < 100; counter++ {
		x, y := DerivePosition(7, 5, counter)
		assert.GreaterOrEqual(t, x, 10)
		assert.LessOrEqual(t, x, 109)
		assert.GreaterOrEqual(t, y, 10)
		assert.LessOrEqual(t, y, 109)
	}
}

func TestDerivePosition_SaltsIndependent(t *testing.T) {
	// x和y使用不同盐值派生，不应整体恒等
	allEqual := true
	for counter := uint32(0); counter < 32; counter++ {
		x, y := DerivePosition(1, 1, counter)
		if x != y {
			allEqual = false
			break
		}
	}
	assert.False(t, allEqual)
}

func TestDeriveItemID_NoCollisionWithinLevel(t *testing.T) {
	// 同一关卡内按计数器派生的ID互不相同（数量在几十以内）
	seen := make(map[uint32]bool)
	for counter := uint32(0); counter < 15; counter++ {
		id := DeriveItemID(99, 4, counter)
		assert.False(t, seen[id], "物品ID冲突: %d", id)
		seen[id] = true
	}
}
