package game

import (
	"crypto/sha256"
	"encoding/binary"
)

// 位置派生盐值（与链上合约保持一致，改动会破坏回放）
const (
	saltPosX = "POSX"
	saltPosY = "POSY"
)

// DeriveItemID 由(game_id, level, item_counter)派生32位物品ID
// 纯函数：相同输入永远产生相同的ID
func DeriveItemID(gameID uint64, level int, counter uint32) uint32 {
	return hashTriple(gameID, level, counter, "")
}

// DerivePosition 由同一三元组加固定盐值派生(x, y)坐标
// 每个坐标为 10 + hash%100，取值范围[10, 109]
func DerivePosition(gameID uint64, level int, counter uint32) (int, int) {
	x := int(hashTriple(gameID, level, counter, saltPosX)%100) + 10
	y := int(hashTriple(gameID, level, counter, saltPosY)%100) + 10
	return x, y
}

// hashTriple 对(game_id, level, counter, salt)做sha256并取前4字节
func hashTriple(gameID uint64, level int, counter uint32, salt string) uint32 {
	buf := make([]byte, 0, 16+len(salt))

	var b8 [8]byte
	binary.BigEndian.PutUint64(b8[:], gameID)
	buf = append(buf, b8[:]...)

	var b4 [4]byte
	binary.BigEndian.PutUint32(b4[:], uint32(level))
	buf = append(buf, b4[:]...)

	binary.BigEndian.PutUint32(b4[:], counter)
	buf = append(buf, b4[:]...)

	buf = append(buf, salt...)

	sum := sha256.Sum256(buf)
	return binary.BigEndian.Uint32(sum[:4])
}
