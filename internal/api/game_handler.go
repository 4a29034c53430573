package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/wfunc/rogue-chain/internal/errors"
	"github.com/wfunc/rogue-chain/internal/game"
	"github.com/wfunc/rogue-chain/internal/middleware"
	"github.com/wfunc/rogue-chain/internal/repository"
)

// GameHandler 游戏引擎处理器
// 调用者身份一律来自认证中间件写入的地址，不信任请求体里的玩家字段
type GameHandler struct {
	engine *game.Engine
}

// NewGameHandler 创建游戏处理器
func NewGameHandler(engine *game.Engine) *GameHandler {
	return &GameHandler{
		engine: engine,
	}
}

// caller 获取当前调用者地址
func caller(c *gin.Context) (string, bool) {
	address, ok := middleware.GetAddress(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    int(apperrors.ErrAuthentication),
			Message: "未登录",
		})
	}
	return address, ok
}

// pathGameID 解析路径中的游戏ID
func pathGameID(c *gin.Context) (uint64, bool) {
	gameID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, err)
		return 0, false
	}
	return gameID, true
}

// CreateGame 创建游戏
func (h *GameHandler) CreateGame(c *gin.Context) {
	player, ok := caller(c)
	if !ok {
		return
	}

	gameID, err := h.engine.CreateGame(c.Request.Context(), player, time.Now().Unix())
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, gin.H{"game_id": gameID})
}

// StartLevel 开始关卡
func (h *GameHandler) StartLevel(c *gin.Context) {
	player, ok := caller(c)
	if !ok {
		return
	}
	gameID, ok := pathGameID(c)
	if !ok {
		return
	}
	level, err := strconv.Atoi(c.Param("level"))
	if err != nil || level < 0 {
		respondBadRequest(c, apperrors.Newf(apperrors.ErrInvalidParam, "无效的关卡: %s", c.Param("level")))
		return
	}

	total, err := h.engine.StartLevel(c.Request.Context(), player, gameID, level)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, gin.H{
		"level":         level,
		"items_spawned": total,
	})
}

// CompleteLevel 完成关卡
func (h *GameHandler) CompleteLevel(c *gin.Context) {
	player, ok := caller(c)
	if !ok {
		return
	}
	gameID, ok := pathGameID(c)
	if !ok {
		return
	}
	level, err := strconv.Atoi(c.Param("level"))
	if err != nil || level < 0 {
		respondBadRequest(c, apperrors.Newf(apperrors.ErrInvalidParam, "无效的关卡: %s", c.Param("level")))
		return
	}

	completed, err := h.engine.CompleteLevel(c.Request.Context(), player, gameID, level)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, gin.H{"completed": completed})
}

// PauseGame 暂停游戏
func (h *GameHandler) PauseGame(c *gin.Context) {
	player, ok := caller(c)
	if !ok {
		return
	}
	gameID, ok := pathGameID(c)
	if !ok {
		return
	}

	if err := h.engine.PauseGame(c.Request.Context(), player, gameID); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, nil)
}

// ResumeGame 恢复游戏
func (h *GameHandler) ResumeGame(c *gin.Context) {
	player, ok := caller(c)
	if !ok {
		return
	}
	gameID, ok := pathGameID(c)
	if !ok {
		return
	}

	if err := h.engine.ResumeGame(c.Request.Context(), player, gameID); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, nil)
}

// EndGameRequest 结束游戏请求
type EndGameRequest struct {
	FinalScore int64 `json:"final_score"`
}

// EndGame 结束游戏
func (h *GameHandler) EndGame(c *gin.Context) {
	player, ok := caller(c)
	if !ok {
		return
	}
	gameID, ok := pathGameID(c)
	if !ok {
		return
	}

	var req EndGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.engine.EndGame(c.Request.Context(), player, gameID, req.FinalScore); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, nil)
}

// PickupItem 拾取物品
func (h *GameHandler) PickupItem(c *gin.Context) {
	player, ok := caller(c)
	if !ok {
		return
	}
	gameID, ok := pathGameID(c)
	if !ok {
		return
	}
	itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 32)
	if err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.engine.PickupItem(c.Request.Context(), player, gameID, uint32(itemID)); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, gin.H{"collected": true})
}

// UseItemRequest 使用消耗品请求
type UseItemRequest struct {
	ItemType string `json:"item_type" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

// UseItem 使用消耗品
func (h *GameHandler) UseItem(c *gin.Context) {
	player, ok := caller(c)
	if !ok {
		return
	}

	var req UseItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.engine.UseItem(c.Request.Context(), player, req.ItemType, req.Quantity); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, nil)
}

// TransferItemRequest 转移物品请求
type TransferItemRequest struct {
	To       string `json:"to" binding:"required"`
	ItemType string `json:"item_type" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

// TransferItem 转移物品
func (h *GameHandler) TransferItem(c *gin.Context) {
	player, ok := caller(c)
	if !ok {
		return
	}

	var req TransferItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.engine.TransferItem(c.Request.Context(), player, req.To, req.ItemType, req.Quantity); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, nil)
}

// GetPlayerStats 查询玩家状态
func (h *GameHandler) GetPlayerStats(c *gin.Context) {
	player, ok := caller(c)
	if !ok {
		return
	}

	stats, err := h.engine.GetPlayerStats(c.Request.Context(), player)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, stats)
}

// GetInventory 查询玩家背包
func (h *GameHandler) GetInventory(c *gin.Context) {
	player, ok := caller(c)
	if !ok {
		return
	}

	inv, err := h.engine.GetPlayerInventory(c.Request.Context(), player)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, inv)
}

// GetInventorySummary 查询背包摘要
func (h *GameHandler) GetInventorySummary(c *gin.Context) {
	player, ok := caller(c)
	if !ok {
		return
	}

	summary, err := h.engine.GetInventorySummary(c.Request.Context(), player)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, summary)
}

// GetGame 查询游戏实例
func (h *GameHandler) GetGame(c *gin.Context) {
	if _, ok := caller(c); !ok {
		return
	}
	gameID, ok := pathGameID(c)
	if !ok {
		return
	}

	instance, err := h.engine.GetGame(c.Request.Context(), gameID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, instance)
}

// ListGames 查询自己的游戏列表
func (h *GameHandler) ListGames(c *gin.Context) {
	player, ok := caller(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	pagination := repository.NewPagination(page, pageSize)

	games, err := h.engine.ListGames(c.Request.Context(), player, pagination)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, gin.H{
		"games": games,
		"total": pagination.Total,
	})
}

// GetLevelItems 查询关卡物品统计
func (h *GameHandler) GetLevelItems(c *gin.Context) {
	if _, ok := caller(c); !ok {
		return
	}
	gameID, ok := pathGameID(c)
	if !ok {
		return
	}
	level, err := strconv.Atoi(c.Param("level"))
	if err != nil || level < 0 {
		respondBadRequest(c, apperrors.Newf(apperrors.ErrInvalidParam, "无效的关卡: %s", c.Param("level")))
		return
	}

	record, err := h.engine.GetLevelItems(c.Request.Context(), gameID, level)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, record)
}

// ListWorldItems 查询关卡生成的全部物品
func (h *GameHandler) ListWorldItems(c *gin.Context) {
	if _, ok := caller(c); !ok {
		return
	}
	gameID, ok := pathGameID(c)
	if !ok {
		return
	}
	level, err := strconv.Atoi(c.Param("level"))
	if err != nil || level < 0 {
		respondBadRequest(c, apperrors.Newf(apperrors.ErrInvalidParam, "无效的关卡: %s", c.Param("level")))
		return
	}

	items, err := h.engine.ListWorldItems(c.Request.Context(), gameID, level)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, items)
}
