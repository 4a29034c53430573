package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/wfunc/rogue-chain/internal/errors"
)

// ErrorResponse API错误响应
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse API成功响应
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// respondError 按错误码映射HTTP状态并输出统一错误结构
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		appErr = apperrors.Wrap(err, apperrors.ErrUnknown)
	}

	c.JSON(appErr.HTTPStatus(), ErrorResponse{
		Code:    int(appErr.Code),
		Message: appErr.Message,
		Details: appErr.Details,
	})
}

// respondBadRequest 参数绑定失败的统一响应
func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    int(apperrors.ErrInvalidParam),
		Message: "请求参数错误",
		Details: err.Error(),
	})
}

// respondOK 输出成功响应
func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Data:    data,
	})
}
