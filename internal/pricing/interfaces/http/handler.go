// Package http 实现定价服务的 HTTP 接口
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wyfcoding/optionpricing/internal/pricing/application"
	"github.com/wyfcoding/optionpricing/internal/pricing/domain"
	"github.com/wyfcoding/optionpricing/pkg/logger"
)

// PricingHandler HTTP 处理器
// 负责处理与期权定价相关的 HTTP 请求
type PricingHandler struct {
	app *application.Service // 定价应用服务
}

// NewPricingHandler 创建 HTTP 处理器实例
func NewPricingHandler(app *application.Service) *PricingHandler {
	return &PricingHandler{app: app}
}

// RegisterRoutes 注册路由
// 将处理器方法绑定到 Gin 路由引擎
func (h *PricingHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1/pricing")
	{
		api.POST("/option/price", h.PriceOption)
		api.POST("/option/greeks", h.ComputeGreeks)
	}
}

// PriceRequest 定价请求
type PriceRequest struct {
	Spot         float64 `json:"spot" binding:"required"`
	Strike       float64 `json:"strike" binding:"required"`
	TimeToExpiry float64 `json:"time_to_expiry" binding:"required"`
	RiskFreeRate float64 `json:"risk_free_rate"`
	Volatility   float64 `json:"volatility" binding:"required"`
	Model        string  `json:"model"`
	Paths        int     `json:"paths"`
	Steps        int     `json:"steps"`
}

// PriceOption 计算期权价格
func (h *PricingHandler) PriceOption(c *gin.Context) {
	var req PriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.app.PriceOption(c.Request.Context(), application.PriceRequest{
		Spot:         req.Spot,
		Strike:       req.Strike,
		TimeToExpiry: req.TimeToExpiry,
		RiskFreeRate: req.RiskFreeRate,
		Volatility:   req.Volatility,
		Model:        req.Model,
		Paths:        req.Paths,
		Steps:        req.Steps,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GreeksRequest 希腊字母请求
type GreeksRequest struct {
	Spot         float64 `json:"spot" binding:"required"`
	Strike       float64 `json:"strike" binding:"required"`
	TimeToExpiry float64 `json:"time_to_expiry" binding:"required"`
	RiskFreeRate float64 `json:"risk_free_rate"`
	Volatility   float64 `json:"volatility" binding:"required"`
	OptionType   string  `json:"option_type" binding:"required"`
}

// ComputeGreeks 计算希腊字母
func (h *PricingHandler) ComputeGreeks(c *gin.Context) {
	var req GreeksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.app.ComputeGreeks(c.Request.Context(), application.GreeksRequest{
		Spot:         req.Spot,
		Strike:       req.Strike,
		TimeToExpiry: req.TimeToExpiry,
		RiskFreeRate: req.RiskFreeRate,
		Volatility:   req.Volatility,
		OptionType:   req.OptionType,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// writeError 将领域错误映射为 HTTP 状态码
// 核心只返回哨兵错误，面向用户的呈现由调用方负责
func (h *PricingHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidOption), errors.Is(err, domain.ErrInvalidParameter):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNumericalOverflow):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		logger.Error(c.Request.Context(), "pricing request failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
