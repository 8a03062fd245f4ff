// Package application 包含定价服务的用例逻辑
package application

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wyfcoding/optionpricing/internal/pricing/domain"
	"github.com/wyfcoding/optionpricing/pkg/metrics"
)

// Defaults 请求未指定时的模型参数
type Defaults struct {
	Paths int    // 蒙特卡洛默认样本数
	Steps int    // 二叉树默认步数
	Seed  uint64 // 随机种子；0 表示每次请求取时间种子
}

// Service 定价应用服务
// 按请求构造合约与模型，合约用后即弃，不做缓存
type Service struct {
	defaults Defaults
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// NewService 创建定价应用服务实例
func NewService(defaults Defaults, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		defaults: defaults,
		logger:   logger,
		metrics:  m,
	}
}

// PriceOption 计算期权现值
// 同一组参数下 Call 与 Put 各算一次，调用方（看板）总是同时展示两个方向
func (s *Service) PriceOption(ctx context.Context, req PriceRequest) (*PriceResult, error) {
	model, err := s.buildModel(req)
	if err != nil {
		return nil, err
	}

	start := time.Now()

	call, err := model.Price(s.buildOption(req, domain.TypeCall))
	if err != nil {
		return nil, s.fail(ctx, "failed to price call", model.Name(), err)
	}
	put, err := model.Price(s.buildOption(req, domain.TypePut))
	if err != nil {
		return nil, s.fail(ctx, "failed to price put", model.Name(), err)
	}

	duration := time.Since(start)
	if s.metrics != nil {
		s.metrics.PricingRequestsTotal.WithLabelValues(model.Name()).Inc()
		s.metrics.PricingDuration.WithLabelValues(model.Name()).Observe(duration.Seconds())
	}

	s.logger.InfoContext(ctx, "option priced",
		"model", model.Name(),
		"spot", req.Spot,
		"strike", req.Strike,
		"call", call,
		"put", put,
		"duration", duration,
	)

	return &PriceResult{
		Model:        model.Name(),
		Call:         decimal.NewFromFloat(call),
		Put:          decimal.NewFromFloat(put),
		CalculatedAt: time.Now().UnixMilli(),
	}, nil
}

// ComputeGreeks 计算希腊字母
// 无论选用哪种定价模型，敏感度始终取闭式解的解析偏导
func (s *Service) ComputeGreeks(ctx context.Context, req GreeksRequest) (*GreeksResult, error) {
	opt := domain.Option{
		Spot:         req.Spot,
		Strike:       req.Strike,
		TimeToExpiry: req.TimeToExpiry,
		RiskFreeRate: req.RiskFreeRate,
		Volatility:   req.Volatility,
		Type:         domain.OptionType(req.OptionType),
	}

	greeks, err := domain.ComputeGreeks(opt)
	if err != nil {
		return nil, s.fail(ctx, "failed to compute greeks", domain.ModelBlackScholes, err)
	}

	if s.metrics != nil {
		s.metrics.GreeksRequestsTotal.Inc()
	}

	return &GreeksResult{
		Delta:        decimal.NewFromFloat(greeks.Delta),
		Gamma:        decimal.NewFromFloat(greeks.Gamma),
		Theta:        decimal.NewFromFloat(greeks.Theta),
		Vega:         decimal.NewFromFloat(greeks.Vega),
		Rho:          decimal.NewFromFloat(greeks.Rho),
		CalculatedAt: time.Now().UnixMilli(),
	}, nil
}

func (s *Service) buildOption(req PriceRequest, optType domain.OptionType) domain.Option {
	return domain.Option{
		Spot:         req.Spot,
		Strike:       req.Strike,
		TimeToExpiry: req.TimeToExpiry,
		RiskFreeRate: req.RiskFreeRate,
		Volatility:   req.Volatility,
		Type:         optType,
	}
}

// buildModel 按名称选择定价模型
// 蒙特卡洛每次请求使用独立随机源，避免并发请求共享一个生成器
func (s *Service) buildModel(req PriceRequest) (domain.Model, error) {
	switch req.Model {
	case domain.ModelBlackScholes, "":
		return domain.NewBlackScholes(), nil
	case domain.ModelMonteCarlo:
		paths := req.Paths
		if paths == 0 {
			paths = s.defaults.Paths
		}
		seed := s.defaults.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		return domain.NewMonteCarlo(paths, rand.NewPCG(seed, seed))
	case domain.ModelBinomial:
		steps := req.Steps
		if steps == 0 {
			steps = s.defaults.Steps
		}
		return domain.NewBinomialTree(steps)
	default:
		return nil, fmt.Errorf("%w: unknown pricing model %q", domain.ErrInvalidParameter, req.Model)
	}
}

func (s *Service) fail(ctx context.Context, msg, model string, err error) error {
	if s.metrics != nil {
		s.metrics.PricingErrorsTotal.Inc()
	}
	s.logger.ErrorContext(ctx, msg, "model", model, "error", err)
	return err
}
