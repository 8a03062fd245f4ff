// Package domain 包含欧式期权定价的领域模型与三种定价算法
package domain

import (
	"fmt"
	"math"
)

// OptionType 期权类型
type OptionType string

const (
	TypeCall OptionType = "CALL" // 看涨期权
	TypePut  OptionType = "PUT"  // 看跌期权
)

// Option 欧式期权合约（值对象）
// 构造后不可变，每次定价请求创建一个新实例
type Option struct {
	Spot         float64    `json:"spot"`           // 标的现价 S
	Strike       float64    `json:"strike"`         // 行权价 K
	TimeToExpiry float64    `json:"time_to_expiry"` // 到期时间 T（年）
	RiskFreeRate float64    `json:"risk_free_rate"` // 无风险利率 r
	Volatility   float64    `json:"volatility"`     // 波动率 sigma
	Type         OptionType `json:"type"`
}

// Validate 校验合约参数
// T=0 或 sigma=0 会导致除零，必须在计算前拒绝，而不是让 NaN 向外传播
func (o Option) Validate() error {
	if o.Spot <= 0 {
		return fmt.Errorf("%w: spot must be positive, got %v", ErrInvalidOption, o.Spot)
	}
	if o.Strike <= 0 {
		return fmt.Errorf("%w: strike must be positive, got %v", ErrInvalidOption, o.Strike)
	}
	if o.TimeToExpiry <= 0 {
		return fmt.Errorf("%w: time to expiry must be positive, got %v", ErrInvalidOption, o.TimeToExpiry)
	}
	if o.Volatility <= 0 {
		return fmt.Errorf("%w: volatility must be positive, got %v", ErrInvalidOption, o.Volatility)
	}
	if o.Type != TypeCall && o.Type != TypePut {
		return fmt.Errorf("%w: unknown option type %q", ErrInvalidOption, o.Type)
	}
	return nil
}

// Payoff 到期收益
// Call/Put 分支集中在这里，三个定价模型共用
func (o Option) Payoff(terminal float64) float64 {
	if o.Type == TypeCall {
		return math.Max(terminal-o.Strike, 0)
	}
	return math.Max(o.Strike-terminal, 0)
}

// d1d2 Black-Scholes 辅助项
// 闭式定价与全部五个希腊字母共用同一实现，保证两者内部一致
func (o Option) d1d2() (float64, float64) {
	d1 := (math.Log(o.Spot/o.Strike) + (o.RiskFreeRate+0.5*o.Volatility*o.Volatility)*o.TimeToExpiry) /
		(o.Volatility * math.Sqrt(o.TimeToExpiry))
	d2 := d1 - o.Volatility*math.Sqrt(o.TimeToExpiry)
	return d1, d2
}
