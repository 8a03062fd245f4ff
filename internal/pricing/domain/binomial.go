package domain

import (
	"fmt"
	"math"
)

// BinomialTree Cox-Ross-Rubinstein 二叉树定价模型
// 离散时间复合树，风险中性概率下逆向归纳；steps → ∞ 时收敛于闭式解
type BinomialTree struct {
	steps int
}

// NewBinomialTree 创建二叉树定价模型
func NewBinomialTree(steps int) (*BinomialTree, error) {
	if steps <= 0 {
		return nil, fmt.Errorf("%w: step count must be positive, got %d", ErrInvalidParameter, steps)
	}
	return &BinomialTree{steps: steps}, nil
}

func (m *BinomialTree) Name() string { return ModelBinomial }

// Price 计算期权现值
// 单个工作数组就地更新：第 i 层只依赖第 i+1 层的相邻两个节点，
// 内存 O(steps)，数值结果与逐层重建一致
func (m *BinomialTree) Price(opt Option) (float64, error) {
	if err := opt.Validate(); err != nil {
		return 0, err
	}

	dt := opt.TimeToExpiry / float64(m.steps)
	up := math.Exp(opt.Volatility * math.Sqrt(dt))
	down := 1 / up
	pUp := (math.Exp(opt.RiskFreeRate*dt) - down) / (up - down)
	discount := math.Exp(-opt.RiskFreeRate * dt)

	// 终端层各节点收益
	values := make([]float64, m.steps+1)
	for j := 0; j <= m.steps; j++ {
		terminal := opt.Spot * math.Pow(up, float64(j)) * math.Pow(down, float64(m.steps-j))
		values[j] = opt.Payoff(terminal)
	}

	// 逆向归纳
	for i := m.steps - 1; i >= 0; i-- {
		for j := 0; j <= i; j++ {
			values[j] = discount * (pUp*values[j+1] + (1-pUp)*values[j])
		}
	}

	return checkFinite(values[0])
}
