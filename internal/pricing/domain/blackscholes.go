package domain

import "math"

// BlackScholes 闭式定价模型
// 恒定波动率与无风险利率下的解析解，不含任何随机性
type BlackScholes struct{}

// NewBlackScholes 创建闭式定价模型
func NewBlackScholes() *BlackScholes {
	return &BlackScholes{}
}

func (m *BlackScholes) Name() string { return ModelBlackScholes }

// Price 计算期权现值
// Call: S*Φ(d1) - K*e^(-rT)*Φ(d2)
// Put:  K*e^(-rT)*Φ(-d2) - S*Φ(-d1)
func (m *BlackScholes) Price(opt Option) (float64, error) {
	if err := opt.Validate(); err != nil {
		return 0, err
	}

	d1, d2 := opt.d1d2()
	discount := math.Exp(-opt.RiskFreeRate * opt.TimeToExpiry)

	var price float64
	if opt.Type == TypeCall {
		price = opt.Spot*normCDF(d1) - opt.Strike*discount*normCDF(d2)
	} else {
		price = opt.Strike*discount*normCDF(-d2) - opt.Spot*normCDF(-d1)
	}

	return checkFinite(price)
}
