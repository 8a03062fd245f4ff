package domain

import "math"

// Greeks 希腊字母
// 全部五个敏感度都取闭式模型的解析偏导，与当前选用的定价模型无关
type Greeks struct {
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Theta float64 `json:"theta"`
	Vega  float64 `json:"vega"`
	Rho   float64 `json:"rho"`
}

// Delta 期权价格对标的现价的敏感度
func Delta(opt Option) (float64, error) {
	if err := opt.Validate(); err != nil {
		return 0, err
	}
	d1, _ := opt.d1d2()
	if opt.Type == TypeCall {
		return checkFinite(normCDF(d1))
	}
	return checkFinite(normCDF(d1) - 1)
}

// Gamma Delta 对标的现价的敏感度，与期权类型无关
func Gamma(opt Option) (float64, error) {
	if err := opt.Validate(); err != nil {
		return 0, err
	}
	d1, _ := opt.d1d2()
	return checkFinite(normPDF(d1) / (opt.Spot * opt.Volatility * math.Sqrt(opt.TimeToExpiry)))
}

// Theta 时间价值衰减
func Theta(opt Option) (float64, error) {
	if err := opt.Validate(); err != nil {
		return 0, err
	}
	d1, d2 := opt.d1d2()
	decay := -opt.Spot * normPDF(d1) * opt.Volatility / (2 * math.Sqrt(opt.TimeToExpiry))
	carry := opt.RiskFreeRate * opt.Strike * math.Exp(-opt.RiskFreeRate*opt.TimeToExpiry)
	if opt.Type == TypeCall {
		return checkFinite(decay - carry*normCDF(d2))
	}
	return checkFinite(decay + carry*normCDF(-d2))
}

// Vega 期权价格对波动率的敏感度，按波动率每变动 1 个百分点计
func Vega(opt Option) (float64, error) {
	if err := opt.Validate(); err != nil {
		return 0, err
	}
	d1, _ := opt.d1d2()
	return checkFinite(opt.Spot * normPDF(d1) * math.Sqrt(opt.TimeToExpiry) / 100)
}

// Rho 期权价格对利率的敏感度，按利率每变动 1 个百分点计
func Rho(opt Option) (float64, error) {
	if err := opt.Validate(); err != nil {
		return 0, err
	}
	_, d2 := opt.d1d2()
	factor := opt.Strike * opt.TimeToExpiry * math.Exp(-opt.RiskFreeRate*opt.TimeToExpiry)
	if opt.Type == TypeCall {
		return checkFinite(factor * normCDF(d2) / 100)
	}
	return checkFinite(-factor * normCDF(-d2) / 100)
}

// ComputeGreeks 一次计算全部希腊字母
func ComputeGreeks(opt Option) (Greeks, error) {
	var g Greeks
	var err error
	if g.Delta, err = Delta(opt); err != nil {
		return Greeks{}, err
	}
	if g.Gamma, err = Gamma(opt); err != nil {
		return Greeks{}, err
	}
	if g.Theta, err = Theta(opt); err != nil {
		return Greeks{}, err
	}
	if g.Vega, err = Vega(opt); err != nil {
		return Greeks{}, err
	}
	if g.Rho, err = Rho(opt); err != nil {
		return Greeks{}, err
	}
	return g, nil
}
