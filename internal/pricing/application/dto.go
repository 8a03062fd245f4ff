package application

import (
	"github.com/shopspring/decimal"
)

// PriceRequest 定价请求
// Paths/Steps 为零时使用配置中的默认值
type PriceRequest struct {
	Spot         float64 // 标的现价
	Strike       float64 // 行权价
	TimeToExpiry float64 // 到期时间（年）
	RiskFreeRate float64 // 无风险利率
	Volatility   float64 // 波动率
	Model        string  // BLACK_SCHOLES / MONTE_CARLO / BINOMIAL，空值取闭式解
	Paths        int     // 蒙特卡洛样本数
	Steps        int     // 二叉树步数
}

// PriceResult 定价结果
// 每次请求同时给出 Call 与 Put 两个方向的现值
type PriceResult struct {
	Model        string          `json:"model"`
	Call         decimal.Decimal `json:"call"`
	Put          decimal.Decimal `json:"put"`
	CalculatedAt int64           `json:"calculated_at"`
}

// GreeksRequest 希腊字母请求
type GreeksRequest struct {
	Spot         float64
	Strike       float64
	TimeToExpiry float64
	RiskFreeRate float64
	Volatility   float64
	OptionType   string // CALL / PUT
}

// GreeksResult 希腊字母结果
type GreeksResult struct {
	Delta        decimal.Decimal `json:"delta"`
	Gamma        decimal.Decimal `json:"gamma"`
	Theta        decimal.Decimal `json:"theta"`
	Vega         decimal.Decimal `json:"vega"`
	Rho          decimal.Decimal `json:"rho"`
	CalculatedAt int64           `json:"calculated_at"`
}
