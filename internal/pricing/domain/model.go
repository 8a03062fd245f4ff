package domain

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// 模型标识，应用层按名称选择策略
const (
	ModelBlackScholes = "BLACK_SCHOLES"
	ModelMonteCarlo   = "MONTE_CARLO"
	ModelBinomial     = "BINOMIAL"
)

// Model 定价模型策略接口
// 三种实现：闭式解、蒙特卡洛、二叉树，由调用方一次性选定
type Model interface {
	Name() string
	Price(opt Option) (float64, error)
}

// stdNormal 标准正态分布，提供 Φ 与 φ
var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// normCDF 标准正态分布累积分布函数
func normCDF(x float64) float64 {
	return stdNormal.CDF(x)
}

// normPDF 标准正态分布概率密度函数
func normPDF(x float64) float64 {
	return stdNormal.Prob(x)
}

// checkFinite 拦截 NaN/Inf，上报为计算错误而不是静默返回
func checkFinite(v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNumericalOverflow
	}
	return v, nil
}
