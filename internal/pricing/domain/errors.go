package domain

import "errors"

// 定价核心的错误分类。
// 所有失败都是输入的确定性函数，直接返回给调用方，不做重试。
var (
	// ErrInvalidOption 合约参数非法（S/K/T/sigma 必须为正）
	ErrInvalidOption = errors.New("invalid option contract")
	// ErrInvalidParameter 模型参数非法（paths/steps 必须为正）
	ErrInvalidParameter = errors.New("invalid model parameter")
	// ErrNumericalOverflow 计算过程中出现 NaN 或 Inf
	ErrNumericalOverflow = errors.New("numerical overflow")
)
