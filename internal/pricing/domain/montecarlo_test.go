package domain

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

func TestMonteCarloRejectsInvalidSampleCount(t *testing.T) {
	for _, paths := range []int{0, -1} {
		if _, err := NewMonteCarlo(paths, rand.NewPCG(1, 1)); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("expected ErrInvalidParameter for paths=%d, got %v", paths, err)
		}
	}
}

func TestMonteCarloRejectsInvalidContract(t *testing.T) {
	mc, err := NewMonteCarlo(100, rand.NewPCG(1, 1))
	if err != nil {
		t.Fatalf("NewMonteCarlo: %v", err)
	}

	opt := validCall()
	opt.Volatility = 0
	if _, err := mc.Price(opt); !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("expected ErrInvalidOption, got %v", err)
	}
}

// 相同种子必须产生完全相同的价格
func TestMonteCarloReproducible(t *testing.T) {
	price := func(seed uint64) float64 {
		mc, err := NewMonteCarlo(20000, rand.NewPCG(seed, seed))
		if err != nil {
			t.Fatalf("NewMonteCarlo: %v", err)
		}
		return mustPrice(t, mc, validCall())
	}

	first, second := price(42), price(42)
	if first != second {
		t.Fatalf("same seed produced different prices: %v vs %v", first, second)
	}

	if other := price(43); other == first {
		t.Fatalf("different seeds produced identical prices: %v", other)
	}
}

// 1e6 样本下估计值应落在闭式价格的 99% 置信区间内
func TestMonteCarloConvergence(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping convergence test in short mode")
	}

	bs := NewBlackScholes()
	for _, opt := range []Option{validCall(), validPut()} {
		mc, err := NewMonteCarlo(1000000, rand.NewPCG(7, 7))
		if err != nil {
			t.Fatalf("NewMonteCarlo: %v", err)
		}

		est, err := mc.Estimate(opt)
		if err != nil {
			t.Fatalf("Estimate: %v", err)
		}
		if est.StdError <= 0 {
			t.Fatalf("non-positive standard error: %v", est.StdError)
		}

		analytic := mustPrice(t, bs, opt)
		if diff := math.Abs(est.Price - analytic); diff > 2.576*est.StdError {
			t.Fatalf("%s estimate %v outside 99%% CI of %v (stderr %v)", opt.Type, est.Price, analytic, est.StdError)
		}
	}
}

// 极端参数导致 exp 溢出时必须上报计算错误
func TestMonteCarloOverflowSurfaced(t *testing.T) {
	mc, err := NewMonteCarlo(100, rand.NewPCG(1, 1))
	if err != nil {
		t.Fatalf("NewMonteCarlo: %v", err)
	}

	opt := validCall()
	opt.RiskFreeRate = 1000

	if _, err := mc.Price(opt); !errors.Is(err, ErrNumericalOverflow) {
		t.Fatalf("expected ErrNumericalOverflow, got %v", err)
	}
}

// 未注入随机源时退回全局生成器
func TestMonteCarloNilSource(t *testing.T) {
	mc, err := NewMonteCarlo(10000, nil)
	if err != nil {
		t.Fatalf("NewMonteCarlo: %v", err)
	}

	price := mustPrice(t, mc, validCall())
	if price <= 0 || price > 100 {
		t.Fatalf("implausible price from global source: %v", price)
	}
}
