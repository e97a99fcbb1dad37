package stattests

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// FTestResult is the outcome of the two-sample variance-ratio test.
type FTestResult struct {
	// F is the ratio of the first sample variance to the second.
	F float64

	// Df1 and Df2 are the numerator and denominator degrees of freedom.
	Df1 int
	Df2 int

	// P is the two-sided p-value.
	P float64
}

// VarianceFTest tests equality of variances of two samples by referencing
// their sample-variance ratio against the F distribution. Both tails count:
// the smaller tail probability is doubled and capped at 1.
func VarianceFTest(x, y []float64) (FTestResult, error) {
	if len(x) < 2 || len(y) < 2 {
		return FTestResult{}, fmt.Errorf("%w: need at least two observations per sample (%d, %d)", ErrInsufficientData, len(x), len(y))
	}

	varX := stat.Variance(x, nil)
	varY := stat.Variance(y, nil)
	if varY == 0 {
		return FTestResult{}, fmt.Errorf("%w: second sample has zero variance", ErrDomain)
	}

	f := varX / varY
	df1, df2 := len(x)-1, len(y)-1
	dist := distuv.F{D1: float64(df1), D2: float64(df2)}

	p := 2 * math.Min(dist.CDF(f), dist.Survival(f))
	if p > 1 {
		p = 1
	}

	return FTestResult{F: f, Df1: df1, Df2: df2, P: p}, nil
}
