// Package fisher pools per-group significance probabilities into a single
// combined probability with Fisher's sum-of-logs method.
package fisher

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

var (
	// ErrInsufficientData indicates an empty p-value sequence.
	ErrInsufficientData = errors.New("fisher: no p-values to combine")

	// ErrDomain indicates a p-value outside (0, 1].
	ErrDomain = errors.New("fisher: p-value outside (0, 1]")
)

// Result is the pooled outcome of Fisher's method.
type Result struct {
	// Statistic is T = -2 * sum(ln p_i).
	Statistic float64

	// DegreesOfFreedom is 2k for k combined p-values.
	DegreesOfFreedom int

	// P is the combined significance probability, the upper tail of the
	// chi-squared distribution with DegreesOfFreedom at Statistic.
	P float64
}

// Combine pools the given p-values. The result is invariant under
// permutation of the input. A p-value of exactly zero is rejected rather
// than clamped: upstream tests guarantee strictly positive probabilities, so
// a literal zero here means a caller bypassed its own underflow guard, and
// feeding it to the logarithm would silently produce a combined p of zero.
func Combine(pvalues []float64) (Result, error) {
	if len(pvalues) == 0 {
		return Result{}, ErrInsufficientData
	}

	sumLogs := 0.0
	for i, p := range pvalues {
		if p <= 0 || p > 1 || math.IsNaN(p) {
			return Result{}, fmt.Errorf("%w: p[%d] = %v", ErrDomain, i, p)
		}
		sumLogs += math.Log(p)
	}

	df := 2 * len(pvalues)
	t := -2 * sumLogs
	chi2 := distuv.ChiSquared{K: float64(df)}

	return Result{
		Statistic:        t,
		DegreesOfFreedom: df,
		P:                chi2.Survival(t),
	}, nil
}
