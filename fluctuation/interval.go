package fluctuation

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// AgrestiCoull returns a two-sided confidence interval on a binomial
// proportion from successes out of trials. The interval recenters the
// estimate on an augmented sample of trials + z^2 observations, which keeps
// reasonable coverage at the small replicate counts and extreme proportions
// typical of fluctuation assays.
//
// The lower bound is clamped to the smallest positive float64 and the upper
// bound to 1, so that both survive a subsequent log transform.
func AgrestiCoull(successes, trials int, confidence float64) (lower, upper float64, err error) {
	if trials <= 0 {
		return 0, 0, fmt.Errorf("%w: %d trials", ErrInsufficientData, trials)
	}
	if successes < 0 || successes > trials {
		return 0, 0, fmt.Errorf("%w: %d successes of %d trials", ErrDomain, successes, trials)
	}
	if confidence <= 0 || confidence >= 1 {
		return 0, 0, fmt.Errorf("%w: confidence level %v", ErrDomain, confidence)
	}

	z := distuv.Normal{Mu: 0, Sigma: 1}.Quantile(1 - (1-confidence)/2)

	nTilde := float64(trials) + z*z
	pTilde := (float64(successes) + z*z/2) / nTilde
	half := z * math.Sqrt(pTilde*(1-pTilde)/nTilde)

	lower = pTilde - half
	upper = pTilde + half

	if lower <= 0 {
		lower = math.SmallestNonzeroFloat64
	}
	if upper > 1 {
		upper = 1
	}

	return lower, upper, nil
}
