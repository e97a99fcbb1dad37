// Package stattests holds the thin glue around off-the-shelf hypothesis
// tests that the analysis consumes alongside the trinomial core: a
// tie-corrected Kruskal-Wallis rank test and a two-sample variance F-test.
// Welch's t-test comes straight from go-moremath and needs no glue here.
package stattests

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

var (
	// ErrInsufficientData indicates too few groups or observations.
	ErrInsufficientData = errors.New("stattests: insufficient data")

	// ErrDomain indicates inputs on which the test statistic is undefined.
	ErrDomain = errors.New("stattests: statistic undefined")
)

// KruskalWallisResult is the outcome of the Kruskal-Wallis rank test.
type KruskalWallisResult struct {
	// H is the tie-corrected test statistic.
	H float64

	// DegreesOfFreedom is the group count minus one.
	DegreesOfFreedom int

	// P references H against the chi-squared distribution with
	// DegreesOfFreedom. The approximation is standard for group sizes of
	// five or more.
	P float64
}

// KruskalWallis tests whether the labeled groups share a common location.
// Ties receive midranks and H is divided by the usual tie-correction factor.
func KruskalWallis(groups map[string][]float64) (KruskalWallisResult, error) {
	if len(groups) < 2 {
		return KruskalWallisResult{}, fmt.Errorf("%w: %d groups", ErrInsufficientData, len(groups))
	}

	type labeled struct {
		value float64
		group string
	}

	var pooled []labeled
	for name, values := range groups {
		if len(values) == 0 {
			return KruskalWallisResult{}, fmt.Errorf("%w: empty group %q", ErrInsufficientData, name)
		}
		for _, v := range values {
			pooled = append(pooled, labeled{v, name})
		}
	}

	sort.Slice(pooled, func(i, j int) bool { return pooled[i].value < pooled[j].value })

	n := len(pooled)
	rankSums := make(map[string]float64, len(groups))
	tieCorrection := 0.0

	// Assign midranks to runs of tied values.
	for i := 0; i < n; {
		j := i
		for j < n && pooled[j].value == pooled[i].value {
			j++
		}

		// Ranks are 1-based; a run spanning [i, j) gets the mean rank.
		midrank := float64(i+j+1) / 2
		for k := i; k < j; k++ {
			rankSums[pooled[k].group] += midrank
		}

		t := float64(j - i)
		tieCorrection += t*t*t - t

		i = j
	}

	nf := float64(n)
	h := 0.0
	for name, values := range groups {
		r := rankSums[name]
		h += r * r / float64(len(values))
	}
	h = 12/(nf*(nf+1))*h - 3*(nf+1)

	correction := 1 - tieCorrection/(nf*nf*nf-nf)
	if correction == 0 {
		return KruskalWallisResult{}, fmt.Errorf("%w: all observations identical", ErrDomain)
	}
	h /= correction

	df := len(groups) - 1
	chi2 := distuv.ChiSquared{K: float64(df)}

	return KruskalWallisResult{
		H:                h,
		DegreesOfFreedom: df,
		P:                chi2.Survival(h),
	}, nil
}
