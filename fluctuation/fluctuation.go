// Package fluctuation estimates mutation rates from Luria-Delbruck
// fluctuation tests using the zero-class (p0) method. Each strain
// contributes replicate cultures scored for whether they yielded any
// resistant colony, plus an independent set of replicates whose final cell
// counts estimate the population size; the two sets are not the same
// physical cultures, so cell yield enters only as a strain-level mean scaled
// by the plating dilution.
package fluctuation

import (
	"errors"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

const (
	// DefaultDilutionFactor converts a counted cell sample back to the
	// plated culture volume.
	DefaultDilutionFactor = 100

	// DefaultConfidence is the two-sided confidence level of the reported
	// rate interval.
	DefaultConfidence = 0.95
)

var (
	// ErrInsufficientData indicates a strain with no usable replicates.
	ErrInsufficientData = errors.New("fluctuation: no replicates")

	// ErrDomain indicates replicate data outside the estimator's domain,
	// such as a zero-class proportion of zero.
	ErrDomain = errors.New("fluctuation: estimator undefined")
)

// Config carries the assay constants. The zero value selects the defaults.
type Config struct {
	DilutionFactor float64
	Confidence     float64
}

func (c Config) withDefaults() Config {
	if c.DilutionFactor == 0 {
		c.DilutionFactor = DefaultDilutionFactor
	}
	if c.Confidence == 0 {
		c.Confidence = DefaultConfidence
	}
	return c
}

// Result is the per-strain mutation-rate estimate.
type Result struct {
	Strain string

	// Replicates and ZeroReplicates describe the zero-class tally.
	Replicates     int
	ZeroReplicates int

	// P0 is the zero-class proportion and Events its -ln(p0) transform, the
	// expected number of mutational events per culture.
	P0     float64
	Events float64

	// MeanYield is the mean cell count scaled by the dilution factor.
	MeanYield float64

	// Rate is Events / MeanYield; RateLower and RateUpper bound it at the
	// configured confidence level.
	Rate      float64
	RateLower float64
	RateUpper float64
}

// ZeroClass tallies how many replicate cultures yielded no resistant colony.
func ZeroClass(colonyCounts []int) (zero, total int, err error) {
	if len(colonyCounts) == 0 {
		return 0, 0, fmt.Errorf("%w: no colony counts", ErrInsufficientData)
	}

	for i, c := range colonyCounts {
		if c < 0 {
			return 0, 0, fmt.Errorf("%w: negative colony count %d at replicate %d", ErrDomain, c, i)
		}
		if c == 0 {
			zero++
		}
	}

	return zero, len(colonyCounts), nil
}

// MutationalEvents applies the Luria-Delbruck zero-class estimator: with
// p0 = zero/total, the expected number of mutational events per culture is
// m = -ln(p0). A zero-class of zero leaves the estimator undefined (the true
// m is beyond the assay's resolution) and is surfaced as ErrDomain rather
// than silently becoming +Inf.
func MutationalEvents(zero, total int) (p0, m float64, err error) {
	if total <= 0 {
		return 0, 0, fmt.Errorf("%w: %d replicates", ErrInsufficientData, total)
	}
	if zero < 0 || zero > total {
		return 0, 0, fmt.Errorf("%w: zero-class %d of %d replicates", ErrDomain, zero, total)
	}
	if zero == 0 {
		return 0, 0, fmt.Errorf("%w: no zero-colony replicate among %d", ErrDomain, total)
	}

	p0 = float64(zero) / float64(total)

	return p0, -math.Log(p0), nil
}

// MeanCellYield scales the strain-level mean of the cell-count replicates by
// the plating dilution factor.
func MeanCellYield(cellCounts []float64, dilutionFactor float64) (float64, error) {
	if dilutionFactor <= 0 {
		return 0, fmt.Errorf("%w: dilution factor %v", ErrDomain, dilutionFactor)
	}
	for i, c := range cellCounts {
		if c <= 0 {
			return 0, fmt.Errorf("%w: non-positive cell count %v at replicate %d", ErrDomain, c, i)
		}
	}

	mean, err := stats.Mean(cellCounts)
	if err != nil {
		return 0, fmt.Errorf("%w: no cell counts", ErrInsufficientData)
	}

	return mean * dilutionFactor, nil
}

// RateInterval propagates a confidence interval on the zero-class proportion
// to the mutation rate. Because m = -ln(p0) decreases in p0, the lower
// proportion bound yields the upper rate bound and vice versa.
func RateInterval(p0Lower, p0Upper, meanYield float64) (rateLower, rateUpper float64) {
	return -math.Log(p0Upper) / meanYield, -math.Log(p0Lower) / meanYield
}

// Run computes the full per-strain estimate: zero-class tally, mutational
// events, mean cell yield, rate, and the rate interval propagated from the
// Agresti-Coull interval on p0.
func Run(strain string, colonyCounts []int, cellCounts []float64, cfg Config) (Result, error) {
	cfg = cfg.withDefaults()

	zero, total, err := ZeroClass(colonyCounts)
	if err != nil {
		return Result{}, fmt.Errorf("strain %s: %w", strain, err)
	}

	p0, m, err := MutationalEvents(zero, total)
	if err != nil {
		return Result{}, fmt.Errorf("strain %s: %w", strain, err)
	}

	yield, err := MeanCellYield(cellCounts, cfg.DilutionFactor)
	if err != nil {
		return Result{}, fmt.Errorf("strain %s: %w", strain, err)
	}

	p0Lower, p0Upper, err := AgrestiCoull(zero, total, cfg.Confidence)
	if err != nil {
		return Result{}, fmt.Errorf("strain %s: %w", strain, err)
	}

	rateLower, rateUpper := RateInterval(p0Lower, p0Upper, yield)

	return Result{
		Strain:         strain,
		Replicates:     total,
		ZeroReplicates: zero,
		P0:             p0,
		Events:         m,
		MeanYield:      yield,
		Rate:           m / yield,
		RateLower:      rateLower,
		RateUpper:      rateUpper,
	}, nil
}
