package main

import (
	"fmt"
	"io"
	"sort"

	abr "github.com/KyleCard/Historical-contingency-in-the-evolution-of-ABR"
	"github.com/KyleCard/Historical-contingency-in-the-evolution-of-ABR/mic"
	"github.com/KyleCard/Historical-contingency-in-the-evolution-of-ABR/stattests"
	"github.com/aclements/go-moremath/stats"
)

// TimePointTests compares one time point's re-evolution gains against the
// control time point.
type TimePointTests struct {
	Label string
	N     int

	WelchT   float64
	WelchDoF float64
	WelchP   float64

	F    float64
	FP   float64
	FDf1 int
	FDf2 int
}

// TimeSeriesSummary holds the re-evolution gains per time point and the
// tests run over them.
type TimeSeriesSummary struct {
	Control string
	Labels  []string
	Gains   map[string][]float64

	KruskalWallis stattests.KruskalWallisResult
	PerTimePoint  []TimePointTests
}

// SummarizeTimeSeries converts each row to an integer number of dilution
// steps gained, groups the gains by time-point label, tests for any location
// difference across time points with Kruskal-Wallis, and compares every
// non-control time point against the control with Welch's t-test and the
// variance F-test.
func SummarizeTimeSeries(rows []abr.TimeSeriesRow, control string) (TimeSeriesSummary, error) {
	gains := make(map[string][]float64)
	labels := make([]string, 0)
	for _, row := range rows {
		steps, err := mic.EvolvabilitySteps(row.Parent, row.Daughter)
		if err != nil {
			return TimeSeriesSummary{}, fmt.Errorf("time point %s row %d: %w", row.Strain, row.RowID, err)
		}

		if _, seen := gains[row.Strain]; !seen {
			labels = append(labels, row.Strain)
		}
		gains[row.Strain] = append(gains[row.Strain], float64(steps))
	}

	controlGains, ok := gains[control]
	if !ok {
		return TimeSeriesSummary{}, fmt.Errorf("control time point %q not present in the table", control)
	}

	kw, err := stattests.KruskalWallis(gains)
	if err != nil {
		return TimeSeriesSummary{}, err
	}

	summary := TimeSeriesSummary{
		Control:       control,
		Labels:        labels,
		Gains:         gains,
		KruskalWallis: kw,
	}

	sort.Strings(summary.Labels)

	controlSample := stats.Sample{Xs: controlGains}
	for _, label := range summary.Labels {
		if label == control {
			continue
		}

		welch, err := stats.TwoSampleWelchTTest(controlSample, stats.Sample{Xs: gains[label]}, stats.LocationDiffers)
		if err != nil {
			return TimeSeriesSummary{}, fmt.Errorf("time point %s: %w", label, err)
		}

		ftest, err := stattests.VarianceFTest(controlGains, gains[label])
		if err != nil {
			return TimeSeriesSummary{}, fmt.Errorf("time point %s: %w", label, err)
		}

		summary.PerTimePoint = append(summary.PerTimePoint, TimePointTests{
			Label:    label,
			N:        len(gains[label]),
			WelchT:   welch.T,
			WelchDoF: welch.DoF,
			WelchP:   welch.P,
			F:        ftest.F,
			FP:       ftest.P,
			FDf1:     ftest.Df1,
			FDf2:     ftest.Df2,
		})
	}

	return summary, nil
}

// Print writes the time-series tables as TSV.
func (s TimeSeriesSummary) Print(w io.Writer) {
	fmt.Fprintf(w, "\ntimepoint\tn\tmean.gain\n")
	for _, label := range s.Labels {
		xs := s.Gains[label]
		sum := 0.0
		for _, x := range xs {
			sum += x
		}
		fmt.Fprintf(w, "%s\t%d\t%.4g\n", label, len(xs), sum/float64(len(xs)))
	}

	fmt.Fprintf(w, "\nkruskal.wallis.H\tdf\tp\n%.6g\t%d\t%.6g\n",
		s.KruskalWallis.H, s.KruskalWallis.DegreesOfFreedom, s.KruskalWallis.P)

	fmt.Fprintf(w, "\ntimepoint\tn\twelch.t\twelch.df\twelch.p\tF\tF.df1\tF.df2\tF.p\n")
	for _, tp := range s.PerTimePoint {
		fmt.Fprintf(w, "%s\t%d\t%.6g\t%.4g\t%.6g\t%.6g\t%d\t%d\t%.6g\n",
			tp.Label, tp.N, tp.WelchT, tp.WelchDoF, tp.WelchP, tp.F, tp.FDf1, tp.FDf2, tp.FP)
	}
}
