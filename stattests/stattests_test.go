package stattests

import (
	"errors"
	"math"
	"testing"
)

// Hand-checked fixture: ranks 1..9 split cleanly into three groups with rank
// sums 6, 15 and 24, so H = 12/90 * (36+225+576)/3 - 30 = 7.2 with no tie
// correction, and the chi-squared survival with 2 df is exp(-3.6).
func TestKruskalWallisKnownValue(t *testing.T) {
	groups := map[string][]float64{
		"a": {1, 2, 3},
		"b": {4, 5, 6},
		"c": {7, 8, 9},
	}

	res, err := KruskalWallis(groups)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(res.H-7.2) > 1e-9 {
		t.Fatalf("H = %v, want 7.2", res.H)
	}
	if res.DegreesOfFreedom != 2 {
		t.Fatalf("df = %d, want 2", res.DegreesOfFreedom)
	}
	if want := math.Exp(-3.6); math.Abs(res.P-want) > 1e-9 {
		t.Fatalf("p = %v, want %v", res.P, want)
	}
}

func TestKruskalWallisTies(t *testing.T) {
	res, err := KruskalWallis(map[string][]float64{
		"a": {1, 1, 2},
		"b": {2, 3, 3},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !(res.H > 0) || !(res.P > 0 && res.P <= 1) {
		t.Fatalf("implausible tie-corrected result %+v", res)
	}
}

func TestKruskalWallisErrors(t *testing.T) {
	if _, err := KruskalWallis(map[string][]float64{"a": {1, 2}}); !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("single group: got %v, want ErrInsufficientData", err)
	}
	if _, err := KruskalWallis(map[string][]float64{"a": {1}, "b": {}}); !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("empty group: got %v, want ErrInsufficientData", err)
	}
	if _, err := KruskalWallis(map[string][]float64{"a": {2, 2}, "b": {2, 2}}); !errors.Is(err, ErrDomain) {
		t.Fatalf("all identical: got %v, want ErrDomain", err)
	}
}

func TestVarianceFTest(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	y := []float64{2, 4, 6, 8}

	xy, err := VarianceFTest(x, y)
	if err != nil {
		t.Fatal(err)
	}
	yx, err := VarianceFTest(y, x)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(xy.F-0.25) > 1e-12 {
		t.Fatalf("F = %v, want 0.25", xy.F)
	}
	if math.Abs(xy.F*yx.F-1) > 1e-12 {
		t.Fatalf("variance ratios not reciprocal: %v, %v", xy.F, yx.F)
	}
	// Two-sided: swapping the samples must not change the p-value.
	if math.Abs(xy.P-yx.P) > 1e-9 {
		t.Fatalf("p-values differ across swap: %v vs %v", xy.P, yx.P)
	}

	same, err := VarianceFTest(x, x)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(same.F-1) > 1e-12 || math.Abs(same.P-1) > 1e-9 {
		t.Fatalf("identical samples: %+v, want F=1 p=1", same)
	}
}

func TestVarianceFTestErrors(t *testing.T) {
	if _, err := VarianceFTest([]float64{1}, []float64{1, 2}); !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("short sample: got %v, want ErrInsufficientData", err)
	}
	if _, err := VarianceFTest([]float64{1, 2}, []float64{3, 3}); !errors.Is(err, ErrDomain) {
		t.Fatalf("zero denominator variance: got %v, want ErrDomain", err)
	}
}
