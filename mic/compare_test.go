package mic

import (
	"errors"
	"testing"
)

func TestComparatorSign(t *testing.T) {
	for _, v := range []struct {
		c         Comparator
		reference float64
		compared  float64
		sign      int
	}{
		{Comparator{Direction: DirectionLower}, 4, 3, 1},
		{Comparator{Direction: DirectionLower}, 4, 4, 0},
		{Comparator{Direction: DirectionLower}, 4, 5, -1},
		{Comparator{Direction: DirectionHigher}, 4, 5, 1},
		{Comparator{Direction: DirectionHigher}, 4, 4, 0},
		{Comparator{Direction: DirectionHigher}, 4, 3, -1},
		// A widened tie band absorbs sub-step differences.
		{Comparator{Direction: DirectionHigher, TieEpsilon: 0.5}, 4, 4.3, 0},
		{Comparator{Direction: DirectionHigher, TieEpsilon: 0.5}, 4, 4.7, 1},
	} {
		if got := v.c.Sign(v.reference, v.compared); got != v.sign {
			t.Fatalf("Sign(%v, %v) with %+v = %d, want %d", v.reference, v.compared, v.c, got, v.sign)
		}
	}
}

func TestEvolvabilitySteps(t *testing.T) {
	for _, v := range []struct {
		parent   float64
		daughter float64
		steps    int
	}{
		{0.5, 4, 3},
		{1, 1, 0},
		{1, 1.1, 0}, // sub-step noise rounds away
		{8, 1, -3},
	} {
		steps, err := EvolvabilitySteps(v.parent, v.daughter)
		if err != nil {
			t.Fatal(err)
		}
		if steps != v.steps {
			t.Fatalf("EvolvabilitySteps(%v, %v) = %d, want %d", v.parent, v.daughter, steps, v.steps)
		}
	}

	if _, err := EvolvabilitySteps(0, 2); !errors.Is(err, ErrDomain) {
		t.Fatalf("zero MIC: got %v, want ErrDomain", err)
	}
}

func TestPairOutcomes(t *testing.T) {
	references := []Observation{
		{Strain: "606", Antibiotic: Ampicillin, Genotype: Parent, PairedID: "p1", MIC: 4},
		{Strain: "606", Antibiotic: Tetracycline, Genotype: Parent, PairedID: "p1", MIC: 2},
	}
	derived := []Observation{
		{Strain: "Ara-1", Antibiotic: Ampicillin, Genotype: Parent, PairedID: "p1", MIC: 1},
		{Strain: "Ara-1", Antibiotic: Tetracycline, Genotype: Parent, PairedID: "p1", MIC: 2},
	}

	outcomes, err := PairOutcomes(references, derived, ByPairedID, Comparator{Direction: DirectionLower})
	if err != nil {
		t.Fatal(err)
	}
	if len(outcomes) != 2 {
		t.Fatalf("got %d outcomes, want 2", len(outcomes))
	}
	if outcomes[0].Sign != 1 || outcomes[0].Antibiotic != Ampicillin || outcomes[0].Strain != "Ara-1" {
		t.Fatalf("unexpected first outcome %+v", outcomes[0])
	}
	if outcomes[1].Sign != 0 {
		t.Fatalf("equal MICs should tie, got %+v", outcomes[1])
	}
}

// Minimal two-row fixture: the derived row's pairing key has no ancestral
// counterpart for its antibiotic.
func TestPairOutcomesUnmatched(t *testing.T) {
	references := []Observation{
		{Strain: "606", Antibiotic: Ampicillin, PairedID: "p1", MIC: 4},
	}
	derived := []Observation{
		{Strain: "Ara-1", Antibiotic: Ampicillin, PairedID: "p9", MIC: 1},
	}

	if _, err := PairOutcomes(references, derived, ByPairedID, Comparator{}); !errors.Is(err, ErrPairing) {
		t.Fatalf("got %v, want ErrPairing", err)
	}
}

func TestPairOutcomesDuplicateReference(t *testing.T) {
	references := []Observation{
		{Strain: "606", Antibiotic: Ampicillin, PairedID: "p1", MIC: 4},
		{Strain: "607", Antibiotic: Ampicillin, PairedID: "p1", MIC: 8},
	}
	derived := []Observation{
		{Strain: "Ara-1", Antibiotic: Ampicillin, PairedID: "p1", MIC: 1},
	}

	if _, err := PairOutcomes(references, derived, ByPairedID, Comparator{}); !errors.Is(err, ErrPairing) {
		t.Fatalf("got %v, want ErrPairing", err)
	}
}

func TestCountsForGroups(t *testing.T) {
	outcomes := []PairedOutcome{
		{Strain: "Ara-1", Antibiotic: Ampicillin, Sign: 1},
		{Strain: "Ara-1", Antibiotic: Ampicillin, Sign: 1},
		{Strain: "Ara-1", Antibiotic: Ampicillin, Sign: 0},
		{Strain: "Ara-1", Antibiotic: Ampicillin, Sign: -1},
	}

	counts, err := CountsForGroups(outcomes, []Group{{"Ara-1", Ampicillin}})
	if err != nil {
		t.Fatal(err)
	}
	c := counts[Group{"Ara-1", Ampicillin}]
	if c.NPos != 2 || c.NTie != 1 || c.NNeg != 1 || c.N() != 4 {
		t.Fatalf("unexpected counts %+v", c)
	}

	// A requested group with no outcomes is an error, not a silent skip.
	_, err = CountsForGroups(outcomes, []Group{{"Ara-1", Ampicillin}, {"Ara-2", Ampicillin}})
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("empty group: got %v, want ErrInsufficientData", err)
	}
}
