package mic

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	// ErrPairing indicates a compared observation with zero or multiple
	// matching reference observations for its pairing key and antibiotic.
	ErrPairing = errors.New("mic: unpaired observation")

	// ErrInsufficientData indicates a group that yielded no outcomes.
	ErrInsufficientData = errors.New("mic: empty group")

	// ErrDomain indicates a measurement outside the valid concentration range.
	ErrDomain = errors.New("mic: invalid measurement")
)

// Direction is the expected direction of change of the compared value
// relative to the reference under the alternative hypothesis.
type Direction int

const (
	// DirectionLower expects the compared MIC below the reference
	// (relaxed-selection decay of resistance).
	DirectionLower Direction = iota

	// DirectionHigher expects the compared MIC above the reference
	// (re-evolvability gain of resistance).
	DirectionHigher
)

// Comparator assigns a ternary sign to a paired comparison of log2 MIC
// values. TieEpsilon widens the tie band; the zero default treats only exact
// equality of the logged values as a tie, which matches the two-fold
// dilution design of the assay.
type Comparator struct {
	Direction  Direction
	TieEpsilon float64
}

// Sign returns +1 when compared strictly satisfies the expected direction
// relative to reference, 0 on a tie, and -1 otherwise. Both arguments are
// log2 MIC values.
func (c Comparator) Sign(reference, compared float64) int {
	diff := compared - reference
	if math.Abs(diff) <= c.TieEpsilon {
		return 0
	}

	favorable := diff > 0
	if c.Direction == DirectionLower {
		favorable = diff < 0
	}

	if favorable {
		return 1
	}

	return -1
}

// PairedOutcome is the signed result of one paired comparison, attributed to
// the compared observation's strain.
type PairedOutcome struct {
	Strain     string
	Antibiotic Antibiotic
	Sign       int
}

// KeyFunc extracts the pairing key that joins a compared observation to its
// reference.
type KeyFunc func(Observation) string

// ByPairedID joins evolved-line observations to their ancestral counterparts.
func ByPairedID(o Observation) string { return o.PairedID }

// ByRowID joins daughter observations to the parent genotype of the same row.
func ByRowID(o Observation) string { return strconv.Itoa(o.RowID) }

// PairOutcomes joins every compared observation to exactly one reference
// observation sharing its pairing key and antibiotic, and returns the signed
// outcome of each comparison. A compared observation with no match, or a key
// that maps to more than one reference, fails with ErrPairing: an unmatched
// row means the input tables are inconsistent, and substituting a value
// would corrupt the downstream trinomial counts.
func PairOutcomes(references, compared []Observation, key KeyFunc, c Comparator) ([]PairedOutcome, error) {
	type joinKey struct {
		key        string
		antibiotic Antibiotic
	}

	refs := make(map[joinKey]Observation, len(references))
	for _, ref := range references {
		jk := joinKey{key(ref), ref.Antibiotic}
		if _, seen := refs[jk]; seen {
			return nil, fmt.Errorf("%w: duplicate reference for key %q antibiotic %s", ErrPairing, jk.key, jk.antibiotic)
		}
		refs[jk] = ref
	}

	outcomes := make([]PairedOutcome, 0, len(compared))
	for _, obs := range compared {
		ref, found := refs[joinKey{key(obs), obs.Antibiotic}]
		if !found {
			return nil, fmt.Errorf("%w: no reference for strain %s key %q antibiotic %s", ErrPairing, obs.Strain, key(obs), obs.Antibiotic)
		}

		outcomes = append(outcomes, PairedOutcome{
			Strain:     obs.Strain,
			Antibiotic: obs.Antibiotic,
			Sign:       c.Sign(ref.Log2MIC(), obs.Log2MIC()),
		})
	}

	return outcomes, nil
}
