// Package mic models minimum-inhibitory-concentration (MIC) measurements from
// two-fold serial-dilution assays and derives signed paired outcomes from
// them. MIC values are compared on the log2 scale, so one unit is one
// two-fold dilution step and exact equality is a true tie rather than a
// rounding artifact.
package mic

import (
	"fmt"
	"math"
)

// Antibiotic is one of the four drugs assayed in the study.
type Antibiotic string

const (
	Ampicillin    Antibiotic = "amp"
	Ceftriaxone   Antibiotic = "cro"
	Ciprofloxacin Antibiotic = "cip"
	Tetracycline  Antibiotic = "tet"
)

// Antibiotics returns the assayed drugs in their canonical reporting order.
func Antibiotics() []Antibiotic {
	return []Antibiotic{Ampicillin, Ceftriaxone, Ciprofloxacin, Tetracycline}
}

// Genotype distinguishes a strain's own measurement (Parent) from the
// measurement of a resistant mutant re-evolved from it (Daughter).
type Genotype string

const (
	Parent   Genotype = "parent"
	Daughter Genotype = "daughter"
)

// Observation is a single MIC measurement. PairedID links an evolved-line
// observation to its ancestral counterpart; RowID links the parent and
// daughter genotypes of the same lineage.
type Observation struct {
	Strain     string
	Antibiotic Antibiotic
	Genotype   Genotype
	PairedID   string
	RowID      int
	MIC        float64
}

// Log2MIC returns the measurement in two-fold dilution units.
func (o Observation) Log2MIC() float64 {
	return math.Log2(o.MIC)
}

// EvolvabilitySteps returns the integer number of two-fold dilution steps
// gained by the daughter over the parent. The log2 difference is rounded to
// the nearest integer because the assay resolution is discrete; fractional
// differences are measurement noise.
func EvolvabilitySteps(parentMIC, daughterMIC float64) (int, error) {
	if parentMIC <= 0 || daughterMIC <= 0 {
		return 0, fmt.Errorf("%w: non-positive MIC (parent %v, daughter %v)", ErrDomain, parentMIC, daughterMIC)
	}

	return int(math.Round(math.Log2(daughterMIC) - math.Log2(parentMIC))), nil
}
