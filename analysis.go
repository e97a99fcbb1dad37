package abr

import (
	"fmt"
	"io"

	"github.com/KyleCard/Historical-contingency-in-the-evolution-of-ABR/fisher"
	"github.com/KyleCard/Historical-contingency-in-the-evolution-of-ABR/mic"
	"github.com/KyleCard/Historical-contingency-in-the-evolution-of-ABR/trinomial"
)

// TrinomialSummary holds the per-group trinomial p-values and the
// per-antibiotic Fisher combinations for one comparison (decay or
// re-evolvability), in the strain order of the input table.
type TrinomialSummary struct {
	Strains  []string
	Counts   map[mic.Group]mic.Counts
	GroupP   map[mic.Group]float64
	Combined map[mic.Antibiotic]fisher.Result
}

// SummarizeTrinomial runs the trinomial test on every (strain, antibiotic)
// group and combines the resulting p-values per antibiotic across strains.
// Any group failure halts the whole summary: substituting a placeholder for
// one group would silently corrupt the Fisher combination.
func SummarizeTrinomial(strains []string, counts map[mic.Group]mic.Counts) (TrinomialSummary, error) {
	s := TrinomialSummary{
		Strains:  strains,
		Counts:   counts,
		GroupP:   make(map[mic.Group]float64, len(counts)),
		Combined: make(map[mic.Antibiotic]fisher.Result, len(mic.Antibiotics())),
	}

	for _, antibiotic := range mic.Antibiotics() {
		pvalues := make([]float64, 0, len(strains))
		for _, strain := range strains {
			g := mic.Group{Strain: strain, Antibiotic: antibiotic}
			c := counts[g]

			p, err := trinomial.Test(c.NPos, c.NTie, c.NNeg)
			if err != nil {
				return TrinomialSummary{}, fmt.Errorf("strain %s antibiotic %s: %w", strain, antibiotic, err)
			}

			s.GroupP[g] = p
			pvalues = append(pvalues, p)
		}

		combined, err := fisher.Combine(pvalues)
		if err != nil {
			return TrinomialSummary{}, fmt.Errorf("antibiotic %s: %w", antibiotic, err)
		}
		s.Combined[antibiotic] = combined
	}

	return s, nil
}

// Print writes the per-group and per-antibiotic tables as TSV.
func (s TrinomialSummary) Print(w io.Writer) {
	fmt.Fprintf(w, "strain\tantibiotic\tn.pos\tn.tie\tn.neg\tp\n")
	for _, strain := range s.Strains {
		for _, antibiotic := range mic.Antibiotics() {
			g := mic.Group{Strain: strain, Antibiotic: antibiotic}
			c := s.Counts[g]
			fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%.6g\n", strain, antibiotic, c.NPos, c.NTie, c.NNeg, s.GroupP[g])
		}
	}

	fmt.Fprintf(w, "\nantibiotic\tstatistic\tdf\tcombined.p\n")
	for _, antibiotic := range mic.Antibiotics() {
		c := s.Combined[antibiotic]
		fmt.Fprintf(w, "%s\t%.6g\t%d\t%.6g\n", antibiotic, c.Statistic, c.DegreesOfFreedom, c.P)
	}
}
