package mic

import "fmt"

// Group identifies one (strain, antibiotic) combination in the trinomial
// pipeline.
type Group struct {
	Strain     string
	Antibiotic Antibiotic
}

// Counts summarizes a group's paired outcomes as a trinomial outcome set.
type Counts struct {
	NPos int
	NTie int
	NNeg int
}

// N is the total number of paired outcomes in the group.
func (c Counts) N() int {
	return c.NPos + c.NTie + c.NNeg
}

// GroupCounts buckets outcomes by (strain, antibiotic).
func GroupCounts(outcomes []PairedOutcome) map[Group]Counts {
	counts := make(map[Group]Counts)
	for _, out := range outcomes {
		g := Group{out.Strain, out.Antibiotic}
		c := counts[g]
		switch {
		case out.Sign > 0:
			c.NPos++
		case out.Sign < 0:
			c.NNeg++
		default:
			c.NTie++
		}
		counts[g] = c
	}

	return counts
}

// CountsForGroups buckets outcomes by (strain, antibiotic) and verifies that
// every requested group is populated. A group that yielded no outcomes fails
// with ErrInsufficientData rather than being silently dropped, because a
// missing group would change the degrees of freedom of the downstream
// combined test.
func CountsForGroups(outcomes []PairedOutcome, groups []Group) (map[Group]Counts, error) {
	counts := GroupCounts(outcomes)
	for _, g := range groups {
		if counts[g].N() == 0 {
			return nil, fmt.Errorf("%w: strain %s antibiotic %s", ErrInsufficientData, g.Strain, g.Antibiotic)
		}
	}

	return counts, nil
}
