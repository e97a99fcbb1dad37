// Resistdecay asks whether antibiotic resistance decayed under relaxed
// selection: it pairs each evolved line's MIC to its ancestor's MIC, scores
// the paired outcomes as signed ternary comparisons, runs the exact
// trinomial test per (strain, antibiotic) group, and pools the per-group
// p-values per antibiotic with Fisher's combined-probability method.
package main

import (
	"bufio"
	"flag"
	"log"
	"os"

	abr "github.com/KyleCard/Historical-contingency-in-the-evolution-of-ABR"
	"github.com/KyleCard/Historical-contingency-in-the-evolution-of-ABR/mic"
	"github.com/carbocation/pfx"
)

var STDOUT = bufio.NewWriterSize(os.Stdout, 4096)

func main() {
	defer STDOUT.Flush()

	var micFile, ancestor string
	var tieEpsilon float64
	flag.StringVar(&micFile, "mic", "", "Path to the wide MIC table (strain, paired.ID, row.ID, <drug>.parent, <drug>.daughter columns).")
	flag.StringVar(&ancestor, "ancestor", "606", "Strain label of the ancestor; all other strains are compared against it.")
	flag.Float64Var(&tieEpsilon, "tieepsilon", 0, "Half-width of the tie band on the log2 scale. 0 treats only exact equality as a tie.")
	flag.Parse()

	if micFile == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	rows, err := abr.ReadMICTable(micFile)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}
	log.Println("Loaded", len(rows), "MIC rows from", micFile)

	// Decay is assessed on the strains' own measurements; the re-evolved
	// daughters play no role here.
	var references, derived []mic.Observation
	strains := make([]string, 0)
	seen := make(map[string]bool)
	for _, row := range rows {
		for _, obs := range row.Observations() {
			if obs.Genotype != mic.Parent {
				continue
			}
			if obs.Strain == ancestor {
				references = append(references, obs)
				continue
			}
			derived = append(derived, obs)
			if !seen[obs.Strain] {
				seen[obs.Strain] = true
				strains = append(strains, obs.Strain)
			}
		}
	}

	if len(references) == 0 {
		log.Fatalln("No rows found for ancestor strain", ancestor)
	}

	comparator := mic.Comparator{Direction: mic.DirectionLower, TieEpsilon: tieEpsilon}
	outcomes, err := mic.PairOutcomes(references, derived, mic.ByPairedID, comparator)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	groups := make([]mic.Group, 0, len(strains)*len(mic.Antibiotics()))
	for _, strain := range strains {
		for _, antibiotic := range mic.Antibiotics() {
			groups = append(groups, mic.Group{Strain: strain, Antibiotic: antibiotic})
		}
	}

	counts, err := mic.CountsForGroups(outcomes, groups)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	results, err := abr.SummarizeTrinomial(strains, counts)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}

	results.Print(STDOUT)
}
