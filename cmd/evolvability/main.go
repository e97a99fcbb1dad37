// Evolvability asks whether resistance can be regained once lost: it
// compares each re-evolved daughter MIC to its parent within the same
// lineage (expected direction: higher), runs the exact trinomial test per
// (strain, antibiotic) group with Fisher pooling per antibiotic, and then
// examines the time-series table of re-evolution gains across the evolution
// experiment with a Kruskal-Wallis test plus per-time-point Welch t-tests
// and variance F-tests against the control time point.
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

	var micFile, seriesFile, control string
	var tieEpsilon float64
	flag.StringVar(&micFile, "mic", "", "Path to the wide MIC table (strain, paired.ID, row.ID, <drug>.parent, <drug>.daughter columns).")
	flag.StringVar(&seriesFile, "timeseries", "", "Optional. Path to the time-series MIC table (strain, row.ID, parent, daughter columns; strain holds time-point labels).")
	flag.StringVar(&control, "control", "0", "Time-point label used as the control group for the per-time-point tests.")
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

	// Daughters are compared to the parent genotype of their own row.
	var parents, daughters []mic.Observation
	strains := make([]string, 0)
	seen := make(map[string]bool)
	for _, row := range rows {
		for _, obs := range row.Observations() {
			if obs.Genotype == mic.Parent {
				parents = append(parents, obs)
				continue
			}
			daughters = append(daughters, obs)
			if !seen[obs.Strain] {
				seen[obs.Strain] = true
				strains = append(strains, obs.Strain)
			}
		}
	}

	comparator := mic.Comparator{Direction: mic.DirectionHigher, TieEpsilon: tieEpsilon}
	outcomes, err := mic.PairOutcomes(parents, daughters, mic.ByRowID, comparator)
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

	if seriesFile == "" {
		return
	}

	seriesRows, err := abr.ReadTimeSeriesTable(seriesFile)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}
	log.Println("Loaded", len(seriesRows), "time-series rows from", seriesFile)

	series, err := SummarizeTimeSeries(seriesRows, control)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}
	series.Print(STDOUT)
}
