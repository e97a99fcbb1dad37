// Mutationrate estimates per-strain mutation rates from fluctuation-test
// data: replicate colony counts feed the Luria-Delbruck zero-class
// estimator, independently measured cell counts scale the expected events to
// a per-cell rate, and an Agresti-Coull interval on the zero-class
// proportion propagates to a confidence interval on the rate.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	abr "github.com/KyleCard/Historical-contingency-in-the-evolution-of-ABR"
	"github.com/KyleCard/Historical-contingency-in-the-evolution-of-ABR/fluctuation"
	"github.com/carbocation/pfx"
)

var STDOUT = bufio.NewWriterSize(os.Stdout, 4096)

func main() {
	defer STDOUT.Flush()

	var colonyFile, cellFile string
	var dilution, confidence float64
	flag.StringVar(&colonyFile, "colonies", "", "Path to the colony-count table (strain, replicate.ID, n.colonies columns).")
	flag.StringVar(&cellFile, "cells", "", "Path to the cell-count table (strain, replicate.ID, cell.count columns).")
	flag.Float64Var(&dilution, "dilution", fluctuation.DefaultDilutionFactor, "Dilution factor applied to the mean cell count.")
	flag.Float64Var(&confidence, "confidence", fluctuation.DefaultConfidence, "Two-sided confidence level for the rate interval.")
	flag.Parse()

	if colonyFile == "" || cellFile == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	colonyRows, err := abr.ReadColonyCountTable(colonyFile)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}
	cellRows, err := abr.ReadCellCountTable(cellFile)
	if err != nil {
		log.Fatalln(pfx.Err(err))
	}
	log.Println("Loaded", len(colonyRows), "colony-count rows and", len(cellRows), "cell-count rows")

	colonies := abr.ColonyCountsByStrain(colonyRows)
	cells := abr.CellCountsByStrain(cellRows)

	strains := make([]string, 0, len(colonies))
	for strain := range colonies {
		strains = append(strains, strain)
	}
	sort.Strings(strains)

	cfg := fluctuation.Config{DilutionFactor: dilution, Confidence: confidence}

	fmt.Fprintf(STDOUT, "strain\treplicates\tzero.replicates\tp0\tm\tmean.yield\trate\trate.lower\trate.upper\n")
	for _, strain := range strains {
		res, err := fluctuation.Run(strain, colonies[strain], cells[strain], cfg)
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}

		fmt.Fprintf(STDOUT, "%s\t%d\t%d\t%.4g\t%.6g\t%.6g\t%.6g\t%.6g\t%.6g\n",
			res.Strain, res.Replicates, res.ZeroReplicates, res.P0, res.Events,
			res.MeanYield, res.Rate, res.RateLower, res.RateUpper)
	}
}
