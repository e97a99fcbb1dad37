// Package abr provides the shared table plumbing for the resistance-decay,
// re-evolvability, and mutation-rate analyses: typed rows for the four input
// tables and CSV/TSV loading with delimiter autodetection.
package abr

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"

	"github.com/carbocation/pfx"
	"github.com/csimplestring/go-csv/detector"
	"github.com/gocarina/gocsv"
)

// DetermineDelimiter returns the single most likely rune that would delimit
// the values in the reader, assuming a CSV-like file.
func DetermineDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	if len(delimiters) > 0 {
		return rune(delimiters[0][0])
	}

	return ','
}

// UnmarshalTable loads a delimited table from path into out, a pointer to a
// slice of csv-tagged row structs. The delimiter is autodetected, so the
// same loader accepts the comma- and tab-separated variants of the study's
// tables.
func UnmarshalTable(path string, out interface{}) error {
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		return pfx.Err(err)
	}

	delim := DetermineDelimiter(bytes.NewReader(fileBytes))

	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = delim
		r.LazyQuotes = true
		return r
	})

	if err := gocsv.UnmarshalBytes(fileBytes, out); err != nil {
		return pfx.Err(err)
	}

	return nil
}
