package abr

import (
	"github.com/KyleCard/Historical-contingency-in-the-evolution-of-ABR/mic"
)

// MICRow is one row of the wide MIC table: a strain's own (parent) MIC and
// its re-evolved mutant's (daughter) MIC for each of the four antibiotics.
// paired.ID links an evolved line to its ancestor's row.
type MICRow struct {
	Strain   string `csv:"strain"`
	PairedID string `csv:"paired.ID"`
	RowID    int    `csv:"row.ID"`

	AmpParent   float64 `csv:"amp.parent"`
	AmpDaughter float64 `csv:"amp.daughter"`
	CroParent   float64 `csv:"cro.parent"`
	CroDaughter float64 `csv:"cro.daughter"`
	CipParent   float64 `csv:"cip.parent"`
	CipDaughter float64 `csv:"cip.daughter"`
	TetParent   float64 `csv:"tet.parent"`
	TetDaughter float64 `csv:"tet.daughter"`
}

// ReadMICTable loads the wide MIC table from path.
func ReadMICTable(path string) ([]MICRow, error) {
	var rows []MICRow
	if err := UnmarshalTable(path, &rows); err != nil {
		return nil, err
	}

	return rows, nil
}

// Observations melts the row into long form: one parent and one daughter
// observation per antibiotic, all carrying the row's pairing keys.
func (r MICRow) Observations() []mic.Observation {
	wide := []struct {
		antibiotic       mic.Antibiotic
		parent, daughter float64
	}{
		{mic.Ampicillin, r.AmpParent, r.AmpDaughter},
		{mic.Ceftriaxone, r.CroParent, r.CroDaughter},
		{mic.Ciprofloxacin, r.CipParent, r.CipDaughter},
		{mic.Tetracycline, r.TetParent, r.TetDaughter},
	}

	obs := make([]mic.Observation, 0, 2*len(wide))
	for _, w := range wide {
		obs = append(obs,
			mic.Observation{
				Strain:     r.Strain,
				Antibiotic: w.antibiotic,
				Genotype:   mic.Parent,
				PairedID:   r.PairedID,
				RowID:      r.RowID,
				MIC:        w.parent,
			},
			mic.Observation{
				Strain:     r.Strain,
				Antibiotic: w.antibiotic,
				Genotype:   mic.Daughter,
				PairedID:   r.PairedID,
				RowID:      r.RowID,
				MIC:        w.daughter,
			},
		)
	}

	return obs
}

// MeltMIC melts every row of the wide table.
func MeltMIC(rows []MICRow) []mic.Observation {
	obs := make([]mic.Observation, 0, 8*len(rows))
	for _, r := range rows {
		obs = append(obs, r.Observations()...)
	}

	return obs
}

// TimeSeriesRow is one row of the time-series MIC table: parent and daughter
// MIC for a single antibiotic at one time point of the evolution experiment.
// Strain holds the time-point label ("0", "0.5A", ..., "10B").
type TimeSeriesRow struct {
	Strain   string  `csv:"strain"`
	RowID    int     `csv:"row.ID"`
	Parent   float64 `csv:"parent"`
	Daughter float64 `csv:"daughter"`
}

// ReadTimeSeriesTable loads the time-series MIC table from path.
func ReadTimeSeriesTable(path string) ([]TimeSeriesRow, error) {
	var rows []TimeSeriesRow
	if err := UnmarshalTable(path, &rows); err != nil {
		return nil, err
	}

	return rows, nil
}
