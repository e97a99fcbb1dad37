package abr

// ColonyCountRow is one replicate culture of the fluctuation assay, scored
// by the number of resistant colonies it produced.
type ColonyCountRow struct {
	Strain      string `csv:"strain"`
	ReplicateID string `csv:"replicate.ID"`
	NColonies   int    `csv:"n.colonies"`
}

// CellCountRow is one non-plated replicate whose final cell count estimates
// the culture population size. These replicates are physically distinct from
// the colony-count cultures.
type CellCountRow struct {
	Strain      string  `csv:"strain"`
	ReplicateID string  `csv:"replicate.ID"`
	CellCount   float64 `csv:"cell.count"`
}

// ReadColonyCountTable loads the colony-count table from path.
func ReadColonyCountTable(path string) ([]ColonyCountRow, error) {
	var rows []ColonyCountRow
	if err := UnmarshalTable(path, &rows); err != nil {
		return nil, err
	}

	return rows, nil
}

// ReadCellCountTable loads the cell-count table from path.
func ReadCellCountTable(path string) ([]CellCountRow, error) {
	var rows []CellCountRow
	if err := UnmarshalTable(path, &rows); err != nil {
		return nil, err
	}

	return rows, nil
}

// ColonyCountsByStrain groups replicate colony counts by strain.
func ColonyCountsByStrain(rows []ColonyCountRow) map[string][]int {
	out := make(map[string][]int)
	for _, r := range rows {
		out[r.Strain] = append(out[r.Strain], r.NColonies)
	}

	return out
}

// CellCountsByStrain groups replicate cell counts by strain.
func CellCountsByStrain(rows []CellCountRow) map[string][]float64 {
	out := make(map[string][]float64)
	for _, r := range rows {
		out[r.Strain] = append(out[r.Strain], r.CellCount)
	}

	return out
}
