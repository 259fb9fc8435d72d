package export

import "github.com/alexanderramin/teamsim/internal/domain"

// Table is the flat export shape: one column per team label and one row per
// trial record.
type Table struct {
	Header []string
	Rows   [][]float64
}

// NewTable lays records out under labels. Values are looked up by label so
// the column order always follows labels.
func NewTable(labels []string, records []domain.TrialRecord) Table {
	t := Table{
		Header: append([]string(nil), labels...),
		Rows:   make([][]float64, len(records)),
	}
	for i, r := range records {
		row := make([]float64, len(labels))
		for j, l := range labels {
			row[j], _ = r.Weeks(l)
		}
		t.Rows[i] = row
	}
	return t
}
