package analysis

import (
	"htnscope/domain/cohort"
	"htnscope/domain/core"
)

// ScatterPoint is one cohort record projected onto a selected column pair,
// labeled for color coding by the binary hypertension label.
type ScatterPoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label"`
}

// ScatterData projects the cohort onto two columns for the
// scatter-with-trendline view. Categorical columns are projected through
// the load-time encoder. Unknown column names fail the lookup.
func ScatterData(patients []cohort.Patient, enc *Encoder, xColumn, yColumn string) ([]ScatterPoint, error) {
	xCol, ok := cohort.ColumnByName(xColumn)
	if !ok {
		return nil, core.NewColumnNotFoundError(xColumn)
	}
	yCol, ok := cohort.ColumnByName(yColumn)
	if !ok {
		return nil, core.NewColumnNotFoundError(yColumn)
	}

	points := make([]ScatterPoint, len(patients))
	for i, p := range patients {
		points[i] = ScatterPoint{
			X:     enc.value(xCol, p),
			Y:     enc.value(yCol, p),
			Label: p.Hypertension,
		}
	}
	return points, nil
}
