package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"htnscope/domain/cohort"
)

// Correlation band: pairs are reported when 0.1 < |r| < 1.0. The upper
// bound excludes self-correlation; the lower bound drops noise.
const (
	bandLower = 0.1
	bandUpper = 1.0
)

// Pair is one unique column pair with its signed Pearson coefficient.
// ColumnA sorts before ColumnB, so (A,B) and (B,A) can never both appear.
type Pair struct {
	ColumnA     string  `json:"column_a"`
	ColumnB     string  `json:"column_b"`
	Coefficient float64 `json:"coefficient"`
}

// Encoder assigns integer codes to categorical values. Codes are fixed
// once over the full table at load time, so the same column pair reports
// comparable coefficients under every filter state.
type Encoder struct {
	codes map[string]map[string]float64
}

// NewEncoder derives category codes from the full table. Within each
// column, distinct values are coded in sorted order.
func NewEncoder(t *cohort.Table) *Encoder {
	enc := &Encoder{codes: make(map[string]map[string]float64)}
	for _, col := range cohort.Columns() {
		if col.Kind != cohort.KindCategorical {
			continue
		}
		colCodes := make(map[string]float64)
		for i, v := range t.DistinctValues(col.Name) {
			colCodes[v] = float64(i)
		}
		enc.codes[col.Name] = colCodes
	}
	return enc
}

// Code returns the integer code for a categorical value, or -1 for a value
// the full table never contained.
func (e *Encoder) Code(column, value string) float64 {
	if code, ok := e.codes[column][value]; ok {
		return code
	}
	return -1
}

// value extracts a column's numeric representation for one record:
// numeric columns verbatim, categorical columns through the encoder.
func (e *Encoder) value(col cohort.Column, p cohort.Patient) float64 {
	if col.Kind == cohort.KindNumeric {
		return col.Num(p)
	}
	return e.Code(col.Name, col.Cat(p))
}

// Ranker computes ranked pairwise correlations over a cohort.
type Ranker struct {
	enc *Encoder
}

// NewRanker creates a ranker sharing the load-time encoder.
func NewRanker(enc *Encoder) *Ranker {
	return &Ranker{enc: enc}
}

// Rank computes the full symmetric Pearson correlation matrix over all
// columns, flattens it to unique pairs, keeps coefficients inside the
// band, and sorts by magnitude descending with ties broken by pair name.
// Cohorts of fewer than two rows yield no pairs.
func (r *Ranker) Rank(patients []cohort.Patient) []Pair {
	if len(patients) < 2 {
		return nil
	}

	cols := cohort.Columns()
	data := make([]float64, len(patients)*len(cols))
	for i, p := range patients {
		for j, col := range cols {
			data[i*len(cols)+j] = r.enc.value(col, p)
		}
	}
	x := mat.NewDense(len(patients), len(cols), data)

	corr := mat.NewSymDense(len(cols), nil)
	stat.CorrelationMatrix(corr, x, nil)

	var pairs []Pair
	for i := 0; i < len(cols); i++ {
		for j := i + 1; j < len(cols); j++ {
			coeff := corr.At(i, j)
			abs := math.Abs(coeff)
			// Constant columns produce NaN; skip rather than rank garbage.
			if math.IsNaN(coeff) || abs <= bandLower || abs >= bandUpper {
				continue
			}
			a, b := cols[i].Name, cols[j].Name
			if b < a {
				a, b = b, a
			}
			pairs = append(pairs, Pair{ColumnA: a, ColumnB: b, Coefficient: coeff})
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		ai, aj := math.Abs(pairs[i].Coefficient), math.Abs(pairs[j].Coefficient)
		if ai != aj {
			return ai > aj
		}
		if pairs[i].ColumnA != pairs[j].ColumnA {
			return pairs[i].ColumnA < pairs[j].ColumnA
		}
		return pairs[i].ColumnB < pairs[j].ColumnB
	})
	return pairs
}
