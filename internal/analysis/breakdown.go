package analysis

import (
	"sort"

	"htnscope/domain/cohort"
)

// GroupRate is the hypertension prevalence within one category of a
// grouping column.
type GroupRate struct {
	Group string  `json:"group"`
	Count int     `json:"count"`
	Rate  float64 `json:"rate"`
}

// ValueCount is one category frequency.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// PrevalenceByGroup computes group-wise hypertension proportions for a
// categorical column, sorted by rate descending, ties by group name.
// Non-categorical columns yield nil.
func PrevalenceByGroup(patients []cohort.Patient, column string) []GroupRate {
	col, ok := cohort.ColumnByName(column)
	if !ok || col.Kind != cohort.KindCategorical {
		return nil
	}

	totals := make(map[string]int)
	positives := make(map[string]int)
	for _, p := range patients {
		g := col.Cat(p)
		totals[g]++
		if p.HasHypertension() {
			positives[g]++
		}
	}

	rates := make([]GroupRate, 0, len(totals))
	for g, n := range totals {
		rates = append(rates, GroupRate{
			Group: g,
			Count: n,
			Rate:  float64(positives[g]) / float64(n) * 100,
		})
	}
	sort.Slice(rates, func(i, j int) bool {
		if rates[i].Rate != rates[j].Rate {
			return rates[i].Rate > rates[j].Rate
		}
		return rates[i].Group < rates[j].Group
	})
	return rates
}

// CountValues tallies a categorical column's values, sorted by count
// descending (ties by value), capped at limit when limit > 0.
func CountValues(patients []cohort.Patient, column string, limit int) []ValueCount {
	col, ok := cohort.ColumnByName(column)
	if !ok || col.Kind != cohort.KindCategorical {
		return nil
	}

	counts := make(map[string]int)
	for _, p := range patients {
		counts[col.Cat(p)]++
	}

	values := make([]ValueCount, 0, len(counts))
	for v, n := range counts {
		values = append(values, ValueCount{Value: v, Count: n})
	}
	sort.Slice(values, func(i, j int) bool {
		if values[i].Count != values[j].Count {
			return values[i].Count > values[j].Count
		}
		return values[i].Value < values[j].Value
	})
	if limit > 0 && len(values) > limit {
		values = values[:limit]
	}
	return values
}
