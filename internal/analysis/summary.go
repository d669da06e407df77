package analysis

import (
	"sort"

	"github.com/montanaflynn/stats"

	"htnscope/domain/cohort"
)

// Stress buckets derived from a cohort's mean stress score.
const (
	StressHigh     = "High"
	StressModerate = "Moderate"
	StressLow      = "Low"
)

// MixedCategory is the dominant-category sentinel for an empty cohort.
const MixedCategory = "Mixed"

// Summary is one atomic descriptive snapshot of a cohort against the
// full-dataset baseline. All fields are computed from a single cohort
// version in one call.
type Summary struct {
	Total            int     `json:"total"`
	Prevalence       float64 `json:"prevalence"`
	DeltaPrevalence  float64 `json:"delta_prevalence"`
	MeanBMI          float64 `json:"mean_bmi"`
	DeltaBMI         float64 `json:"delta_bmi"`
	MeanSleep        float64 `json:"mean_sleep"`
	DominantCategory string  `json:"dominant_category"`
	StressBucket     string  `json:"stress_bucket"`
}

// Summarize computes the cohort summary. An empty cohort is a valid input:
// rates and means are zero by explicit guard, deltas are zero, and the
// dominant category is the "Mixed" sentinel.
func Summarize(patients []cohort.Patient, baseline cohort.Baseline) Summary {
	if len(patients) == 0 {
		return Summary{
			DominantCategory: MixedCategory,
			StressBucket:     StressLow,
		}
	}

	yes := 0
	bmi := make([]float64, len(patients))
	sleep := make([]float64, len(patients))
	stress := make([]float64, len(patients))
	for i, p := range patients {
		if p.HasHypertension() {
			yes++
		}
		bmi[i] = p.BMI
		sleep[i] = p.SleepDuration
		stress[i] = p.StressScore
	}

	meanBMI, _ := stats.Mean(bmi)
	meanSleep, _ := stats.Mean(sleep)
	meanStress, _ := stats.Mean(stress)
	prevalence := float64(yes) / float64(len(patients)) * 100

	return Summary{
		Total:            len(patients),
		Prevalence:       prevalence,
		DeltaPrevalence:  prevalence - baseline.Prevalence,
		MeanBMI:          meanBMI,
		DeltaBMI:         meanBMI - baseline.MeanBMI,
		MeanSleep:        meanSleep,
		DominantCategory: dominantOccupation(patients),
		StressBucket:     stressBucket(meanStress),
	}
}

// stressBucket maps a mean stress score to its qualitative label.
// Thresholds are strictly-greater-than: a mean of exactly 6 is Moderate,
// exactly 4 is Low.
func stressBucket(mean float64) string {
	switch {
	case mean > 6:
		return StressHigh
	case mean > 4:
		return StressModerate
	default:
		return StressLow
	}
}

// dominantOccupation returns the statistical mode of the derived occupation
// attribute. Ties resolve to the lexicographically smallest sector so the
// result is deterministic.
func dominantOccupation(patients []cohort.Patient) string {
	counts := make(map[string]int)
	for _, p := range patients {
		counts[p.Occupation]++
	}

	var names []string
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	best := ""
	bestCount := 0
	for _, name := range names {
		if counts[name] > bestCount {
			best = name
			bestCount = counts[name]
		}
	}
	return best
}
