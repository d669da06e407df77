package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"htnscope/domain/cohort"
)

func patient(age int, htn string, bmi, stress, sleep float64, activity string) cohort.Patient {
	p := cohort.Patient{
		Age:           age,
		Hypertension:  htn,
		BMI:           bmi,
		SaltIntake:    8,
		StressScore:   stress,
		BPHistory:     "Normal",
		SleepDuration: sleep,
		ActivityLevel: activity,
		FamilyHistory: "No",
		SmokingStatus: "Non-Smoker",
		Medication:    "None",
	}
	p.Occupation = cohort.AssignOccupation(p.Age, p.StressScore, p.ActivityLevel)
	p.LifeStage = cohort.AssignLifeStage(p.Age)
	return p
}

func TestSummarizeEmptyCohort(t *testing.T) {
	baseline := cohort.Baseline{Prevalence: 40, MeanBMI: 27}
	s := Summarize(nil, baseline)

	assert.Zero(t, s.Total)
	assert.Zero(t, s.Prevalence, "explicit zero-guard, not a division fault")
	assert.Zero(t, s.DeltaPrevalence)
	assert.Zero(t, s.MeanBMI)
	assert.Zero(t, s.MeanSleep)
	assert.Equal(t, MixedCategory, s.DominantCategory)
	assert.Equal(t, StressLow, s.StressBucket)
}

func TestSummarizePrevalenceAndDeltas(t *testing.T) {
	baseline := cohort.Baseline{Prevalence: 50, MeanBMI: 26}
	rows := []cohort.Patient{
		patient(40, "Yes", 30, 5, 6, "Low"),
		patient(45, "No", 26, 5, 8, "Low"),
		patient(50, "No", 28, 5, 7, "Low"),
		patient(55, "Yes", 32, 5, 7, "Low"),
	}

	s := Summarize(rows, baseline)
	assert.Equal(t, 4, s.Total)
	assert.InDelta(t, 50.0, s.Prevalence, 1e-9)
	assert.InDelta(t, 0.0, s.DeltaPrevalence, 1e-9)
	assert.InDelta(t, 29.0, s.MeanBMI, 1e-9)
	assert.InDelta(t, 3.0, s.DeltaBMI, 1e-9)
	assert.InDelta(t, 7.0, s.MeanSleep, 1e-9)
}

func TestSummarizeFullCohortReducesToBaseline(t *testing.T) {
	rows := []cohort.Patient{
		patient(40, "Yes", 30, 5, 6, "Low"),
		patient(45, "No", 26, 5, 8, "Low"),
		patient(50, "No", 28, 5, 7, "Low"),
	}
	table := cohort.NewTable(rows)

	s := Summarize(cohort.MatchAll(table).Apply(table), table.Baseline)
	assert.InDelta(t, table.Baseline.Prevalence, s.Prevalence, 1e-9)
	assert.InDelta(t, 0.0, s.DeltaPrevalence, 1e-9)
	assert.InDelta(t, 0.0, s.DeltaBMI, 1e-9)
}

func TestStressBucketBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		stresses []float64
		want     string
	}{
		{"mean 6.0 is Moderate, boundary strictly greater", []float64{5, 7}, StressModerate},
		{"mean just above 6 is High", []float64{5, 7.2}, StressHigh},
		{"mean 4.0 is Low", []float64{3, 5}, StressLow},
		{"mean just above 4 is Moderate", []float64{4, 4.2}, StressModerate},
		{"mean 10 is High", []float64{10}, StressHigh},
		{"mean 0 is Low", []float64{0}, StressLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rows []cohort.Patient
			for _, stress := range tt.stresses {
				rows = append(rows, patient(40, "No", 25, stress, 7, "Low"))
			}
			s := Summarize(rows, cohort.Baseline{})
			assert.Equal(t, tt.want, s.StressBucket)
		})
	}
}

func TestDominantCategoryMode(t *testing.T) {
	rows := []cohort.Patient{
		patient(70, "No", 25, 5, 7, "Low"), // Retired
		patient(72, "No", 25, 5, 7, "Low"), // Retired
		patient(40, "No", 25, 5, 7, "Low"), // Office / Admin
	}
	s := Summarize(rows, cohort.Baseline{})
	assert.Equal(t, cohort.OccupationRetired, s.DominantCategory)
}

func TestDominantCategoryTieIsDeterministic(t *testing.T) {
	rows := []cohort.Patient{
		patient(70, "No", 25, 5, 7, "Low"), // Retired
		patient(40, "No", 25, 5, 7, "Low"), // Office / Admin
	}
	s := Summarize(rows, cohort.Baseline{})
	// Lexicographic tie-break: "Office / Admin" < "Retired".
	assert.Equal(t, cohort.OccupationOffice, s.DominantCategory)
}
