package testkit

import (
	"encoding/csv"
	"io"
	"math"
	"math/rand"
	"strconv"

	"htnscope/domain/cohort"
)

// GeneratorConfig configures the synthetic survey generator
type GeneratorConfig struct {
	RowCount       int     `json:"row_count"`
	MissingMedRate float64 `json:"missing_med_rate"`
	Seed           int64   `json:"seed"`
}

// DefaultConfig returns sensible defaults for synthetic survey generation
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		RowCount:       1000,
		MissingMedRate: 0.15,
		Seed:           42,
	}
}

// Generator produces synthetic hypertension-survey rows with realistic
// marginals: risk rises with age, BMI, salt, stress, family history and
// smoking, so correlation tests have real signal to find.
type Generator struct {
	config GeneratorConfig
	rng    *rand.Rand
}

// NewGenerator creates a deterministic generator for the given config
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

var (
	activityLevels = []string{"Low", "Moderate", "High"}
	bpHistories    = []string{"Normal", "Prehypertension", "Hypertension"}
	medications    = []string{"ACE Inhibitor", "Beta Blocker", "Diuretic", "Other"}
)

// RawTable generates the configured number of raw rows.
func (g *Generator) RawTable() *cohort.RawTable {
	raw := &cohort.RawTable{Headers: cohort.RequiredColumns}
	for i := 0; i < g.config.RowCount; i++ {
		raw.Rows = append(raw.Rows, g.generateRow())
	}
	return raw
}

// WriteCSV writes the generated dataset as a source-format CSV.
func (g *Generator) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(cohort.RequiredColumns); err != nil {
		return err
	}
	for i := 0; i < g.config.RowCount; i++ {
		row := g.generateRow()
		record := make([]string, len(cohort.RequiredColumns))
		for j, col := range cohort.RequiredColumns {
			record[j] = row[col]
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func (g *Generator) generateRow() cohort.RawRow {
	age := 18 + g.rng.Intn(73) // 18..90
	bmi := clamp(27+g.rng.NormFloat64()*4.5, 15, 45)
	salt := clamp(9+g.rng.NormFloat64()*2.5, 3, 15)
	stress := float64(g.rng.Intn(11))
	sleep := clamp(6.8+g.rng.NormFloat64()*1.2, 3.5, 10)
	activity := activityLevels[g.rng.Intn(len(activityLevels))]
	family := pick(g.rng, "Yes", 0.35, "No")
	smoking := pick(g.rng, "Smoker", 0.25, "Non-Smoker")

	risk := g.riskScore(age, bmi, salt, stress, sleep, activity, family, smoking)
	hypertension := pick(g.rng, "Yes", risk, "No")

	bpHistory := bpHistories[g.rng.Intn(len(bpHistories))]
	if hypertension == "Yes" && g.rng.Float64() < 0.6 {
		bpHistory = "Hypertension"
	}

	medication := ""
	if g.rng.Float64() >= g.config.MissingMedRate {
		medication = medications[g.rng.Intn(len(medications))]
	}

	return cohort.RawRow{
		cohort.SrcAge:             strconv.Itoa(age),
		cohort.SrcBMI:             strconv.FormatFloat(round1(bmi), 'f', 1, 64),
		cohort.SrcSaltIntake:      strconv.FormatFloat(round1(salt), 'f', 1, 64),
		cohort.SrcStressScore:     strconv.FormatFloat(stress, 'f', 0, 64),
		cohort.SrcSleepDuration:   strconv.FormatFloat(round1(sleep), 'f', 1, 64),
		cohort.SrcExerciseLevel:   activity,
		cohort.SrcFamilyHistory:   family,
		cohort.SrcSmokingStatus:   smoking,
		cohort.SrcBPHistory:       bpHistory,
		cohort.SrcHasHypertension: hypertension,
		cohort.SrcMedication:      medication,
	}
}

// riskScore blends the risk factors into a probability of the positive
// label. Coefficients are hand-tuned for plausible prevalence (~30-40%).
func (g *Generator) riskScore(age int, bmi, salt, stress, sleep float64, activity, family, smoking string) float64 {
	score := -4.0
	score += float64(age) * 0.03
	score += (bmi - 25) * 0.08
	score += (salt - 8) * 0.12
	score += stress * 0.10
	score += (7 - sleep) * 0.15
	if activity == "Low" {
		score += 0.4
	}
	if family == "Yes" {
		score += 0.8
	}
	if smoking == "Smoker" {
		score += 0.5
	}
	return 1 / (1 + math.Exp(-score))
}

func pick(rng *rand.Rand, a string, pA float64, b string) string {
	if rng.Float64() < pA {
		return a
	}
	return b
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
