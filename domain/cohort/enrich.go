package cohort

import (
	"strconv"
	"strings"

	"htnscope/domain/core"
)

// Source column identifiers as they appear in the raw file or table.
const (
	SrcHasHypertension = "Has_Hypertension"
	SrcSmokingStatus   = "Smoking_Status"
	SrcSaltIntake      = "Salt_Intake"
	SrcStressScore     = "Stress_Score"
	SrcBPHistory       = "BP_History"
	SrcSleepDuration   = "Sleep_Duration"
	SrcExerciseLevel   = "Exercise_Level"
	SrcFamilyHistory   = "Family_History"
	SrcAge             = "Age"
	SrcBMI             = "BMI"
	SrcMedication      = "Medication"
)

// RequiredColumns lists every source column the loader must find.
// Medication is required as a column but nullable per cell.
var RequiredColumns = []string{
	SrcHasHypertension,
	SrcSmokingStatus,
	SrcSaltIntake,
	SrcStressScore,
	SrcBPHistory,
	SrcSleepDuration,
	SrcExerciseLevel,
	SrcFamilyHistory,
	SrcAge,
	SrcBMI,
	SrcMedication,
}

// LoadReport accounts for what enrichment did with the raw rows.
// Dropped rows are counted, never silently ignored.
type LoadReport struct {
	Parsed  int `json:"parsed"`
	Dropped int `json:"dropped"`
}

// Enrich converts a raw table into the canonical enriched table:
// renames source columns to display names, substitutes missing Medication
// with "None", parses numeric fields, and computes the derived Occupation
// and Life Stage attributes. Rows with unparseable numeric cells are
// dropped and counted in the report.
//
// Fails with a schema error if any required source column is absent.
func Enrich(raw *RawTable) (*Table, LoadReport, error) {
	for _, col := range RequiredColumns {
		if !raw.HasHeader(col) {
			return nil, LoadReport{}, core.NewSchemaError(col)
		}
	}

	patients := make([]Patient, 0, len(raw.Rows))
	report := LoadReport{}
	for _, row := range raw.Rows {
		p, ok := enrichRow(row)
		if !ok {
			report.Dropped++
			continue
		}
		patients = append(patients, p)
		report.Parsed++
	}

	return NewTable(patients), report, nil
}

func enrichRow(row RawRow) (Patient, bool) {
	age, ok := parseInt(row[SrcAge])
	if !ok {
		return Patient{}, false
	}
	bmi, ok := parseFloat(row[SrcBMI])
	if !ok {
		return Patient{}, false
	}
	salt, ok := parseFloat(row[SrcSaltIntake])
	if !ok {
		return Patient{}, false
	}
	stress, ok := parseFloat(row[SrcStressScore])
	if !ok {
		return Patient{}, false
	}
	sleep, ok := parseFloat(row[SrcSleepDuration])
	if !ok {
		return Patient{}, false
	}

	p := Patient{
		Age:           age,
		Hypertension:  strings.TrimSpace(row[SrcHasHypertension]),
		BMI:           bmi,
		SaltIntake:    salt,
		StressScore:   stress,
		BPHistory:     strings.TrimSpace(row[SrcBPHistory]),
		SleepDuration: sleep,
		ActivityLevel: strings.TrimSpace(row[SrcExerciseLevel]),
		FamilyHistory: strings.TrimSpace(row[SrcFamilyHistory]),
		SmokingStatus: strings.TrimSpace(row[SrcSmokingStatus]),
		Medication:    fillMedication(row[SrcMedication]),
	}
	p.Occupation = AssignOccupation(p.Age, p.StressScore, p.ActivityLevel)
	p.LifeStage = AssignLifeStage(p.Age)
	return p, true
}

// fillMedication substitutes the missing-value sentinel for blank cells.
func fillMedication(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "None"
	}
	return v
}

func parseInt(v string) (int, bool) {
	v = strings.TrimSpace(v)
	if n, err := strconv.Atoi(v); err == nil {
		return n, true
	}
	// Sources exported through spreadsheet tooling sometimes carry "42.0".
	if f, err := strconv.ParseFloat(v, 64); err == nil && f == float64(int(f)) {
		return int(f), true
	}
	return 0, false
}

func parseFloat(v string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
