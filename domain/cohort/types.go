package cohort

// Canonical column display names after schema normalization.
const (
	ColHypertension  = "Hypertension"
	ColAge           = "Age"
	ColBMI           = "BMI"
	ColSaltIntake    = "Salt Intake"
	ColStressScore   = "Stress Score"
	ColBPHistory     = "BP History"
	ColSleepDuration = "Sleep Duration"
	ColActivityLevel = "Activity Level"
	ColFamilyHistory = "Family History"
	ColSmokingStatus = "Smoking Status"
	ColMedication    = "Medication"
	ColOccupation    = "Occupation"
	ColLifeStage     = "Life Stage"
)

// Patient is one enriched survey record. Every field is populated after
// enrichment; Occupation and Life Stage are derived, never sourced.
type Patient struct {
	Age           int     `json:"age"`
	Hypertension  string  `json:"hypertension"`
	BMI           float64 `json:"bmi"`
	SaltIntake    float64 `json:"salt_intake"`
	StressScore   float64 `json:"stress_score"`
	BPHistory     string  `json:"bp_history"`
	SleepDuration float64 `json:"sleep_duration"`
	ActivityLevel string  `json:"activity_level"`
	FamilyHistory string  `json:"family_history"`
	SmokingStatus string  `json:"smoking_status"`
	Medication    string  `json:"medication"`
	Occupation    string  `json:"occupation"`
	LifeStage     string  `json:"life_stage"`
}

// HasHypertension reports whether the record carries the positive label.
func (p Patient) HasHypertension() bool {
	return p.Hypertension == "Yes"
}

// Baseline holds whole-dataset reference statistics, computed once at load.
// Cohort summaries report deltas against these.
type Baseline struct {
	Prevalence float64 `json:"prevalence"`
	MeanBMI    float64 `json:"mean_bmi"`
}

// Table is the enriched dataset. It is built once at load time and treated
// as immutable, shared read-only for the life of the process.
type Table struct {
	Patients []Patient
	Baseline Baseline
}

// NewTable builds a table and computes its baseline statistics.
func NewTable(patients []Patient) *Table {
	t := &Table{Patients: patients}
	if len(patients) == 0 {
		return t
	}
	yes := 0
	bmiSum := 0.0
	for _, p := range patients {
		if p.HasHypertension() {
			yes++
		}
		bmiSum += p.BMI
	}
	t.Baseline = Baseline{
		Prevalence: float64(yes) / float64(len(patients)) * 100,
		MeanBMI:    bmiSum / float64(len(patients)),
	}
	return t
}

// Len returns the number of records.
func (t *Table) Len() int { return len(t.Patients) }

// DistinctValues returns the sorted distinct values of a categorical column.
func (t *Table) DistinctValues(column string) []string {
	col, ok := ColumnByName(column)
	if !ok || col.Kind != KindCategorical {
		return nil
	}
	return distinctCategories(t.Patients, col)
}
