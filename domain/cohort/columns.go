package cohort

import "sort"

// ColumnKind distinguishes how a column enters statistical computation.
type ColumnKind string

const (
	KindNumeric     ColumnKind = "numeric"
	KindCategorical ColumnKind = "categorical"
)

// Column describes one table column with typed accessors. Numeric columns
// expose Num, categorical columns expose Cat.
type Column struct {
	Name string
	Kind ColumnKind
	Num  func(Patient) float64
	Cat  func(Patient) string
}

// columns is the fixed registry of all enriched-table columns, in canonical
// display order.
var columns = []Column{
	{Name: ColHypertension, Kind: KindCategorical, Cat: func(p Patient) string { return p.Hypertension }},
	{Name: ColOccupation, Kind: KindCategorical, Cat: func(p Patient) string { return p.Occupation }},
	{Name: ColLifeStage, Kind: KindCategorical, Cat: func(p Patient) string { return p.LifeStage }},
	{Name: ColAge, Kind: KindNumeric, Num: func(p Patient) float64 { return float64(p.Age) }},
	{Name: ColBMI, Kind: KindNumeric, Num: func(p Patient) float64 { return p.BMI }},
	{Name: ColSaltIntake, Kind: KindNumeric, Num: func(p Patient) float64 { return p.SaltIntake }},
	{Name: ColStressScore, Kind: KindNumeric, Num: func(p Patient) float64 { return p.StressScore }},
	{Name: ColBPHistory, Kind: KindCategorical, Cat: func(p Patient) string { return p.BPHistory }},
	{Name: ColSleepDuration, Kind: KindNumeric, Num: func(p Patient) float64 { return p.SleepDuration }},
	{Name: ColActivityLevel, Kind: KindCategorical, Cat: func(p Patient) string { return p.ActivityLevel }},
	{Name: ColFamilyHistory, Kind: KindCategorical, Cat: func(p Patient) string { return p.FamilyHistory }},
	{Name: ColSmokingStatus, Kind: KindCategorical, Cat: func(p Patient) string { return p.SmokingStatus }},
	{Name: ColMedication, Kind: KindCategorical, Cat: func(p Patient) string { return p.Medication }},
}

// Columns returns the full column registry.
func Columns() []Column {
	return columns
}

// ColumnByName looks up a column by display name.
func ColumnByName(name string) (Column, bool) {
	for _, c := range columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

func distinctCategories(patients []Patient, col Column) []string {
	seen := make(map[string]bool)
	var values []string
	for _, p := range patients {
		v := col.Cat(p)
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	sort.Strings(values)
	return values
}
