package cohort

// FilterSpec is a conjunction of cohort predicates: an inclusive age
// interval and set-membership constraints on categorical columns.
//
// Set semantics are literal: an empty set matches nothing. There is no
// implicit "match all" on an empty selection. The occupation constraint is
// optional; it applies only when FilterOccupation is set.
type FilterSpec struct {
	AgeMin int `json:"age_min"`
	AgeMax int `json:"age_max"`

	FamilyHistory []string `json:"family_history"`
	ActivityLevel []string `json:"activity_level"`

	Occupation       []string `json:"occupation,omitempty"`
	FilterOccupation bool     `json:"-"`
}

// Matches reports whether a single record satisfies every predicate.
func (f FilterSpec) Matches(p Patient) bool {
	if p.Age < f.AgeMin || p.Age > f.AgeMax {
		return false
	}
	if !member(f.FamilyHistory, p.FamilyHistory) {
		return false
	}
	if !member(f.ActivityLevel, p.ActivityLevel) {
		return false
	}
	if f.FilterOccupation && !member(f.Occupation, p.Occupation) {
		return false
	}
	return true
}

// Apply returns the sub-table of records satisfying the filter. The result
// is a fresh slice over the same immutable records; it is recomputed on
// every call and never errors.
func (f FilterSpec) Apply(t *Table) []Patient {
	matched := make([]Patient, 0, len(t.Patients))
	for _, p := range t.Patients {
		if f.Matches(p) {
			matched = append(matched, p)
		}
	}
	return matched
}

// MatchAll builds the filter that selects every record in the table:
// the full age range and every observed category. Useful as the baseline
// filter and as the default for absent UI selections.
func MatchAll(t *Table) FilterSpec {
	return FilterSpec{
		AgeMin:        18,
		AgeMax:        90,
		FamilyHistory: t.DistinctValues(ColFamilyHistory),
		ActivityLevel: t.DistinctValues(ColActivityLevel),
	}
}

func member(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
