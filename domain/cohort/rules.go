package cohort

// Occupation sectors assigned by the imputation rule table.
const (
	OccupationRetired    = "Retired"
	OccupationStudent    = "Student"
	OccupationExecutive  = "Executive / Tech"
	OccupationManual     = "Manual / Field Labor"
	OccupationHealthcare = "Healthcare / Education"
	OccupationOffice     = "Office / Admin"
)

// Life stage labels carry their age ranges for display.
const (
	LifeStageYoungAdult = "Young Adult (18-34)"
	LifeStageMiddleAged = "Middle-Aged (35-59)"
	LifeStageSenior     = "Senior (60+)"
)

// AssignOccupation imputes an occupation sector from age, stress score and
// activity level. Age rules take precedence; stress beats activity.
func AssignOccupation(age int, stress float64, activity string) string {
	switch {
	case age >= 65:
		return OccupationRetired
	case age < 22:
		return OccupationStudent
	case stress >= 8:
		return OccupationExecutive
	case activity == "High":
		return OccupationManual
	case activity == "Moderate":
		return OccupationHealthcare
	default:
		return OccupationOffice
	}
}

// AssignLifeStage buckets age into a life stage. Boundaries: 35 starts
// Middle-Aged, 60 starts Senior.
func AssignLifeStage(age int) string {
	switch {
	case age < 35:
		return LifeStageYoungAdult
	case age < 60:
		return LifeStageMiddleAged
	default:
		return LifeStageSenior
	}
}
