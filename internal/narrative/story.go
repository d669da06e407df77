// Package narrative renders the dashboard's cohort story as markdown.
// The presentation layer turns it into HTML; the wording here is data,
// not layout.
package narrative

import (
	"fmt"
	"math"
	"strings"

	"htnscope/internal/analysis"
)

// EmptyCohortStory is shown when the active filters match no records.
const EmptyCohortStory = "No patients match the current filters. Please adjust your selection."

// Story builds the cohort analysis narrative from a summary snapshot.
func Story(s analysis.Summary) string {
	if s.Total == 0 {
		return EmptyCohortStory
	}

	direction := "above"
	if s.DeltaPrevalence < 0 {
		direction = "below"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Cohort Analysis:** analyzing **%d** patients, predominantly in the **%s** sector.\n", s.Total, s.DominantCategory)
	fmt.Fprintf(&b, "The hypertension risk is **%.1f%%** (**%.1f%% %s global avg**).\n", s.Prevalence, math.Abs(s.DeltaPrevalence), direction)
	fmt.Fprintf(&b, "This group exhibits **%s** stress levels.", s.StressBucket)
	return b.String()
}
