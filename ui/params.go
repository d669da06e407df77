package ui

import (
	"net/http"
	"strconv"

	"htnscope/domain/cohort"
)

// parseFilter maps query parameters to a filter spec.
//
// Multi-select semantics mirror the dashboard sidebar: an absent parameter
// means the selection was never touched, so it defaults to every observed
// value; a present parameter lists the selection literally, and an empty
// selection excludes everything. Occupation is the optional constraint:
// absent means no occupation predicate at all.
func (a *App) parseFilter(r *http.Request) cohort.FilterSpec {
	q := r.URL.Query()
	f := cohort.MatchAll(a.svc.Table())

	f.AgeMin = intParam(q.Get("age_min"), f.AgeMin)
	f.AgeMax = intParam(q.Get("age_max"), f.AgeMax)

	if values, ok := q["family_history"]; ok {
		f.FamilyHistory = dropEmpty(values)
	}
	if values, ok := q["activity"]; ok {
		f.ActivityLevel = dropEmpty(values)
	}
	if values, ok := q["occupation"]; ok {
		f.Occupation = dropEmpty(values)
		f.FilterOccupation = true
	}
	return f
}

// intParam parses an integer parameter, falling back on blanks or garbage.
func intParam(v string, fallback int) int {
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// dropEmpty removes blank entries so "?occupation=" means an explicit
// empty selection rather than a selection containing the empty string.
func dropEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
