package app

import (
	"context"

	"htnscope/domain/cohort"
	"htnscope/domain/core"
	"htnscope/internal/analysis"
	"htnscope/internal/narrative"
	"htnscope/ports"
)

// DashboardService owns the loaded table and answers every dashboard
// computation. The table, baseline and encoder are built once at
// construction and never mutated; each request is a synchronous pass over
// the in-memory records.
type DashboardService struct {
	table  *cohort.Table
	report cohort.LoadReport
	ranker *analysis.Ranker
	enc    *analysis.Encoder
}

// Breakdowns are the group-wise views behind the dashboard's deep-dive
// tabs: occupation risk, diagnosis split, top medications.
type Breakdowns struct {
	OccupationRisk []analysis.GroupRate  `json:"occupation_risk"`
	BPHistory      []analysis.ValueCount `json:"bp_history"`
	Medications    []analysis.ValueCount `json:"medications"`
}

// Snapshot is one atomic recomputation for a filter state. Everything in
// it was computed against the same cohort version.
type Snapshot struct {
	ID           core.SnapshotID  `json:"snapshot_id"`
	Summary      analysis.Summary `json:"summary"`
	Breakdowns   Breakdowns       `json:"breakdowns"`
	Correlations []analysis.Pair  `json:"correlations"`
	Story        string           `json:"story"`
}

// Options carries the filterable value sets for the presentation layer's
// multiselects, plus the supported age bounds.
type Options struct {
	AgeMin        int      `json:"age_min"`
	AgeMax        int      `json:"age_max"`
	FamilyHistory []string `json:"family_history"`
	ActivityLevel []string `json:"activity_level"`
	Occupation    []string `json:"occupation"`
	LifeStage     []string `json:"life_stage"`
}

// New creates the service around an already-enriched table.
func New(table *cohort.Table, report cohort.LoadReport) *DashboardService {
	enc := analysis.NewEncoder(table)
	return &DashboardService{
		table:  table,
		report: report,
		enc:    enc,
		ranker: analysis.NewRanker(enc),
	}
}

// FromSource reads and enriches a dataset source, then builds the service.
func FromSource(ctx context.Context, src ports.DatasetSource) (*DashboardService, error) {
	raw, err := src.Read(ctx)
	if err != nil {
		return nil, err
	}
	table, report, err := cohort.Enrich(raw)
	if err != nil {
		return nil, err
	}
	return New(table, report), nil
}

// Table exposes the immutable enriched table.
func (s *DashboardService) Table() *cohort.Table { return s.table }

// LoadReport returns the parsed/dropped row accounting from enrichment.
func (s *DashboardService) LoadReport() cohort.LoadReport { return s.report }

// Options lists the distinct filterable values observed in the full table.
func (s *DashboardService) Options() Options {
	return Options{
		AgeMin:        18,
		AgeMax:        90,
		FamilyHistory: s.table.DistinctValues(cohort.ColFamilyHistory),
		ActivityLevel: s.table.DistinctValues(cohort.ColActivityLevel),
		Occupation:    s.table.DistinctValues(cohort.ColOccupation),
		LifeStage:     s.table.DistinctValues(cohort.ColLifeStage),
	}
}

// Summary computes the descriptive summary for a filter state.
func (s *DashboardService) Summary(f cohort.FilterSpec) analysis.Summary {
	return analysis.Summarize(f.Apply(s.table), s.table.Baseline)
}

// Breakdowns computes the group-wise views for a filter state.
func (s *DashboardService) Breakdowns(f cohort.FilterSpec) Breakdowns {
	matched := f.Apply(s.table)
	return breakdownsFor(matched)
}

// Correlations computes the ranked correlation pairs for a filter state.
func (s *DashboardService) Correlations(f cohort.FilterSpec) []analysis.Pair {
	return s.ranker.Rank(f.Apply(s.table))
}

// Scatter projects the cohort onto a selected column pair.
func (s *DashboardService) Scatter(f cohort.FilterSpec, xColumn, yColumn string) ([]analysis.ScatterPoint, error) {
	return analysis.ScatterData(f.Apply(s.table), s.enc, xColumn, yColumn)
}

// Cohort returns the filtered records themselves, capped at limit rows
// when limit > 0.
func (s *DashboardService) Cohort(f cohort.FilterSpec, limit int) []cohort.Patient {
	matched := f.Apply(s.table)
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched
}

// Snapshot recomputes everything for one filter state in a single pass
// over one cohort version.
func (s *DashboardService) Snapshot(f cohort.FilterSpec) Snapshot {
	matched := f.Apply(s.table)
	summary := analysis.Summarize(matched, s.table.Baseline)
	return Snapshot{
		ID:           core.NewSnapshotID(),
		Summary:      summary,
		Breakdowns:   breakdownsFor(matched),
		Correlations: s.ranker.Rank(matched),
		Story:        narrative.Story(summary),
	}
}

func breakdownsFor(matched []cohort.Patient) Breakdowns {
	return Breakdowns{
		OccupationRisk: analysis.PrevalenceByGroup(matched, cohort.ColOccupation),
		BPHistory:      analysis.CountValues(matched, cohort.ColBPHistory, 0),
		Medications:    analysis.CountValues(matched, cohort.ColMedication, 10),
	}
}
