package cohort

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"htnscope/domain/core"
)

func validRawRow() RawRow {
	return RawRow{
		SrcHasHypertension: "Yes",
		SrcSmokingStatus:   "Smoker",
		SrcSaltIntake:      "9.5",
		SrcStressScore:     "8",
		SrcBPHistory:       "Prehypertension",
		SrcSleepDuration:   "6.5",
		SrcExerciseLevel:   "Low",
		SrcFamilyHistory:   "Yes",
		SrcAge:             "45",
		SrcBMI:             "31.2",
		SrcMedication:      "Beta Blocker",
	}
}

func rawTableWith(rows ...RawRow) *RawTable {
	return &RawTable{Headers: RequiredColumns, Rows: rows}
}

func TestEnrichBasicRow(t *testing.T) {
	table, report, err := Enrich(rawTableWith(validRawRow()))
	require.NoError(t, err)
	assert.Equal(t, LoadReport{Parsed: 1}, report)

	require.Len(t, table.Patients, 1)
	p := table.Patients[0]
	assert.Equal(t, 45, p.Age)
	assert.Equal(t, "Yes", p.Hypertension)
	assert.InDelta(t, 31.2, p.BMI, 1e-9)
	assert.Equal(t, "Low", p.ActivityLevel, "Exercise_Level renames to Activity Level")
	assert.Equal(t, OccupationExecutive, p.Occupation, "stress 8 at age 45")
	assert.Equal(t, LifeStageMiddleAged, p.LifeStage)
}

func TestEnrichMissingColumnIsSchemaError(t *testing.T) {
	raw := rawTableWith(validRawRow())
	var headers []string
	for _, h := range raw.Headers {
		if h != SrcBPHistory {
			headers = append(headers, h)
		}
	}
	raw.Headers = headers

	_, _, err := Enrich(raw)
	require.Error(t, err)
	assert.True(t, core.IsSchemaError(err))
	assert.Contains(t, err.Error(), SrcBPHistory)
}

func TestEnrichFillsMissingMedication(t *testing.T) {
	row := validRawRow()
	row[SrcMedication] = ""
	blank := validRawRow()
	blank[SrcMedication] = "  "

	table, _, err := Enrich(rawTableWith(row, blank))
	require.NoError(t, err)
	assert.Equal(t, "None", table.Patients[0].Medication)
	assert.Equal(t, "None", table.Patients[1].Medication)
}

func TestEnrichDropsUnparseableRowsWithCount(t *testing.T) {
	bad := validRawRow()
	bad[SrcAge] = "forty-five"
	worse := validRawRow()
	worse[SrcBMI] = ""

	table, report, err := Enrich(rawTableWith(validRawRow(), bad, worse))
	require.NoError(t, err)
	assert.Equal(t, 1, report.Parsed)
	assert.Equal(t, 2, report.Dropped)
	assert.Equal(t, 1, table.Len())
}

func TestEnrichAcceptsSpreadsheetIntegers(t *testing.T) {
	row := validRawRow()
	row[SrcAge] = "45.0"

	table, report, err := Enrich(rawTableWith(row))
	require.NoError(t, err)
	assert.Zero(t, report.Dropped)
	assert.Equal(t, 45, table.Patients[0].Age)
}

func TestEnrichBaselineMatchesFullTable(t *testing.T) {
	yes := validRawRow()
	no := validRawRow()
	no[SrcHasHypertension] = "No"

	table, _, err := Enrich(rawTableWith(yes, no, no, no))
	require.NoError(t, err)
	assert.InDelta(t, 25.0, table.Baseline.Prevalence, 1e-9)
	assert.InDelta(t, 31.2, table.Baseline.MeanBMI, 1e-9)
}

func TestEnrichEveryFieldPopulated(t *testing.T) {
	table, _, err := Enrich(rawTableWith(validRawRow()))
	require.NoError(t, err)

	p := table.Patients[0]
	for _, col := range Columns() {
		if col.Kind == KindCategorical {
			assert.NotEmpty(t, col.Cat(p), "column %s", col.Name)
		}
	}
}
