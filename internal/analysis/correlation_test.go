package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"htnscope/domain/cohort"
)

func corrTable() *cohort.Table {
	// Age and BMI co-vary imperfectly; most other fields are constant and
	// therefore drop out of the matrix as NaN pairs.
	rows := []cohort.Patient{
		patient(20, "No", 25, 5, 7, "Low"),
		patient(30, "No", 30, 5, 7, "Low"),
		patient(40, "No", 28, 5, 7, "Low"),
		patient(50, "No", 35, 5, 7, "Low"),
	}
	return cohort.NewTable(rows)
}

func TestEncoderCodesAreSortedAndStable(t *testing.T) {
	rows := []cohort.Patient{
		patient(40, "No", 25, 5, 7, "Low"),
		patient(45, "Yes", 25, 5, 7, "High"),
		patient(50, "No", 25, 5, 7, "Moderate"),
	}
	enc := NewEncoder(cohort.NewTable(rows))

	// Sorted distinct values: High=0, Low=1, Moderate=2.
	assert.Equal(t, 0.0, enc.Code(cohort.ColActivityLevel, "High"))
	assert.Equal(t, 1.0, enc.Code(cohort.ColActivityLevel, "Low"))
	assert.Equal(t, 2.0, enc.Code(cohort.ColActivityLevel, "Moderate"))
	assert.Equal(t, -1.0, enc.Code(cohort.ColActivityLevel, "Extreme"), "unseen value codes to -1")
}

func TestEncoderFixedAcrossCohorts(t *testing.T) {
	rows := []cohort.Patient{
		patient(40, "No", 25, 5, 7, "Low"),
		patient(45, "Yes", 25, 5, 7, "High"),
		patient(50, "No", 25, 5, 7, "Moderate"),
	}
	enc := NewEncoder(cohort.NewTable(rows))

	// A cohort that lost the "High" category still codes Moderate as 2:
	// codes come from the full table, not the cohort.
	assert.Equal(t, 2.0, enc.Code(cohort.ColActivityLevel, "Moderate"))
}

func TestRankFindsBandedPair(t *testing.T) {
	table := corrTable()
	ranker := NewRanker(NewEncoder(table))

	pairs := ranker.Rank(table.Patients)
	require.NotEmpty(t, pairs)

	var ageBMI *Pair
	for i := range pairs {
		if pairs[i].ColumnA == cohort.ColAge && pairs[i].ColumnB == cohort.ColBMI {
			ageBMI = &pairs[i]
		}
	}
	require.NotNil(t, ageBMI, "Age/BMI should correlate inside the band")
	assert.InDelta(t, 0.860, ageBMI.Coefficient, 0.005)
}

func TestRankCoefficientsInsideBand(t *testing.T) {
	table := corrTable()
	pairs := NewRanker(NewEncoder(table)).Rank(table.Patients)

	for _, p := range pairs {
		abs := math.Abs(p.Coefficient)
		assert.Greater(t, abs, 0.1, "pair %s/%s", p.ColumnA, p.ColumnB)
		assert.Less(t, abs, 1.0, "self-correlation and perfect pairs are excluded")
	}
}

func TestRankExcludesPerfectCorrelation(t *testing.T) {
	// BMI is an exact linear function of Age: r == 1.0, outside the band.
	rows := []cohort.Patient{
		patient(40, "No", 20, 5, 7, "Low"),
		patient(42, "No", 21, 5, 7, "Low"),
		patient(44, "No", 22, 5, 7, "Low"),
	}
	table := cohort.NewTable(rows)
	pairs := NewRanker(NewEncoder(table)).Rank(table.Patients)

	for _, p := range pairs {
		assert.False(t, p.ColumnA == cohort.ColAge && p.ColumnB == cohort.ColBMI,
			"perfectly correlated pair must not be reported")
	}
}

func TestRankDeduplicatesSymmetricPairs(t *testing.T) {
	table := corrTable()
	pairs := NewRanker(NewEncoder(table)).Rank(table.Patients)

	seen := make(map[[2]string]bool)
	for _, p := range pairs {
		assert.Less(t, p.ColumnA, p.ColumnB, "pairs are canonically ordered")
		key := [2]string{p.ColumnA, p.ColumnB}
		assert.False(t, seen[key], "pair %v reported twice", key)
		seen[key] = true
	}
}

func TestRankSortedByMagnitudeDescending(t *testing.T) {
	table := corrTable()
	pairs := NewRanker(NewEncoder(table)).Rank(table.Patients)

	for i := 1; i < len(pairs); i++ {
		assert.GreaterOrEqual(t,
			math.Abs(pairs[i-1].Coefficient), math.Abs(pairs[i].Coefficient))
	}
}

func TestRankTinyCohorts(t *testing.T) {
	table := corrTable()
	ranker := NewRanker(NewEncoder(table))

	assert.Nil(t, ranker.Rank(nil))
	assert.Nil(t, ranker.Rank(table.Patients[:1]))
}

func TestScatterData(t *testing.T) {
	table := corrTable()
	enc := NewEncoder(table)

	points, err := ScatterData(table.Patients, enc, cohort.ColBMI, cohort.ColSaltIntake)
	require.NoError(t, err)
	require.Len(t, points, 4)
	assert.Equal(t, 25.0, points[0].X)
	assert.Equal(t, 8.0, points[0].Y)
	assert.Equal(t, "No", points[0].Label)
}

func TestScatterDataEncodesCategoricals(t *testing.T) {
	table := corrTable()
	enc := NewEncoder(table)

	points, err := ScatterData(table.Patients, enc, cohort.ColActivityLevel, cohort.ColAge)
	require.NoError(t, err)
	assert.Equal(t, enc.Code(cohort.ColActivityLevel, "Low"), points[0].X)
}

func TestScatterDataUnknownColumn(t *testing.T) {
	table := corrTable()
	_, err := ScatterData(table.Patients, NewEncoder(table), "Blood Type", cohort.ColAge)
	assert.Error(t, err)
}
