package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/jmoiron/sqlx"

	"htnscope/domain/cohort"
	"htnscope/domain/core"
	"htnscope/ports"
)

// patientSource reads survey rows out of a Postgres table. It is strictly
// read-only: rows are converted to the same raw shape the file reader
// produces and flow through the identical enrichment path.
type patientSource struct {
	db    *sqlx.DB
	table string
}

// NewPatientSource creates a dataset source backed by a Postgres table
// carrying the raw survey columns.
func NewPatientSource(db *sqlx.DB, table string) ports.DatasetSource {
	return &patientSource{db: db, table: table}
}

// patientRow mirrors the raw survey columns. Medication is nullable.
type patientRow struct {
	HasHypertension string         `db:"has_hypertension"`
	SmokingStatus   string         `db:"smoking_status"`
	SaltIntake      float64        `db:"salt_intake"`
	StressScore     float64        `db:"stress_score"`
	BPHistory       string         `db:"bp_history"`
	SleepDuration   float64        `db:"sleep_duration"`
	ExerciseLevel   string         `db:"exercise_level"`
	FamilyHistory   string         `db:"family_history"`
	Age             int            `db:"age"`
	BMI             float64        `db:"bmi"`
	Medication      sql.NullString `db:"medication"`
}

// Read selects every row from the backing table.
func (s *patientSource) Read(ctx context.Context) (*cohort.RawTable, error) {
	query := fmt.Sprintf(`SELECT
		has_hypertension, smoking_status, salt_intake, stress_score, bp_history,
		sleep_duration, exercise_level, family_history, age, bmi, medication
	FROM %s`, s.table)

	var rows []patientRow
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, core.NewDataLoadError("postgres:"+s.table, err)
	}

	raw := &cohort.RawTable{Headers: cohort.RequiredColumns}
	for _, row := range rows {
		raw.Rows = append(raw.Rows, cohort.RawRow{
			cohort.SrcHasHypertension: row.HasHypertension,
			cohort.SrcSmokingStatus:   row.SmokingStatus,
			cohort.SrcSaltIntake:      strconv.FormatFloat(row.SaltIntake, 'f', -1, 64),
			cohort.SrcStressScore:     strconv.FormatFloat(row.StressScore, 'f', -1, 64),
			cohort.SrcBPHistory:       row.BPHistory,
			cohort.SrcSleepDuration:   strconv.FormatFloat(row.SleepDuration, 'f', -1, 64),
			cohort.SrcExerciseLevel:   row.ExerciseLevel,
			cohort.SrcFamilyHistory:   row.FamilyHistory,
			cohort.SrcAge:             strconv.Itoa(row.Age),
			cohort.SrcBMI:             strconv.FormatFloat(row.BMI, 'f', -1, 64),
			cohort.SrcMedication:      row.Medication.String,
		})
	}
	return raw, nil
}
