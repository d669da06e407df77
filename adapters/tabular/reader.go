package tabular

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"htnscope/domain/cohort"
	"htnscope/domain/core"
)

// DataReader reads a delimited dataset file (CSV or XLSX) into a raw table.
// It implements ports.DatasetSource.
type DataReader struct {
	filePath string
	fileType string // "csv" or "xlsx"
}

// NewDataReader creates a reader for the given path, selecting the format
// by extension. Anything that is not .xlsx is treated as CSV.
func NewDataReader(filePath string) *DataReader {
	fileType := "csv"
	if strings.ToLower(filepath.Ext(filePath)) == ".xlsx" {
		fileType = "xlsx"
	}
	return &DataReader{filePath: filePath, fileType: fileType}
}

// Read parses the file into a raw table. Fails with a data-load error if
// the file is missing or malformed.
func (r *DataReader) Read(ctx context.Context) (*cohort.RawTable, error) {
	if _, err := os.Stat(r.filePath); err != nil {
		return nil, core.NewDataLoadError(r.filePath, err)
	}

	var (
		rows [][]string
		err  error
	)
	start := time.Now()
	switch r.fileType {
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		rows, err = r.readCSVRows()
	}
	if err != nil {
		return nil, core.NewDataLoadError(r.filePath, err)
	}
	log.Printf("[DataReader] %s read in %.2fms (%d rows)", r.fileType, float64(time.Since(start).Nanoseconds())/1e6, len(rows))

	if len(rows) < 2 {
		return nil, core.NewDataLoadError(r.filePath, fmt.Errorf("need a header row and at least one data row"))
	}
	return rawTableFromRows(rows), nil
}

func (r *DataReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Ragged rows are dropped later with a count; don't fail the whole file.
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

func (r *DataReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.GetRows(f.GetSheetName(0))
}

// rawTableFromRows converts header+data string rows into a raw table.
// Rows shorter than the header are padded with empty cells (nullable
// Medication arrives this way from spreadsheet exports); longer rows
// are truncated.
func rawTableFromRows(rows [][]string) *cohort.RawTable {
	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	raw := &cohort.RawTable{Headers: headers}
	for _, row := range rows[1:] {
		rr := make(cohort.RawRow, len(headers))
		for i, h := range headers {
			if i < len(row) {
				rr[h] = row[i]
			} else {
				rr[h] = ""
			}
		}
		raw.Rows = append(raw.Rows, rr)
	}
	return raw
}
