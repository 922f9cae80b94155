package render

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/goliatone/go-reportgen/pkg/model"
)

// ExportCSV serializes the visible table (header row from column labels, one
// record per row) for spreadsheet handoff. Cells resolve by column key: name
// and completion map to the row fields, any other key reads the auxiliary
// attrs. Unknown cells stay empty so the grid shape is stable.
func ExportCSV(report model.ReportModel) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := make([]string, 0, len(report.Columns))
	for _, column := range report.Columns {
		header = append(header, column.Label)
	}
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("render: write csv header: %w", err)
	}

	record := make([]string, len(report.Columns))
	for _, row := range report.Rows {
		for i, column := range report.Columns {
			record[i] = cellValue(row, column.Key)
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("render: write csv row %q: %w", row.Name, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("render: flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func cellValue(row model.Row, key string) string {
	switch key {
	case "name":
		return row.Name
	case "completion":
		return row.Completion
	}
	if value, ok := row.Attrs[key]; ok {
		return fmt.Sprint(value)
	}
	return ""
}
