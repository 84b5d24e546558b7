package ingest

import (
	"encoding/csv"
	"errors"
	"log"
	"strconv"
	"strings"
)

// ErrNoData signals that the input held no parseable rows at all. Callers
// treat it as "source unavailable" and fall back, never as a crash.
var ErrNoData = errors.New("ingest: no data")

// Row is one raw CSV record keyed by header name. Cell values are typed by
// inference: integer cells become int, decimal cells float64, everything
// else stays a string. Field-level validation belongs to the normalizer.
type Row map[string]interface{}

// ParseCSV reads delimited text with a header row into raw rows. Blank
// lines are skipped and malformed rows dropped; only fully unreadable or
// empty input yields ErrNoData.
func ParseCSV(text string) ([]Row, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	var header []string
	var rows []Row
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields, err := splitLine(line)
		if err != nil {
			log.Printf("[Ingest] Dropping malformed line: %v", err)
			continue
		}
		if header == nil {
			header = fields
			continue
		}
		if len(fields) != len(header) {
			log.Printf("[Ingest] Dropping row with %d fields, expected %d", len(fields), len(header))
			continue
		}
		row := make(Row, len(header))
		for i, name := range header {
			row[name] = inferType(fields[i])
		}
		rows = append(rows, row)
	}

	if header == nil || len(rows) == 0 {
		return nil, ErrNoData
	}
	return rows, nil
}

func splitLine(line string) ([]string, error) {
	reader := csv.NewReader(strings.NewReader(line))
	reader.TrimLeadingSpace = true
	return reader.Read()
}

func inferType(cell string) interface{} {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return ""
	}
	if n, err := strconv.Atoi(trimmed); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return f
	}
	return cell
}
