package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
)

// ReadRows reads a csv sheet export into raw rows. Rows keep their
// original (possibly ragged) cell count; column interpretation is left to
// the parsers.
func ReadRows(path string) ([]RawRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening source sheet: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading source sheet %s: %w", path, err)
	}
	ret := make([]RawRow, len(records))
	for i, record := range records {
		ret[i] = RawRow(record)
	}
	return ret, nil
}
