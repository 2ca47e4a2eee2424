package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// FromCSV snapshots a CSV stream. When header is true the first record
// becomes the column titles. Records may have differing field counts.
func FromCSV(r io.Reader, name string, header bool) (Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	t := Table{Name: name}
	for line := 1; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("reading csv %s: %w", name, err)
		}

		if header && line == 1 {
			t.Columns = record
			continue
		}
		t.Rows = append(t.Rows, record)
	}

	return t, nil
}
