package source

import (
	"errors"
	"fmt"
)

// Kind names a row source.
type Kind string

// Supported kinds.
const (
	KindHTML Kind = "html"
	KindCSV  Kind = "csv"
	KindSQL  Kind = "sql"
)

// ErrUnknownKind is returned by ParseKind for unsupported source names.
var ErrUnknownKind = errors.New("unknown source kind")

// ParseKind validates a source name.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindHTML, KindCSV, KindSQL:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q (want html, csv or sql)", ErrUnknownKind, s)
	}
}

// Table is an ordered snapshot of rows with optional column titles.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.Rows)
}
