package pagination

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// RowSorter orders table rows by a named column.
type RowSorter struct {
	columns map[string]int
}

// NewRowSorter creates a sorter for the given column titles. Column names
// match case-insensitively.
func NewRowSorter(columns []string) *RowSorter {
	s := &RowSorter{columns: make(map[string]int, len(columns))}
	for i, c := range columns {
		key := strings.ToLower(c)
		if _, dup := s.columns[key]; !dup {
			s.columns[key] = i
		}
	}
	return s
}

// IsValidField checks if the field names a column.
func (s *RowSorter) IsValidField(field string) bool {
	_, ok := s.columns[strings.ToLower(field)]
	return ok
}

// GetValidFields returns the sortable column names.
func (s *RowSorter) GetValidFields() []string {
	fields := lo.Keys(s.columns)
	slices.Sort(fields)
	return fields
}

// Sort returns a sorted copy of rows. Cells that both parse as numbers are
// compared numerically; the sort is stable and rows missing the column sort
// first.
func (s *RowSorter) Sort(rows [][]string, field, order string) ([][]string, error) {
	idx, ok := s.columns[strings.ToLower(field)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (valid: %s)", ErrInvalidSortField, field,
			strings.Join(s.GetValidFields(), ", "))
	}

	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b []string) int {
		c := compareCells(cell(a, idx), cell(b, idx))
		if order == SortOrderDesc {
			return -c
		}
		return c
	})
	return sorted, nil
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func compareCells(a, b string) int {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a, b)
}
