package db

import (
	"fmt"
	"strings"

	"github.com/jobdeck/jobdeck/internal/platform/httpx"
)

// Field pairs a logical field name with the value it should be set to.
// Callers build the slice in a fixed order so placeholder positions are
// deterministic.
type Field struct {
	Name  string
	Value any
}

// PartialUpdate builds a parameterized SET-clause fragment from the sparse
// field list. Column names default to the logical name; colOverrides remaps
// fields whose storage column differs (e.g. numEmployees -> num_employees).
// Placeholders are numbered from $1 and the returned values align with them
// positionally.
func PartialUpdate(fields []Field, colOverrides map[string]string) (string, []any, error) {
	if len(fields) == 0 {
		return "", nil, httpx.BadRequest("no data supplied")
	}

	cols := make([]string, len(fields))
	values := make([]any, len(fields))
	for i, f := range fields {
		col := f.Name
		if mapped, ok := colOverrides[f.Name]; ok {
			col = mapped
		}
		cols[i] = fmt.Sprintf("%q=$%d", col, i+1)
		values[i] = f.Value
	}
	return strings.Join(cols, ", "), values, nil
}
