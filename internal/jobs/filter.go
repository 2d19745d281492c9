package jobs

import (
	"fmt"
	"strings"
)

// Filter holds the optional job search criteria. HasEquity is asymmetric:
// true restricts to jobs with equity above zero, false and absent are
// equivalent and add no restriction.
type Filter struct {
	Title     *string
	MinSalary *int
	HasEquity *bool
}

// WhereClause builds the parameterized WHERE fragment for the filter. The
// fragment is empty when no criteria are set. Clause order is fixed (title,
// salary bound, equity flag) so placeholder positions are reproducible. The
// equity clause binds no placeholder.
func (f Filter) WhereClause() (string, []any) {
	var conditions []string
	var values []any

	if f.Title != nil {
		conditions = append(conditions, fmt.Sprintf("title ILIKE $%d", len(values)+1))
		values = append(values, "%"+*f.Title+"%")
	}
	if f.MinSalary != nil {
		conditions = append(conditions, fmt.Sprintf("salary >= $%d", len(values)+1))
		values = append(values, *f.MinSalary)
	}
	if f.HasEquity != nil && *f.HasEquity {
		conditions = append(conditions, "equity > 0")
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conditions, " AND "), values
}
