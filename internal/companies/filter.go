package companies

import (
	"fmt"
	"strings"

	"github.com/jobdeck/jobdeck/internal/platform/httpx"
)

// Filter holds the optional company search criteria. Nil fields contribute
// no predicate.
type Filter struct {
	NameLike     *string
	MinEmployees *int
	MaxEmployees *int
}

// WhereClause builds the parameterized WHERE fragment for the filter. The
// fragment is empty when no criteria are set. Clause order is fixed (name,
// then the numeric bounds) so placeholder positions are reproducible.
func (f Filter) WhereClause() (string, []any, error) {
	if f.MinEmployees != nil && f.MaxEmployees != nil && *f.MaxEmployees < *f.MinEmployees {
		return "", nil, httpx.BadRequest("Max employees must be greater than or equal to min")
	}

	var conditions []string
	var values []any

	if f.NameLike != nil {
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", len(values)+1))
		values = append(values, "%"+*f.NameLike+"%")
	}
	if f.MinEmployees != nil {
		conditions = append(conditions, fmt.Sprintf("num_employees >= $%d", len(values)+1))
		values = append(values, *f.MinEmployees)
	}
	if f.MaxEmployees != nil {
		conditions = append(conditions, fmt.Sprintf("num_employees <= $%d", len(values)+1))
		values = append(values, *f.MaxEmployees)
	}

	if len(conditions) == 0 {
		return "", nil, nil
	}
	return "WHERE " + strings.Join(conditions, " AND "), values, nil
}
