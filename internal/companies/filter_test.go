package companies

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jobdeck/jobdeck/internal/platform/httpx"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestCompanyWhereClauseEmpty(t *testing.T) {
	where, values, err := Filter{}.WhereClause()
	require.NoError(t, err)
	require.Empty(t, where)
	require.Empty(t, values)
}

func TestCompanyWhereClauseNameLike(t *testing.T) {
	where, values, err := Filter{NameLike: strPtr("net")}.WhereClause()
	require.NoError(t, err)
	require.Equal(t, "WHERE name ILIKE $1", where)
	require.Equal(t, []any{"%net%"}, values)
}

func TestCompanyWhereClauseAllKeys(t *testing.T) {
	where, values, err := Filter{
		NameLike:     strPtr("net"),
		MinEmployees: intPtr(2),
		MaxEmployees: intPtr(10),
	}.WhereClause()
	require.NoError(t, err)
	require.Equal(t, "WHERE name ILIKE $1 AND num_employees >= $2 AND num_employees <= $3", where)
	require.Equal(t, []any{"%net%", 2, 10}, values)
}

func TestCompanyWhereClauseBoundsOnly(t *testing.T) {
	where, values, err := Filter{MinEmployees: intPtr(1), MaxEmployees: intPtr(1)}.WhereClause()
	require.NoError(t, err)
	require.Equal(t, "WHERE num_employees >= $1 AND num_employees <= $2", where)
	require.Equal(t, []any{1, 1}, values)
}

func TestCompanyWhereClauseInvertedBoundsFail(t *testing.T) {
	_, _, err := Filter{
		NameLike:     strPtr("net"),
		MinEmployees: intPtr(10),
		MaxEmployees: intPtr(2),
	}.WhereClause()
	require.Error(t, err)

	apiErr, ok := httpx.AsAPIError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusBadRequest, apiErr.Status)
}
