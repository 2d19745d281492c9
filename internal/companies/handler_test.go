package companies

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/jobdeck/jobdeck/internal/auth"
)

type companyTestEnv struct {
	router     http.Handler
	repo       *memoryCompanyRepo
	adminToken string
	userToken  string
}

func newCompanyTestEnv(t *testing.T) *companyTestEnv {
	t.Helper()

	tokens := auth.NewTokenService("test-secret", time.Hour)
	authmw := auth.NewMiddleware(tokens)
	repo := newMemoryCompanyRepo()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := NewHandler(logger, NewService(repo), authmw)
	r := chi.NewRouter()
	r.Use(authmw.Authenticate)
	r.Route("/companies", handler.MountRoutes)

	adminToken, err := tokens.Issue(auth.Principal{Username: "admin", IsAdmin: true})
	require.NoError(t, err)
	userToken, err := tokens.Issue(auth.Principal{Username: "u1"})
	require.NoError(t, err)

	return &companyTestEnv{router: r, repo: repo, adminToken: adminToken, userToken: userToken}
}

func (e *companyTestEnv) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func TestCompanyCreateAsAdmin(t *testing.T) {
	env := newCompanyTestEnv(t)

	rr := env.do(t, http.MethodPost, "/companies", env.adminToken,
		`{"handle":"c1","name":"C1","description":"d","numEmployees":5}`)

	require.Equal(t, http.StatusCreated, rr.Code)
	var body struct {
		Company Company `json:"company"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, "c1", body.Company.Handle)
	require.Equal(t, 5, *body.Company.NumEmployees)
}

func TestCompanyCreateRequiresAdmin(t *testing.T) {
	env := newCompanyTestEnv(t)

	for _, token := range []string{"", env.userToken} {
		rr := env.do(t, http.MethodPost, "/companies", token, `{"handle":"c1","name":"C1"}`)
		require.Equal(t, http.StatusUnauthorized, rr.Code)
	}
	require.Empty(t, env.repo.companies)
}

func TestCompanyCreateValidation(t *testing.T) {
	env := newCompanyTestEnv(t)

	// missing name
	rr := env.do(t, http.MethodPost, "/companies", env.adminToken, `{"handle":"c1"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	// unrecognized field
	rr = env.do(t, http.MethodPost, "/companies", env.adminToken, `{"handle":"c1","name":"C1","bogus":true}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Contains(t, rr.Body.String(), "bogus")
}

func TestCompanyListIsPublic(t *testing.T) {
	env := newCompanyTestEnv(t)
	env.seed(t, "c1", "Alpha", 5)
	env.seed(t, "c2", "Beta", 50)

	rr := env.do(t, http.MethodGet, "/companies", "", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Companies []Company `json:"companies"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body.Companies, 2)
}

func TestCompanyListFilters(t *testing.T) {
	env := newCompanyTestEnv(t)
	env.seed(t, "c1", "Alpha", 5)
	env.seed(t, "c2", "Beta", 50)

	rr := env.do(t, http.MethodGet, "/companies?minEmployees=10", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		Companies []Company `json:"companies"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body.Companies, 1)
	require.Equal(t, "c2", body.Companies[0].Handle)
}

func TestCompanyListRejectsBadQueries(t *testing.T) {
	env := newCompanyTestEnv(t)

	rr := env.do(t, http.MethodGet, "/companies?minEmployees=10&maxEmployees=1", "", "")
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = env.do(t, http.MethodGet, "/companies?favoriteColor=blue", "", "")
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = env.do(t, http.MethodGet, "/companies?minEmployees=lots", "", "")
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCompanyGetIncludesJobs(t *testing.T) {
	env := newCompanyTestEnv(t)
	env.seed(t, "c1", "Alpha", 5)
	equity := "0.1"
	env.repo.jobs["c1"] = []JobSummary{{ID: 1, Title: "j1", Salary: intPtr(100), Equity: &equity}}

	rr := env.do(t, http.MethodGet, "/companies/c1", "", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Company Company `json:"company"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body.Company.Jobs, 1)
	require.Equal(t, "j1", body.Company.Jobs[0].Title)
}

func TestCompanyGetNotFound(t *testing.T) {
	env := newCompanyTestEnv(t)

	rr := env.do(t, http.MethodGet, "/companies/nope", "", "")
	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Contains(t, rr.Body.String(), "No company: nope")
}

func TestCompanyUpdateRejectsUnknownField(t *testing.T) {
	env := newCompanyTestEnv(t)
	env.seed(t, "c1", "Alpha", 5)

	rr := env.do(t, http.MethodPatch, "/companies/c1", env.adminToken, `{"handle":"c2"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "Alpha", env.repo.companies["c1"].Name)
}

func TestCompanyDelete(t *testing.T) {
	env := newCompanyTestEnv(t)
	env.seed(t, "c1", "Alpha", 5)

	rr := env.do(t, http.MethodDelete, "/companies/c1", env.userToken, "")
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.Contains(t, env.repo.companies, "c1")

	rr = env.do(t, http.MethodDelete, "/companies/c1", env.adminToken, "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"deleted":"c1"}`, rr.Body.String())

	rr = env.do(t, http.MethodDelete, "/companies/c1", env.adminToken, "")
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func (e *companyTestEnv) seed(t *testing.T, handle, name string, numEmployees int) {
	t.Helper()
	_, err := e.repo.Create(context.Background(), CreateCompanyRequest{
		Handle:       handle,
		Name:         name,
		NumEmployees: &numEmployees,
	})
	require.NoError(t, err)
}
