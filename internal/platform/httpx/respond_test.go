package httpx

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRespondErrorSingleMessage(t *testing.T) {
	rr := httptest.NewRecorder()
	RespondError(rr, NotFoundf("No company: %s", "c1"))

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.JSONEq(t, `{"error": {"message": "No company: c1", "status": 404}}`, rr.Body.String())
}

func TestRespondErrorMessageList(t *testing.T) {
	rr := httptest.NewRecorder()
	RespondError(rr, BadRequest("first problem", "second problem"))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.JSONEq(t, `{"error": {"message": ["first problem", "second problem"], "status": 400}}`, rr.Body.String())
}

func TestRespondErrorOpaqueForUnknownKinds(t *testing.T) {
	rr := httptest.NewRecorder()
	RespondError(rr, errors.New("connection refused"))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.NotContains(t, rr.Body.String(), "connection refused")
}

func TestDecodeStrictRejectsUnknownFields(t *testing.T) {
	var target struct {
		Name string `json:"name"`
	}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x","bogus":1}`))

	err := DecodeStrict(req, &target)
	require.Error(t, err)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusBadRequest, apiErr.Status)
	require.Contains(t, apiErr.Error(), "bogus")
}

func TestDecodeStrictEmptyBody(t *testing.T) {
	var target struct{}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))

	err := DecodeStrict(req, &target)
	require.Error(t, err)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusBadRequest, apiErr.Status)
	require.Contains(t, apiErr.Error(), "no data supplied")
}
