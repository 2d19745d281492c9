package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
)

type errorBody struct {
	// Message is a single string for one message, an array otherwise.
	Message any `json:"message"`
	Status  int `json:"status"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

// JSON sends a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// RespondError translates an error into the structured error payload.
// Unknown error kinds become an opaque 500.
func RespondError(w http.ResponseWriter, err error) {
	apiErr, ok := AsAPIError(err)
	if !ok {
		apiErr = &APIError{Status: http.StatusInternalServerError, Messages: []string{"Internal Server Error"}}
	}

	var message any
	if len(apiErr.Messages) == 1 {
		message = apiErr.Messages[0]
	} else {
		message = apiErr.Messages
	}
	JSON(w, apiErr.Status, errorEnvelope{Error: errorBody{Message: message, Status: apiErr.Status}})
}

// DecodeStrict decodes a JSON request body into target, rejecting unknown
// fields so unrecognized payload keys surface as a 400 instead of being
// silently dropped.
func DecodeStrict(r *http.Request, target any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return BadRequest("no data supplied")
		}
		if strings.HasPrefix(err.Error(), "json: unknown field ") {
			field := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return BadRequestf("unexpected field %s is not allowed", strings.Trim(field, `"`))
		}
		return BadRequest("invalid JSON payload")
	}
	return nil
}
