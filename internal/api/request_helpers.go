package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/news-api/internal/api/shared"
	"github.com/phrazzld/news-api/internal/domain"
)

// getPathID extracts an integer identifier from the URL path parameters.
// Identifiers must fit the database's 32-bit integer column.
func getPathID(r *http.Request, paramName string) (int, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrMissingField)
	}

	id, err := strconv.ParseInt(pathParam, 10, 32)
	if err != nil {
		return 0, domain.NewValidationError(paramName, "must be an integer", domain.ErrInvalidID)
	}

	return int(id), nil
}

// decodeBody decodes the JSON request body, reporting malformed input as a
// validation error.
func decodeBody(r *http.Request, v interface{}) error {
	if err := shared.DecodeJSON(r, v); err != nil {
		return domain.NewValidationError("body", "is not valid JSON", domain.ErrInvalidFormat)
	}
	return nil
}

// parseVoteDelta reads inc_votes from the request body. present is false when
// the key is absent. The delta may be a JSON integer or a string holding one.
func parseVoteDelta(r *http.Request) (delta int, present bool, err error) {
	var fields map[string]json.RawMessage
	if err := decodeBody(r, &fields); err != nil {
		return 0, false, err
	}

	raw, ok := fields["inc_votes"]
	if !ok {
		return 0, false, nil
	}

	invalid := domain.NewValidationError("inc_votes", "must be an integer", domain.ErrInvalidVoteDelta)

	// null unmarshals into an int without error
	if strings.TrimSpace(string(raw)) == "null" {
		return 0, true, invalid
	}

	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, true, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return n, true, nil
		}
	}

	return 0, true, invalid
}
