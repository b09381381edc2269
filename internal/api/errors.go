package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/news-api/internal/api/shared"
	"github.com/phrazzld/news-api/internal/domain"
	"github.com/phrazzld/news-api/internal/store"
)

// User-facing error messages. Clients only ever see one of these.
const (
	MsgBadRequest       = "Bad Request"
	MsgNotFound         = "Not Found"
	MsgNothingDeleted   = "Not found"
	MsgMethodNotAllowed = "Method Not Allowed"
	MsgInternalError    = "Internal Server Error"
)

// errorTranslator turns an error into a response when it recognises it.
type errorTranslator func(err error) (status int, msg string, ok bool)

// translators are tried in order; the first match wins.
var translators = []errorTranslator{
	translateExplicit,
	translateReferenceMissing,
	translateInvalidInput,
}

// translateExplicit handles outcomes the handlers and stores report by name.
func translateExplicit(err error) (int, string, bool) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, MsgBadRequest, true
	case errors.Is(err, store.ErrNothingDeleted):
		return http.StatusNotFound, MsgNothingDeleted, true
	case store.IsNotFoundError(err):
		return http.StatusNotFound, MsgNotFound, true
	}
	return 0, "", false
}

// translateReferenceMissing reports writes pointing at absent rows as not found.
func translateReferenceMissing(err error) (int, string, bool) {
	if errors.Is(err, store.ErrReferenceMissing) {
		return http.StatusNotFound, MsgNotFound, true
	}
	return 0, "", false
}

// translateInvalidInput reports values the database could not accept.
func translateInvalidInput(err error) (int, string, bool) {
	if errors.Is(err, store.ErrInvalidInput) || errors.Is(err, store.ErrDuplicate) {
		return http.StatusBadRequest, MsgBadRequest, true
	}
	return 0, "", false
}

// TranslateError maps an error onto an HTTP status and safe message. Anything
// no translator recognises is an internal error.
func TranslateError(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, MsgInternalError
	}
	for _, translate := range translators {
		if status, msg, ok := translate(err); ok {
			return status, msg
		}
	}
	return http.StatusInternalServerError, MsgInternalError
}

// HandleAPIError writes the translated error response and logs the underlying error.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := TranslateError(err)
	shared.RespondWithErrorAndLog(w, r, status, msg, err)
}

// NotFoundHandler answers requests for unknown routes.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, MsgNotFound)
}

// MethodNotAllowedHandler answers requests using an unsupported method.
func MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
}
