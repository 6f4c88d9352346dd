package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/aussiebroadwan/clinic/pkg/errx"
	"github.com/aussiebroadwan/clinic/pkg/slogx"
)

// MaxBodyBytes caps JSON request bodies.
const MaxBodyBytes = 1 << 20

// Envelope is the uniform success body.
type Envelope struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       any    `json:"data"`
}

// ErrorBody is the uniform failure body.
type ErrorBody struct {
	Error string    `json:"error"`
	Code  errx.Kind `json:"code"`
}

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type header and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// This is commonly required for sensitive responses like tokens.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

// WriteSuccess wraps data in the success envelope.
func WriteSuccess(w http.ResponseWriter, code int, data any) {
	WriteJSON(w, code, Envelope{
		StatusCode: code,
		Message:    "success",
		Data:       data,
	})
}

// WriteError maps err onto its status and writes the error body. Unexpected
// errors are logged and reported as a generic 500.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	kind := errx.KindOf(err)
	if kind == errx.KindInternal {
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
	}

	WriteJSON(w, kind.Status(), ErrorBody{
		Error: errx.Message(err),
		Code:  kind,
	})
}

// DecodeJSON reads a single JSON object from the body into dst. Unknown fields
// and trailing data are rejected.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return errx.Validation("Request body must not be empty")
		case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
			return errx.Validation("Request body must be valid JSON")
		case errors.As(err, &typeErr):
			return errx.Validation(`"` + typeErr.Field + `" has the wrong type`)
		case errors.As(err, &maxErr):
			return errx.Validation("Request body too large")
		default:
			// json reports unknown fields as plain errors: `json: unknown field "x"`
			return errx.Validation(err.Error())
		}
	}

	if dec.More() {
		return errx.Validation("Request body must contain a single JSON object")
	}
	return nil
}
