package mvc

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var ErrInvalidStatusCode = errors.New("invalid status code")

// ActionResult writes an HTTP response.
type ActionResult interface {
	WriteResponse(w http.ResponseWriter) error
}

// Of is the result type of an action that returns either a T or an
// ActionResult. It carries no methods; the type argument records the
// payload for static checks.
type Of[T any] interface{}

// OKResult writes 200 with an optional JSON body.
//
//apiconv:status 200
type OKResult struct {
	Value any
}

func (r OKResult) WriteResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusOK, r.Value)
}

// CreatedResult writes 201 with a Location header when set.
//
//apiconv:status 201
type CreatedResult struct {
	Location string
	Value    any
}

func (r CreatedResult) WriteResponse(w http.ResponseWriter) error {
	if r.Location != "" {
		w.Header().Set("Location", r.Location)
	}

	return writeJSON(w, http.StatusCreated, r.Value)
}

//apiconv:status 202
type AcceptedResult struct {
	Value any
}

func (r AcceptedResult) WriteResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusAccepted, r.Value)
}

//apiconv:status 204
type NoContentResult struct{}

func (NoContentResult) WriteResponse(w http.ResponseWriter) error {
	w.WriteHeader(http.StatusNoContent)
	return nil
}

//apiconv:status 400
type BadRequestResult struct {
	Value any
}

func (r BadRequestResult) WriteResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusBadRequest, r.Value)
}

//apiconv:status 401
type UnauthorizedResult struct{}

func (UnauthorizedResult) WriteResponse(w http.ResponseWriter) error {
	w.WriteHeader(http.StatusUnauthorized)
	return nil
}

//apiconv:status 403
type ForbiddenResult struct{}

func (ForbiddenResult) WriteResponse(w http.ResponseWriter) error {
	w.WriteHeader(http.StatusForbidden)
	return nil
}

//apiconv:status 404
type NotFoundResult struct {
	Value any
}

func (r NotFoundResult) WriteResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusNotFound, r.Value)
}

//apiconv:status 409
type ConflictResult struct {
	Value any
}

func (r ConflictResult) WriteResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusConflict, r.Value)
}

//apiconv:status 422
type UnprocessableEntityResult struct {
	Value any
}

func (r UnprocessableEntityResult) WriteResponse(w http.ResponseWriter) error {
	return writeJSON(w, http.StatusUnprocessableEntity, r.Value)
}

// StatusCodeResult writes an arbitrary status without a body. Its code is
// only known at run time.
type StatusCodeResult struct {
	Code int
}

func (r StatusCodeResult) WriteResponse(w http.ResponseWriter) error {
	if !validStatus(r.Code) {
		return fmt.Errorf("%w: %d", ErrInvalidStatusCode, r.Code)
	}

	w.WriteHeader(r.Code)
	return nil
}

// ObjectResult writes an arbitrary status with a JSON body.
type ObjectResult struct {
	Code  int
	Value any
}

func (r ObjectResult) WriteResponse(w http.ResponseWriter) error {
	if !validStatus(r.Code) {
		return fmt.Errorf("%w: %d", ErrInvalidStatusCode, r.Code)
	}

	return writeJSON(w, r.Code, r.Value)
}

func validStatus(code int) bool {
	return code >= 100 && code <= 599
}

// writeJSON writes code and, when v is non-nil, v as a JSON body.
func writeJSON(w http.ResponseWriter, code int, v any) error {
	if v == nil {
		w.WriteHeader(code)
		return nil
	}

	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, err = w.Write(body)

	return err
}

// Write writes the value an action returned. An ActionResult writes
// itself; any other value is written as a 200 JSON body.
func Write(w http.ResponseWriter, v any) error {
	if r, ok := v.(ActionResult); ok {
		return r.WriteResponse(w)
	}

	return writeJSON(w, http.StatusOK, v)
}
