// Package mvc is a stub of github.com/mpyw/apiconv/mvc for testing.
package mvc

type Of[T any] interface{}

type Controller struct{}

//apiconv:status 200
type OKResult struct{ Value any }

//apiconv:status 201
type CreatedResult struct {
	Location string
	Value    any
}

//apiconv:status 202
type AcceptedResult struct{ Value any }

//apiconv:status 204
type NoContentResult struct{}

//apiconv:status 400
type BadRequestResult struct{ Value any }

//apiconv:status 404
type NotFoundResult struct{ Value any }

//apiconv:status 409
type ConflictResult struct{ Value any }

type StatusCodeResult struct{ Code int }

func (Controller) OK(v any) OKResult { return OKResult{Value: v} }

func (Controller) Created(location string, v any) CreatedResult {
	return CreatedResult{Location: location, Value: v}
}

func (Controller) Accepted(v any) AcceptedResult { return AcceptedResult{Value: v} }

func (Controller) NoContent() NoContentResult { return NoContentResult{} }

func (Controller) BadRequest(v any) BadRequestResult { return BadRequestResult{Value: v} }

func (Controller) NotFound() NotFoundResult { return NotFoundResult{} }

func (Controller) Conflict(v any) ConflictResult { return ConflictResult{Value: v} }

func (Controller) StatusCode(code int) StatusCodeResult { return StatusCodeResult{Code: code} }

type Conventions struct{}

//apiconv:produces 200
//apiconv:produces 404
//apiconv:match prefix
//apiconv:param id name=suffix type=any
func (Conventions) Get(id any) {}

//apiconv:produces 200
//apiconv:produces 404
//apiconv:match prefix
//apiconv:param id name=suffix type=any
func (Conventions) Find(id any) {}

//apiconv:produces 201
//apiconv:produces 400
//apiconv:match prefix
//apiconv:param model name=any type=any
func (Conventions) Post(model any) {}

//apiconv:produces 201
//apiconv:produces 400
//apiconv:match prefix
//apiconv:param model name=any type=any
func (Conventions) Create(model any) {}

//apiconv:produces 204
//apiconv:produces 404
//apiconv:produces 400
//apiconv:match prefix
//apiconv:param id name=suffix type=any
//apiconv:param model name=any type=any
func (Conventions) Update(id any, model any) {}

//apiconv:produces 200
//apiconv:produces 404
//apiconv:produces 400
//apiconv:match prefix
//apiconv:param id name=suffix type=any
func (Conventions) Delete(id any) {}
