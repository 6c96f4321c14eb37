// Package mvc is a stand-in for a framework at another import path.
package mvc

type Of[T any] interface{}

type Controller struct{}

//apiconv:status 200
type OKResult struct{}

//apiconv:status 404
type NotFoundResult struct{}

func (Controller) OK() OKResult { return OKResult{} }

func (Controller) NotFound() NotFoundResult { return NotFoundResult{} }
