package classifier

import (
	"errors"

	"github.com/mpyw/apiconv/mvc"
)

type Item struct{}

var errMissing = errors.New("missing")

// GoneResult reports a removed item.
//
//apiconv:status 410
type GoneResult struct{} // want GoneResult:"apiconv:status 410"

// MissingResult writes whatever the embedded result writes.
type MissingResult struct {
	mvc.NotFoundResult
}

//apiconv:status
type BrokenResult struct{} // want BrokenResult:"apiconv:status"

//apiconv:status 404 410
type AmbiguousResult struct{} // want AmbiguousResult:"apiconv:status 404 410"

//apiconv:controller
//apiconv:conventions github.com/mpyw/apiconv/mvc.Conventions
type ItemController struct { // want ItemController:"apiconv:controller; apiconv:conventions github.com/mpyw/apiconv/mvc.Conventions"
	mvc.Controller
}

func (c *ItemController) load() (MissingResult, error) {
	return MissingResult{}, nil
}

//apiconv:produces 200
//apiconv:produces 410
func (c *ItemController) Show(id int) (mvc.Of[Item], error) { // want Show:"apiconv:produces 200; apiconv:produces 410"
	switch {
	case id < 0:
		return nil, errMissing
	case id == 0:
		return GoneResult{}, nil
	case id == 1:
		return &MissingResult{}, nil // want "action returns undocumented status code 404"
	}
	return Item{}, nil
}

// Fallback returns results whose code cannot be proven.
//
//apiconv:produces 200
func (c *ItemController) Fallback(id int) (mvc.Of[Item], error) { // want Fallback:"apiconv:produces 200"
	if id == 0 {
		return BrokenResult{}, nil
	}
	if id == 1 {
		return AmbiguousResult{}, nil
	}
	return c.StatusCode(418), nil
}

//apiconv:produces 200
func (c *ItemController) Tuple() (mvc.Of[Item], error) { // want Tuple:"apiconv:produces 200" "action documents status code 200 but never returns it"
	return c.load() // want "action returns undocumented status code 404"
}

//apiconv:produces 200
func (c *ItemController) Closure() (mvc.Of[Item], error) { // want Closure:"apiconv:produces 200"
	find := func() (mvc.Of[Item], error) {
		return c.NotFound(), nil
	}
	_ = find
	return Item{}, nil
}

//apiconv:produces 200
func (c *ItemController) Failing(id int) (mvc.Of[Item], error) { // want Failing:"apiconv:produces 200"
	if id == 0 {
		return c.NotFound(), errMissing
	}
	return (Item{}), (nil)
}

//apiconv:produces 204
func (c *ItemController) Remove(id int) error { // want Remove:"apiconv:produces 204" "action documents status code 204 but never returns it"
	if id == 0 {
		return errMissing
	}
	return nil
}

func (c *ItemController) Current() (mvc.Of[*Item], error) {
	return &Item{}, nil // want "action returns a success result without documenting status code 200 or 201"
}

//apiconv:produces 200
func (c *ItemController) Ping() mvc.OKResult { // want Ping:"apiconv:produces 200"
	return c.OK(nil)
}

func (c *ItemController) Pair() (Item, int) {
	return Item{}, 0
}
