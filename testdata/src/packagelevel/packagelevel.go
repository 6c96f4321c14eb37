// want package:"apiconv:controller; apiconv:conventions github.com/mpyw/apiconv/mvc.Conventions"

// Package packagelevel declares its controllers and conventions once.
//
//apiconv:controller
//apiconv:conventions github.com/mpyw/apiconv/mvc.Conventions
package packagelevel

import "github.com/mpyw/apiconv/mvc"

type Item struct{}

type LocalConventions struct{}

//apiconv:produces 202
//apiconv:match prefix
func (LocalConventions) Get() {} // want Get:"apiconv:produces 202; apiconv:match prefix"

type ItemController struct {
	mvc.Controller
}

func (c *ItemController) GetItem(id int) (mvc.Of[Item], error) {
	if id == 0 {
		return c.NotFound(), nil
	}
	return Item{}, nil
}

func (c *ItemController) GetAll() (mvc.Of[[]Item], error) {
	return []Item{}, nil // want "action returns a success result without documenting status code 200 or 201"
}

// ReportController replaces the package conventions with its own.
//
//apiconv:conventions LocalConventions
type ReportController struct { // want ReportController:"apiconv:conventions LocalConventions"
	mvc.Controller
}

func (c *ReportController) GetReport() (mvc.Of[Item], error) { // want "action documents status code 202 but never returns it"
	return c.OK(nil), nil // want "action returns undocumented status code 200"
}

// Helper neither embeds the controller base nor is named like a controller.
type Helper struct{}

func (h *Helper) Get(id int) (mvc.Of[Item], error) {
	return Item{}, nil
}
