package responses

import "github.com/mpyw/apiconv/mvc"

type User struct {
	Name string
}

// UserController serves users.
//
//apiconv:controller
//apiconv:conventions github.com/mpyw/apiconv/mvc.Conventions
type UserController struct { // want UserController:"apiconv:controller; apiconv:conventions github.com/mpyw/apiconv/mvc.Conventions"
	mvc.Controller
}

// Show returns every code it documents.
//
//apiconv:produces 200
//apiconv:produces 404
func (c *UserController) Show(id int) (mvc.Of[User], error) { // want Show:"apiconv:produces 200; apiconv:produces 404"
	if id == 0 {
		return c.NotFound(), nil
	}
	return User{}, nil
}

// Profile documents nothing.
func (c *UserController) Profile() (mvc.Of[User], error) {
	return User{}, nil // want "action returns a success result without documenting status code 200 or 201"
}

// Detail returns a code it does not document.
//
//apiconv:produces 200
func (c *UserController) Detail(id int) (mvc.Of[User], error) { // want Detail:"apiconv:produces 200"
	if id == 0 {
		return c.NotFound(), nil // want "action returns undocumented status code 404"
	}
	return User{}, nil
}

// Summary documents a code it never returns.
//
//apiconv:produces 200
//apiconv:produces 404
func (c *UserController) Summary() (mvc.Of[User], error) { // want Summary:"apiconv:produces 200; apiconv:produces 404" "action documents status code 404 but never returns it"
	return User{}, nil
}

// Mixed reports statement diagnostics before method diagnostics.
//
//apiconv:produces 201
//apiconv:produces 400
func (c *UserController) Mixed(ok bool) (mvc.Of[User], error) { // want Mixed:"apiconv:produces 201; apiconv:produces 400" "action documents status code 400 but never returns it"
	if !ok {
		return c.NotFound(), nil // want "action returns undocumented status code 404"
	}
	return c.Created("/users/1", nil), nil
}

//apiconv:nonaction
func (c *UserController) Helper() (mvc.Of[User], error) { // want Helper:"apiconv:nonaction"
	return c.NotFound(), nil
}

func (c *UserController) render() (mvc.Of[User], error) {
	return c.NotFound(), nil
}

func (c *UserController) Close() error {
	return nil
}

// AdminController has no conventions, so its actions are not checked.
//
//apiconv:controller
type AdminController struct { // want AdminController:"apiconv:controller"
	mvc.Controller
}

func (c *AdminController) Show() (mvc.Of[User], error) {
	return User{}, nil
}

// Service is not a controller.
//
//apiconv:conventions github.com/mpyw/apiconv/mvc.Conventions
type Service struct{} // want Service:"apiconv:conventions github.com/mpyw/apiconv/mvc.Conventions"

func (s *Service) Show() (mvc.Of[User], error) {
	return User{}, nil
}

//apiconv:controller
//apiconv:noncontroller
//apiconv:conventions github.com/mpyw/apiconv/mvc.Conventions
type LegacyController struct { // want LegacyController:"apiconv:controller; apiconv:noncontroller; apiconv:conventions github.com/mpyw/apiconv/mvc.Conventions"
	mvc.Controller
}

func (c *LegacyController) Show() (mvc.Of[User], error) {
	return User{}, nil
}

//apiconv:controller
//apiconv:conventions github.com/mpyw/apiconv/mvc.Conventions
type GenericController[T any] struct { // want GenericController:"apiconv:controller; apiconv:conventions github.com/mpyw/apiconv/mvc.Conventions"
	mvc.Controller
}

func (c *GenericController[T]) Show() (mvc.Of[T], error) {
	return c.NotFound(), nil
}
