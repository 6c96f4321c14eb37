package customframework

import "example.com/web/mvc"

type User struct{}

type Conventions struct{}

//apiconv:produces 200
//apiconv:produces 404
//apiconv:match prefix
func (Conventions) Get() {} // want Get:"apiconv:produces 200; apiconv:produces 404; apiconv:match prefix"

//apiconv:controller
//apiconv:conventions Conventions
type UserController struct { // want UserController:"apiconv:controller; apiconv:conventions Conventions"
	mvc.Controller
}

func (c *UserController) GetMe() (mvc.Of[User], error) { // want "action documents status code 404 but never returns it"
	return User{}, nil
}

func (c *UserController) Profile() (mvc.Of[User], error) {
	return c.NotFound(), nil // want "action returns undocumented status code 404"
}
