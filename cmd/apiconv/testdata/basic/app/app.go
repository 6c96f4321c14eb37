package app

import "example.com/basic/mvc"

type User struct{}

//apiconv:controller
//apiconv:conventions example.com/basic/mvc.Conventions
type UserController struct {
	mvc.Controller
}

func (c *UserController) GetUser(id int) (mvc.Of[User], error) {
	return User{}, nil
}

func (c *UserController) Profile() (mvc.Of[User], error) {
	return c.NotFound(), nil
}
