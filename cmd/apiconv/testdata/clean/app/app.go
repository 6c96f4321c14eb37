package app

import "example.com/clean/mvc"

type User struct{}

//apiconv:controller
//apiconv:conventions example.com/clean/mvc.Conventions
type UserController struct {
	mvc.Controller
}

func (c *UserController) GetUser(id int) (mvc.Of[User], error) {
	if id == 0 {
		return c.NotFound(), nil
	}
	return User{}, nil
}
