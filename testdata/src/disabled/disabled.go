package disabled

import "github.com/mpyw/apiconv/mvc"

type User struct{}

//apiconv:controller
//apiconv:conventions github.com/mpyw/apiconv/mvc.Conventions
type UserController struct { // want UserController:"apiconv:controller; apiconv:conventions github.com/mpyw/apiconv/mvc.Conventions"
	mvc.Controller
}

func (c *UserController) Profile() (mvc.Of[User], error) {
	return User{}, nil //apiconv:ignore success // want `unused apiconv:ignore directive for diagnostic\(s\): success`
}

func (c *UserController) Detail(id int) (mvc.Of[User], error) {
	if id == 0 {
		return c.NotFound(), nil // want "action returns undocumented status code 404"
	}
	return User{}, nil
}
