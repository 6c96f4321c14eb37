package noframework

type User struct{}

type Conventions struct{}

//apiconv:controller
//apiconv:conventions Conventions
type UserController struct{} // want UserController:"apiconv:controller; apiconv:conventions Conventions"

func (c *UserController) Show() (User, error) {
	return User{}, nil
}
