package ignore

import "github.com/mpyw/apiconv/mvc"

type Item struct{}

//apiconv:controller
//apiconv:conventions github.com/mpyw/apiconv/mvc.Conventions
type ItemController struct { // want ItemController:"apiconv:controller; apiconv:conventions github.com/mpyw/apiconv/mvc.Conventions"
	mvc.Controller
}

func (c *ItemController) Lookup() (mvc.Of[Item], error) {
	//apiconv:ignore success
	return Item{}, nil
}

func (c *ItemController) Peek() (mvc.Of[Item], error) {
	return Item{}, nil //apiconv:ignore
}

func (c *ItemController) GetItem(id int) (mvc.Of[Item], error) { //apiconv:ignore unreturned - 404 comes from middleware
	return Item{}, nil
}

func (c *ItemController) Fine() (mvc.Of[Item], error) {
	//apiconv:ignore // want "unused apiconv:ignore directive"
	return c.OK(nil), nil
}

func (c *ItemController) Partial() (mvc.Of[Item], error) {
	return Item{}, nil //apiconv:ignore success,undocumented // want `unused apiconv:ignore directive for diagnostic\(s\): undocumented`
}

func (c *ItemController) Wrong() (mvc.Of[Item], error) {
	//apiconv:ignore unreturned // want `unused apiconv:ignore directive for diagnostic\(s\): unreturned`
	return Item{}, nil // want "action returns a success result without documenting status code 200 or 201"
}
