// Package mvc is a small action-result layer for net/http handlers, and
// the framework apiconv checks controllers against.
//
// An action returns either a bare payload or an [ActionResult]:
//
//	//apiconv:controller
//	//apiconv:conventions github.com/mpyw/apiconv/mvc.Conventions
//	type UserController struct{ mvc.Controller }
//
//	func (c *UserController) GetUser(id int) (mvc.Of[User], error) {
//	    u, ok := c.users[id]
//	    if !ok {
//	        return c.NotFound(), nil
//	    }
//	    return u, nil
//	}
//
// [Write] turns either form into a response. Each result type documents the
// status code it writes with an //apiconv:status directive.
package mvc
