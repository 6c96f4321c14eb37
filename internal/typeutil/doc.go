// Package typeutil provides type helpers for apiconv.
//
// # Overview
//
// This package wraps the go/types queries the rest of the analyzer needs,
// so callers never type-switch on pointers or aliases themselves.
//
// # Named Types
//
// [Named] and [TypeName] look through one pointer level:
//
//	Named(*mvc.NotFoundResult)  // mvc.NotFoundResult
//	Named(mvc.NotFoundResult)   // mvc.NotFoundResult
//	Named([]int)                // nil
//
// # Result Shapes
//
// [IsErrorType] detects the predeclared error interface, used to recognize
// the trailing completion result of an action:
//
//	func (c *UserController) Get(id int) (mvc.Of[User], error)
//
// [IsInvalid] detects types the checker could not resolve. Such types make
// the surrounding scope be skipped rather than reported.
//
// # Embedding
//
// [Embedded] lists embedded struct types breadth first. It is the Go
// rendering of "searching inherited types":
//
//	type NotFound struct{ mvc.NotFoundResult }  // inherits the 404 directive
//
// # Packages
//
// [FindPackage] locates a package among the transitive imports of the
// package under analysis, which is how the framework package is detected.
package typeutil
