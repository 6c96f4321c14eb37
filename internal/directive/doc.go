// Package directive provides directive parsing for apiconv.
//
// # Overview
//
// This package contains subpackages for parsing comment directives:
//
//	directive/
//	├── attribute/  # //apiconv:<declaration> directives, exported as facts
//	└── ignore/     # //apiconv:ignore directive
//
// # Directive Format
//
// All directives follow the format:
//
//	//apiconv:<directive> [args]
//
// Declaration directives sit in the doc comment of the type, method or
// package clause they describe:
//
//	//apiconv:controller
//	//apiconv:conventions github.com/mpyw/apiconv/mvc.Conventions
//	type UserController struct{ mvc.Controller }
//
//	//apiconv:produces 200
//	//apiconv:produces 404 ProblemDetails
//	func (c *UserController) Get(id int) (mvc.Of[User], error) { ... }
//
//	//apiconv:status 404
//	type NotFoundResult struct{}
//
// See [attribute] package for the full list.
//
// # Ignore Directive
//
// Suppresses diagnostics for the next line or same line:
//
//	//apiconv:ignore
//	return c.Conflict(), nil  // No diagnostic
//
// See [ignore] package for details.
package directive
