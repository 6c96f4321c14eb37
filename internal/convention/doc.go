// Package convention checks API controller actions against the status
// codes they document.
//
// # Overview
//
// For every eligible action the [Engine] compares two sets:
//
//   - the expected responses, declared on the action with
//     //apiconv:produces or borrowed from convention templates;
//   - the actual status codes, read off the action's return statements.
//
// # Execution Flow
//
//  1. Applicability: the receiver (or its package) names a convention
//     container, the receiver is an API controller, the method is an
//     action, and its results have one of the supported shapes.
//  2. Unwrapping: the trailing error result is stripped, then a typed
//     result wrapper such as mvc.Of[User] is reduced to User, the payload
//     type.
//  3. Resolution: explicit produces directives first, then the codes of
//     matching convention templates that are not already present. The set
//     is frozen before any return statement is looked at.
//  4. Classification, per return statement in source order:
//     - invalid static type: skipped;
//     - type with a //apiconv:status directive: that code is produced;
//     - the payload type itself: a bare success result;
//     - anything else: assumed to produce 200.
//  5. Diff: every expected code that was never produced is reported at the
//     method name.
//
// # Example
//
//	//apiconv:produces 200
//	//apiconv:produces 404
//	func (c *UserController) Get(id int) (mvc.Of[User], error) {
//	    if id == 0 {
//	        return c.NotFound(), nil  // 404, documented
//	    }
//	    return User{}, nil            // payload, 200 documented
//	}
//
// # Host
//
// The engine never walks type hierarchies or reads comments itself. All
// symbol questions go through [Host], which the analyzer implements on top
// of an analysis pass and tests implement over a type-checked snippet.
//
// # Concurrency
//
// An Engine holds only read-only state. Each call to [Engine.Analyze]
// owns its expected set, actual set and diagnostics, so different methods
// may be analyzed concurrently.
package convention
