// Package ignore provides //apiconv:ignore directive parsing.
//
// # Overview
//
// The ignore directive suppresses analyzer diagnostics for specific lines
// or specific diagnostics.
//
// # Directive Placement
//
// The directive can appear on the line before or the same line:
//
//	//apiconv:ignore
//	return c.NotFound(), nil  // Diagnostic suppressed
//
//	return c.NotFound(), nil  //apiconv:ignore  // Also works
//
// Method-level diagnostics are reported at the method name, so the
// directive goes directly above the func line:
//
//	// Get returns a user.
//	//apiconv:produces 200
//	//apiconv:produces 404
//	//apiconv:ignore unreturned
//	func (c *UserController) Get(id int) (mvc.Of[User], error) {
//
// # Valid Diagnostic Names
//
//	┌──────────────┬──────────────────────────────────────────────┐
//	│ Name         │ Description                                  │
//	├──────────────┼──────────────────────────────────────────────┤
//	│ undocumented │ return produces an undocumented status code  │
//	│ success      │ bare payload return without 200 or 201       │
//	│ unreturned   │ documented status code is never returned     │
//	└──────────────┴──────────────────────────────────────────────┘
//
// # Reasons
//
// Text after " - " is kept as the directive's reason:
//
//	//apiconv:ignore unreturned - 404 comes from middleware
//
// # Checking Ignores
//
// [Map.Match] returns the suppressing directive so callers can log its
// reason. [Map.ShouldIgnore] is the boolean form:
//
//	if e := ignoreMap.Match(lineNum, ignore.Unreturned); e != nil {
//	    logger.Debug("suppressed", zap.String("reason", e.Reason))
//	}
//
// # Unused Ignore Detection
//
// The package tracks which ignore directives are used and reports
// unused ones:
//
//	//apiconv:ignore  // Warning: unused ignore directive
//	return user, nil  // Nothing to suppress
package ignore
