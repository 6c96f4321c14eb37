// Package internal drives the convention engine over an analysis pass.
//
// # Architecture Overview
//
//	                  +------------------+
//	                  |   analyzer.go    |  Entry point, flags, config
//	                  +--------+---------+
//	                           |
//	                  +--------v---------+
//	                  |      Runner      |  Walks method declarations
//	                  +--------+---------+
//	                           |
//	      +--------------------+--------------------+
//	      |                    |                    |
//	+-----v------+   +---------v----------+   +-----v------+
//	|  symbols   |   | convention.Engine  |   |   ignore   |
//	| (per pass) |   |  (per method)      |   | (per file) |
//	+------------+   +---------+----------+   +------------+
//	                           |
//	                  +--------v---------+
//	                  |       host       |  analysis.Pass adapter
//	                  +--------+---------+
//	                           |
//	      +--------------------+--------------------+
//	      |                    |                    |
//	+-----v------+   +---------v----------+   +-----v------+
//	| attribute  |   |      symspec       |   |  typeutil  |
//	|  (facts)   |   | (pkg.Type.Method)  |   |            |
//	+------------+   +--------------------+   +------------+
//
// # Flow
//
// For each pass the [Runner]:
//
//  1. Loads the framework symbols. A package that does not import the
//     framework is skipped entirely.
//  2. Builds a host over the pass and an engine over the host.
//  3. Visits every method declaration with a body and asks the engine for
//     its diagnostics.
//  4. Drops diagnostics that are disabled by configuration or suppressed
//     by //apiconv:ignore, and reports the rest.
//
// # Messages
//
//	action returns undocumented status code 404
//	action returns a success result without documenting status code 200 or 201
//	action documents status code 400 but never returns it
package internal
