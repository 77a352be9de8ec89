// Package osrm defines the contract between the binding layer and a
// road-network routing engine.
//
// The engine itself lives in a separate module. It implements the Engine
// interface — one method per service, each filling a Result union — and makes
// itself available by calling RegisterEngine, typically from an init function.
// Everything else in this package is the value vocabulary that crosses the
// boundary: coordinates and their per-coordinate modifiers, parameter structs,
// the engine configuration, status codes, and the result union.
//
// Parameter structs mirror the engine's structural inheritance: route, match
// and trip parameters embed RouteParameters semantics, and every service but
// tile embeds BaseParameters. Constructors return the engine's documented
// defaults; the zero value of the enum types is always the default variant.
package osrm
