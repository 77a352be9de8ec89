// Package osrmc is the binding core in front of a road-network routing
// engine. It owns everything between the caller and the engine: engine
// configuration, parameter marshalling with its per-coordinate invariants,
// service dispatch with the panic boundary applied, and the response
// accessors over the engine's result union.
//
// # Services
//
// The engine exposes six services — nearest, route, table, match, trip and
// tile — reached through the corresponding OSRM methods. Every service but
// tile shares the same base parameter substructure (coordinates plus
// parallel modifier vectors); the route, match and trip services
// additionally share the route substructure (steps, alternatives, geometry
// shaping, annotations).
//
// # Error Model
//
// Failures are *Error records with a closed set of codes. Engine panics
// never escape a binding call; they are caught at the entry point and
// reified as CodeException records. Error responses from the engine — a
// structured document carrying "code" and "message" members — translate
// into records carrying those fields.
//
// # Responses
//
// A response holds the engine's result union. The caller picks the
// presentation: typed accessors over the structured document, RenderJSON
// for the textual form, or TransferFlatbuffer to release a finished binary
// payload. Transfer is one-shot; afterwards the response holds nothing.
//
// The package is the Go-side counterpart of the C ABI in the capi package;
// its method surface deliberately mirrors the exported C entry points.
package osrmc
