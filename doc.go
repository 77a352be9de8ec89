// Package libosrmc provides a C-callable binding layer in front of a
// road-network routing engine.
//
// The engine itself — graph storage, contraction hierarchies, multi-level
// Dijkstra, map matching, tile generation — is external. This module owns
// everything between a foreign caller and that engine: opaque handle
// lifetimes, parameter marshalling, service dispatch, response
// materialization, and error translation.
//
// # Architecture Overview
//
// The module is organized into a small set of packages with distinct
// responsibilities:
//
//	libosrmc/            Root package with the ABI version constants
//	├── osrm/            Engine contract: parameter structs, result union,
//	│                    status codes, the Engine interface and its registry
//	│   └── json/        Structured document model (ordered objects) and the
//	│                    locale-independent renderer
//	├── osrmc/           Binding core: error records, config, parameter
//	│                    marshalling, dispatch, response holders and accessors
//	├── osrmtest/        Scripted engine and canned responses for tests
//	├── capi/            cgo surface exporting the osrmc_* C entry points
//	└── cmd/libosrmc/    c-shared build target for the C library
//
// # Quick Start
//
// Engine implementations register themselves, typically from an init
// function, after which the binding can construct and drive them:
//
//	osrm.RegisterEngine(myFactory)
//
//	cfg := osrmc.NewConfig("/data/berlin-latest.osrm")
//	client, err := osrmc.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	params := osrmc.NewRouteParams()
//	params.AddCoordinate(13.388860, 52.517037)
//	params.AddCoordinate(13.397634, 52.529407)
//
//	resp, err := client.Route(params)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(resp.Distance())
//
// The same flow is exposed to C through package capi; see capi/osrmc.h for
// the exported entry points and cmd/libosrmc for the c-shared build target.
//
// # Thread Safety
//
// An engine handle may be shared across goroutines (and, through the C
// surface, across threads); the engine guarantees concurrent request safety.
// Every other handle — config, parameters, responses, errors, blobs — is
// single-owner and must not be used concurrently.
//
// # Memory Model
//
// Every handle crossing the C surface is created by an explicit constructor
// and released by an explicit destructor; destructors are no-ops on null.
// Buffers handed over by the FlatBuffer transfer entry points carry a deleter
// function pointer the caller must invoke. The pure-Go surface follows the
// usual Go rules; response contents remain valid until the holder is garbage
// collected or, on the C side, explicitly destructed.
package libosrmc
