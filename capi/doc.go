// Package capi exports the osrmc_* C entry points declared in osrmc.h.
//
// Every function here is a thin shell over the pure-Go binding in package
// osrmc: handles crossing the boundary are sentinel pointers resolved
// through a process-wide registry, strings and buffers are copied onto the
// C heap with explicit ownership rules, and failures are reified as
// caller-owned error records written through the per-call out-parameter.
// No binding semantics live in this package.
//
// The package is meant to be linked into a shared library via
// cmd/libosrmc with -buildmode=c-shared; see osrmc.h for the consumer-facing
// contract of each entry point.
package capi
