// Package osrmtest provides a scriptable in-process engine and canned
// response fixtures, so the binding can be exercised without preprocessed
// routing data.
//
// Register installs the scripted engine through the process-wide factory
// slot; tests that register engines must therefore not run in parallel with
// each other.
package osrmtest
