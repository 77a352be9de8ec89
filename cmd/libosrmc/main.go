// Command libosrmc is the c-shared build target for the osrmc ABI.
//
// Build it with:
//
//	go build -buildmode=c-shared -o libosrmc.so ./cmd/libosrmc
//
// The exported surface lives in the capi package; this entry point only
// exists because c-shared requires a main package.
package main

import (
	_ "github.com/moviro-hub/libosrmc/capi"
)

func main() {}
