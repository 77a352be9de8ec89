package capi

/*
#include "osrmc_types.h"
*/
import "C"

import (
	libosrmc "github.com/moviro-hub/libosrmc"
)

//export osrmc_get_version
func osrmc_get_version() C.uint {
	return C.uint(libosrmc.Version)
}

//export osrmc_is_abi_compatible
func osrmc_is_abi_compatible() C.int {
	if libosrmc.CompatibleWith(uint32(C.OSRMC_VERSION)) {
		return 1
	}
	return 0
}
