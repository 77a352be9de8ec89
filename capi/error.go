package capi

/*
#include <stdlib.h>

#include "osrmc_types.h"
*/
import "C"

import (
	"unsafe"
)

//export osrmc_error_code
func osrmc_error_code(err C.osrmc_error_t) *C.char {
	record, ok := restore[*errorRecord](unsafe.Pointer(err))
	if !ok {
		return nil
	}
	return record.code
}

//export osrmc_error_message
func osrmc_error_message(err C.osrmc_error_t) *C.char {
	record, ok := restore[*errorRecord](unsafe.Pointer(err))
	if !ok {
		return nil
	}
	return record.message
}

//export osrmc_error_destruct
func osrmc_error_destruct(err C.osrmc_error_t) {
	p := unsafe.Pointer(err)
	record, ok := restore[*errorRecord](p)
	if !ok {
		return
	}
	C.free(unsafe.Pointer(record.code))
	C.free(unsafe.Pointer(record.message))
	unref(p)
}
