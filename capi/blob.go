package capi

/*
#include <stdlib.h>

#include "bridge.h"
*/
import "C"

import (
	"unsafe"
)

// blobHandle owns one C-heap byte buffer handed back to the caller, the
// length-prefixed form the rendered-document accessors return.
type blobHandle struct {
	data unsafe.Pointer
	size C.size_t
}

// renderBlob runs a byte-producing accessor and wraps its output in a
// caller-owned blob handle.
func renderBlob(render func() ([]byte, error), errOut *C.osrmc_error_t) C.osrmc_blob_t {
	bytes, err := render()
	if err != nil {
		setError(errOut, err)
		return nil
	}
	buf, size, err := cbytes(bytes)
	if err != nil {
		setError(errOut, err)
		return nil
	}
	return C.osrmc_blob_t(save(&blobHandle{data: buf, size: size}))
}

//export osrmc_blob_data
func osrmc_blob_data(blob C.osrmc_blob_t) *C.char {
	h, ok := restore[*blobHandle](unsafe.Pointer(blob))
	if !ok {
		return nil
	}
	return (*C.char)(h.data)
}

//export osrmc_blob_size
func osrmc_blob_size(blob C.osrmc_blob_t) C.size_t {
	h, ok := restore[*blobHandle](unsafe.Pointer(blob))
	if !ok {
		return 0
	}
	return h.size
}

//export osrmc_blob_destruct
func osrmc_blob_destruct(blob C.osrmc_blob_t) {
	p := unsafe.Pointer(blob)
	if h, ok := restore[*blobHandle](p); ok && h.data != nil {
		C.free(h.data)
	}
	unref(p)
}
