package capi

/*
#include <stdlib.h>

#include "bridge.h"
*/
import "C"

import (
	"unsafe"

	"github.com/moviro-hub/libosrmc/osrmc"
)

// tileResponseHandle owns a C-heap copy of the tile bytes; the data pointer
// handed out stays valid until the destructor runs.
type tileResponseHandle struct {
	data unsafe.Pointer
	size C.size_t
}

func restoreTileParams(params C.osrmc_tile_params_t, errOut *C.osrmc_error_t) (*osrmc.TileParams, bool) {
	tp, ok := restore[*osrmc.TileParams](unsafe.Pointer(params))
	if !ok {
		setInvalidArgument(errOut, "Tile parameters cannot be null")
	}
	return tp, ok
}

func restoreTileResponse(response C.osrmc_tile_response_t, errOut *C.osrmc_error_t) (*tileResponseHandle, bool) {
	h, ok := restore[*tileResponseHandle](unsafe.Pointer(response))
	if !ok {
		setInvalidArgument(errOut, "Tile response cannot be null")
	}
	return h, ok
}

//export osrmc_tile_params_construct
func osrmc_tile_params_construct(errOut *C.osrmc_error_t) C.osrmc_tile_params_t {
	return C.osrmc_tile_params_t(save(osrmc.NewTileParams()))
}

//export osrmc_tile_params_destruct
func osrmc_tile_params_destruct(params C.osrmc_tile_params_t) {
	unref(unsafe.Pointer(params))
}

//export osrmc_tile_params_set_x
func osrmc_tile_params_set_x(params C.osrmc_tile_params_t, x C.uint, errOut *C.osrmc_error_t) {
	tp, ok := restoreTileParams(params, errOut)
	if !ok {
		return
	}
	tp.SetX(uint32(x))
}

//export osrmc_tile_params_set_y
func osrmc_tile_params_set_y(params C.osrmc_tile_params_t, y C.uint, errOut *C.osrmc_error_t) {
	tp, ok := restoreTileParams(params, errOut)
	if !ok {
		return
	}
	tp.SetY(uint32(y))
}

//export osrmc_tile_params_set_z
func osrmc_tile_params_set_z(params C.osrmc_tile_params_t, z C.uint, errOut *C.osrmc_error_t) {
	tp, ok := restoreTileParams(params, errOut)
	if !ok {
		return
	}
	tp.SetZ(uint32(z))
}

//export osrmc_tile
func osrmc_tile(instance C.osrmc_osrm_t, params C.osrmc_tile_params_t, errOut *C.osrmc_error_t) C.osrmc_tile_response_t {
	o, ok := restoreOSRM(instance, errOut)
	if !ok {
		return nil
	}
	tp, ok := restoreTileParams(params, errOut)
	if !ok {
		return nil
	}
	resp, err := o.Tile(tp)
	if err != nil {
		setError(errOut, err)
		return nil
	}
	data, size, err := cbytes(resp.Data())
	if err != nil {
		setError(errOut, err)
		return nil
	}
	return C.osrmc_tile_response_t(save(&tileResponseHandle{data: data, size: size}))
}

//export osrmc_tile_response_destruct
func osrmc_tile_response_destruct(response C.osrmc_tile_response_t) {
	p := unsafe.Pointer(response)
	if h, ok := restore[*tileResponseHandle](p); ok && h.data != nil {
		C.free(h.data)
	}
	unref(p)
}

//export osrmc_tile_response_data
func osrmc_tile_response_data(response C.osrmc_tile_response_t, size *C.size_t, errOut *C.osrmc_error_t) *C.char {
	h, ok := restoreTileResponse(response, errOut)
	if !ok {
		return nil
	}
	if size != nil {
		*size = h.size
	}
	return (*C.char)(h.data)
}

//export osrmc_tile_response_size
func osrmc_tile_response_size(response C.osrmc_tile_response_t, errOut *C.osrmc_error_t) C.size_t {
	h, ok := restoreTileResponse(response, errOut)
	if !ok {
		return 0
	}
	return h.size
}
