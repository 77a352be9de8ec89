package capi

/*
#include "bridge.h"
*/
import "C"

import (
	"math"
	"unsafe"

	"github.com/moviro-hub/libosrmc/osrmc"
)

// nearestResponseHandle pairs the response with the C strings its name and
// hint accessors have handed out.
type nearestResponseHandle struct {
	resp *osrmc.NearestResponse
	strs cstrings
}

func restoreNearestParams(params C.osrmc_nearest_params_t, errOut *C.osrmc_error_t) (*osrmc.NearestParams, bool) {
	np, ok := restore[*osrmc.NearestParams](unsafe.Pointer(params))
	if !ok {
		setInvalidArgument(errOut, "Nearest parameters cannot be null")
	}
	return np, ok
}

func restoreNearestResponse(response C.osrmc_nearest_response_t, errOut *C.osrmc_error_t) (*nearestResponseHandle, bool) {
	h, ok := restore[*nearestResponseHandle](unsafe.Pointer(response))
	if !ok {
		setInvalidArgument(errOut, "Nearest response cannot be null")
	}
	return h, ok
}

//export osrmc_nearest_params_construct
func osrmc_nearest_params_construct(errOut *C.osrmc_error_t) C.osrmc_nearest_params_t {
	return C.osrmc_nearest_params_t(save(osrmc.NewNearestParams()))
}

//export osrmc_nearest_params_destruct
func osrmc_nearest_params_destruct(params C.osrmc_nearest_params_t) {
	unref(unsafe.Pointer(params))
}

//export osrmc_nearest_set_number_of_results
func osrmc_nearest_set_number_of_results(params C.osrmc_nearest_params_t, n C.uint, errOut *C.osrmc_error_t) {
	np, ok := restoreNearestParams(params, errOut)
	if !ok {
		return
	}
	np.SetNumberOfResults(uint32(n))
}

//export osrmc_nearest
func osrmc_nearest(instance C.osrmc_osrm_t, params C.osrmc_nearest_params_t, errOut *C.osrmc_error_t) C.osrmc_nearest_response_t {
	o, ok := restoreOSRM(instance, errOut)
	if !ok {
		return nil
	}
	np, ok := restoreNearestParams(params, errOut)
	if !ok {
		return nil
	}
	resp, err := o.Nearest(np)
	if err != nil {
		setError(errOut, err)
		return nil
	}
	return C.osrmc_nearest_response_t(save(&nearestResponseHandle{resp: resp}))
}

//export osrmc_nearest_response_destruct
func osrmc_nearest_response_destruct(response C.osrmc_nearest_response_t) {
	p := unsafe.Pointer(response)
	if h, ok := restore[*nearestResponseHandle](p); ok {
		h.strs.release()
	}
	unref(p)
}

//export osrmc_nearest_response_count
func osrmc_nearest_response_count(response C.osrmc_nearest_response_t, errOut *C.osrmc_error_t) C.uint {
	h, ok := restoreNearestResponse(response, errOut)
	if !ok {
		return 0
	}
	count, err := h.resp.Count()
	if err != nil {
		setError(errOut, err)
		return 0
	}
	return C.uint(count)
}

//export osrmc_nearest_response_latitude
func osrmc_nearest_response_latitude(response C.osrmc_nearest_response_t, index C.uint, errOut *C.osrmc_error_t) C.double {
	h, ok := restoreNearestResponse(response, errOut)
	if !ok {
		return C.double(math.NaN())
	}
	latitude, err := h.resp.Latitude(int(index))
	if err != nil {
		setError(errOut, err)
		return C.double(math.NaN())
	}
	return C.double(latitude)
}

//export osrmc_nearest_response_longitude
func osrmc_nearest_response_longitude(response C.osrmc_nearest_response_t, index C.uint, errOut *C.osrmc_error_t) C.double {
	h, ok := restoreNearestResponse(response, errOut)
	if !ok {
		return C.double(math.NaN())
	}
	longitude, err := h.resp.Longitude(int(index))
	if err != nil {
		setError(errOut, err)
		return C.double(math.NaN())
	}
	return C.double(longitude)
}

//export osrmc_nearest_response_name
func osrmc_nearest_response_name(response C.osrmc_nearest_response_t, index C.uint, errOut *C.osrmc_error_t) *C.char {
	h, ok := restoreNearestResponse(response, errOut)
	if !ok {
		return nil
	}
	name, err := h.resp.Name(int(index))
	if err != nil {
		setError(errOut, err)
		return nil
	}
	return h.strs.intern(name)
}

//export osrmc_nearest_response_distance
func osrmc_nearest_response_distance(response C.osrmc_nearest_response_t, index C.uint, errOut *C.osrmc_error_t) C.double {
	h, ok := restoreNearestResponse(response, errOut)
	if !ok {
		return C.double(math.Inf(1))
	}
	distance, err := h.resp.Distance(int(index))
	if err != nil {
		setError(errOut, err)
		return C.double(math.Inf(1))
	}
	return C.double(distance)
}

//export osrmc_nearest_response_hint
func osrmc_nearest_response_hint(response C.osrmc_nearest_response_t, index C.uint, errOut *C.osrmc_error_t) *C.char {
	h, ok := restoreNearestResponse(response, errOut)
	if !ok {
		return nil
	}
	hint, err := h.resp.Hint(int(index))
	if err != nil {
		setError(errOut, err)
		return nil
	}
	return h.strs.intern(hint)
}

//export osrmc_nearest_response_json
func osrmc_nearest_response_json(response C.osrmc_nearest_response_t, errOut *C.osrmc_error_t) C.osrmc_blob_t {
	h, ok := restoreNearestResponse(response, errOut)
	if !ok {
		return nil
	}
	return renderBlob(h.resp.RenderJSON, errOut)
}

//export osrmc_nearest_response_transfer_flatbuffer
func osrmc_nearest_response_transfer_flatbuffer(response C.osrmc_nearest_response_t, data *unsafe.Pointer, size *C.size_t, deleter *C.osrmc_buffer_deleter_t, errOut *C.osrmc_error_t) {
	h, ok := restoreNearestResponse(response, errOut)
	if !ok {
		return
	}
	transferBuffer(h.resp.TransferFlatbuffer, data, size, deleter, errOut)
}
