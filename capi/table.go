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

func restoreTableParams(params C.osrmc_table_params_t, errOut *C.osrmc_error_t) (*osrmc.TableParams, bool) {
	tp, ok := restore[*osrmc.TableParams](unsafe.Pointer(params))
	if !ok {
		setInvalidArgument(errOut, "Table parameters cannot be null")
	}
	return tp, ok
}

func restoreTableResponse(response C.osrmc_table_response_t, errOut *C.osrmc_error_t) (*osrmc.TableResponse, bool) {
	resp, ok := restore[*osrmc.TableResponse](unsafe.Pointer(response))
	if !ok {
		setInvalidArgument(errOut, "Table response cannot be null")
	}
	return resp, ok
}

//export osrmc_table_params_construct
func osrmc_table_params_construct(errOut *C.osrmc_error_t) C.osrmc_table_params_t {
	return C.osrmc_table_params_t(save(osrmc.NewTableParams()))
}

//export osrmc_table_params_destruct
func osrmc_table_params_destruct(params C.osrmc_table_params_t) {
	unref(unsafe.Pointer(params))
}

//export osrmc_table_params_add_source
func osrmc_table_params_add_source(params C.osrmc_table_params_t, index C.size_t, errOut *C.osrmc_error_t) {
	tp, ok := restoreTableParams(params, errOut)
	if !ok {
		return
	}
	tp.AddSource(int(index))
}

//export osrmc_table_params_add_destination
func osrmc_table_params_add_destination(params C.osrmc_table_params_t, index C.size_t, errOut *C.osrmc_error_t) {
	tp, ok := restoreTableParams(params, errOut)
	if !ok {
		return
	}
	tp.AddDestination(int(index))
}

//export osrmc_table_params_set_annotations_mask
func osrmc_table_params_set_annotations_mask(params C.osrmc_table_params_t, annotations *C.char, errOut *C.osrmc_error_t) {
	tp, ok := restoreTableParams(params, errOut)
	if !ok {
		return
	}
	if annotations == nil {
		setInvalidArgument(errOut, "Annotations cannot be null")
		return
	}
	if err := tp.SetAnnotations(C.GoString(annotations)); err != nil {
		setError(errOut, err)
	}
}

//export osrmc_table_params_set_fallback_speed
func osrmc_table_params_set_fallback_speed(params C.osrmc_table_params_t, speed C.double, errOut *C.osrmc_error_t) {
	tp, ok := restoreTableParams(params, errOut)
	if !ok {
		return
	}
	if err := tp.SetFallbackSpeed(float64(speed)); err != nil {
		setError(errOut, err)
	}
}

//export osrmc_table_params_set_fallback_coordinate_type
func osrmc_table_params_set_fallback_coordinate_type(params C.osrmc_table_params_t, coordType *C.char, errOut *C.osrmc_error_t) {
	tp, ok := restoreTableParams(params, errOut)
	if !ok {
		return
	}
	if coordType == nil {
		setInvalidArgument(errOut, "Coordinate type cannot be null")
		return
	}
	if err := tp.SetFallbackCoordinateType(C.GoString(coordType)); err != nil {
		setError(errOut, err)
	}
}

//export osrmc_table_params_set_scale_factor
func osrmc_table_params_set_scale_factor(params C.osrmc_table_params_t, scaleFactor C.double, errOut *C.osrmc_error_t) {
	tp, ok := restoreTableParams(params, errOut)
	if !ok {
		return
	}
	if err := tp.SetScaleFactor(float64(scaleFactor)); err != nil {
		setError(errOut, err)
	}
}

//export osrmc_table
func osrmc_table(instance C.osrmc_osrm_t, params C.osrmc_table_params_t, errOut *C.osrmc_error_t) C.osrmc_table_response_t {
	o, ok := restoreOSRM(instance, errOut)
	if !ok {
		return nil
	}
	tp, ok := restoreTableParams(params, errOut)
	if !ok {
		return nil
	}
	resp, err := o.Table(tp)
	if err != nil {
		setError(errOut, err)
		return nil
	}
	return C.osrmc_table_response_t(save(resp))
}

//export osrmc_table_response_destruct
func osrmc_table_response_destruct(response C.osrmc_table_response_t) {
	unref(unsafe.Pointer(response))
}

//export osrmc_table_response_duration
func osrmc_table_response_duration(response C.osrmc_table_response_t, from C.ulong, to C.ulong, errOut *C.osrmc_error_t) C.double {
	resp, ok := restoreTableResponse(response, errOut)
	if !ok {
		return C.double(math.Inf(1))
	}
	duration, err := resp.Duration(int(from), int(to))
	if err != nil {
		setError(errOut, err)
		return C.double(math.Inf(1))
	}
	return C.double(duration)
}

//export osrmc_table_response_distance
func osrmc_table_response_distance(response C.osrmc_table_response_t, from C.ulong, to C.ulong, errOut *C.osrmc_error_t) C.double {
	resp, ok := restoreTableResponse(response, errOut)
	if !ok {
		return C.double(math.Inf(1))
	}
	distance, err := resp.Distance(int(from), int(to))
	if err != nil {
		setError(errOut, err)
		return C.double(math.Inf(1))
	}
	return C.double(distance)
}

//export osrmc_table_response_source_count
func osrmc_table_response_source_count(response C.osrmc_table_response_t, errOut *C.osrmc_error_t) C.uint {
	resp, ok := restoreTableResponse(response, errOut)
	if !ok {
		return 0
	}
	count, err := resp.SourceCount()
	if err != nil {
		setError(errOut, err)
		return 0
	}
	return C.uint(count)
}

//export osrmc_table_response_destination_count
func osrmc_table_response_destination_count(response C.osrmc_table_response_t, errOut *C.osrmc_error_t) C.uint {
	resp, ok := restoreTableResponse(response, errOut)
	if !ok {
		return 0
	}
	count, err := resp.DestinationCount()
	if err != nil {
		setError(errOut, err)
		return 0
	}
	return C.uint(count)
}

// copyMatrix writes a flattened matrix into the caller's buffer, failing
// with BufferTooSmall when maxSize entries do not cover it. Returns the
// entry count, or -1 on failure.
func copyMatrix(fetch func() ([]float64, error), matrix *C.double, maxSize C.size_t, errOut *C.osrmc_error_t) C.int {
	if matrix == nil {
		setInvalidArgument(errOut, "Matrix buffer cannot be null")
		return -1
	}
	values, err := fetch()
	if err != nil {
		setError(errOut, err)
		return -1
	}
	if len(values) > int(maxSize) {
		setError(errOut, &osrmc.Error{Code: osrmc.CodeBufferTooSmall, Message: "Matrix buffer too small"})
		return -1
	}
	out := unsafe.Slice((*float64)(unsafe.Pointer(matrix)), len(values))
	copy(out, values)
	return C.int(len(values))
}

//export osrmc_table_response_get_duration_matrix
func osrmc_table_response_get_duration_matrix(response C.osrmc_table_response_t, matrix *C.double, maxSize C.size_t, errOut *C.osrmc_error_t) C.int {
	resp, ok := restoreTableResponse(response, errOut)
	if !ok {
		return -1
	}
	return copyMatrix(resp.DurationMatrix, matrix, maxSize, errOut)
}

//export osrmc_table_response_get_distance_matrix
func osrmc_table_response_get_distance_matrix(response C.osrmc_table_response_t, matrix *C.double, maxSize C.size_t, errOut *C.osrmc_error_t) C.int {
	resp, ok := restoreTableResponse(response, errOut)
	if !ok {
		return -1
	}
	return copyMatrix(resp.DistanceMatrix, matrix, maxSize, errOut)
}

//export osrmc_table_response_json
func osrmc_table_response_json(response C.osrmc_table_response_t, errOut *C.osrmc_error_t) C.osrmc_blob_t {
	resp, ok := restoreTableResponse(response, errOut)
	if !ok {
		return nil
	}
	return renderBlob(resp.RenderJSON, errOut)
}

//export osrmc_table_response_transfer_flatbuffer
func osrmc_table_response_transfer_flatbuffer(response C.osrmc_table_response_t, data *unsafe.Pointer, size *C.size_t, deleter *C.osrmc_buffer_deleter_t, errOut *C.osrmc_error_t) {
	resp, ok := restoreTableResponse(response, errOut)
	if !ok {
		return
	}
	transferBuffer(resp.TransferFlatbuffer, data, size, deleter, errOut)
}
