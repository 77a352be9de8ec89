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

func restoreMatchParams(params C.osrmc_match_params_t, errOut *C.osrmc_error_t) (*osrmc.MatchParams, bool) {
	mp, ok := restore[*osrmc.MatchParams](unsafe.Pointer(params))
	if !ok {
		setInvalidArgument(errOut, "Match parameters cannot be null")
	}
	return mp, ok
}

func restoreMatchResponse(response C.osrmc_match_response_t, errOut *C.osrmc_error_t) (*osrmc.MatchResponse, bool) {
	resp, ok := restore[*osrmc.MatchResponse](unsafe.Pointer(response))
	if !ok {
		setInvalidArgument(errOut, "Match response cannot be null")
	}
	return resp, ok
}

//export osrmc_match_params_construct
func osrmc_match_params_construct(errOut *C.osrmc_error_t) C.osrmc_match_params_t {
	return C.osrmc_match_params_t(save(osrmc.NewMatchParams()))
}

//export osrmc_match_params_destruct
func osrmc_match_params_destruct(params C.osrmc_match_params_t) {
	unref(unsafe.Pointer(params))
}

//export osrmc_match_params_add_steps
func osrmc_match_params_add_steps(params C.osrmc_match_params_t, on C.int) {
	if mp, ok := restore[*osrmc.MatchParams](unsafe.Pointer(params)); ok {
		mp.SetSteps(on != 0)
	}
}

//export osrmc_match_params_add_alternatives
func osrmc_match_params_add_alternatives(params C.osrmc_match_params_t, on C.int) {
	if mp, ok := restore[*osrmc.MatchParams](unsafe.Pointer(params)); ok {
		mp.SetAlternatives(on != 0)
	}
}

//export osrmc_match_params_set_geometries
func osrmc_match_params_set_geometries(params C.osrmc_match_params_t, geometries *C.char, errOut *C.osrmc_error_t) {
	mp, ok := restoreMatchParams(params, errOut)
	if !ok {
		return
	}
	if geometries == nil {
		setInvalidArgument(errOut, "Geometries cannot be null")
		return
	}
	if err := mp.SetGeometries(C.GoString(geometries)); err != nil {
		setError(errOut, err)
	}
}

//export osrmc_match_params_set_overview
func osrmc_match_params_set_overview(params C.osrmc_match_params_t, overview *C.char, errOut *C.osrmc_error_t) {
	mp, ok := restoreMatchParams(params, errOut)
	if !ok {
		return
	}
	if overview == nil {
		setInvalidArgument(errOut, "Overview cannot be null")
		return
	}
	if err := mp.SetOverview(C.GoString(overview)); err != nil {
		setError(errOut, err)
	}
}

//export osrmc_match_params_set_continue_straight
func osrmc_match_params_set_continue_straight(params C.osrmc_match_params_t, on C.int, errOut *C.osrmc_error_t) {
	mp, ok := restoreMatchParams(params, errOut)
	if !ok {
		return
	}
	mp.SetContinueStraight(on != 0)
}

//export osrmc_match_params_set_number_of_alternatives
func osrmc_match_params_set_number_of_alternatives(params C.osrmc_match_params_t, count C.uint, errOut *C.osrmc_error_t) {
	mp, ok := restoreMatchParams(params, errOut)
	if !ok {
		return
	}
	mp.SetNumberOfAlternatives(uint32(count))
}

//export osrmc_match_params_set_annotations
func osrmc_match_params_set_annotations(params C.osrmc_match_params_t, annotations *C.char, errOut *C.osrmc_error_t) {
	mp, ok := restoreMatchParams(params, errOut)
	if !ok {
		return
	}
	if annotations == nil {
		setInvalidArgument(errOut, "Annotations cannot be null")
		return
	}
	if err := mp.SetAnnotations(C.GoString(annotations)); err != nil {
		setError(errOut, err)
	}
}

//export osrmc_match_params_add_waypoint
func osrmc_match_params_add_waypoint(params C.osrmc_match_params_t, index C.size_t, errOut *C.osrmc_error_t) {
	mp, ok := restoreMatchParams(params, errOut)
	if !ok {
		return
	}
	mp.AddWaypoint(int(index))
}

//export osrmc_match_params_clear_waypoints
func osrmc_match_params_clear_waypoints(params C.osrmc_match_params_t) {
	if mp, ok := restore[*osrmc.MatchParams](unsafe.Pointer(params)); ok {
		mp.ClearWaypoints()
	}
}

//export osrmc_match_params_add_timestamp
func osrmc_match_params_add_timestamp(params C.osrmc_match_params_t, timestamp C.uint, errOut *C.osrmc_error_t) {
	mp, ok := restoreMatchParams(params, errOut)
	if !ok {
		return
	}
	mp.AddTimestamp(int64(timestamp))
}

//export osrmc_match_params_set_gaps
func osrmc_match_params_set_gaps(params C.osrmc_match_params_t, gaps *C.char, errOut *C.osrmc_error_t) {
	mp, ok := restoreMatchParams(params, errOut)
	if !ok {
		return
	}
	if gaps == nil {
		setInvalidArgument(errOut, "Gaps cannot be null")
		return
	}
	if err := mp.SetGaps(C.GoString(gaps)); err != nil {
		setError(errOut, err)
	}
}

//export osrmc_match_params_set_tidy
func osrmc_match_params_set_tidy(params C.osrmc_match_params_t, on C.int, errOut *C.osrmc_error_t) {
	mp, ok := restoreMatchParams(params, errOut)
	if !ok {
		return
	}
	mp.SetTidy(on != 0)
}

//export osrmc_match
func osrmc_match(instance C.osrmc_osrm_t, params C.osrmc_match_params_t, errOut *C.osrmc_error_t) C.osrmc_match_response_t {
	o, ok := restoreOSRM(instance, errOut)
	if !ok {
		return nil
	}
	mp, ok := restoreMatchParams(params, errOut)
	if !ok {
		return nil
	}
	resp, err := o.Match(mp)
	if err != nil {
		setError(errOut, err)
		return nil
	}
	return C.osrmc_match_response_t(save(resp))
}

//export osrmc_match_response_destruct
func osrmc_match_response_destruct(response C.osrmc_match_response_t) {
	unref(unsafe.Pointer(response))
}

//export osrmc_match_response_route_count
func osrmc_match_response_route_count(response C.osrmc_match_response_t, errOut *C.osrmc_error_t) C.uint {
	resp, ok := restoreMatchResponse(response, errOut)
	if !ok {
		return 0
	}
	count, err := resp.RouteCount()
	if err != nil {
		setError(errOut, err)
		return 0
	}
	return C.uint(count)
}

//export osrmc_match_response_tracepoint_count
func osrmc_match_response_tracepoint_count(response C.osrmc_match_response_t, errOut *C.osrmc_error_t) C.uint {
	resp, ok := restoreMatchResponse(response, errOut)
	if !ok {
		return 0
	}
	count, err := resp.TracepointCount()
	if err != nil {
		setError(errOut, err)
		return 0
	}
	return C.uint(count)
}

//export osrmc_match_response_route_distance
func osrmc_match_response_route_distance(response C.osrmc_match_response_t, routeIndex C.uint, errOut *C.osrmc_error_t) C.double {
	resp, ok := restoreMatchResponse(response, errOut)
	if !ok {
		return C.double(math.Inf(1))
	}
	distance, err := resp.RouteDistance(int(routeIndex))
	if err != nil {
		setError(errOut, err)
		return C.double(math.Inf(1))
	}
	return C.double(distance)
}

//export osrmc_match_response_route_duration
func osrmc_match_response_route_duration(response C.osrmc_match_response_t, routeIndex C.uint, errOut *C.osrmc_error_t) C.double {
	resp, ok := restoreMatchResponse(response, errOut)
	if !ok {
		return C.double(math.Inf(1))
	}
	duration, err := resp.RouteDuration(int(routeIndex))
	if err != nil {
		setError(errOut, err)
		return C.double(math.Inf(1))
	}
	return C.double(duration)
}

//export osrmc_match_response_route_confidence
func osrmc_match_response_route_confidence(response C.osrmc_match_response_t, routeIndex C.uint, errOut *C.osrmc_error_t) C.double {
	resp, ok := restoreMatchResponse(response, errOut)
	if !ok {
		return C.double(math.NaN())
	}
	confidence, err := resp.RouteConfidence(int(routeIndex))
	if err != nil {
		setError(errOut, err)
		return C.double(math.NaN())
	}
	return C.double(confidence)
}

//export osrmc_match_response_tracepoint_latitude
func osrmc_match_response_tracepoint_latitude(response C.osrmc_match_response_t, index C.uint, errOut *C.osrmc_error_t) C.double {
	resp, ok := restoreMatchResponse(response, errOut)
	if !ok {
		return C.double(math.NaN())
	}
	latitude, err := resp.TracepointLatitude(int(index))
	if err != nil {
		setError(errOut, err)
		return C.double(math.NaN())
	}
	return C.double(latitude)
}

//export osrmc_match_response_tracepoint_longitude
func osrmc_match_response_tracepoint_longitude(response C.osrmc_match_response_t, index C.uint, errOut *C.osrmc_error_t) C.double {
	resp, ok := restoreMatchResponse(response, errOut)
	if !ok {
		return C.double(math.NaN())
	}
	longitude, err := resp.TracepointLongitude(int(index))
	if err != nil {
		setError(errOut, err)
		return C.double(math.NaN())
	}
	return C.double(longitude)
}

//export osrmc_match_response_tracepoint_is_null
func osrmc_match_response_tracepoint_is_null(response C.osrmc_match_response_t, index C.uint, errOut *C.osrmc_error_t) C.int {
	resp, ok := restoreMatchResponse(response, errOut)
	if !ok {
		return 0
	}
	isNull, err := resp.TracepointIsNull(int(index))
	if err != nil {
		setError(errOut, err)
		return 0
	}
	if isNull {
		return 1
	}
	return 0
}

//export osrmc_match_response_json
func osrmc_match_response_json(response C.osrmc_match_response_t, errOut *C.osrmc_error_t) C.osrmc_blob_t {
	resp, ok := restoreMatchResponse(response, errOut)
	if !ok {
		return nil
	}
	return renderBlob(resp.RenderJSON, errOut)
}

//export osrmc_match_response_transfer_flatbuffer
func osrmc_match_response_transfer_flatbuffer(response C.osrmc_match_response_t, data *unsafe.Pointer, size *C.size_t, deleter *C.osrmc_buffer_deleter_t, errOut *C.osrmc_error_t) {
	resp, ok := restoreMatchResponse(response, errOut)
	if !ok {
		return
	}
	transferBuffer(resp.TransferFlatbuffer, data, size, deleter, errOut)
}
