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

func restoreTripParams(params C.osrmc_trip_params_t, errOut *C.osrmc_error_t) (*osrmc.TripParams, bool) {
	tp, ok := restore[*osrmc.TripParams](unsafe.Pointer(params))
	if !ok {
		setInvalidArgument(errOut, "Trip parameters cannot be null")
	}
	return tp, ok
}

func restoreTripResponse(response C.osrmc_trip_response_t, errOut *C.osrmc_error_t) (*osrmc.TripResponse, bool) {
	resp, ok := restore[*osrmc.TripResponse](unsafe.Pointer(response))
	if !ok {
		setInvalidArgument(errOut, "Trip response cannot be null")
	}
	return resp, ok
}

//export osrmc_trip_params_construct
func osrmc_trip_params_construct(errOut *C.osrmc_error_t) C.osrmc_trip_params_t {
	return C.osrmc_trip_params_t(save(osrmc.NewTripParams()))
}

//export osrmc_trip_params_destruct
func osrmc_trip_params_destruct(params C.osrmc_trip_params_t) {
	unref(unsafe.Pointer(params))
}

//export osrmc_trip_params_add_roundtrip
func osrmc_trip_params_add_roundtrip(params C.osrmc_trip_params_t, on C.int, errOut *C.osrmc_error_t) {
	tp, ok := restoreTripParams(params, errOut)
	if !ok {
		return
	}
	tp.SetRoundtrip(on != 0)
}

//export osrmc_trip_params_add_source
func osrmc_trip_params_add_source(params C.osrmc_trip_params_t, source *C.char, errOut *C.osrmc_error_t) {
	tp, ok := restoreTripParams(params, errOut)
	if !ok {
		return
	}
	if source == nil {
		setInvalidArgument(errOut, "Source cannot be null")
		return
	}
	if err := tp.SetSource(C.GoString(source)); err != nil {
		setError(errOut, err)
	}
}

//export osrmc_trip_params_add_destination
func osrmc_trip_params_add_destination(params C.osrmc_trip_params_t, destination *C.char, errOut *C.osrmc_error_t) {
	tp, ok := restoreTripParams(params, errOut)
	if !ok {
		return
	}
	if destination == nil {
		setInvalidArgument(errOut, "Destination cannot be null")
		return
	}
	if err := tp.SetDestination(C.GoString(destination)); err != nil {
		setError(errOut, err)
	}
}

//export osrmc_trip_params_add_steps
func osrmc_trip_params_add_steps(params C.osrmc_trip_params_t, on C.int) {
	if tp, ok := restore[*osrmc.TripParams](unsafe.Pointer(params)); ok {
		tp.SetSteps(on != 0)
	}
}

//export osrmc_trip_params_add_alternatives
func osrmc_trip_params_add_alternatives(params C.osrmc_trip_params_t, on C.int) {
	if tp, ok := restore[*osrmc.TripParams](unsafe.Pointer(params)); ok {
		tp.SetAlternatives(on != 0)
	}
}

//export osrmc_trip_params_set_geometries
func osrmc_trip_params_set_geometries(params C.osrmc_trip_params_t, geometries *C.char, errOut *C.osrmc_error_t) {
	tp, ok := restoreTripParams(params, errOut)
	if !ok {
		return
	}
	if geometries == nil {
		setInvalidArgument(errOut, "Geometries cannot be null")
		return
	}
	if err := tp.SetGeometries(C.GoString(geometries)); err != nil {
		setError(errOut, err)
	}
}

//export osrmc_trip_params_set_overview
func osrmc_trip_params_set_overview(params C.osrmc_trip_params_t, overview *C.char, errOut *C.osrmc_error_t) {
	tp, ok := restoreTripParams(params, errOut)
	if !ok {
		return
	}
	if overview == nil {
		setInvalidArgument(errOut, "Overview cannot be null")
		return
	}
	if err := tp.SetOverview(C.GoString(overview)); err != nil {
		setError(errOut, err)
	}
}

//export osrmc_trip_params_set_continue_straight
func osrmc_trip_params_set_continue_straight(params C.osrmc_trip_params_t, on C.int, errOut *C.osrmc_error_t) {
	tp, ok := restoreTripParams(params, errOut)
	if !ok {
		return
	}
	tp.SetContinueStraight(on != 0)
}

//export osrmc_trip_params_set_number_of_alternatives
func osrmc_trip_params_set_number_of_alternatives(params C.osrmc_trip_params_t, count C.uint, errOut *C.osrmc_error_t) {
	tp, ok := restoreTripParams(params, errOut)
	if !ok {
		return
	}
	tp.SetNumberOfAlternatives(uint32(count))
}

//export osrmc_trip_params_set_annotations
func osrmc_trip_params_set_annotations(params C.osrmc_trip_params_t, annotations *C.char, errOut *C.osrmc_error_t) {
	tp, ok := restoreTripParams(params, errOut)
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

//export osrmc_trip_params_clear_waypoints
func osrmc_trip_params_clear_waypoints(params C.osrmc_trip_params_t) {
	if tp, ok := restore[*osrmc.TripParams](unsafe.Pointer(params)); ok {
		tp.ClearWaypoints()
	}
}

//export osrmc_trip_params_add_waypoint
func osrmc_trip_params_add_waypoint(params C.osrmc_trip_params_t, index C.size_t, errOut *C.osrmc_error_t) {
	tp, ok := restoreTripParams(params, errOut)
	if !ok {
		return
	}
	tp.AddWaypoint(int(index))
}

//export osrmc_trip
func osrmc_trip(instance C.osrmc_osrm_t, params C.osrmc_trip_params_t, errOut *C.osrmc_error_t) C.osrmc_trip_response_t {
	o, ok := restoreOSRM(instance, errOut)
	if !ok {
		return nil
	}
	tp, ok := restoreTripParams(params, errOut)
	if !ok {
		return nil
	}
	resp, err := o.Trip(tp)
	if err != nil {
		setError(errOut, err)
		return nil
	}
	return C.osrmc_trip_response_t(save(resp))
}

//export osrmc_trip_response_destruct
func osrmc_trip_response_destruct(response C.osrmc_trip_response_t) {
	unref(unsafe.Pointer(response))
}

//export osrmc_trip_response_distance
func osrmc_trip_response_distance(response C.osrmc_trip_response_t, errOut *C.osrmc_error_t) C.double {
	resp, ok := restoreTripResponse(response, errOut)
	if !ok {
		return C.double(math.Inf(1))
	}
	distance, err := resp.Distance()
	if err != nil {
		setError(errOut, err)
		return C.double(math.Inf(1))
	}
	return C.double(distance)
}

//export osrmc_trip_response_duration
func osrmc_trip_response_duration(response C.osrmc_trip_response_t, errOut *C.osrmc_error_t) C.double {
	resp, ok := restoreTripResponse(response, errOut)
	if !ok {
		return C.double(math.Inf(1))
	}
	duration, err := resp.Duration()
	if err != nil {
		setError(errOut, err)
		return C.double(math.Inf(1))
	}
	return C.double(duration)
}

//export osrmc_trip_response_waypoint_count
func osrmc_trip_response_waypoint_count(response C.osrmc_trip_response_t, errOut *C.osrmc_error_t) C.uint {
	resp, ok := restoreTripResponse(response, errOut)
	if !ok {
		return 0
	}
	count, err := resp.WaypointCount()
	if err != nil {
		setError(errOut, err)
		return 0
	}
	return C.uint(count)
}

//export osrmc_trip_response_waypoint_latitude
func osrmc_trip_response_waypoint_latitude(response C.osrmc_trip_response_t, index C.uint, errOut *C.osrmc_error_t) C.double {
	resp, ok := restoreTripResponse(response, errOut)
	if !ok {
		return C.double(math.NaN())
	}
	latitude, err := resp.WaypointLatitude(int(index))
	if err != nil {
		setError(errOut, err)
		return C.double(math.NaN())
	}
	return C.double(latitude)
}

//export osrmc_trip_response_waypoint_longitude
func osrmc_trip_response_waypoint_longitude(response C.osrmc_trip_response_t, index C.uint, errOut *C.osrmc_error_t) C.double {
	resp, ok := restoreTripResponse(response, errOut)
	if !ok {
		return C.double(math.NaN())
	}
	longitude, err := resp.WaypointLongitude(int(index))
	if err != nil {
		setError(errOut, err)
		return C.double(math.NaN())
	}
	return C.double(longitude)
}

//export osrmc_trip_response_json
func osrmc_trip_response_json(response C.osrmc_trip_response_t, errOut *C.osrmc_error_t) C.osrmc_blob_t {
	resp, ok := restoreTripResponse(response, errOut)
	if !ok {
		return nil
	}
	return renderBlob(resp.RenderJSON, errOut)
}

//export osrmc_trip_response_transfer_flatbuffer
func osrmc_trip_response_transfer_flatbuffer(response C.osrmc_trip_response_t, data *unsafe.Pointer, size *C.size_t, deleter *C.osrmc_buffer_deleter_t, errOut *C.osrmc_error_t) {
	resp, ok := restoreTripResponse(response, errOut)
	if !ok {
		return
	}
	transferBuffer(resp.TransferFlatbuffer, data, size, deleter, errOut)
}
