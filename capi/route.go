package capi

/*
#include <stdlib.h>

#include "bridge.h"
*/
import "C"

import (
	"math"
	"unsafe"

	"github.com/moviro-hub/libosrmc/osrmc"
)

// routeResponseHandle pairs the response with the C strings its accessors
// have handed out; the strings stay valid until the destructor runs.
type routeResponseHandle struct {
	resp *osrmc.RouteResponse
	strs cstrings
}

func restoreRouteParams(params C.osrmc_route_params_t, errOut *C.osrmc_error_t) (*osrmc.RouteParams, bool) {
	rp, ok := restore[*osrmc.RouteParams](unsafe.Pointer(params))
	if !ok {
		setInvalidArgument(errOut, "Route parameters cannot be null")
	}
	return rp, ok
}

func restoreRouteResponse(response C.osrmc_route_response_t, errOut *C.osrmc_error_t) (*routeResponseHandle, bool) {
	h, ok := restore[*routeResponseHandle](unsafe.Pointer(response))
	if !ok {
		setInvalidArgument(errOut, "Route response cannot be null")
	}
	return h, ok
}

//export osrmc_route_params_construct
func osrmc_route_params_construct(errOut *C.osrmc_error_t) C.osrmc_route_params_t {
	return C.osrmc_route_params_t(save(osrmc.NewRouteParams()))
}

//export osrmc_route_params_destruct
func osrmc_route_params_destruct(params C.osrmc_route_params_t) {
	unref(unsafe.Pointer(params))
}

//export osrmc_route_params_add_steps
func osrmc_route_params_add_steps(params C.osrmc_route_params_t, on C.int) {
	if rp, ok := restore[*osrmc.RouteParams](unsafe.Pointer(params)); ok {
		rp.SetSteps(on != 0)
	}
}

//export osrmc_route_params_add_alternatives
func osrmc_route_params_add_alternatives(params C.osrmc_route_params_t, on C.int) {
	if rp, ok := restore[*osrmc.RouteParams](unsafe.Pointer(params)); ok {
		rp.SetAlternatives(on != 0)
	}
}

//export osrmc_route_params_set_geometries
func osrmc_route_params_set_geometries(params C.osrmc_route_params_t, geometries *C.char, errOut *C.osrmc_error_t) {
	rp, ok := restoreRouteParams(params, errOut)
	if !ok {
		return
	}
	if geometries == nil {
		setInvalidArgument(errOut, "Geometries cannot be null")
		return
	}
	if err := rp.SetGeometries(C.GoString(geometries)); err != nil {
		setError(errOut, err)
	}
}

//export osrmc_route_params_set_overview
func osrmc_route_params_set_overview(params C.osrmc_route_params_t, overview *C.char, errOut *C.osrmc_error_t) {
	rp, ok := restoreRouteParams(params, errOut)
	if !ok {
		return
	}
	if overview == nil {
		setInvalidArgument(errOut, "Overview cannot be null")
		return
	}
	if err := rp.SetOverview(C.GoString(overview)); err != nil {
		setError(errOut, err)
	}
}

//export osrmc_route_params_set_continue_straight
func osrmc_route_params_set_continue_straight(params C.osrmc_route_params_t, on C.int, errOut *C.osrmc_error_t) {
	rp, ok := restoreRouteParams(params, errOut)
	if !ok {
		return
	}
	rp.SetContinueStraight(on != 0)
}

//export osrmc_route_params_set_number_of_alternatives
func osrmc_route_params_set_number_of_alternatives(params C.osrmc_route_params_t, count C.uint, errOut *C.osrmc_error_t) {
	rp, ok := restoreRouteParams(params, errOut)
	if !ok {
		return
	}
	rp.SetNumberOfAlternatives(uint32(count))
}

//export osrmc_route_params_set_annotations
func osrmc_route_params_set_annotations(params C.osrmc_route_params_t, annotations *C.char, errOut *C.osrmc_error_t) {
	rp, ok := restoreRouteParams(params, errOut)
	if !ok {
		return
	}
	if annotations == nil {
		setInvalidArgument(errOut, "Annotations cannot be null")
		return
	}
	if err := rp.SetAnnotations(C.GoString(annotations)); err != nil {
		setError(errOut, err)
	}
}

//export osrmc_route_params_add_waypoint
func osrmc_route_params_add_waypoint(params C.osrmc_route_params_t, index C.size_t, errOut *C.osrmc_error_t) {
	rp, ok := restoreRouteParams(params, errOut)
	if !ok {
		return
	}
	rp.AddWaypoint(int(index))
}

//export osrmc_route_params_clear_waypoints
func osrmc_route_params_clear_waypoints(params C.osrmc_route_params_t) {
	if rp, ok := restore[*osrmc.RouteParams](unsafe.Pointer(params)); ok {
		rp.ClearWaypoints()
	}
}

//export osrmc_route
func osrmc_route(instance C.osrmc_osrm_t, params C.osrmc_route_params_t, errOut *C.osrmc_error_t) C.osrmc_route_response_t {
	o, ok := restoreOSRM(instance, errOut)
	if !ok {
		return nil
	}
	rp, ok := restoreRouteParams(params, errOut)
	if !ok {
		return nil
	}
	resp, err := o.Route(rp)
	if err != nil {
		setError(errOut, err)
		return nil
	}
	return C.osrmc_route_response_t(save(&routeResponseHandle{resp: resp}))
}

//export osrmc_route_with
func osrmc_route_with(instance C.osrmc_osrm_t, params C.osrmc_route_params_t, handler C.osrmc_waypoint_handler_t, data unsafe.Pointer, errOut *C.osrmc_error_t) {
	o, ok := restoreOSRM(instance, errOut)
	if !ok {
		return
	}
	rp, ok := restoreRouteParams(params, errOut)
	if !ok {
		return
	}
	if handler == nil {
		setInvalidArgument(errOut, "Handler cannot be null")
		return
	}
	err := o.RouteWith(rp, func(name string, longitude, latitude float64) {
		cname := C.CString(name)
		defer C.free(unsafe.Pointer(cname))
		C.osrmc_invoke_waypoint_handler(handler, data, cname, C.double(longitude), C.double(latitude))
	})
	if err != nil {
		setError(errOut, err)
	}
}

//export osrmc_route_response_destruct
func osrmc_route_response_destruct(response C.osrmc_route_response_t) {
	p := unsafe.Pointer(response)
	if h, ok := restore[*routeResponseHandle](p); ok {
		h.strs.release()
	}
	unref(p)
}

//export osrmc_route_response_distance
func osrmc_route_response_distance(response C.osrmc_route_response_t, errOut *C.osrmc_error_t) C.double {
	h, ok := restoreRouteResponse(response, errOut)
	if !ok {
		return C.double(math.Inf(1))
	}
	distance, err := h.resp.Distance()
	if err != nil {
		setError(errOut, err)
		return C.double(math.Inf(1))
	}
	return C.double(distance)
}

//export osrmc_route_response_duration
func osrmc_route_response_duration(response C.osrmc_route_response_t, errOut *C.osrmc_error_t) C.double {
	h, ok := restoreRouteResponse(response, errOut)
	if !ok {
		return C.double(math.Inf(1))
	}
	duration, err := h.resp.Duration()
	if err != nil {
		setError(errOut, err)
		return C.double(math.Inf(1))
	}
	return C.double(duration)
}

//export osrmc_route_response_alternative_count
func osrmc_route_response_alternative_count(response C.osrmc_route_response_t, errOut *C.osrmc_error_t) C.uint {
	h, ok := restoreRouteResponse(response, errOut)
	if !ok {
		return 0
	}
	count, err := h.resp.AlternativeCount()
	if err != nil {
		setError(errOut, err)
		return 0
	}
	return C.uint(count)
}

//export osrmc_route_response_distance_at
func osrmc_route_response_distance_at(response C.osrmc_route_response_t, routeIndex C.uint, errOut *C.osrmc_error_t) C.double {
	h, ok := restoreRouteResponse(response, errOut)
	if !ok {
		return C.double(math.Inf(1))
	}
	distance, err := h.resp.DistanceAt(int(routeIndex))
	if err != nil {
		setError(errOut, err)
		return C.double(math.Inf(1))
	}
	return C.double(distance)
}

//export osrmc_route_response_duration_at
func osrmc_route_response_duration_at(response C.osrmc_route_response_t, routeIndex C.uint, errOut *C.osrmc_error_t) C.double {
	h, ok := restoreRouteResponse(response, errOut)
	if !ok {
		return C.double(math.Inf(1))
	}
	duration, err := h.resp.DurationAt(int(routeIndex))
	if err != nil {
		setError(errOut, err)
		return C.double(math.Inf(1))
	}
	return C.double(duration)
}

//export osrmc_route_response_geometry_polyline
func osrmc_route_response_geometry_polyline(response C.osrmc_route_response_t, routeIndex C.uint, errOut *C.osrmc_error_t) *C.char {
	h, ok := restoreRouteResponse(response, errOut)
	if !ok {
		return nil
	}
	polyline, err := h.resp.GeometryPolyline(int(routeIndex))
	if err != nil {
		setError(errOut, err)
		return nil
	}
	return h.strs.intern(polyline)
}

//export osrmc_route_response_geometry_coordinate_count
func osrmc_route_response_geometry_coordinate_count(response C.osrmc_route_response_t, routeIndex C.uint, errOut *C.osrmc_error_t) C.uint {
	h, ok := restoreRouteResponse(response, errOut)
	if !ok {
		return 0
	}
	count, err := h.resp.GeometryCoordinateCount(int(routeIndex))
	if err != nil {
		setError(errOut, err)
		return 0
	}
	return C.uint(count)
}

//export osrmc_route_response_geometry_coordinate_latitude
func osrmc_route_response_geometry_coordinate_latitude(response C.osrmc_route_response_t, routeIndex C.uint, coordIndex C.uint, errOut *C.osrmc_error_t) C.double {
	h, ok := restoreRouteResponse(response, errOut)
	if !ok {
		return C.double(math.NaN())
	}
	latitude, err := h.resp.GeometryCoordinateLatitude(int(routeIndex), int(coordIndex))
	if err != nil {
		setError(errOut, err)
		return C.double(math.NaN())
	}
	return C.double(latitude)
}

//export osrmc_route_response_geometry_coordinate_longitude
func osrmc_route_response_geometry_coordinate_longitude(response C.osrmc_route_response_t, routeIndex C.uint, coordIndex C.uint, errOut *C.osrmc_error_t) C.double {
	h, ok := restoreRouteResponse(response, errOut)
	if !ok {
		return C.double(math.NaN())
	}
	longitude, err := h.resp.GeometryCoordinateLongitude(int(routeIndex), int(coordIndex))
	if err != nil {
		setError(errOut, err)
		return C.double(math.NaN())
	}
	return C.double(longitude)
}

//export osrmc_route_response_waypoint_count
func osrmc_route_response_waypoint_count(response C.osrmc_route_response_t, errOut *C.osrmc_error_t) C.uint {
	h, ok := restoreRouteResponse(response, errOut)
	if !ok {
		return 0
	}
	count, err := h.resp.WaypointCount()
	if err != nil {
		setError(errOut, err)
		return 0
	}
	return C.uint(count)
}

//export osrmc_route_response_waypoint_latitude
func osrmc_route_response_waypoint_latitude(response C.osrmc_route_response_t, index C.uint, errOut *C.osrmc_error_t) C.double {
	h, ok := restoreRouteResponse(response, errOut)
	if !ok {
		return C.double(math.NaN())
	}
	latitude, err := h.resp.WaypointLatitude(int(index))
	if err != nil {
		setError(errOut, err)
		return C.double(math.NaN())
	}
	return C.double(latitude)
}

//export osrmc_route_response_waypoint_longitude
func osrmc_route_response_waypoint_longitude(response C.osrmc_route_response_t, index C.uint, errOut *C.osrmc_error_t) C.double {
	h, ok := restoreRouteResponse(response, errOut)
	if !ok {
		return C.double(math.NaN())
	}
	longitude, err := h.resp.WaypointLongitude(int(index))
	if err != nil {
		setError(errOut, err)
		return C.double(math.NaN())
	}
	return C.double(longitude)
}

//export osrmc_route_response_waypoint_name
func osrmc_route_response_waypoint_name(response C.osrmc_route_response_t, index C.uint, errOut *C.osrmc_error_t) *C.char {
	h, ok := restoreRouteResponse(response, errOut)
	if !ok {
		return nil
	}
	name, err := h.resp.WaypointName(int(index))
	if err != nil {
		setError(errOut, err)
		return nil
	}
	return h.strs.intern(name)
}

//export osrmc_route_response_leg_count
func osrmc_route_response_leg_count(response C.osrmc_route_response_t, routeIndex C.uint, errOut *C.osrmc_error_t) C.uint {
	h, ok := restoreRouteResponse(response, errOut)
	if !ok {
		return 0
	}
	count, err := h.resp.LegCount(int(routeIndex))
	if err != nil {
		setError(errOut, err)
		return 0
	}
	return C.uint(count)
}

//export osrmc_route_response_step_count
func osrmc_route_response_step_count(response C.osrmc_route_response_t, routeIndex C.uint, legIndex C.uint, errOut *C.osrmc_error_t) C.uint {
	h, ok := restoreRouteResponse(response, errOut)
	if !ok {
		return 0
	}
	count, err := h.resp.StepCount(int(routeIndex), int(legIndex))
	if err != nil {
		setError(errOut, err)
		return 0
	}
	return C.uint(count)
}

//export osrmc_route_response_step_distance
func osrmc_route_response_step_distance(response C.osrmc_route_response_t, routeIndex C.uint, legIndex C.uint, stepIndex C.uint, errOut *C.osrmc_error_t) C.double {
	h, ok := restoreRouteResponse(response, errOut)
	if !ok {
		return C.double(math.Inf(1))
	}
	distance, err := h.resp.StepDistance(int(routeIndex), int(legIndex), int(stepIndex))
	if err != nil {
		setError(errOut, err)
		return C.double(math.Inf(1))
	}
	return C.double(distance)
}

//export osrmc_route_response_step_duration
func osrmc_route_response_step_duration(response C.osrmc_route_response_t, routeIndex C.uint, legIndex C.uint, stepIndex C.uint, errOut *C.osrmc_error_t) C.double {
	h, ok := restoreRouteResponse(response, errOut)
	if !ok {
		return C.double(math.Inf(1))
	}
	duration, err := h.resp.StepDuration(int(routeIndex), int(legIndex), int(stepIndex))
	if err != nil {
		setError(errOut, err)
		return C.double(math.Inf(1))
	}
	return C.double(duration)
}

//export osrmc_route_response_step_instruction
func osrmc_route_response_step_instruction(response C.osrmc_route_response_t, routeIndex C.uint, legIndex C.uint, stepIndex C.uint, errOut *C.osrmc_error_t) *C.char {
	h, ok := restoreRouteResponse(response, errOut)
	if !ok {
		return nil
	}
	instruction, err := h.resp.StepInstruction(int(routeIndex), int(legIndex), int(stepIndex))
	if err != nil {
		setError(errOut, err)
		return nil
	}
	return h.strs.intern(instruction)
}

//export osrmc_route_response_json
func osrmc_route_response_json(response C.osrmc_route_response_t, errOut *C.osrmc_error_t) C.osrmc_blob_t {
	h, ok := restoreRouteResponse(response, errOut)
	if !ok {
		return nil
	}
	return renderBlob(h.resp.RenderJSON, errOut)
}

//export osrmc_route_response_transfer_flatbuffer
func osrmc_route_response_transfer_flatbuffer(response C.osrmc_route_response_t, data *unsafe.Pointer, size *C.size_t, deleter *C.osrmc_buffer_deleter_t, errOut *C.osrmc_error_t) {
	h, ok := restoreRouteResponse(response, errOut)
	if !ok {
		return
	}
	transferBuffer(h.resp.TransferFlatbuffer, data, size, deleter, errOut)
}
