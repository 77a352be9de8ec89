package capi

/*
#include "osrmc_types.h"
*/
import "C"

import (
	"unsafe"

	"github.com/moviro-hub/libosrmc/osrm"
	"github.com/moviro-hub/libosrmc/osrmc"
)

// The generic entry points operate on osrmc_params_t, the structural base
// the service parameter handles are cast to on the C side. baseParams
// recovers the shared setter surface from whichever service handle arrives.

func restoreParams(params C.osrmc_params_t, errOut *C.osrmc_error_t) (*osrmc.Params, bool) {
	base, ok := baseParams(unsafe.Pointer(params))
	if !ok {
		setInvalidArgument(errOut, "Params cannot be null")
	}
	return base, ok
}

//export osrmc_params_add_coordinate
func osrmc_params_add_coordinate(params C.osrmc_params_t, longitude C.double, latitude C.double, errOut *C.osrmc_error_t) {
	base, ok := restoreParams(params, errOut)
	if !ok {
		return
	}
	base.AddCoordinate(float64(longitude), float64(latitude))
}

//export osrmc_params_add_coordinate_with
func osrmc_params_add_coordinate_with(params C.osrmc_params_t, longitude C.double, latitude C.double, radius C.double, bearing C.int, rng C.int, errOut *C.osrmc_error_t) {
	base, ok := restoreParams(params, errOut)
	if !ok {
		return
	}
	base.AddCoordinateWith(float64(longitude), float64(latitude), float64(radius), int(bearing), int(rng))
}

//export osrmc_params_set_hint
func osrmc_params_set_hint(params C.osrmc_params_t, coordinateIndex C.size_t, hintBase64 *C.char, errOut *C.osrmc_error_t) {
	base, ok := restoreParams(params, errOut)
	if !ok {
		return
	}
	hint := ""
	if hintBase64 != nil {
		hint = C.GoString(hintBase64)
	}
	if err := base.SetHint(int(coordinateIndex), hint); err != nil {
		setError(errOut, err)
	}
}

//export osrmc_params_set_radius
func osrmc_params_set_radius(params C.osrmc_params_t, coordinateIndex C.size_t, radius C.double, errOut *C.osrmc_error_t) {
	base, ok := restoreParams(params, errOut)
	if !ok {
		return
	}
	if err := base.SetRadius(int(coordinateIndex), float64(radius)); err != nil {
		setError(errOut, err)
	}
}

//export osrmc_params_set_bearing
func osrmc_params_set_bearing(params C.osrmc_params_t, coordinateIndex C.size_t, value C.int, rng C.int, errOut *C.osrmc_error_t) {
	base, ok := restoreParams(params, errOut)
	if !ok {
		return
	}
	if err := base.SetBearing(int(coordinateIndex), int(value), int(rng)); err != nil {
		setError(errOut, err)
	}
}

//export osrmc_params_set_approach
func osrmc_params_set_approach(params C.osrmc_params_t, coordinateIndex C.size_t, approach C.osrmc_approach_t, errOut *C.osrmc_error_t) {
	base, ok := restoreParams(params, errOut)
	if !ok {
		return
	}
	if err := base.SetApproach(int(coordinateIndex), osrm.Approach(approach)); err != nil {
		setError(errOut, err)
	}
}

//export osrmc_params_add_exclude
func osrmc_params_add_exclude(params C.osrmc_params_t, excludeProfile *C.char, errOut *C.osrmc_error_t) {
	base, ok := restoreParams(params, errOut)
	if !ok {
		return
	}
	if excludeProfile == nil {
		setInvalidArgument(errOut, "Exclude profile cannot be null")
		return
	}
	base.AddExclude(C.GoString(excludeProfile))
}

//export osrmc_params_set_generate_hints
func osrmc_params_set_generate_hints(params C.osrmc_params_t, on C.int) {
	if base, ok := baseParams(unsafe.Pointer(params)); ok {
		base.SetGenerateHints(on != 0)
	}
}

//export osrmc_params_set_skip_waypoints
func osrmc_params_set_skip_waypoints(params C.osrmc_params_t, on C.int) {
	if base, ok := baseParams(unsafe.Pointer(params)); ok {
		base.SetSkipWaypoints(on != 0)
	}
}

//export osrmc_params_set_snapping
func osrmc_params_set_snapping(params C.osrmc_params_t, snapping C.osrmc_snapping_t, errOut *C.osrmc_error_t) {
	base, ok := restoreParams(params, errOut)
	if !ok {
		return
	}
	if err := base.SetSnapping(osrm.Snapping(snapping)); err != nil {
		setError(errOut, err)
	}
}

//export osrmc_params_set_format
func osrmc_params_set_format(params C.osrmc_params_t, format C.osrmc_output_format_t, errOut *C.osrmc_error_t) {
	base, ok := restoreParams(params, errOut)
	if !ok {
		return
	}
	if err := base.SetOutputFormat(osrm.OutputFormat(format)); err != nil {
		setError(errOut, err)
	}
}
