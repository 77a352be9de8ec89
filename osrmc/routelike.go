package osrmc

import (
	"github.com/moviro-hub/libosrmc/osrm"
)

// routeLike is the setter surface shared by the route, match and trip
// parameter types, which all embed an osrm.RouteParameters.
type routeLike struct {
	route *osrm.RouteParameters
}

// SetSteps toggles turn-by-turn step objects in the response.
func (r *routeLike) SetSteps(on bool) {
	r.route.Steps = on
}

// SetAlternatives toggles alternative route search.
func (r *routeLike) SetAlternatives(on bool) {
	r.route.Alternatives = on
}

// SetNumberOfAlternatives requests up to count alternative routes. The
// alternatives flag follows: zero disables the search, anything else
// enables it.
func (r *routeLike) SetNumberOfAlternatives(count uint32) {
	r.route.NumberOfAlternatives = count
	r.route.Alternatives = count > 0
}

// SetGeometries selects the geometry encoding by its request token
// ("polyline", "polyline6" or "geojson").
func (r *routeLike) SetGeometries(geometries string) error {
	g, ok := parseGeometries(geometries)
	if !ok {
		return newError(CodeInvalidArgument, "Unknown geometries type")
	}
	r.route.Geometries = g
	return nil
}

// SetOverview selects the overview geometry level by its request token
// ("simplified", "full", "false" or "none").
func (r *routeLike) SetOverview(overview string) error {
	o, ok := parseOverview(overview)
	if !ok {
		return newError(CodeInvalidArgument, "Unknown overview type")
	}
	r.route.Overview = o
	return nil
}

// SetContinueStraight forces (or forbids) continuing straight at waypoints.
func (r *routeLike) SetContinueStraight(on bool) {
	r.route.ContinueStraight = &on
}

// ClearContinueStraight restores the engine default.
func (r *routeLike) ClearContinueStraight() {
	r.route.ContinueStraight = nil
}

// SetAnnotations selects per-segment metadata from a comma- or
// pipe-separated token mask such as "duration,distance". The annotations
// flag follows the mask: it is set exactly when the mask is non-empty.
func (r *routeLike) SetAnnotations(annotations string) error {
	mask, ok := parseRouteAnnotations(annotations)
	if !ok {
		return newError(CodeInvalidArgument, "Unknown annotation token")
	}
	r.route.AnnotationsType = mask
	r.route.Annotations = mask != osrm.AnnotationNone
	return nil
}

// ClearAnnotations removes all requested annotations.
func (r *routeLike) ClearAnnotations() {
	r.route.Annotations = false
	r.route.AnnotationsType = osrm.AnnotationNone
}

// AddWaypoint marks the input coordinate at index as a route waypoint.
// Index bounds are validated by the engine at request time.
func (r *routeLike) AddWaypoint(index int) {
	r.route.Waypoints = append(r.route.Waypoints, index)
}

// ClearWaypoints removes all waypoint marks.
func (r *routeLike) ClearWaypoints() {
	r.route.Waypoints = nil
}
