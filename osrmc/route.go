package osrmc

import (
	"github.com/moviro-hub/libosrmc/osrm"
	"github.com/moviro-hub/libosrmc/osrm/json"
)

// RouteParams accumulates a route request.
type RouteParams struct {
	Params
	routeLike
}

// NewRouteParams returns route parameters with the engine defaults.
func NewRouteParams() *RouteParams {
	rp := osrm.NewRouteParameters()
	return &RouteParams{
		Params:    Params{base: &rp.BaseParameters},
		routeLike: routeLike{route: rp},
	}
}

// Route computes a route through the parameter coordinates in order.
func (o *OSRM) Route(params *RouteParams) (resp *RouteResponse, err error) {
	defer guard(&err)

	if err := o.checkEngine(); err != nil {
		return nil, err
	}
	if params == nil {
		return nil, newError(CodeInvalidArgument, "Route parameters cannot be null")
	}
	result, err := o.dispatch("Route", func(r *osrm.Result) osrm.Status {
		return o.engine.Route(params.route, r)
	})
	if err != nil {
		return nil, err
	}
	return &RouteResponse{
		response:   response{result: result},
		geometries: params.route.Geometries,
	}, nil
}

// WaypointFunc receives one snapped waypoint of a successful route call.
type WaypointFunc func(name string, longitude, latitude float64)

// RouteWith computes a route and invokes fn once per snapped waypoint, in
// response order. Waypoints without a usable location are skipped; a missing
// waypoint array fails the whole call.
func (o *OSRM) RouteWith(params *RouteParams, fn WaypointFunc) (err error) {
	defer guard(&err)

	if fn == nil {
		return newError(CodeInvalidArgument, "Handler cannot be null")
	}
	if err := o.checkEngine(); err != nil {
		return err
	}
	if params == nil {
		return newError(CodeInvalidArgument, "Route parameters cannot be null")
	}
	result, err := o.dispatch("Route", func(r *osrm.Result) osrm.Status {
		return o.engine.Route(params.route, r)
	})
	if err != nil {
		return err
	}
	doc, ok := result.Document()
	if !ok {
		return newError(CodeInvalidFormat, "Response does not hold a document")
	}

	value, ok := doc.Get("waypoints")
	if !ok {
		return newError(CodeInvalidResponse, "Response does not contain waypoints")
	}
	waypoints, ok := value.(json.Array)
	if !ok {
		return memberError("waypoints")
	}
	for _, entry := range waypoints {
		waypoint, ok := entry.(*json.Object)
		if !ok {
			return newError(CodeException, "array entry is not an object")
		}
		locValue, ok := waypoint.Get("location")
		if !ok {
			continue
		}
		location, ok := locValue.(json.Array)
		if !ok {
			return memberError("location")
		}
		if len(location) < 2 {
			continue
		}

		name := ""
		if nameValue, ok := waypoint.Get("name"); ok {
			s, ok := nameValue.(json.String)
			if !ok {
				return memberError("name")
			}
			name = string(s)
		}

		lon, ok := location[0].(json.Number)
		if !ok {
			return newError(CodeException, "coordinate entry is not numeric")
		}
		lat, ok := location[1].(json.Number)
		if !ok {
			return newError(CodeException, "coordinate entry is not numeric")
		}
		fn(name, float64(lon), float64(lat))
	}
	return nil
}

// RouteResponse owns the result of one route call. The typed accessors
// require the structured-document alternative; a response produced with the
// binary format only supports TransferFlatbuffer.
type RouteResponse struct {
	response

	// geometries records the encoding the request asked for, which decides
	// how geometry strings are decoded on coordinate access.
	geometries osrm.Geometries
	cache      geometryCache
}

func (r *RouteResponse) routes() (json.Array, error) {
	doc, err := r.document()
	if err != nil {
		return nil, err
	}
	return arrayMember(doc, "routes")
}

func (r *RouteResponse) firstRoute() (*json.Object, error) {
	routes, err := r.routes()
	if err != nil {
		return nil, err
	}
	if len(routes) == 0 {
		return nil, newError(CodeException, "response carries no routes")
	}
	return objectAt(routes, 0)
}

func (r *RouteResponse) routeAt(index int) (*json.Object, error) {
	routes, err := r.routes()
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(routes) {
		return nil, newError(CodeIndexOutOfBounds, "Route index out of bounds")
	}
	return objectAt(routes, index)
}

// Distance returns the total distance of the primary route in meters.
func (r *RouteResponse) Distance() (float64, error) {
	route, err := r.firstRoute()
	if err != nil {
		return 0, err
	}
	return numberMember(route, "distance")
}

// Duration returns the total travel time of the primary route in seconds.
func (r *RouteResponse) Duration() (float64, error) {
	route, err := r.firstRoute()
	if err != nil {
		return 0, err
	}
	return numberMember(route, "duration")
}

// AlternativeCount returns how many routes the response carries, the primary
// included. A response without a route array counts zero.
func (r *RouteResponse) AlternativeCount() (int, error) {
	doc, err := r.document()
	if err != nil {
		return 0, err
	}
	value, ok := doc.Get("routes")
	if !ok {
		return 0, nil
	}
	routes, ok := value.(json.Array)
	if !ok {
		return 0, memberError("routes")
	}
	return len(routes), nil
}

// DistanceAt returns the distance of the route at index in meters.
func (r *RouteResponse) DistanceAt(index int) (float64, error) {
	route, err := r.routeAt(index)
	if err != nil {
		return 0, err
	}
	return numberMember(route, "distance")
}

// DurationAt returns the travel time of the route at index in seconds.
func (r *RouteResponse) DurationAt(index int) (float64, error) {
	route, err := r.routeAt(index)
	if err != nil {
		return 0, err
	}
	return numberMember(route, "duration")
}

// GeometryPolyline returns the encoded polyline of the route at index.
func (r *RouteResponse) GeometryPolyline(index int) (string, error) {
	route, err := r.routeAt(index)
	if err != nil {
		return "", err
	}
	geometry, ok := route.Get("geometry")
	if !ok {
		return "", newError(CodeNoGeometry, "Geometry not available for this route")
	}
	switch g := geometry.(type) {
	case json.String:
		return string(g), nil
	case *json.Object:
		for _, key := range []string{"polyline", "polyline6"} {
			if value, ok := g.Get(key); ok {
				s, ok := value.(json.String)
				if !ok {
					return "", memberError(key)
				}
				return string(s), nil
			}
		}
	}
	return "", newError(CodeNoPolyline, "Polyline geometry not available")
}

// GeometryCoordinateCount returns the number of geometry coordinates of the
// route at index, decoding and caching the geometry on first use.
func (r *RouteResponse) GeometryCoordinateCount(index int) (int, error) {
	route, err := r.routeAt(index)
	if err != nil {
		return 0, err
	}
	coords, err := r.cache.coordinates(route, index, r.geometries)
	if err != nil {
		return 0, err
	}
	return len(coords), nil
}

func (r *RouteResponse) geometryCoordinate(routeIndex, coordinateIndex int) (osrm.Coordinate, error) {
	route, err := r.routeAt(routeIndex)
	if err != nil {
		return osrm.Coordinate{}, err
	}
	coords, err := r.cache.coordinates(route, routeIndex, r.geometries)
	if err != nil {
		return osrm.Coordinate{}, err
	}
	if coordinateIndex < 0 || coordinateIndex >= len(coords) {
		return osrm.Coordinate{}, newError(CodeIndexOutOfBounds, "Coordinate index out of bounds")
	}
	return coords[coordinateIndex], nil
}

// GeometryCoordinateLatitude returns the latitude of one decoded geometry
// coordinate.
func (r *RouteResponse) GeometryCoordinateLatitude(routeIndex, coordinateIndex int) (float64, error) {
	coord, err := r.geometryCoordinate(routeIndex, coordinateIndex)
	if err != nil {
		return 0, err
	}
	return coord.Latitude, nil
}

// GeometryCoordinateLongitude returns the longitude of one decoded geometry
// coordinate.
func (r *RouteResponse) GeometryCoordinateLongitude(routeIndex, coordinateIndex int) (float64, error) {
	coord, err := r.geometryCoordinate(routeIndex, coordinateIndex)
	if err != nil {
		return 0, err
	}
	return coord.Longitude, nil
}

// WaypointCount returns the number of snapped waypoints. A response without
// a waypoint array counts zero.
func (r *RouteResponse) WaypointCount() (int, error) {
	doc, err := r.document()
	if err != nil {
		return 0, err
	}
	value, ok := doc.Get("waypoints")
	if !ok {
		return 0, nil
	}
	waypoints, ok := value.(json.Array)
	if !ok {
		return 0, memberError("waypoints")
	}
	return len(waypoints), nil
}

func (r *RouteResponse) waypointAt(index int) (*json.Object, error) {
	doc, err := r.document()
	if err != nil {
		return nil, err
	}
	waypoints, err := arrayMember(doc, "waypoints")
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(waypoints) {
		return nil, newError(CodeIndexOutOfBounds, "Waypoint index out of bounds")
	}
	return objectAt(waypoints, index)
}

func waypointLocation(waypoint *json.Object) (lon, lat float64, err error) {
	location, err := arrayMember(waypoint, "location")
	if err != nil {
		return 0, 0, err
	}
	if len(location) < 2 {
		return 0, 0, memberError("location")
	}
	lonNum, ok := location[0].(json.Number)
	if !ok {
		return 0, 0, newError(CodeException, "coordinate entry is not numeric")
	}
	latNum, ok := location[1].(json.Number)
	if !ok {
		return 0, 0, newError(CodeException, "coordinate entry is not numeric")
	}
	return float64(lonNum), float64(latNum), nil
}

// WaypointLatitude returns the snapped latitude of the waypoint at index.
func (r *RouteResponse) WaypointLatitude(index int) (float64, error) {
	waypoint, err := r.waypointAt(index)
	if err != nil {
		return 0, err
	}
	_, lat, err := waypointLocation(waypoint)
	return lat, err
}

// WaypointLongitude returns the snapped longitude of the waypoint at index.
func (r *RouteResponse) WaypointLongitude(index int) (float64, error) {
	waypoint, err := r.waypointAt(index)
	if err != nil {
		return 0, err
	}
	lon, _, err := waypointLocation(waypoint)
	return lon, err
}

// WaypointName returns the street name of the waypoint at index, or the
// empty string when the engine reported none.
func (r *RouteResponse) WaypointName(index int) (string, error) {
	waypoint, err := r.waypointAt(index)
	if err != nil {
		return "", err
	}
	value, ok := waypoint.Get("name")
	if !ok {
		return "", nil
	}
	name, ok := value.(json.String)
	if !ok {
		return "", memberError("name")
	}
	return string(name), nil
}

// LegCount returns the number of legs of the route at index. A route
// without a leg array counts zero.
func (r *RouteResponse) LegCount(index int) (int, error) {
	route, err := r.routeAt(index)
	if err != nil {
		return 0, err
	}
	value, ok := route.Get("legs")
	if !ok {
		return 0, nil
	}
	legs, ok := value.(json.Array)
	if !ok {
		return 0, memberError("legs")
	}
	return len(legs), nil
}

func (r *RouteResponse) legAt(routeIndex, legIndex int) (*json.Object, error) {
	route, err := r.routeAt(routeIndex)
	if err != nil {
		return nil, err
	}
	legs, err := arrayMember(route, "legs")
	if err != nil {
		return nil, err
	}
	if legIndex < 0 || legIndex >= len(legs) {
		return nil, newError(CodeIndexOutOfBounds, "Leg index out of bounds")
	}
	return objectAt(legs, legIndex)
}

// StepCount returns the number of steps of one leg. A leg without a step
// array counts zero.
func (r *RouteResponse) StepCount(routeIndex, legIndex int) (int, error) {
	leg, err := r.legAt(routeIndex, legIndex)
	if err != nil {
		return 0, err
	}
	value, ok := leg.Get("steps")
	if !ok {
		return 0, nil
	}
	steps, ok := value.(json.Array)
	if !ok {
		return 0, memberError("steps")
	}
	return len(steps), nil
}

func (r *RouteResponse) stepAt(routeIndex, legIndex, stepIndex int) (*json.Object, error) {
	leg, err := r.legAt(routeIndex, legIndex)
	if err != nil {
		return nil, err
	}
	steps, err := arrayMember(leg, "steps")
	if err != nil {
		return nil, err
	}
	if stepIndex < 0 || stepIndex >= len(steps) {
		return nil, newError(CodeIndexOutOfBounds, "Step index out of bounds")
	}
	return objectAt(steps, stepIndex)
}

// StepDistance returns the distance of one step in meters.
func (r *RouteResponse) StepDistance(routeIndex, legIndex, stepIndex int) (float64, error) {
	step, err := r.stepAt(routeIndex, legIndex, stepIndex)
	if err != nil {
		return 0, err
	}
	return numberMember(step, "distance")
}

// StepDuration returns the travel time of one step in seconds.
func (r *RouteResponse) StepDuration(routeIndex, legIndex, stepIndex int) (float64, error) {
	step, err := r.stepAt(routeIndex, legIndex, stepIndex)
	if err != nil {
		return 0, err
	}
	return numberMember(step, "duration")
}

// StepInstruction returns the maneuver instruction text of one step, or the
// empty string when the engine reported none.
func (r *RouteResponse) StepInstruction(routeIndex, legIndex, stepIndex int) (string, error) {
	step, err := r.stepAt(routeIndex, legIndex, stepIndex)
	if err != nil {
		return "", err
	}
	value, ok := step.Get("maneuver")
	if !ok {
		return "", nil
	}
	maneuver, ok := value.(*json.Object)
	if !ok {
		return "", memberError("maneuver")
	}
	value, ok = maneuver.Get("instruction")
	if !ok {
		return "", nil
	}
	instruction, ok := value.(json.String)
	if !ok {
		return "", memberError("instruction")
	}
	return string(instruction), nil
}
