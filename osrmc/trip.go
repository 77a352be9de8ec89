package osrmc

import (
	"github.com/moviro-hub/libosrmc/osrm"
	"github.com/moviro-hub/libosrmc/osrm/json"
)

// TripParams accumulates a trip (travelling-salesman) request.
type TripParams struct {
	Params
	routeLike
	trip *osrm.TripParameters
}

// NewTripParams returns trip parameters with the engine defaults: a
// roundtrip visiting every coordinate.
func NewTripParams() *TripParams {
	tp := osrm.NewTripParameters()
	return &TripParams{
		Params:    Params{base: &tp.BaseParameters},
		routeLike: routeLike{route: &tp.RouteParameters},
		trip:      tp,
	}
}

// SetRoundtrip toggles returning to the first waypoint at the end of the
// trip.
func (p *TripParams) SetRoundtrip(on bool) {
	p.trip.Roundtrip = on
}

// SetSource fixes where the trip starts, by its request token ("first" or
// "any").
func (p *TripParams) SetSource(source string) error {
	value, ok := parseTripSource(source)
	if !ok {
		return newError(CodeInvalidArgument, "Source must be 'first' or 'any'")
	}
	p.trip.Source = value
	return nil
}

// SetDestination fixes where the trip ends, by its request token ("last" or
// "any").
func (p *TripParams) SetDestination(destination string) error {
	value, ok := parseTripDestination(destination)
	if !ok {
		return newError(CodeInvalidArgument, "Destination must be 'last' or 'any'")
	}
	p.trip.Destination = value
	return nil
}

// Trip solves the travelling-salesman problem over the parameter
// coordinates.
func (o *OSRM) Trip(params *TripParams) (resp *TripResponse, err error) {
	defer guard(&err)

	if err := o.checkEngine(); err != nil {
		return nil, err
	}
	if params == nil {
		return nil, newError(CodeInvalidArgument, "Trip parameters cannot be null")
	}
	result, err := o.dispatch("Trip", func(r *osrm.Result) osrm.Status {
		return o.engine.Trip(params.trip, r)
	})
	if err != nil {
		return nil, err
	}
	return &TripResponse{response: response{result: result}}, nil
}

// TripResponse owns the result of one trip call.
type TripResponse struct {
	response
}

func (r *TripResponse) firstTrip() (*json.Object, error) {
	doc, err := r.document()
	if err != nil {
		return nil, err
	}
	trips, err := arrayMember(doc, "trips")
	if err != nil {
		return nil, err
	}
	if len(trips) == 0 {
		return nil, newError(CodeException, "response carries no trips")
	}
	return objectAt(trips, 0)
}

// Distance returns the total distance of the computed trip in meters.
func (r *TripResponse) Distance() (float64, error) {
	trip, err := r.firstTrip()
	if err != nil {
		return 0, err
	}
	return numberMember(trip, "distance")
}

// Duration returns the total travel time of the computed trip in seconds.
func (r *TripResponse) Duration() (float64, error) {
	trip, err := r.firstTrip()
	if err != nil {
		return 0, err
	}
	return numberMember(trip, "duration")
}

// WaypointCount returns the number of visited waypoints. A response without
// a waypoint array counts zero.
func (r *TripResponse) WaypointCount() (int, error) {
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

func (r *TripResponse) waypointAt(index int) (*json.Object, error) {
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

// WaypointLatitude returns the snapped latitude of the trip waypoint at
// index.
func (r *TripResponse) WaypointLatitude(index int) (float64, error) {
	waypoint, err := r.waypointAt(index)
	if err != nil {
		return 0, err
	}
	_, lat, err := waypointLocation(waypoint)
	return lat, err
}

// WaypointLongitude returns the snapped longitude of the trip waypoint at
// index.
func (r *TripResponse) WaypointLongitude(index int) (float64, error) {
	waypoint, err := r.waypointAt(index)
	if err != nil {
		return 0, err
	}
	lon, _, err := waypointLocation(waypoint)
	return lon, err
}
