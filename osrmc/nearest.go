package osrmc

import (
	"github.com/moviro-hub/libosrmc/osrm"
	"github.com/moviro-hub/libosrmc/osrm/json"
)

// NearestParams accumulates a nearest request.
type NearestParams struct {
	Params
	nearest *osrm.NearestParameters
}

// NewNearestParams returns nearest parameters with the engine defaults.
func NewNearestParams() *NearestParams {
	np := osrm.NewNearestParameters()
	return &NearestParams{
		Params:  Params{base: &np.BaseParameters},
		nearest: np,
	}
}

// SetNumberOfResults requests up to n snapped candidates.
func (p *NearestParams) SetNumberOfResults(n uint32) {
	p.nearest.NumberOfResults = n
}

// Nearest snaps the parameter coordinate to the road network.
func (o *OSRM) Nearest(params *NearestParams) (resp *NearestResponse, err error) {
	defer guard(&err)

	if err := o.checkEngine(); err != nil {
		return nil, err
	}
	if params == nil {
		return nil, newError(CodeInvalidArgument, "Nearest parameters cannot be null")
	}
	result, err := o.dispatch("Nearest", func(r *osrm.Result) osrm.Status {
		return o.engine.Nearest(params.nearest, r)
	})
	if err != nil {
		return nil, err
	}
	return &NearestResponse{response: response{result: result}}, nil
}

// NearestResponse owns the result of one nearest call.
type NearestResponse struct {
	response
}

// Count returns the number of snapped candidates. A response without a
// waypoint array counts zero.
func (r *NearestResponse) Count() (int, error) {
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

func (r *NearestResponse) waypointAt(index int) (*json.Object, error) {
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

// Latitude returns the snapped latitude of the candidate at index.
func (r *NearestResponse) Latitude(index int) (float64, error) {
	waypoint, err := r.waypointAt(index)
	if err != nil {
		return 0, err
	}
	_, lat, err := waypointLocation(waypoint)
	return lat, err
}

// Longitude returns the snapped longitude of the candidate at index.
func (r *NearestResponse) Longitude(index int) (float64, error) {
	waypoint, err := r.waypointAt(index)
	if err != nil {
		return 0, err
	}
	lon, _, err := waypointLocation(waypoint)
	return lon, err
}

// Name returns the street name of the candidate at index.
func (r *NearestResponse) Name(index int) (string, error) {
	waypoint, err := r.waypointAt(index)
	if err != nil {
		return "", err
	}
	return stringMember(waypoint, "name")
}

// Distance returns the snapping distance of the candidate at index in
// meters.
func (r *NearestResponse) Distance(index int) (float64, error) {
	waypoint, err := r.waypointAt(index)
	if err != nil {
		return 0, err
	}
	return numberMember(waypoint, "distance")
}

// Hint returns the base-64 snapping hint of the candidate at index, suitable
// for Params.SetHint on a later request.
func (r *NearestResponse) Hint(index int) (string, error) {
	waypoint, err := r.waypointAt(index)
	if err != nil {
		return "", err
	}
	value, ok := waypoint.Get("hint")
	if !ok {
		return "", newError(CodeNoHint, "Hint not available for this waypoint")
	}
	hint, ok := value.(json.String)
	if !ok {
		return "", memberError("hint")
	}
	return string(hint), nil
}
