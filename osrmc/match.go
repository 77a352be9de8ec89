package osrmc

import (
	"github.com/moviro-hub/libosrmc/osrm"
	"github.com/moviro-hub/libosrmc/osrm/json"
)

// MatchParams accumulates a map-matching request. Coordinates are the GPS
// trace in recording order.
type MatchParams struct {
	Params
	routeLike
	match *osrm.MatchParameters
}

// NewMatchParams returns match parameters with the engine defaults.
func NewMatchParams() *MatchParams {
	mp := osrm.NewMatchParameters()
	return &MatchParams{
		Params:    Params{base: &mp.BaseParameters},
		routeLike: routeLike{route: &mp.RouteParameters},
		match:     mp,
	}
}

// AddTimestamp appends a trace timestamp in Unix seconds. Timestamps run
// parallel to coordinates; the engine validates the pairing at request time.
func (p *MatchParams) AddTimestamp(timestamp int64) {
	p.match.Timestamps = append(p.match.Timestamps, timestamp)
}

// SetGaps selects the trace-gap policy by its request token ("split" or
// "ignore").
func (p *MatchParams) SetGaps(gaps string) error {
	value, ok := parseGaps(gaps)
	if !ok {
		return newError(CodeInvalidArgument, "Unknown gaps type")
	}
	p.match.Gaps = value
	return nil
}

// SetTidy lets the engine drop redundant trace points before matching.
func (p *MatchParams) SetTidy(on bool) {
	p.match.Tidy = on
}

// Match snaps a GPS trace onto the road network.
func (o *OSRM) Match(params *MatchParams) (resp *MatchResponse, err error) {
	defer guard(&err)

	if err := o.checkEngine(); err != nil {
		return nil, err
	}
	if params == nil {
		return nil, newError(CodeInvalidArgument, "Match parameters cannot be null")
	}
	result, err := o.dispatch("Match", func(r *osrm.Result) osrm.Status {
		return o.engine.Match(params.match, r)
	})
	if err != nil {
		return nil, err
	}
	return &MatchResponse{response: response{result: result}}, nil
}

// MatchResponse owns the result of one match call.
type MatchResponse struct {
	response
}

// RouteCount returns the number of matched sub-routes. A response without a
// matchings array counts zero.
func (r *MatchResponse) RouteCount() (int, error) {
	doc, err := r.document()
	if err != nil {
		return 0, err
	}
	value, ok := doc.Get("matchings")
	if !ok {
		return 0, nil
	}
	matchings, ok := value.(json.Array)
	if !ok {
		return 0, memberError("matchings")
	}
	return len(matchings), nil
}

// TracepointCount returns the number of tracepoint entries, omitted outliers
// included. A response without a tracepoint array counts zero.
func (r *MatchResponse) TracepointCount() (int, error) {
	doc, err := r.document()
	if err != nil {
		return 0, err
	}
	value, ok := doc.Get("tracepoints")
	if !ok {
		return 0, nil
	}
	tracepoints, ok := value.(json.Array)
	if !ok {
		return 0, memberError("tracepoints")
	}
	return len(tracepoints), nil
}

func (r *MatchResponse) matchingAt(index int) (*json.Object, error) {
	doc, err := r.document()
	if err != nil {
		return nil, err
	}
	matchings, err := arrayMember(doc, "matchings")
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(matchings) {
		return nil, newError(CodeIndexOutOfBounds, "Route index out of bounds")
	}
	return objectAt(matchings, index)
}

// RouteDistance returns the distance of the matched sub-route at index in
// meters.
func (r *MatchResponse) RouteDistance(index int) (float64, error) {
	matching, err := r.matchingAt(index)
	if err != nil {
		return 0, err
	}
	return numberMember(matching, "distance")
}

// RouteDuration returns the travel time of the matched sub-route at index in
// seconds.
func (r *MatchResponse) RouteDuration(index int) (float64, error) {
	matching, err := r.matchingAt(index)
	if err != nil {
		return 0, err
	}
	return numberMember(matching, "duration")
}

// RouteConfidence returns the engine's confidence in the sub-route at index,
// between 0 and 1.
func (r *MatchResponse) RouteConfidence(index int) (float64, error) {
	matching, err := r.matchingAt(index)
	if err != nil {
		return 0, err
	}
	value, ok := matching.Get("confidence")
	if !ok {
		return 0, newError(CodeNoConfidence, "Confidence not available for this route")
	}
	confidence, ok := value.(json.Number)
	if !ok {
		return 0, memberError("confidence")
	}
	return float64(confidence), nil
}

// tracepointAt returns the tracepoint value at index, which is null for
// trace points the engine discarded as outliers.
func (r *MatchResponse) tracepointAt(index int) (json.Value, error) {
	doc, err := r.document()
	if err != nil {
		return nil, err
	}
	tracepoints, err := arrayMember(doc, "tracepoints")
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(tracepoints) {
		return nil, newError(CodeIndexOutOfBounds, "Tracepoint index out of bounds")
	}
	return tracepoints[index], nil
}

func (r *MatchResponse) tracepointLocation(index int) (lon, lat float64, err error) {
	value, err := r.tracepointAt(index)
	if err != nil {
		return 0, 0, err
	}
	if _, isNull := value.(json.Null); isNull {
		return 0, 0, newError(CodeNullTracepoint, "Tracepoint was omitted (outlier)")
	}
	tracepoint, ok := value.(*json.Object)
	if !ok {
		return 0, 0, newError(CodeException, "array entry is not an object")
	}
	return waypointLocation(tracepoint)
}

// TracepointLatitude returns the snapped latitude of the tracepoint at
// index. An omitted tracepoint fails with NullTracepoint.
func (r *MatchResponse) TracepointLatitude(index int) (float64, error) {
	_, lat, err := r.tracepointLocation(index)
	return lat, err
}

// TracepointLongitude returns the snapped longitude of the tracepoint at
// index. An omitted tracepoint fails with NullTracepoint.
func (r *MatchResponse) TracepointLongitude(index int) (float64, error) {
	lon, _, err := r.tracepointLocation(index)
	return lon, err
}

// TracepointIsNull reports whether the engine discarded the trace point at
// index as an outlier.
func (r *MatchResponse) TracepointIsNull(index int) (bool, error) {
	value, err := r.tracepointAt(index)
	if err != nil {
		return false, err
	}
	_, isNull := value.(json.Null)
	return isNull, nil
}
