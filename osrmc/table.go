package osrmc

import (
	"math"

	"github.com/moviro-hub/libosrmc/osrm"
	"github.com/moviro-hub/libosrmc/osrm/json"
)

// TableParams accumulates a table (many-to-many matrix) request.
type TableParams struct {
	Params
	table *osrm.TableParameters
}

// NewTableParams returns table parameters with the engine defaults: every
// coordinate is both source and destination, durations only.
func NewTableParams() *TableParams {
	tp := osrm.NewTableParameters()
	return &TableParams{
		Params: Params{base: &tp.BaseParameters},
		table:  tp,
	}
}

// AddSource restricts the matrix rows to the listed coordinate indices.
// Index bounds are validated by the engine at request time.
func (p *TableParams) AddSource(index int) {
	p.table.Sources = append(p.table.Sources, index)
}

// AddDestination restricts the matrix columns to the listed coordinate
// indices. Index bounds are validated by the engine at request time.
func (p *TableParams) AddDestination(index int) {
	p.table.Destinations = append(p.table.Destinations, index)
}

// SetAnnotations selects which matrices the response carries, from a comma-
// or pipe-separated token mask over "duration", "distance", "all" and
// "none".
func (p *TableParams) SetAnnotations(annotations string) error {
	mask, ok := parseTableAnnotations(annotations)
	if !ok {
		return newError(CodeInvalidArgument, "Unknown annotation token")
	}
	p.table.Annotations = mask
	return nil
}

// SetFallbackSpeed makes the engine estimate matrix entries for unsnappable
// coordinates from straight-line distance at the given speed.
func (p *TableParams) SetFallbackSpeed(speed float64) error {
	if speed <= 0 {
		return newError(CodeInvalidArgument, "Fallback speed must be positive")
	}
	p.table.FallbackSpeed = speed
	return nil
}

// SetFallbackCoordinateType selects which coordinate fallback estimation
// starts from, by its request token ("input" or "snapped").
func (p *TableParams) SetFallbackCoordinateType(coordinateType string) error {
	value, ok := parseFallbackCoordinate(coordinateType)
	if !ok {
		return newError(CodeInvalidArgument, "Unknown coordinate type")
	}
	p.table.FallbackCoordinateType = value
	return nil
}

// SetScaleFactor multiplies every duration entry in the response.
func (p *TableParams) SetScaleFactor(factor float64) error {
	if factor <= 0 {
		return newError(CodeInvalidArgument, "Scale factor must be positive")
	}
	p.table.ScaleFactor = factor
	return nil
}

// Table computes duration and/or distance matrices between the parameter
// coordinates.
func (o *OSRM) Table(params *TableParams) (resp *TableResponse, err error) {
	defer guard(&err)

	if err := o.checkEngine(); err != nil {
		return nil, err
	}
	if params == nil {
		return nil, newError(CodeInvalidArgument, "Table parameters cannot be null")
	}
	result, err := o.dispatch("Table", func(r *osrm.Result) osrm.Status {
		return o.engine.Table(params.table, r)
	})
	if err != nil {
		return nil, err
	}
	return &TableResponse{response: response{result: result}}, nil
}

// TableResponse owns the result of one table call.
type TableResponse struct {
	response
}

func (r *TableResponse) cell(key, noTableMessage string, from, to int) (float64, error) {
	doc, err := r.document()
	if err != nil {
		return 0, err
	}
	value, ok := doc.Get(key)
	if !ok {
		return 0, newError(CodeNoTable, noTableMessage)
	}
	rows, ok := value.(json.Array)
	if !ok {
		return 0, memberError(key)
	}
	if from < 0 || from >= len(rows) {
		return 0, newError(CodeException, "matrix index out of range")
	}
	row, ok := rows[from].(json.Array)
	if !ok {
		return 0, newError(CodeException, "matrix row is not an array")
	}
	if to < 0 || to >= len(row) {
		return 0, newError(CodeException, "matrix index out of range")
	}
	switch cell := row[to].(type) {
	case json.Null:
		return 0, newError(CodeNoRoute, "Impossible route between points")
	case json.Number:
		return float64(cell), nil
	}
	return 0, newError(CodeException, "matrix cell is not numeric")
}

// Duration returns the travel time from source row to destination column in
// seconds. An unreachable pair fails with NoRoute.
func (r *TableResponse) Duration(from, to int) (float64, error) {
	return r.cell("durations", "Table request not configured to return durations", from, to)
}

// Distance returns the distance from source row to destination column in
// meters. An unreachable pair fails with NoRoute.
func (r *TableResponse) Distance(from, to int) (float64, error) {
	return r.cell("distances", "Table request not configured to return distances", from, to)
}

// SourceCount returns the number of matrix rows. Without a source array the
// count falls back to the duration matrix row count.
func (r *TableResponse) SourceCount() (int, error) {
	doc, err := r.document()
	if err != nil {
		return 0, err
	}
	if value, ok := doc.Get("sources"); ok {
		sources, ok := value.(json.Array)
		if !ok {
			return 0, memberError("sources")
		}
		return len(sources), nil
	}
	if value, ok := doc.Get("durations"); ok {
		durations, ok := value.(json.Array)
		if !ok {
			return 0, memberError("durations")
		}
		return len(durations), nil
	}
	return 0, nil
}

// DestinationCount returns the number of matrix columns. Without a
// destination array the count falls back to the first duration row length.
func (r *TableResponse) DestinationCount() (int, error) {
	doc, err := r.document()
	if err != nil {
		return 0, err
	}
	if value, ok := doc.Get("destinations"); ok {
		destinations, ok := value.(json.Array)
		if !ok {
			return 0, memberError("destinations")
		}
		return len(destinations), nil
	}
	if value, ok := doc.Get("durations"); ok {
		durations, ok := value.(json.Array)
		if !ok {
			return 0, memberError("durations")
		}
		if len(durations) == 0 {
			return 0, nil
		}
		firstRow, ok := durations[0].(json.Array)
		if !ok {
			return 0, newError(CodeException, "matrix row is not an array")
		}
		return len(firstRow), nil
	}
	return 0, nil
}

func (r *TableResponse) matrix(key, noTableMessage string) ([]float64, error) {
	doc, err := r.document()
	if err != nil {
		return nil, err
	}
	value, ok := doc.Get(key)
	if !ok {
		return nil, newError(CodeNoTable, noTableMessage)
	}
	rows, ok := value.(json.Array)
	if !ok {
		return nil, memberError(key)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	firstRow, ok := rows[0].(json.Array)
	if !ok {
		return nil, newError(CodeException, "matrix row is not an array")
	}
	cols := len(firstRow)

	out := make([]float64, 0, len(rows)*cols)
	for _, rowValue := range rows {
		row, ok := rowValue.(json.Array)
		if !ok {
			return nil, newError(CodeException, "matrix row is not an array")
		}
		if len(row) < cols {
			return nil, newError(CodeException, "matrix row is shorter than the first row")
		}
		for j := 0; j < cols; j++ {
			switch cell := row[j].(type) {
			case json.Null:
				out = append(out, math.Inf(1))
			case json.Number:
				out = append(out, float64(cell))
			default:
				return nil, newError(CodeException, "matrix cell is not numeric")
			}
		}
	}
	return out, nil
}

// DurationMatrix returns the duration matrix flattened row-major, one entry
// per source/destination pair. Unreachable pairs hold positive infinity.
func (r *TableResponse) DurationMatrix() ([]float64, error) {
	return r.matrix("durations", "Table request not configured to return durations")
}

// DistanceMatrix returns the distance matrix flattened row-major, one entry
// per source/destination pair. Unreachable pairs hold positive infinity.
func (r *TableResponse) DistanceMatrix() ([]float64, error) {
	return r.matrix("distances", "Table request not configured to return distances")
}
