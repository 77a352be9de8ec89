package osrmc

import (
	"github.com/moviro-hub/libosrmc/osrm"
)

// Params is the parameter substructure shared by every service except tile.
// The service parameter types embed it; its methods maintain the invariant
// that no per-coordinate modifier vector is ever longer than the coordinate
// vector.
type Params struct {
	base *osrm.BaseParameters
}

// extendToCount pads a modifier vector with "unset" entries until it covers
// count coordinates.
func extendToCount[T any](vec []*T, count int) []*T {
	for len(vec) < count {
		vec = append(vec, nil)
	}
	return vec
}

func (p *Params) checkCoordinateIndex(index int, parameter string) error {
	if index < 0 || index >= len(p.base.Coordinates) {
		return newError(CodeInvalidCoordinateIndex, parameter+" index out of bounds")
	}
	return nil
}

// AddCoordinate appends a longitude/latitude pair to the request.
func (p *Params) AddCoordinate(longitude, latitude float64) {
	p.base.Coordinates = append(p.base.Coordinates, osrm.Coordinate{
		Longitude: longitude,
		Latitude:  latitude,
	})
}

// AddCoordinateWith appends a coordinate together with its snapping radius
// and bearing in one step. The radius and bearing vectors are padded to the
// coordinate count first, so all three appends land on the same index and
// the vectors stay parallel. The positional-setter sentinels apply: a
// negative radius, or a negative bearing value or range, appends "unset".
func (p *Params) AddCoordinateWith(longitude, latitude, radius float64, bearingValue, bearingRange int) {
	count := len(p.base.Coordinates)
	p.base.Radiuses = extendToCount(p.base.Radiuses, count)
	p.base.Bearings = extendToCount(p.base.Bearings, count)

	p.base.Coordinates = append(p.base.Coordinates, osrm.Coordinate{
		Longitude: longitude,
		Latitude:  latitude,
	})
	p.base.Radiuses = append(p.base.Radiuses, radiusValue(radius))
	p.base.Bearings = append(p.base.Bearings, bearingValueRange(bearingValue, bearingRange))
}

func radiusValue(radius float64) *float64 {
	if radius < 0 {
		return nil
	}
	return &radius
}

func bearingValueRange(value, rng int) *osrm.Bearing {
	if value < 0 || rng < 0 {
		return nil
	}
	return &osrm.Bearing{Value: int16(value), Range: int16(rng)}
}

// SetRadius sets the snapping radius for coordinate index. A negative
// radius stores "unset".
func (p *Params) SetRadius(index int, radius float64) error {
	if err := p.checkCoordinateIndex(index, "Radius"); err != nil {
		return err
	}
	p.base.Radiuses = extendToCount(p.base.Radiuses, len(p.base.Coordinates))
	p.base.Radiuses[index] = radiusValue(radius)
	return nil
}

// SetBearing restricts the direction of travel at coordinate index. A
// negative value or range stores "unset".
func (p *Params) SetBearing(index, value, rng int) error {
	if err := p.checkCoordinateIndex(index, "Bearing"); err != nil {
		return err
	}
	p.base.Bearings = extendToCount(p.base.Bearings, len(p.base.Coordinates))
	p.base.Bearings[index] = bearingValueRange(value, rng)
	return nil
}

// SetApproach constrains the arrival side at coordinate index. A value
// outside the known approach set stores "unset".
func (p *Params) SetApproach(index int, approach osrm.Approach) error {
	if err := p.checkCoordinateIndex(index, "Approach"); err != nil {
		return err
	}
	p.base.Approaches = extendToCount(p.base.Approaches, len(p.base.Coordinates))
	switch approach {
	case osrm.ApproachCurb, osrm.ApproachUnrestricted, osrm.ApproachOpposite:
		a := approach
		p.base.Approaches[index] = &a
	default:
		p.base.Approaches[index] = nil
	}
	return nil
}

// SetHint attaches an engine-produced snapping hint, in its base-64 textual
// form, to coordinate index. An empty hint stores "unset".
func (p *Params) SetHint(index int, hintBase64 string) error {
	if err := p.checkCoordinateIndex(index, "Hint"); err != nil {
		return err
	}
	p.base.Hints = extendToCount(p.base.Hints, len(p.base.Coordinates))
	if hintBase64 == "" {
		p.base.Hints[index] = nil
		return nil
	}
	hint, err := osrm.HintFromBase64(hintBase64)
	if err != nil {
		return errorFromGo(err)
	}
	p.base.Hints[index] = hint
	return nil
}

// AddExclude adds a profile class the engine must route around.
func (p *Params) AddExclude(profile string) {
	p.base.Excludes = append(p.base.Excludes, profile)
}

// SetGenerateHints toggles hint generation in responses.
func (p *Params) SetGenerateHints(on bool) {
	p.base.GenerateHints = on
}

// SetSkipWaypoints drops the waypoint array from responses.
func (p *Params) SetSkipWaypoints(on bool) {
	p.base.SkipWaypoints = on
}

// SetSnapping selects which edges coordinates may snap to.
func (p *Params) SetSnapping(snapping osrm.Snapping) error {
	switch snapping {
	case osrm.SnappingDefault, osrm.SnappingAny:
		p.base.Snapping = snapping
		return nil
	}
	return newError(CodeInvalidSnapping, "Unknown snapping type")
}

// SetOutputFormat selects the result union alternative the engine produces.
func (p *Params) SetOutputFormat(format osrm.OutputFormat) error {
	switch format {
	case osrm.FormatJSON, osrm.FormatFlatBuffers:
		p.base.Format = &format
		return nil
	}
	return newError(CodeInvalidFormat, "Unknown output format")
}
