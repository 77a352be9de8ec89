package osrm

import (
	"encoding/base64"
	"errors"
)

// Coordinate is a geographic position in floating-point degrees.
type Coordinate struct {
	Longitude float64
	Latitude  float64
}

// Bearing restricts the direction of travel at a coordinate. Value is the
// clockwise angle from true north (0-359); Range is the allowed deviation to
// either side (0-180). Range checking is delegated to the engine.
type Bearing struct {
	Value int16
	Range int16
}

// Approach constrains the side of the road a route may arrive on.
type Approach uint8

const (
	ApproachCurb Approach = iota
	ApproachUnrestricted
	ApproachOpposite
)

// String returns the request token for the approach.
func (a Approach) String() string {
	switch a {
	case ApproachCurb:
		return "curb"
	case ApproachUnrestricted:
		return "unrestricted"
	case ApproachOpposite:
		return "opposite"
	}
	return "unknown"
}

// ErrEmptyHint is returned when decoding an empty hint token.
var ErrEmptyHint = errors.New("osrm: empty hint")

// Hint is an opaque engine-produced token attached to a coordinate to speed
// up snapping at a previously visited location. The payload is engine-private;
// the binding only transports it as base-64 text.
type Hint struct {
	raw []byte
}

// NewHint wraps an engine-produced payload.
func NewHint(raw []byte) *Hint {
	return &Hint{raw: raw}
}

// HintFromBase64 decodes the textual form of a hint.
func HintFromBase64(s string) (*Hint, error) {
	if s == "" {
		return nil, ErrEmptyHint
	}
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}
	return &Hint{raw: raw}, nil
}

// Base64 returns the textual form of the hint.
func (h *Hint) Base64() string {
	return base64.StdEncoding.EncodeToString(h.raw)
}

// Raw returns the engine-private payload.
func (h *Hint) Raw() []byte {
	return h.raw
}
