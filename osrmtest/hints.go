package osrmtest

import (
	"encoding/base64"

	"github.com/kelindar/binary"

	"github.com/moviro-hub/libosrmc/osrm"
)

// HintPayload is the snapping snapshot the scripted engine stores inside hint
// tokens. Real engines keep richer state; the fixture records just enough to
// prove a token survives the round trip through the binding.
type HintPayload struct {
	NodeID    uint64
	Longitude float64
	Latitude  float64
}

// EncodeHint serializes payload into the base-64 token waypoints carry.
func EncodeHint(payload HintPayload) (string, error) {
	raw, err := binary.Marshal(&payload)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// DecodeHint recovers the payload from a hint attached to a request.
func DecodeHint(h *osrm.Hint) (HintPayload, error) {
	var payload HintPayload
	if h == nil {
		return payload, osrm.ErrEmptyHint
	}
	if err := binary.Unmarshal(h.Raw(), &payload); err != nil {
		return payload, err
	}
	return payload, nil
}
