package osrmtest

import (
	flatbuffers "github.com/google/flatbuffers/go"
	polyline "github.com/twpayne/go-polyline"

	"github.com/moviro-hub/libosrmc/osrm"
	"github.com/moviro-hub/libosrmc/osrm/json"
)

var (
	polylineCodec  = polyline.Codec{Dim: 2, Scale: 1e5}
	polyline6Codec = polyline.Codec{Dim: 2, Scale: 1e6}
)

// Polyline encodes coords at the route service's default 1e5 precision.
func Polyline(coords []osrm.Coordinate) string {
	return encodePolyline(polylineCodec, coords)
}

// Polyline6 encodes coords at 1e6 precision.
func Polyline6(coords []osrm.Coordinate) string {
	return encodePolyline(polyline6Codec, coords)
}

func encodePolyline(codec polyline.Codec, coords []osrm.Coordinate) string {
	pairs := make([][]float64, len(coords))
	for i, c := range coords {
		pairs[i] = []float64{c.Latitude, c.Longitude}
	}
	return string(codec.EncodeCoords(nil, pairs))
}

// GeoJSONLineString returns the structured geometry member for coords.
func GeoJSONLineString(coords []osrm.Coordinate) *json.Object {
	positions := make(json.Array, len(coords))
	for i, c := range coords {
		positions[i] = json.Array{json.Number(c.Longitude), json.Number(c.Latitude)}
	}
	return json.NewObject().
		Set("type", json.String("LineString")).
		Set("coordinates", positions)
}

// Location returns a [longitude, latitude] position pair.
func Location(longitude, latitude float64) json.Array {
	return json.Array{json.Number(longitude), json.Number(latitude)}
}

// Waypoint returns a snapped-waypoint object. An empty hint is omitted, the
// way engines omit tokens they could not produce.
func Waypoint(name string, longitude, latitude float64, hint string) *json.Object {
	w := json.NewObject().
		Set("name", json.String(name)).
		Set("location", Location(longitude, latitude))
	if hint != "" {
		w.Set("hint", json.String(hint))
	}
	return w
}

// ErrorDocument returns the error report engines attach to failed calls.
func ErrorDocument(code, message string) *json.Object {
	return json.NewObject().
		Set("code", json.String(code)).
		Set("message", json.String(message))
}

// FinishedBuilder returns a builder whose buffer is finished around payload,
// standing in for a FlatBuffers-serialized response.
func FinishedBuilder(payload []byte) *flatbuffers.Builder {
	b := flatbuffers.NewBuilder(0)
	data := b.CreateByteVector(payload)
	b.Finish(data)
	return b
}
