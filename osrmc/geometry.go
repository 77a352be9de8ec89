package osrmc

import (
	"github.com/twpayne/go-polyline"

	"github.com/moviro-hub/libosrmc/osrm"
	"github.com/moviro-hub/libosrmc/osrm/json"
)

var (
	polylineCodec  = polyline.Codec{Dim: 2, Scale: 1e5}
	polyline6Codec = polyline.Codec{Dim: 2, Scale: 1e6}
)

// collectRouteCoordinates decodes the geometry of one route object into
// coordinates, honoring the encoding the request asked for. A route without
// geometry (or with an empty encoded string) decodes to an empty slice.
func collectRouteCoordinates(route *json.Object, geometries osrm.Geometries) ([]osrm.Coordinate, error) {
	geometry, ok := route.Get("geometry")
	if !ok {
		return nil, nil
	}

	if geometries == osrm.GeometriesGeoJSON {
		return collectGeoJSONCoordinates(geometry)
	}

	var encoded string
	switch g := geometry.(type) {
	case json.String:
		encoded = string(g)
	case *json.Object:
		key := "polyline6"
		if geometries == osrm.GeometriesPolyline {
			key = "polyline"
		}
		if value, ok := g.Get(key); ok {
			s, ok := value.(json.String)
			if !ok {
				return nil, memberError(key)
			}
			encoded = string(s)
		}
	}
	if encoded == "" {
		return nil, nil
	}

	codec := polylineCodec
	if geometries == osrm.GeometriesPolyline6 {
		codec = polyline6Codec
	}
	pairs, rest, err := codec.DecodeCoords([]byte(encoded))
	if err != nil || len(rest) != 0 {
		return nil, newError(CodeInvalidGeometry, "Polyline is malformed")
	}

	out := make([]osrm.Coordinate, 0, len(pairs))
	for _, pair := range pairs {
		// go-polyline decodes [latitude, longitude].
		out = append(out, osrm.Coordinate{Longitude: pair[1], Latitude: pair[0]})
	}
	return out, nil
}

// collectGeoJSONCoordinates reads a GeoJSON LineString-shaped geometry whose
// coordinate pairs carry longitude at index 0 and latitude at index 1.
func collectGeoJSONCoordinates(geometry json.Value) ([]osrm.Coordinate, error) {
	geometryObj, ok := geometry.(*json.Object)
	if !ok {
		return nil, newError(CodeInvalidGeometry, "Expected GeoJSON geometry")
	}

	value, ok := geometryObj.Get("coordinates")
	if !ok {
		return nil, nil
	}
	coordinates, ok := value.(json.Array)
	if !ok {
		return nil, memberError("coordinates")
	}

	out := make([]osrm.Coordinate, 0, len(coordinates))
	for _, entry := range coordinates {
		pair, ok := entry.(json.Array)
		if !ok {
			return nil, newError(CodeException, "coordinate entry is not an array")
		}
		if len(pair) < 2 {
			return nil, newError(CodeInvalidGeometry, "Coordinate entry is malformed")
		}
		lon, ok := pair[0].(json.Number)
		if !ok {
			return nil, newError(CodeException, "coordinate entry is not numeric")
		}
		lat, ok := pair[1].(json.Number)
		if !ok {
			return nil, newError(CodeException, "coordinate entry is not numeric")
		}
		out = append(out, osrm.Coordinate{Longitude: float64(lon), Latitude: float64(lat)})
	}
	return out, nil
}

// geometryCache memoizes decoded geometry per route index so repeated
// coordinate reads decode each route at most once.
type geometryCache struct {
	decoded map[int][]osrm.Coordinate
}

func (c *geometryCache) coordinates(route *json.Object, index int, geometries osrm.Geometries) ([]osrm.Coordinate, error) {
	if coords, ok := c.decoded[index]; ok {
		return coords, nil
	}
	coords, err := collectRouteCoordinates(route, geometries)
	if err != nil {
		return nil, err
	}
	if c.decoded == nil {
		c.decoded = make(map[int][]osrm.Coordinate)
	}
	c.decoded[index] = coords
	return coords, nil
}
