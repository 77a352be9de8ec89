package osrmc

import (
	"testing"

	"github.com/moviro-hub/libosrmc/osrm"
)

func TestSplitMaskTokens(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{name: "comma separated", value: "duration,distance", want: []string{"duration", "distance"}},
		{name: "pipe separated", value: "duration|nodes", want: []string{"duration", "nodes"}},
		{name: "spaces around tokens", value: " duration , distance ", want: []string{"duration", "distance"}},
		{name: "empty entries dropped", value: "duration,,distance,", want: []string{"duration", "distance"}},
		{name: "empty input", value: "", want: nil},
		{name: "only separators", value: ",|,", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitMaskTokens(tt.value)
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Expected %v, got %v", tt.want, got)
				}
			}
		})
	}
}

func TestParseRouteAnnotations(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  osrm.RouteAnnotations
		ok    bool
	}{
		{name: "single token", value: "duration", want: osrm.AnnotationDuration, ok: true},
		{name: "mixed case list", value: "Duration, Distance", want: osrm.AnnotationDuration | osrm.AnnotationDistance, ok: true},
		{name: "all wins", value: "duration,all", want: osrm.AnnotationAll, ok: true},
		{name: "none contributes nothing", value: "none,speed", want: osrm.AnnotationSpeed, ok: true},
		{name: "empty list is none", value: "", want: osrm.AnnotationNone, ok: true},
		{name: "unknown token fails", value: "duration,velocity", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseRouteAnnotations(tt.value)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && got != tt.want {
				t.Fatalf("Expected mask %b, got %b", tt.want, got)
			}
		})
	}
}

func TestParseTableAnnotations(t *testing.T) {
	got, ok := parseTableAnnotations("duration|distance")
	if !ok || got != osrm.TableAnnotationAll {
		t.Fatalf("Expected the combined mask, got %b (ok=%v)", got, ok)
	}
	if _, ok := parseTableAnnotations("weight"); ok {
		t.Fatal("weight is not a table annotation")
	}
	got, ok = parseTableAnnotations("")
	if !ok || got != osrm.TableAnnotationNone {
		t.Fatalf("Expected empty mask, got %b (ok=%v)", got, ok)
	}
}

func TestParseEnumTokens(t *testing.T) {
	if g, ok := parseGeometries("GeoJSON"); !ok || g != osrm.GeometriesGeoJSON {
		t.Fatal("geojson should parse case-insensitively")
	}
	if _, ok := parseGeometries("wkt"); ok {
		t.Fatal("wkt is not a geometry format")
	}

	if o, ok := parseOverview("none"); !ok || o != osrm.OverviewFalse {
		t.Fatal("none should read as overview false")
	}
	if o, ok := parseOverview("FALSE"); !ok || o != osrm.OverviewFalse {
		t.Fatal("false should read as overview false")
	}

	if f, ok := parseFallbackCoordinate("Snapped"); !ok || f != osrm.FallbackCoordinateSnapped {
		t.Fatal("snapped should parse case-insensitively")
	}
	if g, ok := parseGaps("IGNORE"); !ok || g != osrm.GapsIgnore {
		t.Fatal("ignore should parse case-insensitively")
	}

	if s, ok := parseTripSource("First"); !ok || s != osrm.TripSourceFirst {
		t.Fatal("first should parse case-insensitively")
	}
	if _, ok := parseTripSource("last"); ok {
		t.Fatal("last is not a trip source")
	}
	if d, ok := parseTripDestination("LAST"); !ok || d != osrm.TripDestinationLast {
		t.Fatal("last should parse case-insensitively")
	}
	if _, ok := parseTripDestination("first"); ok {
		t.Fatal("first is not a trip destination")
	}

	if d, ok := parseFeatureDataset("ROUTE_GEOMETRY"); !ok || d != osrm.DatasetRouteGeometry {
		t.Fatal("route_geometry should parse case-insensitively")
	}
	if _, ok := parseFeatureDataset("turn_penalties"); ok {
		t.Fatal("turn_penalties is not a detachable dataset")
	}
}
