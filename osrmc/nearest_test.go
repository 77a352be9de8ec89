package osrmc

import (
	"testing"

	"github.com/moviro-hub/libosrmc/osrm"
	"github.com/moviro-hub/libosrmc/osrm/json"
	"github.com/moviro-hub/libosrmc/osrmtest"
)

func nearestDocument(hint string) *json.Object {
	return json.NewObject().
		Set("code", json.String("Ok")).
		Set("waypoints", json.Array{
			osrmtest.Waypoint("Rue Grimaldi", 7.41893, 43.73207, hint).
				Set("distance", json.Number(4.15)),
			osrmtest.Waypoint("Rue Suffren Reymond", 7.41966, 43.73152, "").
				Set("distance", json.Number(10.84)),
		})
}

func TestNearestNilParams(t *testing.T) {
	o := newTestOSRM(t, &osrmtest.Engine{})

	_, err := o.Nearest(nil)
	e := wantCode(t, err, CodeInvalidArgument)
	if e.Message != "Nearest parameters cannot be null" {
		t.Fatalf("Unexpected message %q", e.Message)
	}
}

func TestNearestNumberOfResultsReachesEngine(t *testing.T) {
	var got uint32
	engine := &osrmtest.Engine{
		NearestFunc: func(params *osrm.NearestParameters, result *osrm.Result) osrm.Status {
			got = params.NumberOfResults
			result.SetDocument(nearestDocument(""))
			return osrm.StatusOK
		},
	}
	o := newTestOSRM(t, engine)

	params := NewNearestParams()
	params.AddCoordinate(7.41893, 43.73207)
	params.SetNumberOfResults(2)
	if _, err := o.Nearest(params); err != nil {
		t.Fatalf("Nearest failed: %v", err)
	}
	if got != 2 {
		t.Fatalf("Expected 2 results requested, got %d", got)
	}
}

func TestNearestAccessors(t *testing.T) {
	token, err := osrmtest.EncodeHint(osrmtest.HintPayload{
		NodeID:    421,
		Longitude: 7.41893,
		Latitude:  43.73207,
	})
	if err != nil {
		t.Fatalf("EncodeHint failed: %v", err)
	}
	o := newTestOSRM(t, documentEngine(nearestDocument(token)))

	params := NewNearestParams()
	params.AddCoordinate(7.41890, 43.73200)
	resp, err := o.Nearest(params)
	if err != nil {
		t.Fatalf("Nearest failed: %v", err)
	}

	if n, err := resp.Count(); err != nil || n != 2 {
		t.Fatalf("Count = %v, %v", n, err)
	}
	if name, err := resp.Name(0); err != nil || name != "Rue Grimaldi" {
		t.Fatalf("Name(0) = %q, %v", name, err)
	}
	if lat, err := resp.Latitude(0); err != nil || lat != 43.73207 {
		t.Fatalf("Latitude(0) = %v, %v", lat, err)
	}
	if lon, err := resp.Longitude(0); err != nil || lon != 7.41893 {
		t.Fatalf("Longitude(0) = %v, %v", lon, err)
	}
	if d, err := resp.Distance(1); err != nil || d != 10.84 {
		t.Fatalf("Distance(1) = %v, %v", d, err)
	}

	// The hint survives the trip back into a typed payload.
	hint, err := resp.Hint(0)
	if err != nil {
		t.Fatalf("Hint(0) failed: %v", err)
	}
	decoded, err := osrm.HintFromBase64(hint)
	if err != nil {
		t.Fatalf("HintFromBase64 failed: %v", err)
	}
	payload, err := osrmtest.DecodeHint(decoded)
	if err != nil {
		t.Fatalf("DecodeHint failed: %v", err)
	}
	if payload.NodeID != 421 || payload.Longitude != 7.41893 {
		t.Fatalf("Payload wrong: %+v", payload)
	}

	_, err = resp.Name(7)
	e := wantCode(t, err, CodeIndexOutOfBounds)
	if e.Message != "Waypoint index out of bounds" {
		t.Fatalf("Unexpected message %q", e.Message)
	}
}

func TestNearestHintMissing(t *testing.T) {
	o := newTestOSRM(t, documentEngine(nearestDocument("")))

	params := NewNearestParams()
	params.AddCoordinate(7.41890, 43.73200)
	resp, err := o.Nearest(params)
	if err != nil {
		t.Fatalf("Nearest failed: %v", err)
	}

	_, err = resp.Hint(0)
	e := wantCode(t, err, CodeNoHint)
	if e.Message != "Hint not available for this waypoint" {
		t.Fatalf("Unexpected message %q", e.Message)
	}
}

func TestNearestEmptyResponseCounts(t *testing.T) {
	o := newTestOSRM(t, documentEngine(json.NewObject().Set("code", json.String("Ok"))))

	params := NewNearestParams()
	params.AddCoordinate(7.41890, 43.73200)
	resp, err := o.Nearest(params)
	if err != nil {
		t.Fatalf("Nearest failed: %v", err)
	}

	if n, err := resp.Count(); err != nil || n != 0 {
		t.Fatalf("Count = %v, %v", n, err)
	}
	// Positional reads on the missing array are errors, unlike the count.
	_, err = resp.Name(0)
	wantCode(t, err, CodeException)
}
