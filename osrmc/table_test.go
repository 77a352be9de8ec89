package osrmc

import (
	"math"
	"testing"

	"github.com/moviro-hub/libosrmc/osrm"
	"github.com/moviro-hub/libosrmc/osrm/json"
	"github.com/moviro-hub/libosrmc/osrmtest"
)

func matrixRow(cells ...json.Value) json.Array { return json.Array(cells) }

// tableDocument carries a 2x2 duration matrix with one unreachable pair.
func tableDocument() *json.Object {
	return json.NewObject().
		Set("code", json.String("Ok")).
		Set("durations", json.Array{
			matrixRow(json.Number(0), json.Number(312.4)),
			matrixRow(json.Null{}, json.Number(0)),
		}).
		Set("sources", json.Array{
			osrmtest.Waypoint("A", 7.41, 43.73, ""),
			osrmtest.Waypoint("B", 7.42, 43.74, ""),
		}).
		Set("destinations", json.Array{
			osrmtest.Waypoint("A", 7.41, 43.73, ""),
			osrmtest.Waypoint("B", 7.42, 43.74, ""),
		})
}

func tableRequest() *TableParams {
	params := NewTableParams()
	params.AddCoordinate(7.41, 43.73)
	params.AddCoordinate(7.42, 43.74)
	return params
}

func TestTableNilParams(t *testing.T) {
	o := newTestOSRM(t, &osrmtest.Engine{})

	_, err := o.Table(nil)
	e := wantCode(t, err, CodeInvalidArgument)
	if e.Message != "Table parameters cannot be null" {
		t.Fatalf("Unexpected message %q", e.Message)
	}
}

func TestTableSetters(t *testing.T) {
	params := tableRequest()
	params.AddSource(0)
	params.AddDestination(1)

	if err := params.SetAnnotations("duration,distance"); err != nil {
		t.Fatalf("SetAnnotations failed: %v", err)
	}
	if params.table.Annotations != osrm.TableAnnotationAll {
		t.Fatalf("Annotations wrong: %b", params.table.Annotations)
	}
	err := params.SetAnnotations("speed")
	e := wantCode(t, err, CodeInvalidArgument)
	if e.Message != "Unknown annotation token" {
		t.Fatalf("Unexpected message %q", e.Message)
	}

	if err := params.SetFallbackSpeed(7.5); err != nil {
		t.Fatalf("SetFallbackSpeed failed: %v", err)
	}
	err = params.SetFallbackSpeed(0)
	e = wantCode(t, err, CodeInvalidArgument)
	if e.Message != "Fallback speed must be positive" {
		t.Fatalf("Unexpected message %q", e.Message)
	}

	if err := params.SetFallbackCoordinateType("snapped"); err != nil {
		t.Fatalf("SetFallbackCoordinateType failed: %v", err)
	}
	if params.table.FallbackCoordinateType != osrm.FallbackCoordinateSnapped {
		t.Fatal("Fallback coordinate type not stored")
	}
	err = params.SetFallbackCoordinateType("midpoint")
	e = wantCode(t, err, CodeInvalidArgument)
	if e.Message != "Unknown coordinate type" {
		t.Fatalf("Unexpected message %q", e.Message)
	}

	if err := params.SetScaleFactor(2); err != nil {
		t.Fatalf("SetScaleFactor failed: %v", err)
	}
	err = params.SetScaleFactor(-1)
	e = wantCode(t, err, CodeInvalidArgument)
	if e.Message != "Scale factor must be positive" {
		t.Fatalf("Unexpected message %q", e.Message)
	}

	if len(params.table.Sources) != 1 || params.table.Sources[0] != 0 {
		t.Fatalf("Sources wrong: %v", params.table.Sources)
	}
	if len(params.table.Destinations) != 1 || params.table.Destinations[0] != 1 {
		t.Fatalf("Destinations wrong: %v", params.table.Destinations)
	}
}

func TestTableCellAccess(t *testing.T) {
	o := newTestOSRM(t, documentEngine(tableDocument()))

	resp, err := o.Table(tableRequest())
	if err != nil {
		t.Fatalf("Table failed: %v", err)
	}

	if d, err := resp.Duration(0, 1); err != nil || d != 312.4 {
		t.Fatalf("Duration(0,1) = %v, %v", d, err)
	}
	if d, err := resp.Duration(0, 0); err != nil || d != 0 {
		t.Fatalf("Duration(0,0) = %v, %v", d, err)
	}

	// The null cell reads as an impossible route.
	_, err = resp.Duration(1, 0)
	e := wantCode(t, err, CodeNoRoute)
	if e.Message != "Impossible route between points" {
		t.Fatalf("Unexpected message %q", e.Message)
	}

	_, err = resp.Duration(2, 0)
	e = wantCode(t, err, CodeException)
	if e.Message != "matrix index out of range" {
		t.Fatalf("Unexpected message %q", e.Message)
	}
	_, err = resp.Duration(0, -1)
	wantCode(t, err, CodeException)

	// No distance matrix was requested.
	_, err = resp.Distance(0, 1)
	e = wantCode(t, err, CodeNoTable)
	if e.Message != "Table request not configured to return distances" {
		t.Fatalf("Unexpected message %q", e.Message)
	}
}

func TestTableCounts(t *testing.T) {
	o := newTestOSRM(t, documentEngine(tableDocument()))

	resp, err := o.Table(tableRequest())
	if err != nil {
		t.Fatalf("Table failed: %v", err)
	}
	if n, err := resp.SourceCount(); err != nil || n != 2 {
		t.Fatalf("SourceCount = %v, %v", n, err)
	}
	if n, err := resp.DestinationCount(); err != nil || n != 2 {
		t.Fatalf("DestinationCount = %v, %v", n, err)
	}
}

func TestTableCountsFallBackToMatrix(t *testing.T) {
	doc := json.NewObject().
		Set("code", json.String("Ok")).
		Set("durations", json.Array{
			matrixRow(json.Number(0), json.Number(1), json.Number(2)),
		})
	o := newTestOSRM(t, documentEngine(doc))

	resp, err := o.Table(tableRequest())
	if err != nil {
		t.Fatalf("Table failed: %v", err)
	}
	if n, err := resp.SourceCount(); err != nil || n != 1 {
		t.Fatalf("SourceCount = %v, %v", n, err)
	}
	if n, err := resp.DestinationCount(); err != nil || n != 3 {
		t.Fatalf("DestinationCount = %v, %v", n, err)
	}

	empty := newTestOSRM(t, documentEngine(json.NewObject().Set("code", json.String("Ok"))))
	resp, err = empty.Table(tableRequest())
	if err != nil {
		t.Fatalf("Table failed: %v", err)
	}
	if n, err := resp.SourceCount(); err != nil || n != 0 {
		t.Fatalf("SourceCount = %v, %v", n, err)
	}
	if n, err := resp.DestinationCount(); err != nil || n != 0 {
		t.Fatalf("DestinationCount = %v, %v", n, err)
	}
}

func TestTableDurationMatrix(t *testing.T) {
	o := newTestOSRM(t, documentEngine(tableDocument()))

	resp, err := o.Table(tableRequest())
	if err != nil {
		t.Fatalf("Table failed: %v", err)
	}

	flat, err := resp.DurationMatrix()
	if err != nil {
		t.Fatalf("DurationMatrix failed: %v", err)
	}
	if len(flat) != 4 {
		t.Fatalf("Expected 4 entries, got %d", len(flat))
	}
	if flat[1] != 312.4 || flat[3] != 0 {
		t.Fatalf("Matrix wrong: %v", flat)
	}
	if !math.IsInf(flat[2], 1) {
		t.Fatalf("Unreachable pair must read +Inf, got %v", flat[2])
	}

	_, err = resp.DistanceMatrix()
	wantCode(t, err, CodeNoTable)
}

func TestTableRaggedMatrix(t *testing.T) {
	doc := json.NewObject().
		Set("code", json.String("Ok")).
		Set("durations", json.Array{
			matrixRow(json.Number(0), json.Number(1)),
			matrixRow(json.Number(2)),
		})
	o := newTestOSRM(t, documentEngine(doc))

	resp, err := o.Table(tableRequest())
	if err != nil {
		t.Fatalf("Table failed: %v", err)
	}
	_, err = resp.DurationMatrix()
	e := wantCode(t, err, CodeException)
	if e.Message != "matrix row is shorter than the first row" {
		t.Fatalf("Unexpected message %q", e.Message)
	}
}
