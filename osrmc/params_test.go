package osrmc

import (
	"testing"

	"github.com/moviro-hub/libosrmc/osrm"
)

func TestAddCoordinate(t *testing.T) {
	p := NewRouteParams()
	p.AddCoordinate(7.419758, 43.731142)
	p.AddCoordinate(7.419505, 43.736825)

	coords := p.base.Coordinates
	if len(coords) != 2 {
		t.Fatalf("Expected 2 coordinates, got %d", len(coords))
	}
	if coords[0].Longitude != 7.419758 || coords[0].Latitude != 43.731142 {
		t.Fatalf("First coordinate wrong: %+v", coords[0])
	}
	if len(p.base.Radiuses) != 0 || len(p.base.Bearings) != 0 {
		t.Fatal("Plain adds must not grow the modifier vectors")
	}
}

func TestAddCoordinateWithKeepsVectorsParallel(t *testing.T) {
	p := NewRouteParams()
	p.AddCoordinate(7.41, 43.73)
	p.AddCoordinate(7.42, 43.74)
	p.AddCoordinateWith(7.43, 43.75, 30.0, 90, 25)

	if len(p.base.Coordinates) != 3 {
		t.Fatalf("Expected 3 coordinates, got %d", len(p.base.Coordinates))
	}
	if len(p.base.Radiuses) != 3 || len(p.base.Bearings) != 3 {
		t.Fatalf("Modifier vectors not padded: %d radiuses, %d bearings",
			len(p.base.Radiuses), len(p.base.Bearings))
	}
	for i := 0; i < 2; i++ {
		if p.base.Radiuses[i] != nil || p.base.Bearings[i] != nil {
			t.Fatalf("Padding entry %d should be unset", i)
		}
	}
	if r := p.base.Radiuses[2]; r == nil || *r != 30.0 {
		t.Fatal("Radius for the combined add not stored")
	}
	if b := p.base.Bearings[2]; b == nil || b.Value != 90 || b.Range != 25 {
		t.Fatal("Bearing for the combined add not stored")
	}
}

func TestAddCoordinateWithSentinels(t *testing.T) {
	p := NewRouteParams()
	p.AddCoordinateWith(7.43, 43.75, -1, -1, 180)

	if p.base.Radiuses[0] != nil {
		t.Fatal("Negative radius must store unset")
	}
	if p.base.Bearings[0] != nil {
		t.Fatal("Negative bearing value must store unset")
	}
}

func TestSetRadius(t *testing.T) {
	p := NewRouteParams()
	p.AddCoordinate(7.41, 43.73)
	p.AddCoordinate(7.42, 43.74)

	if err := p.SetRadius(1, 15.5); err != nil {
		t.Fatalf("SetRadius failed: %v", err)
	}
	if len(p.base.Radiuses) != 2 {
		t.Fatalf("Expected padded vector of 2, got %d", len(p.base.Radiuses))
	}
	if p.base.Radiuses[0] != nil {
		t.Fatal("Untouched slot should stay unset")
	}
	if r := p.base.Radiuses[1]; r == nil || *r != 15.5 {
		t.Fatal("Radius not stored")
	}

	if err := p.SetRadius(1, -2); err != nil {
		t.Fatalf("SetRadius failed: %v", err)
	}
	if p.base.Radiuses[1] != nil {
		t.Fatal("Negative radius must clear the slot")
	}
}

func TestSetBearingOutOfBoundsLeavesStateUntouched(t *testing.T) {
	p := NewRouteParams()
	p.AddCoordinate(7.41, 43.73)

	err := p.SetBearing(5, 90, 10)
	e := wantCode(t, err, CodeInvalidCoordinateIndex)
	if e.Message != "Bearing index out of bounds" {
		t.Fatalf("Unexpected message %q", e.Message)
	}
	if len(p.base.Bearings) != 0 {
		t.Fatal("Failed set must not grow the bearing vector")
	}

	if err := p.SetBearing(-1, 90, 10); err == nil {
		t.Fatal("Negative index must fail")
	}
}

func TestSetApproach(t *testing.T) {
	p := NewRouteParams()
	p.AddCoordinate(7.41, 43.73)

	if err := p.SetApproach(0, osrm.ApproachCurb); err != nil {
		t.Fatalf("SetApproach failed: %v", err)
	}
	if a := p.base.Approaches[0]; a == nil || *a != osrm.ApproachCurb {
		t.Fatal("Approach not stored")
	}

	// A value outside the known set clears the slot without erroring.
	if err := p.SetApproach(0, osrm.Approach(99)); err != nil {
		t.Fatalf("SetApproach failed: %v", err)
	}
	if p.base.Approaches[0] != nil {
		t.Fatal("Unknown approach must clear the slot")
	}

	err := p.SetApproach(3, osrm.ApproachCurb)
	wantCode(t, err, CodeInvalidCoordinateIndex)
}

func TestSetHint(t *testing.T) {
	p := NewRouteParams()
	p.AddCoordinate(7.41, 43.73)

	token := osrm.NewHint([]byte{0x01, 0x02, 0x03}).Base64()
	if err := p.SetHint(0, token); err != nil {
		t.Fatalf("SetHint failed: %v", err)
	}
	h := p.base.Hints[0]
	if h == nil || h.Base64() != token {
		t.Fatal("Hint not stored")
	}

	if err := p.SetHint(0, ""); err != nil {
		t.Fatalf("SetHint failed: %v", err)
	}
	if p.base.Hints[0] != nil {
		t.Fatal("Empty hint must clear the slot")
	}

	err := p.SetHint(0, "not!!base64")
	wantCode(t, err, CodeException)

	err = p.SetHint(2, token)
	wantCode(t, err, CodeInvalidCoordinateIndex)
}

func TestSetSnapping(t *testing.T) {
	p := NewRouteParams()

	if err := p.SetSnapping(osrm.SnappingAny); err != nil {
		t.Fatalf("SetSnapping failed: %v", err)
	}
	if p.base.Snapping != osrm.SnappingAny {
		t.Fatal("Snapping not stored")
	}

	err := p.SetSnapping(osrm.Snapping(99))
	e := wantCode(t, err, CodeInvalidSnapping)
	if e.Message != "Unknown snapping type" {
		t.Fatalf("Unexpected message %q", e.Message)
	}
	if p.base.Snapping != osrm.SnappingAny {
		t.Fatal("Failed set must not change snapping")
	}
}

func TestSetOutputFormat(t *testing.T) {
	p := NewRouteParams()
	if p.base.Format != nil {
		t.Fatal("Format must start unset")
	}

	if err := p.SetOutputFormat(osrm.FormatFlatBuffers); err != nil {
		t.Fatalf("Binary format must be accepted: %v", err)
	}
	if p.base.Format == nil || *p.base.Format != osrm.FormatFlatBuffers {
		t.Fatal("Format not stored")
	}

	if err := p.SetOutputFormat(osrm.FormatJSON); err != nil {
		t.Fatalf("SetOutputFormat failed: %v", err)
	}

	err := p.SetOutputFormat(osrm.OutputFormat(9))
	wantCode(t, err, CodeInvalidFormat)
}

func TestBaseToggles(t *testing.T) {
	p := NewRouteParams()
	if !p.base.GenerateHints {
		t.Fatal("Hints must be generated by default")
	}

	p.SetGenerateHints(false)
	p.SetSkipWaypoints(true)
	p.AddExclude("toll")
	p.AddExclude("ferry")

	if p.base.GenerateHints {
		t.Fatal("SetGenerateHints(false) not applied")
	}
	if !p.base.SkipWaypoints {
		t.Fatal("SetSkipWaypoints(true) not applied")
	}
	if len(p.base.Excludes) != 2 || p.base.Excludes[1] != "ferry" {
		t.Fatalf("Excludes wrong: %v", p.base.Excludes)
	}
}
