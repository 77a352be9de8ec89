package osrm

import (
	"testing"

	flatbuffers "github.com/google/flatbuffers/go"
)

func TestParameterDefaults(t *testing.T) {
	route := NewRouteParameters()
	if !route.GenerateHints {
		t.Fatal("Expected generate hints on by default")
	}
	if route.Geometries != GeometriesPolyline || route.Overview != OverviewSimplified {
		t.Fatal("Expected polyline/simplified defaults")
	}
	if route.ContinueStraight != nil {
		t.Fatal("Expected continue straight unset by default")
	}
	if route.Format != nil {
		t.Fatal("Expected output format unset by default")
	}

	nearest := NewNearestParameters()
	if nearest.NumberOfResults != 1 {
		t.Fatalf("Expected 1 result by default, got %d", nearest.NumberOfResults)
	}

	table := NewTableParameters()
	if table.Annotations != TableAnnotationDuration {
		t.Fatal("Expected duration annotations by default")
	}
	if table.ScaleFactor != 1 {
		t.Fatalf("Expected scale factor 1, got %v", table.ScaleFactor)
	}
	if table.FallbackSpeed != 0 {
		t.Fatal("Expected fallback speed unset by default")
	}

	match := NewMatchParameters()
	if match.Gaps != GapsSplit || match.Tidy {
		t.Fatal("Expected split gaps and tidy off by default")
	}

	trip := NewTripParameters()
	if !trip.Roundtrip || trip.Source != TripSourceAny || trip.Destination != TripDestinationAny {
		t.Fatal("Expected roundtrip/any/any defaults")
	}
}

func TestEngineConfigDefaults(t *testing.T) {
	cfg := NewEngineConfig()
	if !cfg.UseSharedMemory {
		t.Fatal("Expected shared memory on by default")
	}
	if cfg.MaxAlternatives != 3 {
		t.Fatalf("Expected 3 alternatives, got %d", cfg.MaxAlternatives)
	}
	for _, limit := range []int{
		cfg.MaxLocationsTrip, cfg.MaxLocationsViaroute,
		cfg.MaxLocationsDistanceTable, cfg.MaxLocationsMapMatching,
		cfg.MaxResultsNearest,
	} {
		if limit != -1 {
			t.Fatalf("Expected unlimited (-1), got %d", limit)
		}
	}
	if cfg.Algorithm != AlgorithmCH {
		t.Fatal("Expected CH by default")
	}
}

func TestHintRoundTrip(t *testing.T) {
	hint := NewHint([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	encoded := hint.Base64()

	back, err := HintFromBase64(encoded)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if string(back.Raw()) != string(hint.Raw()) {
		t.Fatal("Round trip lost payload")
	}

	if _, err := HintFromBase64(""); err != ErrEmptyHint {
		t.Fatalf("Expected ErrEmptyHint, got %v", err)
	}
	if _, err := HintFromBase64("not!!base64"); err == nil {
		t.Fatal("Expected decode error for malformed input")
	}
}

func TestStorageConfigCopiesDisabledSet(t *testing.T) {
	disabled := []FeatureDataset{DatasetRouteSteps}
	cfg := NewStorageConfig("/data/map.osrm", disabled...)

	disabled[0] = DatasetRouteGeometry
	if cfg.DisabledFeatureDatasets[0] != DatasetRouteSteps {
		t.Fatal("Storage config must not alias the caller's slice")
	}
}

func TestResultUnion(t *testing.T) {
	// Seeded document
	r := NewDocumentResult()
	if r.Kind() != ResultDocument {
		t.Fatal("Expected document kind")
	}
	doc, ok := r.Document()
	if !ok || doc == nil {
		t.Fatal("Expected a seeded empty document")
	}
	if _, ok := r.Builder(); ok {
		t.Fatal("Builder access on a document result should fail")
	}

	// Replacing the alternative drops the old one
	b := flatbuffers.NewBuilder(16)
	r.SetBuilder(b)
	if _, ok := r.Document(); ok {
		t.Fatal("Document access after SetBuilder should fail")
	}

	// TakeBuilder is one-shot
	got, ok := r.TakeBuilder()
	if !ok || got != b {
		t.Fatal("TakeBuilder failed")
	}
	if r.Kind() != ResultReleased {
		t.Fatal("Expected released kind after TakeBuilder")
	}
	if _, ok := r.TakeBuilder(); ok {
		t.Fatal("Second TakeBuilder should fail")
	}

	// Buffer seeding
	tile := NewBufferResult()
	buf, ok := tile.Buffer()
	if !ok || len(buf) != 0 {
		t.Fatal("Expected an empty seeded buffer")
	}
}

type registryEngine struct{}

func (registryEngine) Route(*RouteParameters, *Result) Status     { return StatusOK }
func (registryEngine) Nearest(*NearestParameters, *Result) Status { return StatusOK }
func (registryEngine) Table(*TableParameters, *Result) Status     { return StatusOK }
func (registryEngine) Match(*MatchParameters, *Result) Status     { return StatusOK }
func (registryEngine) Trip(*TripParameters, *Result) Status       { return StatusOK }
func (registryEngine) Tile(*TileParameters, *Result) Status       { return StatusOK }

func TestEngineRegistry(t *testing.T) {
	RegisterEngine(nil)
	if _, err := NewEngine(NewEngineConfig()); err != ErrNoEngine {
		t.Fatalf("Expected ErrNoEngine, got %v", err)
	}

	var got EngineConfig
	RegisterEngine(func(cfg EngineConfig) (Engine, error) {
		got = cfg
		return registryEngine{}, nil
	})

	cfg := NewEngineConfig()
	cfg.Storage = NewStorageConfig("/data/map.osrm")
	eng, err := NewEngine(cfg)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	if eng == nil {
		t.Fatal("Expected an engine")
	}
	if got.Storage.BasePath != "/data/map.osrm" {
		t.Fatal("Factory did not receive the config snapshot")
	}
}
