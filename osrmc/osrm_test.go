package osrmc

import (
	"errors"
	"testing"

	"github.com/moviro-hub/libosrmc/osrm"
	"github.com/moviro-hub/libosrmc/osrmtest"
)

func TestNewNilConfig(t *testing.T) {
	osrmtest.Register(&osrmtest.Engine{})

	_, err := New(nil)
	e := wantCode(t, err, CodeInvalidArgument)
	if e.Message != "Config cannot be null" {
		t.Fatalf("Unexpected message %q", e.Message)
	}
}

func TestNewFactoryFailure(t *testing.T) {
	cause := errors.New("no dataset loaded")
	osrmtest.RegisterError(cause)

	_, err := New(NewConfig("/data/monaco.osrm"))
	wantCode(t, err, CodeException)
	if !errors.Is(err, cause) {
		t.Fatal("Factory error must stay reachable through the chain")
	}
}

func TestNewPassesConfigSnapshot(t *testing.T) {
	engine := &osrmtest.Engine{}
	o := newTestOSRM(t, engine)
	defer o.Close()

	if len(engine.Configs) != 1 {
		t.Fatalf("Expected 1 construction, got %d", len(engine.Configs))
	}
	cfg := engine.Configs[0]
	if cfg.Storage.BasePath != "/data/monaco.osrm" {
		t.Fatalf("Base path wrong: %q", cfg.Storage.BasePath)
	}
	if cfg.UseSharedMemory {
		t.Fatal("A base path must turn shared memory off")
	}
}

func TestCloseReleasesEngineOnce(t *testing.T) {
	engine := &osrmtest.Engine{}
	o := newTestOSRM(t, engine)

	if err := o.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := o.Close(); err != nil {
		t.Fatalf("Second close failed: %v", err)
	}
	if engine.Closed != 1 {
		t.Fatalf("Expected 1 release, got %d", engine.Closed)
	}

	var nilInstance *OSRM
	if err := nilInstance.Close(); err != nil {
		t.Fatalf("Close on nil must be a no-op, got %v", err)
	}
}

func TestCloseReportsEngineError(t *testing.T) {
	cause := errors.New("region busy")
	engine := &osrmtest.Engine{CloseFunc: func() error { return cause }}
	osrmtest.Register(engine)

	o, err := New(NewConfig(""))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	err = o.Close()
	wantCode(t, err, CodeException)
	if !errors.Is(err, cause) {
		t.Fatal("Close error must stay reachable through the chain")
	}
}

func TestRequestsAfterClose(t *testing.T) {
	o := newTestOSRM(t, &osrmtest.Engine{})
	if err := o.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	params := NewRouteParams()
	params.AddCoordinate(7.41, 43.73)
	_, err := o.Route(params)
	e := wantCode(t, err, CodeInvalidArgument)
	if e.Message != "OSRM instance cannot be null" {
		t.Fatalf("Unexpected message %q", e.Message)
	}
}

func TestDispatchTranslatesErrorDocument(t *testing.T) {
	o := newTestOSRM(t, failingEngine("TooBig", "Too many coordinates"))

	params := NewRouteParams()
	params.AddCoordinate(7.41, 43.73)
	params.AddCoordinate(7.42, 43.74)

	_, err := o.Route(params)
	e := wantCode(t, err, Code("TooBig"))
	if e.Message != "Too many coordinates" {
		t.Fatalf("Unexpected message %q", e.Message)
	}
}

func TestDispatchFallbackWithoutDocument(t *testing.T) {
	engine := &osrmtest.Engine{
		RouteFunc: func(_ *osrm.RouteParameters, result *osrm.Result) osrm.Status {
			result.SetBuffer(nil)
			return osrm.StatusError
		},
	}
	o := newTestOSRM(t, engine)

	_, err := o.Route(NewRouteParams())
	e := wantCode(t, err, CodeRouteError)
	if e.Message != "Route request failed" {
		t.Fatalf("Unexpected message %q", e.Message)
	}
}

func TestDispatchGuardsEnginePanic(t *testing.T) {
	engine := &osrmtest.Engine{
		RouteFunc: func(_ *osrm.RouteParameters, _ *osrm.Result) osrm.Status {
			panic("searched past the last node")
		},
	}
	o := newTestOSRM(t, engine)

	_, err := o.Route(NewRouteParams())
	wantCode(t, err, CodeException)
}
