package osrmc

import (
	"errors"
	"testing"

	"github.com/moviro-hub/libosrmc/osrm"
	"github.com/moviro-hub/libosrmc/osrm/json"
	"github.com/moviro-hub/libosrmc/osrmtest"
)

// newTestOSRM registers engine process-wide and builds an instance around
// it. Tests that call this must not run in parallel.
func newTestOSRM(t *testing.T, engine *osrmtest.Engine) *OSRM {
	t.Helper()
	osrmtest.Register(engine)
	o, err := New(NewConfig("/data/monaco.osrm"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() { _ = o.Close() })
	return o
}

// wantCode fails unless err is an *Error carrying code, and returns it.
func wantCode(t *testing.T, err error, code Code) *Error {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected %s error, got nil", code)
	}
	var typed *Error
	if !errors.As(err, &typed) {
		t.Fatalf("Expected *Error, got %T: %v", err, err)
	}
	if typed.Code != code {
		t.Fatalf("Expected code %s, got %s (%s)", code, typed.Code, typed.Message)
	}
	return typed
}

// documentEngine responds to every document service with doc.
func documentEngine(doc *json.Object) *osrmtest.Engine {
	return &osrmtest.Engine{
		RouteFunc: func(_ *osrm.RouteParameters, result *osrm.Result) osrm.Status {
			result.SetDocument(doc)
			return osrm.StatusOK
		},
		NearestFunc: func(_ *osrm.NearestParameters, result *osrm.Result) osrm.Status {
			result.SetDocument(doc)
			return osrm.StatusOK
		},
		TableFunc: func(_ *osrm.TableParameters, result *osrm.Result) osrm.Status {
			result.SetDocument(doc)
			return osrm.StatusOK
		},
		MatchFunc: func(_ *osrm.MatchParameters, result *osrm.Result) osrm.Status {
			result.SetDocument(doc)
			return osrm.StatusOK
		},
		TripFunc: func(_ *osrm.TripParameters, result *osrm.Result) osrm.Status {
			result.SetDocument(doc)
			return osrm.StatusOK
		},
	}
}

// failingEngine responds to every document service with an error document.
func failingEngine(code, message string) *osrmtest.Engine {
	doc := osrmtest.ErrorDocument(code, message)
	engine := documentEngine(doc)
	fail := func(result *osrm.Result) osrm.Status {
		result.SetDocument(doc)
		return osrm.StatusError
	}
	engine.RouteFunc = func(_ *osrm.RouteParameters, result *osrm.Result) osrm.Status { return fail(result) }
	engine.NearestFunc = func(_ *osrm.NearestParameters, result *osrm.Result) osrm.Status { return fail(result) }
	engine.TableFunc = func(_ *osrm.TableParameters, result *osrm.Result) osrm.Status { return fail(result) }
	engine.MatchFunc = func(_ *osrm.MatchParameters, result *osrm.Result) osrm.Status { return fail(result) }
	engine.TripFunc = func(_ *osrm.TripParameters, result *osrm.Result) osrm.Status { return fail(result) }
	engine.TileFunc = func(_ *osrm.TileParameters, result *osrm.Result) osrm.Status {
		result.SetDocument(doc)
		return osrm.StatusError
	}
	return engine
}
