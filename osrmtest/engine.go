package osrmtest

import (
	"github.com/moviro-hub/libosrmc/osrm"
)

// Engine is a scriptable osrm.Engine. Each service delegates to the matching
// func field; a nil field leaves the result untouched and reports success,
// which accessors observe as an empty response.
//
// The zero value is usable. Engine records every configuration snapshot and
// Close call it sees, so tests can assert on what the binding handed down.
type Engine struct {
	RouteFunc   func(params *osrm.RouteParameters, result *osrm.Result) osrm.Status
	NearestFunc func(params *osrm.NearestParameters, result *osrm.Result) osrm.Status
	TableFunc   func(params *osrm.TableParameters, result *osrm.Result) osrm.Status
	MatchFunc   func(params *osrm.MatchParameters, result *osrm.Result) osrm.Status
	TripFunc    func(params *osrm.TripParameters, result *osrm.Result) osrm.Status
	TileFunc    func(params *osrm.TileParameters, result *osrm.Result) osrm.Status

	// CloseFunc, when set, supplies Close's return value.
	CloseFunc func() error

	// Configs collects the snapshots passed to the factory installed by
	// Register, in construction order.
	Configs []osrm.EngineConfig

	// Closed counts Close invocations.
	Closed int
}

var _ osrm.Engine = (*Engine)(nil)

// Register installs e as the process-wide engine: every subsequent
// construction hands out e and appends the configuration snapshot to
// e.Configs.
func Register(e *Engine) {
	osrm.RegisterEngine(func(cfg osrm.EngineConfig) (osrm.Engine, error) {
		e.Configs = append(e.Configs, cfg)
		return e, nil
	})
}

// RegisterError installs a factory that fails every construction with err.
func RegisterError(err error) {
	osrm.RegisterEngine(func(osrm.EngineConfig) (osrm.Engine, error) {
		return nil, err
	})
}

func (e *Engine) Route(params *osrm.RouteParameters, result *osrm.Result) osrm.Status {
	if e.RouteFunc == nil {
		return osrm.StatusOK
	}
	return e.RouteFunc(params, result)
}

func (e *Engine) Nearest(params *osrm.NearestParameters, result *osrm.Result) osrm.Status {
	if e.NearestFunc == nil {
		return osrm.StatusOK
	}
	return e.NearestFunc(params, result)
}

func (e *Engine) Table(params *osrm.TableParameters, result *osrm.Result) osrm.Status {
	if e.TableFunc == nil {
		return osrm.StatusOK
	}
	return e.TableFunc(params, result)
}

func (e *Engine) Match(params *osrm.MatchParameters, result *osrm.Result) osrm.Status {
	if e.MatchFunc == nil {
		return osrm.StatusOK
	}
	return e.MatchFunc(params, result)
}

func (e *Engine) Trip(params *osrm.TripParameters, result *osrm.Result) osrm.Status {
	if e.TripFunc == nil {
		return osrm.StatusOK
	}
	return e.TripFunc(params, result)
}

func (e *Engine) Tile(params *osrm.TileParameters, result *osrm.Result) osrm.Status {
	if e.TileFunc == nil {
		return osrm.StatusOK
	}
	return e.TileFunc(params, result)
}

// Close satisfies io.Closer so handle destruction reaches the engine.
func (e *Engine) Close() error {
	e.Closed++
	if e.CloseFunc != nil {
		return e.CloseFunc()
	}
	return nil
}
