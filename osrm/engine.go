package osrm

import (
	"errors"
	"sync"
)

// Status is the engine's per-call verdict. Anything but StatusOK means the
// result union carries an error document (or nothing useful at all).
type Status uint8

const (
	StatusOK Status = iota
	StatusError
)

// Engine is the service surface of a routing engine. Implementations must be
// safe for concurrent calls; every method fills the supplied Result and
// returns a status.
//
// An implementation may additionally satisfy io.Closer; the binding layer
// invokes Close when the engine handle is destructed.
type Engine interface {
	Route(params *RouteParameters, result *Result) Status
	Nearest(params *NearestParameters, result *Result) Status
	Table(params *TableParameters, result *Result) Status
	Match(params *MatchParameters, result *Result) Status
	Trip(params *TripParameters, result *Result) Status
	Tile(params *TileParameters, result *Result) Status
}

// EngineFactory builds an engine instance from a configuration snapshot.
type EngineFactory func(cfg EngineConfig) (Engine, error)

// ErrNoEngine is returned by NewEngine when no factory has been registered.
var ErrNoEngine = errors.New("osrm: no engine registered")

var (
	factoryMu sync.RWMutex
	factory   EngineFactory
)

// RegisterEngine installs the process-wide engine factory. Engine modules
// call this from an init function; a later registration replaces an earlier
// one, which test engines rely on.
func RegisterEngine(f EngineFactory) {
	factoryMu.Lock()
	defer factoryMu.Unlock()
	factory = f
}

// NewEngine builds an engine from cfg using the registered factory.
func NewEngine(cfg EngineConfig) (Engine, error) {
	factoryMu.RLock()
	f := factory
	factoryMu.RUnlock()
	if f == nil {
		return nil, ErrNoEngine
	}
	return f(cfg)
}
