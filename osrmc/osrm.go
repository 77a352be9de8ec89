package osrmc

import (
	"io"

	"github.com/moviro-hub/libosrmc/osrm"
)

// OSRM wraps one routing engine instance, built from a configuration
// snapshot. The wrapper is immutable after construction and safe for
// concurrent requests; per-request state lives in the parameter and
// response types.
type OSRM struct {
	engine osrm.Engine
}

// New constructs an engine from the accumulated configuration. Later edits
// to config do not affect the returned instance.
func New(config *Config) (o *OSRM, err error) {
	defer guard(&err)

	if config == nil {
		return nil, newError(CodeInvalidArgument, "Config cannot be null")
	}
	engine, err := osrm.NewEngine(config.Snapshot())
	if err != nil {
		return nil, errorFromGo(err)
	}
	return &OSRM{engine: engine}, nil
}

// Close releases the engine if it holds releasable resources. Close is
// idempotent and a no-op on a nil instance.
func (o *OSRM) Close() error {
	if o == nil || o.engine == nil {
		return nil
	}
	engine := o.engine
	o.engine = nil
	if closer, ok := engine.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			return errorFromGo(err)
		}
	}
	return nil
}

func (o *OSRM) checkEngine() error {
	if o == nil || o.engine == nil {
		return newError(CodeInvalidArgument, "OSRM instance cannot be null")
	}
	return nil
}
