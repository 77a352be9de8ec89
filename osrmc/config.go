package osrmc

import (
	"github.com/moviro-hub/libosrmc/osrm"
)

// Config accumulates engine construction options. A Config is mutable until
// handed to New, which takes a snapshot; later edits do not affect engines
// already constructed from it.
type Config struct {
	cfg osrm.EngineConfig
}

// NewConfig starts from the engine defaults. A non-empty basePath points the
// engine at preprocessed data on disk and turns shared memory off; an empty
// basePath attaches to a shared-memory region instead.
func NewConfig(basePath string) *Config {
	c := &Config{cfg: osrm.NewEngineConfig()}
	if basePath != "" {
		c.cfg.Storage = osrm.NewStorageConfig(basePath)
		c.cfg.UseSharedMemory = false
	} else {
		c.cfg.UseSharedMemory = true
	}
	return c
}

// SetAlgorithm selects the route search implementation.
func (c *Config) SetAlgorithm(algorithm osrm.Algorithm) error {
	switch algorithm {
	case osrm.AlgorithmCH, osrm.AlgorithmMLD:
		c.cfg.Algorithm = algorithm
		return nil
	}
	return newError(CodeInvalidAlgorithm, "Unknown algorithm type")
}

// SetMaxLocationsTrip caps trip request size. Negative means unlimited.
func (c *Config) SetMaxLocationsTrip(max int) {
	c.cfg.MaxLocationsTrip = max
}

// SetMaxLocationsViaroute caps route request size. Negative means unlimited.
func (c *Config) SetMaxLocationsViaroute(max int) {
	c.cfg.MaxLocationsViaroute = max
}

// SetMaxLocationsDistanceTable caps table request size. Negative means
// unlimited.
func (c *Config) SetMaxLocationsDistanceTable(max int) {
	c.cfg.MaxLocationsDistanceTable = max
}

// SetMaxLocationsMapMatching caps match trace size. Negative means unlimited.
func (c *Config) SetMaxLocationsMapMatching(max int) {
	c.cfg.MaxLocationsMapMatching = max
}

// SetMaxRadiusMapMatching caps the match snapping radius in meters. Negative
// means unlimited.
func (c *Config) SetMaxRadiusMapMatching(max float64) {
	c.cfg.MaxRadiusMapMatching = max
}

// SetMaxResultsNearest caps nearest result counts. Negative means unlimited.
func (c *Config) SetMaxResultsNearest(max int) {
	c.cfg.MaxResultsNearest = max
}

// SetDefaultRadius sets the snapping radius used when a coordinate carries no
// explicit radius. Negative means unlimited.
func (c *Config) SetDefaultRadius(radius float64) {
	c.cfg.DefaultRadius = radius
}

// SetMaxAlternatives caps alternative route counts.
func (c *Config) SetMaxAlternatives(max int) {
	c.cfg.MaxAlternatives = max
}

// SetUseMmap maps the dataset files instead of reading them into memory.
func (c *Config) SetUseMmap(on bool) {
	c.cfg.UseMmap = on
}

// SetDatasetName selects a named shared-memory dataset. An empty name
// restores the default region.
func (c *Config) SetDatasetName(name string) {
	c.cfg.DatasetName = name
}

// SetUseSharedMemory toggles attaching to a shared-memory region.
func (c *Config) SetUseSharedMemory(on bool) {
	c.cfg.UseSharedMemory = on
}

// SetMemoryFile points the engine at a file-backed memory region. An empty
// path clears it.
func (c *Config) SetMemoryFile(path string) {
	c.cfg.MemoryFile = path
}

// SetVerbosity sets the engine log level token. An empty token restores the
// engine default.
func (c *Config) SetVerbosity(verbosity string) {
	c.cfg.Verbosity = verbosity
}

// DisableFeatureDataset excludes an optional dataset by its configuration
// token ("route_steps" or "route_geometry") and regenerates the storage
// descriptor. Disabling a dataset twice is a no-op.
func (c *Config) DisableFeatureDataset(name string) error {
	dataset, ok := parseFeatureDataset(name)
	if !ok {
		return newError(CodeInvalidDataset, "Unknown dataset")
	}
	for _, d := range c.cfg.Storage.DisabledFeatureDatasets {
		if d == dataset {
			return nil
		}
	}
	c.refreshStorage(append(c.cfg.Storage.DisabledFeatureDatasets, dataset))
	return nil
}

// ClearDisabledFeatureDatasets re-enables every optional dataset.
func (c *Config) ClearDisabledFeatureDatasets() {
	c.refreshStorage(nil)
}

func (c *Config) refreshStorage(disabled []osrm.FeatureDataset) {
	c.cfg.Storage = osrm.NewStorageConfig(c.cfg.Storage.BasePath, disabled...)
}

// Snapshot returns a copy of the accumulated configuration.
func (c *Config) Snapshot() osrm.EngineConfig {
	cfg := c.cfg
	cfg.Storage = osrm.NewStorageConfig(
		c.cfg.Storage.BasePath,
		c.cfg.Storage.DisabledFeatureDatasets...,
	)
	return cfg
}
