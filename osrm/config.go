package osrm

// Algorithm selects the engine's route search implementation.
type Algorithm uint8

const (
	AlgorithmCH Algorithm = iota
	AlgorithmMLD
)

// String returns the conventional short name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmCH:
		return "CH"
	case AlgorithmMLD:
		return "MLD"
	}
	return "unknown"
}

// FeatureDataset names an optional engine dataset that may be disabled to
// reduce memory use, at the cost of the corresponding response features.
type FeatureDataset uint8

const (
	DatasetRouteSteps FeatureDataset = iota
	DatasetRouteGeometry
)

// String returns the configuration token for the dataset.
func (d FeatureDataset) String() string {
	switch d {
	case DatasetRouteSteps:
		return "route_steps"
	case DatasetRouteGeometry:
		return "route_geometry"
	}
	return "unknown"
}

// StorageConfig describes where the engine finds its preprocessed data and
// which feature datasets to leave out. The descriptor is a pure value: it is
// regenerated wholesale whenever the base path or the disabled set changes.
type StorageConfig struct {
	BasePath                string
	DisabledFeatureDatasets []FeatureDataset
}

// NewStorageConfig derives a storage descriptor from a dataset base path and
// the datasets to disable.
func NewStorageConfig(basePath string, disabled ...FeatureDataset) StorageConfig {
	cfg := StorageConfig{BasePath: basePath}
	if len(disabled) > 0 {
		cfg.DisabledFeatureDatasets = make([]FeatureDataset, len(disabled))
		copy(cfg.DisabledFeatureDatasets, disabled)
	}
	return cfg
}

// EngineConfig is the snapshot an engine instance is constructed from.
// Negative limits mean unlimited.
type EngineConfig struct {
	Storage StorageConfig

	MaxLocationsTrip          int
	MaxLocationsViaroute      int
	MaxLocationsDistanceTable int
	MaxLocationsMapMatching   int
	MaxRadiusMapMatching      float64
	MaxResultsNearest         int
	MaxAlternatives           int

	// DefaultRadius is the snapping radius applied when a coordinate carries
	// no explicit radius. Negative means unlimited.
	DefaultRadius float64

	UseSharedMemory bool
	MemoryFile      string
	UseMmap         bool

	Algorithm Algorithm

	Verbosity   string
	DatasetName string
}

// NewEngineConfig returns the engine's documented defaults: every limit
// unlimited, three alternatives at most, shared memory on until a base path
// is configured.
func NewEngineConfig() EngineConfig {
	return EngineConfig{
		MaxLocationsTrip:          -1,
		MaxLocationsViaroute:      -1,
		MaxLocationsDistanceTable: -1,
		MaxLocationsMapMatching:   -1,
		MaxRadiusMapMatching:      -1,
		MaxResultsNearest:         -1,
		MaxAlternatives:           3,
		DefaultRadius:             -1,
		UseSharedMemory:           true,
	}
}
