package capi

/*
#include "osrmc_types.h"
*/
import "C"

import (
	"unsafe"

	"github.com/moviro-hub/libosrmc/osrm"
	"github.com/moviro-hub/libosrmc/osrmc"
)

func restoreConfig(config C.osrmc_config_t, errOut *C.osrmc_error_t) (*osrmc.Config, bool) {
	cfg, ok := restore[*osrmc.Config](unsafe.Pointer(config))
	if !ok {
		setInvalidArgument(errOut, "Config cannot be null")
	}
	return cfg, ok
}

//export osrmc_config_construct
func osrmc_config_construct(basePath *C.char, errOut *C.osrmc_error_t) C.osrmc_config_t {
	path := ""
	if basePath != nil {
		path = C.GoString(basePath)
	}
	return C.osrmc_config_t(save(osrmc.NewConfig(path)))
}

//export osrmc_config_destruct
func osrmc_config_destruct(config C.osrmc_config_t) {
	unref(unsafe.Pointer(config))
}

//export osrmc_config_set_algorithm
func osrmc_config_set_algorithm(config C.osrmc_config_t, algorithm C.osrmc_algorithm_t, errOut *C.osrmc_error_t) {
	cfg, ok := restoreConfig(config, errOut)
	if !ok {
		return
	}
	if err := cfg.SetAlgorithm(osrm.Algorithm(algorithm)); err != nil {
		setError(errOut, err)
	}
}

//export osrmc_config_set_max_locations_trip
func osrmc_config_set_max_locations_trip(config C.osrmc_config_t, maxLocations C.int, errOut *C.osrmc_error_t) {
	cfg, ok := restoreConfig(config, errOut)
	if !ok {
		return
	}
	cfg.SetMaxLocationsTrip(int(maxLocations))
}

//export osrmc_config_set_max_locations_viaroute
func osrmc_config_set_max_locations_viaroute(config C.osrmc_config_t, maxLocations C.int, errOut *C.osrmc_error_t) {
	cfg, ok := restoreConfig(config, errOut)
	if !ok {
		return
	}
	cfg.SetMaxLocationsViaroute(int(maxLocations))
}

//export osrmc_config_set_max_locations_distance_table
func osrmc_config_set_max_locations_distance_table(config C.osrmc_config_t, maxLocations C.int, errOut *C.osrmc_error_t) {
	cfg, ok := restoreConfig(config, errOut)
	if !ok {
		return
	}
	cfg.SetMaxLocationsDistanceTable(int(maxLocations))
}

//export osrmc_config_set_max_locations_map_matching
func osrmc_config_set_max_locations_map_matching(config C.osrmc_config_t, maxLocations C.int, errOut *C.osrmc_error_t) {
	cfg, ok := restoreConfig(config, errOut)
	if !ok {
		return
	}
	cfg.SetMaxLocationsMapMatching(int(maxLocations))
}

//export osrmc_config_set_max_radius_map_matching
func osrmc_config_set_max_radius_map_matching(config C.osrmc_config_t, maxRadius C.double, errOut *C.osrmc_error_t) {
	cfg, ok := restoreConfig(config, errOut)
	if !ok {
		return
	}
	cfg.SetMaxRadiusMapMatching(float64(maxRadius))
}

//export osrmc_config_set_max_results_nearest
func osrmc_config_set_max_results_nearest(config C.osrmc_config_t, maxResults C.int, errOut *C.osrmc_error_t) {
	cfg, ok := restoreConfig(config, errOut)
	if !ok {
		return
	}
	cfg.SetMaxResultsNearest(int(maxResults))
}

//export osrmc_config_set_default_radius
func osrmc_config_set_default_radius(config C.osrmc_config_t, defaultRadius C.double, errOut *C.osrmc_error_t) {
	cfg, ok := restoreConfig(config, errOut)
	if !ok {
		return
	}
	cfg.SetDefaultRadius(float64(defaultRadius))
}

//export osrmc_config_set_max_alternatives
func osrmc_config_set_max_alternatives(config C.osrmc_config_t, maxAlternatives C.int, errOut *C.osrmc_error_t) {
	cfg, ok := restoreConfig(config, errOut)
	if !ok {
		return
	}
	cfg.SetMaxAlternatives(int(maxAlternatives))
}

//export osrmc_config_set_use_mmap
func osrmc_config_set_use_mmap(config C.osrmc_config_t, useMmap C.bool, errOut *C.osrmc_error_t) {
	cfg, ok := restoreConfig(config, errOut)
	if !ok {
		return
	}
	cfg.SetUseMmap(bool(useMmap))
}

//export osrmc_config_set_dataset_name
func osrmc_config_set_dataset_name(config C.osrmc_config_t, datasetName *C.char, errOut *C.osrmc_error_t) {
	cfg, ok := restoreConfig(config, errOut)
	if !ok {
		return
	}
	name := ""
	if datasetName != nil {
		name = C.GoString(datasetName)
	}
	cfg.SetDatasetName(name)
}

//export osrmc_config_set_use_shared_memory
func osrmc_config_set_use_shared_memory(config C.osrmc_config_t, useSharedMemory C.bool, errOut *C.osrmc_error_t) {
	cfg, ok := restoreConfig(config, errOut)
	if !ok {
		return
	}
	cfg.SetUseSharedMemory(bool(useSharedMemory))
}

//export osrmc_config_set_memory_file
func osrmc_config_set_memory_file(config C.osrmc_config_t, memoryFile *C.char, errOut *C.osrmc_error_t) {
	cfg, ok := restoreConfig(config, errOut)
	if !ok {
		return
	}
	path := ""
	if memoryFile != nil {
		path = C.GoString(memoryFile)
	}
	cfg.SetMemoryFile(path)
}

//export osrmc_config_set_verbosity
func osrmc_config_set_verbosity(config C.osrmc_config_t, verbosity *C.char, errOut *C.osrmc_error_t) {
	cfg, ok := restoreConfig(config, errOut)
	if !ok {
		return
	}
	level := ""
	if verbosity != nil {
		level = C.GoString(verbosity)
	}
	cfg.SetVerbosity(level)
}

//export osrmc_config_disable_feature_dataset
func osrmc_config_disable_feature_dataset(config C.osrmc_config_t, datasetName *C.char, errOut *C.osrmc_error_t) {
	cfg, ok := restoreConfig(config, errOut)
	if !ok {
		return
	}
	if datasetName == nil {
		setInvalidArgument(errOut, "Dataset name cannot be null")
		return
	}
	if err := cfg.DisableFeatureDataset(C.GoString(datasetName)); err != nil {
		setError(errOut, err)
	}
}

//export osrmc_config_clear_disabled_feature_datasets
func osrmc_config_clear_disabled_feature_datasets(config C.osrmc_config_t, errOut *C.osrmc_error_t) {
	cfg, ok := restoreConfig(config, errOut)
	if !ok {
		return
	}
	cfg.ClearDisabledFeatureDatasets()
}

//export osrmc_osrm_construct
func osrmc_osrm_construct(config C.osrmc_config_t, errOut *C.osrmc_error_t) C.osrmc_osrm_t {
	cfg, ok := restoreConfig(config, errOut)
	if !ok {
		return nil
	}
	instance, err := osrmc.New(cfg)
	if err != nil {
		setError(errOut, err)
		return nil
	}
	return C.osrmc_osrm_t(save(instance))
}

//export osrmc_osrm_destruct
func osrmc_osrm_destruct(instance C.osrmc_osrm_t) {
	p := unsafe.Pointer(instance)
	if o, ok := restore[*osrmc.OSRM](p); ok {
		o.Close()
	}
	unref(p)
}

func restoreOSRM(instance C.osrmc_osrm_t, errOut *C.osrmc_error_t) (*osrmc.OSRM, bool) {
	o, ok := restore[*osrmc.OSRM](unsafe.Pointer(instance))
	if !ok {
		setInvalidArgument(errOut, "OSRM instance cannot be null")
	}
	return o, ok
}
