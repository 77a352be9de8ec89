package capi

// This file holds the C helper definitions the exported entry points call.
// It has to be separate from the files carrying //export directives, which
// may only declare C functions in their preambles.

/*
#include <stdlib.h>

#include "bridge.h"

void* osrmc_malloc(size_t size) {
	return malloc(size);
}

void osrmc_buffer_free(void* data) {
	free(data);
}

osrmc_buffer_deleter_t osrmc_buffer_free_fn(void) {
	return osrmc_buffer_free;
}

void osrmc_invoke_waypoint_handler(osrmc_waypoint_handler_t handler, void* data, const char* name,
                                   double longitude, double latitude) {
	handler(data, name, longitude, latitude);
}
*/
import "C"
