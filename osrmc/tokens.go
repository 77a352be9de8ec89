package osrmc

import (
	"strings"

	"github.com/moviro-hub/libosrmc/osrm"
)

// splitMaskTokens splits a comma-or-pipe separated token list, trimming
// surrounding whitespace and dropping empty entries.
func splitMaskTokens(value string) []string {
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == '|'
	})
	tokens := fields[:0]
	for _, field := range fields {
		if token := strings.TrimSpace(field); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

func parseGeometries(value string) (osrm.Geometries, bool) {
	switch strings.ToLower(value) {
	case "polyline":
		return osrm.GeometriesPolyline, true
	case "polyline6":
		return osrm.GeometriesPolyline6, true
	case "geojson":
		return osrm.GeometriesGeoJSON, true
	}
	return 0, false
}

func parseOverview(value string) (osrm.Overview, bool) {
	switch strings.ToLower(value) {
	case "simplified":
		return osrm.OverviewSimplified, true
	case "full":
		return osrm.OverviewFull, true
	case "false", "none":
		return osrm.OverviewFalse, true
	}
	return 0, false
}

func routeAnnotationFromToken(token string) (osrm.RouteAnnotations, bool) {
	switch strings.ToLower(token) {
	case "none":
		return osrm.AnnotationNone, true
	case "duration":
		return osrm.AnnotationDuration, true
	case "distance":
		return osrm.AnnotationDistance, true
	case "weight":
		return osrm.AnnotationWeight, true
	case "speed":
		return osrm.AnnotationSpeed, true
	case "nodes":
		return osrm.AnnotationNodes, true
	case "datasources":
		return osrm.AnnotationDatasources, true
	case "all":
		return osrm.AnnotationAll, true
	}
	return 0, false
}

// parseRouteAnnotations folds an annotation token list into a mask. The
// token "all" short-circuits to the full mask, "none" contributes nothing,
// an unknown token fails the whole parse, and an empty list reads as none.
func parseRouteAnnotations(value string) (osrm.RouteAnnotations, bool) {
	tokens := splitMaskTokens(value)
	mask := osrm.AnnotationNone
	for _, token := range tokens {
		ann, ok := routeAnnotationFromToken(token)
		if !ok {
			return 0, false
		}
		if ann == osrm.AnnotationAll {
			return osrm.AnnotationAll, true
		}
		mask |= ann
	}
	return mask, true
}

func tableAnnotationFromToken(token string) (osrm.TableAnnotations, bool) {
	switch strings.ToLower(token) {
	case "none":
		return osrm.TableAnnotationNone, true
	case "duration":
		return osrm.TableAnnotationDuration, true
	case "distance":
		return osrm.TableAnnotationDistance, true
	case "all":
		return osrm.TableAnnotationAll, true
	}
	return 0, false
}

// parseTableAnnotations follows the same folding rules as the route mask
// over the table token set.
func parseTableAnnotations(value string) (osrm.TableAnnotations, bool) {
	tokens := splitMaskTokens(value)
	mask := osrm.TableAnnotationNone
	for _, token := range tokens {
		ann, ok := tableAnnotationFromToken(token)
		if !ok {
			return 0, false
		}
		if ann == osrm.TableAnnotationAll {
			return osrm.TableAnnotationAll, true
		}
		mask |= ann
	}
	return mask, true
}

func parseFallbackCoordinate(value string) (osrm.FallbackCoordinate, bool) {
	switch strings.ToLower(value) {
	case "input":
		return osrm.FallbackCoordinateInput, true
	case "snapped":
		return osrm.FallbackCoordinateSnapped, true
	}
	return 0, false
}

func parseGaps(value string) (osrm.Gaps, bool) {
	switch strings.ToLower(value) {
	case "split":
		return osrm.GapsSplit, true
	case "ignore":
		return osrm.GapsIgnore, true
	}
	return 0, false
}

func parseTripSource(value string) (osrm.TripSource, bool) {
	switch strings.ToLower(value) {
	case "first":
		return osrm.TripSourceFirst, true
	case "any":
		return osrm.TripSourceAny, true
	}
	return 0, false
}

func parseTripDestination(value string) (osrm.TripDestination, bool) {
	switch strings.ToLower(value) {
	case "last":
		return osrm.TripDestinationLast, true
	case "any":
		return osrm.TripDestinationAny, true
	}
	return 0, false
}

func parseFeatureDataset(value string) (osrm.FeatureDataset, bool) {
	switch strings.ToLower(value) {
	case "route_steps":
		return osrm.DatasetRouteSteps, true
	case "route_geometry":
		return osrm.DatasetRouteGeometry, true
	}
	return 0, false
}
