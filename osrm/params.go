package osrm

// Snapping selects which edges a coordinate may snap to.
type Snapping uint8

const (
	SnappingDefault Snapping = iota
	SnappingAny
)

// OutputFormat selects the result union alternative the engine produces.
type OutputFormat uint8

const (
	FormatJSON OutputFormat = iota
	FormatFlatBuffers
)

// Geometries selects the route geometry encoding.
type Geometries uint8

const (
	GeometriesPolyline Geometries = iota
	GeometriesPolyline6
	GeometriesGeoJSON
)

// String returns the request token for the geometry encoding.
func (g Geometries) String() string {
	switch g {
	case GeometriesPolyline:
		return "polyline"
	case GeometriesPolyline6:
		return "polyline6"
	case GeometriesGeoJSON:
		return "geojson"
	}
	return "unknown"
}

// Overview selects how much of the overview geometry is returned.
type Overview uint8

const (
	OverviewSimplified Overview = iota
	OverviewFull
	OverviewFalse
)

// String returns the request token for the overview level.
func (o Overview) String() string {
	switch o {
	case OverviewSimplified:
		return "simplified"
	case OverviewFull:
		return "full"
	case OverviewFalse:
		return "false"
	}
	return "unknown"
}

// RouteAnnotations is the bit mask of per-segment metadata the route family
// can attach to responses.
type RouteAnnotations uint8

const (
	AnnotationNone        RouteAnnotations = 0
	AnnotationDuration    RouteAnnotations = 0x01
	AnnotationNodes       RouteAnnotations = 0x02
	AnnotationDistance    RouteAnnotations = 0x04
	AnnotationWeight      RouteAnnotations = 0x08
	AnnotationDatasources RouteAnnotations = 0x10
	AnnotationSpeed       RouteAnnotations = 0x20
	AnnotationAll         RouteAnnotations = 0x3F
)

// Has reports whether every bit of mask is set.
func (a RouteAnnotations) Has(mask RouteAnnotations) bool {
	return a&mask == mask
}

// TableAnnotations selects which matrices a table response carries.
type TableAnnotations uint8

const (
	TableAnnotationNone     TableAnnotations = 0
	TableAnnotationDuration TableAnnotations = 1
	TableAnnotationDistance TableAnnotations = 2
	TableAnnotationAll      TableAnnotations = 3
)

// FallbackCoordinate selects which coordinate the table service uses when
// estimating a matrix entry for an unsnappable input.
type FallbackCoordinate uint8

const (
	FallbackCoordinateInput FallbackCoordinate = iota
	FallbackCoordinateSnapped
)

// Gaps is the map-matching policy for temporal gaps in the trace.
type Gaps uint8

const (
	GapsSplit Gaps = iota
	GapsIgnore
)

// TripSource fixes the first waypoint of a computed trip.
type TripSource uint8

const (
	TripSourceAny TripSource = iota
	TripSourceFirst
)

// TripDestination fixes the last waypoint of a computed trip.
type TripDestination uint8

const (
	TripDestinationAny TripDestination = iota
	TripDestinationLast
)

// BaseParameters is the substructure shared by every service but tile.
//
// The modifier vectors Radiuses, Bearings, Approaches and Hints run parallel
// to Coordinates; a nil element means "unset". The binding layer maintains
// the invariant that no modifier vector is ever longer than Coordinates.
type BaseParameters struct {
	Coordinates []Coordinate
	Radiuses    []*float64
	Bearings    []*Bearing
	Approaches  []*Approach
	Hints       []*Hint

	Excludes []string

	GenerateHints bool
	SkipWaypoints bool
	Snapping      Snapping

	// Format selects the result union alternative. Nil leaves the choice to
	// the engine; recent engine revisions default to the binary builder.
	Format *OutputFormat
}

// NewBaseParameters returns the engine defaults for the shared substructure.
func NewBaseParameters() BaseParameters {
	return BaseParameters{GenerateHints: true}
}

// RouteParameters drives the route service and, through embedding, the match
// and trip services.
type RouteParameters struct {
	BaseParameters

	Steps                bool
	Alternatives         bool
	NumberOfAlternatives uint32

	// Annotations reports whether AnnotationsType is non-empty; the pair is
	// kept consistent by the binding layer.
	Annotations     bool
	AnnotationsType RouteAnnotations

	Geometries       Geometries
	Overview         Overview
	ContinueStraight *bool

	// Waypoints lists input coordinate indices to keep as route waypoints.
	// Bounds are validated by the engine at request time.
	Waypoints []int
}

// NewRouteParameters returns the engine defaults for the route service.
func NewRouteParameters() *RouteParameters {
	return &RouteParameters{BaseParameters: NewBaseParameters()}
}

// NearestParameters drives the nearest service.
type NearestParameters struct {
	BaseParameters

	NumberOfResults uint32
}

// NewNearestParameters returns the engine defaults for the nearest service.
func NewNearestParameters() *NearestParameters {
	return &NearestParameters{BaseParameters: NewBaseParameters(), NumberOfResults: 1}
}

// TableParameters drives the table (many-to-many matrix) service. Empty
// Sources or Destinations mean "all coordinates".
type TableParameters struct {
	BaseParameters

	Sources      []int
	Destinations []int

	Annotations TableAnnotations

	// FallbackSpeed, when positive, estimates matrix entries for unsnappable
	// coordinates from straight-line distance at this speed.
	FallbackSpeed          float64
	FallbackCoordinateType FallbackCoordinate

	// ScaleFactor multiplies every duration entry in the response.
	ScaleFactor float64
}

// NewTableParameters returns the engine defaults for the table service.
func NewTableParameters() *TableParameters {
	return &TableParameters{
		BaseParameters: NewBaseParameters(),
		Annotations:    TableAnnotationDuration,
		ScaleFactor:    1,
	}
}

// MatchParameters drives the map-matching service.
type MatchParameters struct {
	RouteParameters

	// Timestamps, when present, run parallel to Coordinates (Unix seconds).
	Timestamps []int64
	Gaps       Gaps
	Tidy       bool
}

// NewMatchParameters returns the engine defaults for the match service.
func NewMatchParameters() *MatchParameters {
	return &MatchParameters{RouteParameters: *NewRouteParameters()}
}

// TripParameters drives the trip (travelling-salesman) service.
type TripParameters struct {
	RouteParameters

	Roundtrip   bool
	Source      TripSource
	Destination TripDestination
}

// NewTripParameters returns the engine defaults for the trip service.
func NewTripParameters() *TripParameters {
	return &TripParameters{RouteParameters: *NewRouteParameters(), Roundtrip: true}
}

// TileParameters addresses one XYZ vector tile.
type TileParameters struct {
	X uint32
	Y uint32
	Z uint32
}

// NewTileParameters returns a zero tile address.
func NewTileParameters() *TileParameters {
	return &TileParameters{}
}
