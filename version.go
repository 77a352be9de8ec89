package libosrmc

import "fmt"

// ABI version of the C surface declared in capi/osrmc.h. The packed form
// mirrors the OSRMC_VERSION macro: major in the high 16 bits, minor in the
// low 16.
const (
	VersionMajor = 6
	VersionMinor = 0
	Version      = VersionMajor<<16 | VersionMinor
)

// VersionString returns the ABI version in "major.minor" form.
func VersionString() string {
	return fmt.Sprintf("%d.%d", VersionMajor, VersionMinor)
}

// CompatibleWith reports whether a caller compiled against the packed header
// version v can drive this runtime. Only the major component is significant;
// minor revisions are additive.
func CompatibleWith(v uint32) bool {
	return v>>16 == VersionMajor
}
