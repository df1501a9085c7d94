package ligerito

import (
	"github.com/blang/semver/v4"
)

// ProtocolVersion is the wire-format version embedded in every
// Marshal'd proof so a future incompatible layout change can be
// detected cleanly instead of silently misparsing older proofs.
var ProtocolVersion = semver.MustParse("1.0.0")

// compatibleVersion reports whether a decoded proof's version can be
// read by this build: same major version, any minor/patch (the usual
// semver compatibility rule for a stable wire format).
func compatibleVersion(v semver.Version) bool {
	return v.Major == ProtocolVersion.Major
}
