package gps

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Version is a single point in the version space of a package. The
// resolver never parses or formats version strings itself; that work is
// delegated entirely to Masterminds/semver.
type Version struct {
	sv *semver.Version
}

// NewVersion parses body as a semantic version. It returns an error if body
// is not well-formed; the resolver treats that as a registration-time
// programming error, not a search failure.
func NewVersion(body string) (Version, error) {
	sv, err := semver.NewVersion(body)
	if err != nil {
		return Version{}, fmt.Errorf("gps: invalid version %q: %w", body, err)
	}
	return Version{sv: sv}, nil
}

// String renders the version as its dotted numeric form.
func (v Version) String() string {
	if v.sv == nil {
		return ""
	}
	return v.sv.String()
}

// Equal reports whether v and v2 identify the same version.
func (v Version) Equal(v2 Version) bool {
	if v.sv == nil || v2.sv == nil {
		return v.sv == v2.sv
	}
	return v.sv.Equal(v2.sv)
}

// LessThan reports whether v orders strictly before v2.
func (v Version) LessThan(v2 Version) bool {
	return v.sv.Compare(v2.sv) < 0
}

// AtLeast reports whether v is greater than or equal to v2. Both the
// "ecv ≤ version" and "constraint.version ≤ candidate.version" compatibility
// checks used elsewhere in this package are expressed with this one method.
func (v Version) AtLeast(v2 Version) bool {
	return v.sv.Compare(v2.sv) >= 0
}

// IsZero reports whether v is the unset Version value.
func (v Version) IsZero() bool {
	return v.sv == nil
}
