package tagtree

import (
	"github.com/maloquacious/semver"
)

var version = semver.Version{
	Major: 0,
	Minor: 1,
	Patch: 0,
	Build: semver.Commit(),
}

// Version reports the library version.
func Version() semver.Version {
	return version
}
