package registry

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Decision says whether a new crate release should be built.
type Decision struct {
	Proceed bool
	// Stale is set when the published crate is ahead of upstream.
	Stale  bool
	Reason string
}

// Decide compares the upstream npm version with the published crate version.
// A nil published version means the crate was never released.
func Decide(upstream, published *semver.Version) Decision {
	if published == nil {
		return Decision{Proceed: true, Reason: fmt.Sprintf("crate not published yet, releasing %s", upstream)}
	}

	switch upstream.Compare(published) {
	case 1:
		return Decision{Proceed: true, Reason: fmt.Sprintf("upstream %s is newer than published %s", upstream, published)}
	case 0:
		return Decision{Reason: fmt.Sprintf("crate %s is up to date", published)}
	default:
		return Decision{Stale: true, Reason: fmt.Sprintf("published %s is ahead of upstream %s", published, upstream)}
	}
}
