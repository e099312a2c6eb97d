package registry

import (
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name      string
		upstream  string
		published string
		proceed   bool
		stale     bool
	}{
		{name: "never published", upstream: "13.4.0", proceed: true},
		{name: "upstream newer", upstream: "13.4.0", published: "13.3.1", proceed: true},
		{name: "major bump", upstream: "14.0.0", published: "13.21.0", proceed: true},
		{name: "numeric not lexical", upstream: "13.10.0", published: "13.9.0", proceed: true},
		{name: "up to date", upstream: "13.4.0", published: "13.4.0"},
		{name: "published ahead", upstream: "13.4.0", published: "13.5.0", stale: true},
		{name: "prerelease is older", upstream: "14.0.0-rc.1", published: "14.0.0", stale: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var published *semver.Version
			if tt.published != "" {
				published = semver.MustParse(tt.published)
			}

			d := Decide(semver.MustParse(tt.upstream), published)
			assert.Equal(t, tt.proceed, d.Proceed)
			assert.Equal(t, tt.stale, d.Stale)
			assert.NotEmpty(t, d.Reason)
		})
	}
}
