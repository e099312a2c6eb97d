package iconcrate

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/yacobolo/iconcrate/internal/registry"
	"github.com/yacobolo/iconcrate/internal/source"
)

// DefaultNPMPackage is the upstream package the crate tracks.
const DefaultNPMPackage = "simple-icons"

// VersionSource looks up published versions. *registry.Client implements it.
type VersionSource interface {
	NPMLatest(ctx context.Context, pkg string) (*semver.Version, error)
	CrateLatest(ctx context.Context, crate string) (*semver.Version, error)
}

// Sync regenerates the crate at the upstream version when upstream is ahead
// of the newest published crate. A crate that was never published counts as
// behind.
func Sync(ctx context.Context, versions VersionSource, config Config, opts SyncOptions) (*SyncResult, error) {
	log := config.logger()

	result := &SyncResult{
		NPMPackage: opts.NPMPackage,
		Crate:      opts.Crate,
	}
	if result.NPMPackage == "" {
		result.NPMPackage = DefaultNPMPackage
	}
	if result.Crate == "" {
		result.Crate = config.CrateName
	}
	if result.Crate == "" {
		return nil, errors.New("crate name is required")
	}

	upstream, err := versions.NPMLatest(ctx, result.NPMPackage)
	if err != nil {
		return nil, fmt.Errorf("npm lookup failed: %w", err)
	}
	result.Upstream = upstream.String()

	published, err := versions.CrateLatest(ctx, result.Crate)
	switch {
	case errors.Is(err, registry.ErrNotFound):
		published = nil
	case err != nil:
		return nil, fmt.Errorf("crates.io lookup failed: %w", err)
	default:
		result.Published = published.String()
	}

	result.Decision = registry.Decide(upstream, published)
	log.Info().
		Str("upstream", result.Upstream).
		Str("published", result.Published).
		Bool("proceed", result.Decision.Proceed).
		Msg(result.Decision.Reason)

	if result.Decision.Stale {
		result.Warnings = append(result.Warnings, result.Decision.Reason)
	}
	if !result.Decision.Proceed || opts.DryRun {
		return result, nil
	}

	if local, err := source.ReadPackageVersion(config.PackageDir); err == nil && local != result.Upstream {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("installed %s is %s but the crate is versioned %s", result.NPMPackage, local, result.Upstream))
	}

	config.Version = result.Upstream
	generated, err := Generate(config)
	if err != nil {
		return nil, err
	}
	result.Generated = generated
	return result, nil
}
