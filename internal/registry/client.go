// Package registry looks up published versions on the npm and crates.io
// registries.
package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

// Default registry endpoints.
const (
	DefaultNPMBaseURL    = "https://registry.npmjs.org"
	DefaultCratesBaseURL = "https://crates.io/api/v1/crates"
	DefaultUserAgent     = "iconcrate (https://github.com/yacobolo/iconcrate)"
)

// ErrNotFound is returned when the registry has no such package.
var ErrNotFound = errors.New("package not found")

// StatusError is a non-success HTTP response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: HTTP %d", e.URL, e.StatusCode)
}

// Retryable reports whether the request may succeed when repeated.
func (e *StatusError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

// Client queries package registries. The zero value uses the public
// registries and http.DefaultClient.
type Client struct {
	HTTPClient    *http.Client
	NPMBaseURL    string
	CratesBaseURL string
	UserAgent     string

	// MaxRetries bounds the retries of a failed request. Zero disables them.
	MaxRetries      uint64
	InitialInterval time.Duration

	Logger *zerolog.Logger
}

// NPMLatest returns the version behind the "latest" dist-tag of pkg.
func (c *Client) NPMLatest(ctx context.Context, pkg string) (*semver.Version, error) {
	var body struct {
		DistTags struct {
			Latest string `json:"latest"`
		} `json:"dist-tags"`
	}
	endpoint := c.base(c.NPMBaseURL, DefaultNPMBaseURL) + "/" + url.PathEscape(pkg)
	if err := c.getJSON(ctx, endpoint, &body); err != nil {
		return nil, err
	}
	if body.DistTags.Latest == "" {
		return nil, fmt.Errorf("npm package %s has no latest tag", pkg)
	}

	v, err := semver.NewVersion(body.DistTags.Latest)
	if err != nil {
		return nil, fmt.Errorf("npm package %s: %w", pkg, err)
	}
	return v, nil
}

// CrateLatest returns the highest non-yanked version of crate.
func (c *Client) CrateLatest(ctx context.Context, crate string) (*semver.Version, error) {
	var body struct {
		Crate struct {
			MaxVersion string `json:"max_version"`
		} `json:"crate"`
		Versions []struct {
			Num    string `json:"num"`
			Yanked bool   `json:"yanked"`
		} `json:"versions"`
	}
	endpoint := c.base(c.CratesBaseURL, DefaultCratesBaseURL) + "/" + url.PathEscape(crate)
	if err := c.getJSON(ctx, endpoint, &body); err != nil {
		return nil, err
	}

	var latest *semver.Version
	for _, v := range body.Versions {
		if v.Yanked {
			continue
		}
		parsed, err := semver.NewVersion(v.Num)
		if err != nil {
			c.log().Debug().Str("crate", crate).Str("version", v.Num).Msg("skipping unparsable version")
			continue
		}
		if latest == nil || parsed.GreaterThan(latest) {
			latest = parsed
		}
	}
	if latest != nil {
		return latest, nil
	}

	if body.Crate.MaxVersion == "" {
		return nil, fmt.Errorf("crate %s has no published versions", crate)
	}
	v, err := semver.NewVersion(body.Crate.MaxVersion)
	if err != nil {
		return nil, fmt.Errorf("crate %s: %w", crate, err)
	}
	return v, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", c.base(c.UserAgent, DefaultUserAgent))

		resp, err := c.httpClient().Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			return err
		}
		defer func() { _ = resp.Body.Close() }()

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return backoff.Permanent(fmt.Errorf("GET %s: %w", endpoint, ErrNotFound))
		case resp.StatusCode != http.StatusOK:
			se := &StatusError{URL: endpoint, StatusCode: resp.StatusCode}
			if se.Retryable() {
				return se
			}
			return backoff.Permanent(se)
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(data, out); err != nil {
			return backoff.Permanent(fmt.Errorf("decode %s: %w", endpoint, err))
		}
		return nil
	}

	notify := func(err error, wait time.Duration) {
		c.log().Warn().Err(err).Dur("retry_in", wait).Str("url", endpoint).Msg("registry request failed")
	}

	return backoff.RetryNotify(operation, c.backOff(ctx), notify)
}

func (c *Client) backOff(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	if c.InitialInterval > 0 {
		exp.InitialInterval = c.InitialInterval
	}
	return backoff.WithContext(backoff.WithMaxRetries(exp, c.MaxRetries), ctx)
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) log() *zerolog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	nop := zerolog.Nop()
	return &nop
}

func (c *Client) base(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
