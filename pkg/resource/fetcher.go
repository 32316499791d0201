package resource

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	stdnet "dockui/std/net"
)

// Fetcher retrieves scene sources by URI.
type Fetcher interface {
	Fetch(ctx context.Context, uri string) (body []byte, err error)
}

// DefaultFetcher reads local files and fetches http(s) URLs. Relative URIs
// are resolved against the base, which may itself be a URL or a directory.
type DefaultFetcher struct {
	baseURL string
}

// NewFetcher creates a DefaultFetcher with the given base.
func NewFetcher(baseURL string) *DefaultFetcher {
	return &DefaultFetcher{baseURL: baseURL}
}

// Resolve returns the URI Fetch would load.
func (f *DefaultFetcher) Resolve(uri string) string {
	if stdnet.IsNetworkURL(uri) || f.baseURL == "" {
		return uri
	}
	if stdnet.IsNetworkURL(f.baseURL) {
		return stdnet.ResolveURL(f.baseURL, uri)
	}
	if filepath.IsAbs(uri) {
		return uri
	}
	return filepath.Join(f.baseURL, uri)
}

func (f *DefaultFetcher) Fetch(ctx context.Context, uri string) ([]byte, error) {
	resolved := f.Resolve(uri)
	if stdnet.IsNetworkURL(resolved) {
		body, _, err := stdnet.Fetch(ctx, resolved)
		return body, err
	}
	body, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", resolved, err)
	}
	return body, nil
}
