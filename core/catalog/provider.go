package catalog

import (
	"context"
	"fmt"
	"strings"
)

// JSONFetcher downloads and decodes JSON documents.
type JSONFetcher interface {
	GetJSON(ctx context.Context, url string, v any) error
}

type manifest struct {
	Versions []Entry `json:"versions"`
}

// Provider loads generation catalogs. The default url may contain one %d
// verb for the generation; individual generations can be pinned to their
// own url.
type Provider struct {
	fetcher     JSONFetcher
	urlTemplate string
	pinned      map[int]string
}

// ProviderOption configures a Provider.
type ProviderOption func(*Provider)

// WithGenerationURL serves generation from url instead of the default.
func WithGenerationURL(generation int, url string) ProviderOption {
	return func(p *Provider) {
		if url != "" {
			p.pinned[generation] = url
		}
	}
}

// NewProvider creates a catalog provider.
func NewProvider(fetcher JSONFetcher, urlTemplate string, opts ...ProviderOption) *Provider {
	p := &Provider{fetcher: fetcher, urlTemplate: urlTemplate, pinned: make(map[int]string)}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// URL returns the manifest url of a generation.
func (p *Provider) URL(generation int) string {
	if u, ok := p.pinned[generation]; ok {
		return u
	}
	if strings.Contains(p.urlTemplate, "%d") {
		return fmt.Sprintf(p.urlTemplate, generation)
	}
	return p.urlTemplate
}

// Catalog fetches and sorts the manifest of a generation.
func (p *Provider) Catalog(ctx context.Context, generation int) (*Catalog, error) {
	if generation < 1 {
		return nil, fmt.Errorf("invalid generation %d", generation)
	}

	var m manifest
	if err := p.fetcher.GetJSON(ctx, p.URL(generation), &m); err != nil {
		return nil, fmt.Errorf("loading gen%d game catalog: %w", generation, err)
	}
	return New(generation, m.Versions), nil
}
