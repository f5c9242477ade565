package launcher

import (
	"context"
	"fmt"
	"sync"

	"ornithe-meta/core/version"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Fetcher downloads raw documents.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Cache persists documents by key.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, data []byte, contentType string) error
}

// Source resolves launcher metadata of loader builds.
type Source struct {
	fetcher Fetcher
	cache   Cache
	logger  *zap.Logger

	mem sync.Map
	sf  singleflight.Group
}

// NewSource creates a source. cache may be nil.
func NewSource(fetcher Fetcher, cache Cache, logger *zap.Logger) *Source {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Source{fetcher: fetcher, cache: cache, logger: logger}
}

// Key is the repository-relative path of a build's metadata document.
func Key(loader version.Version) string {
	c := loader.Coordinate()
	return c.Path() + "/" + c.Artifact + "-" + c.Version + ".json"
}

// Meta returns the metadata of loader, downloading it from repo on first use.
func (s *Source) Meta(ctx context.Context, repo string, loader version.Version) (*Meta, error) {
	key := Key(loader)
	if m, ok := s.mem.Load(key); ok {
		return m.(*Meta), nil
	}

	res, err, _ := s.sf.Do(key, func() (any, error) {
		if m, ok := s.mem.Load(key); ok {
			return m, nil
		}
		m, err := s.load(ctx, repo, loader, key)
		if err != nil {
			return nil, err
		}
		s.mem.Store(key, m)
		return m, nil
	})
	if err != nil {
		return nil, err
	}
	return res.(*Meta), nil
}

func (s *Source) load(ctx context.Context, repo string, loader version.Version, key string) (*Meta, error) {
	l := s.logger.With(zap.String("key", key))

	if s.cache != nil {
		data, ok, err := s.cache.Get(ctx, key)
		switch {
		case err != nil:
			l.Warn("Launcher meta cache read failed", zap.Error(err))
		case ok:
			if m, err := Parse(data); err == nil {
				return m, nil
			}
			l.Warn("Discarding unparsable cached launcher meta")
		}
	}

	url := loader.Coordinate().FileURL(repo, "json")
	data, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetching launcher meta of %s: %w", loader.Maven, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", url, err)
	}
	l.Debug("Downloaded launcher meta", zap.String("url", url))

	if s.cache != nil {
		if err := s.cache.Put(ctx, key, data, "application/json"); err != nil {
			l.Warn("Launcher meta cache write failed", zap.Error(err))
		}
	}
	return m, nil
}
