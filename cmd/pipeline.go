package cmd

import (
	"ornithe-meta/core/catalog"
	"ornithe-meta/core/config"
	"ornithe-meta/core/logger"
	"ornithe-meta/core/maven"
	"ornithe-meta/core/overrides"
	"ornithe-meta/core/snapshot"

	"go.uber.org/zap"
)

// pipeline holds the upstream side shared by every command.
type pipeline struct {
	client    *maven.Client
	catalogs  *catalog.Provider
	overrides *overrides.Source
	builder   *snapshot.Builder
}

func newPipeline(cfg *config.Config, logg *zap.Logger) *pipeline {
	client := maven.NewClient(cfg.Maven, maven.WithLogger(logger.Component(logg, "maven")))
	catalogs := catalog.NewProvider(client, cfg.Meta.CatalogURL,
		catalog.WithGenerationURL(1, cfg.Meta.LegacyCatalogURL))
	src := overrides.NewSource(cfg.Meta.OverridesDir)

	return &pipeline{
		client:    client,
		catalogs:  catalogs,
		overrides: src,
		builder:   snapshot.NewBuilder(cfg.Meta, client, catalogs, src, logger.Component(logg, "builder")),
	}
}
