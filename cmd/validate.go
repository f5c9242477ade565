package cmd

import (
	"fmt"

	"ornithe-meta/core/catalog"
	"ornithe-meta/core/compat"
	"ornithe-meta/core/config"
	"ornithe-meta/core/logger"
	"ornithe-meta/core/overrides"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// validateCmd checks the library upgrade file against live game catalogs.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate library upgrades against the game catalogs",
	Long: `Loads ` + overrides.LibraryUpgradesFile + ` from the overrides directory and checks
every entry's notation, generation bounds and game version bounds.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		p := newPipeline(cfg, logg)
		libs, err := p.overrides.LibraryUpgrades()
		if err != nil {
			return fmt.Errorf("failed to load library upgrades: %w", err)
		}

		normalizers := make(map[int]compat.Normalizer, cfg.Meta.LatestGeneration)
		for gen := 1; gen <= cfg.Meta.LatestGeneration; gen++ {
			cat, err := p.catalogs.Catalog(ctx, gen)
			if err != nil {
				return fmt.Errorf("failed to load gen%d catalog: %w", gen, err)
			}
			normalizers[gen] = catalog.NewNormalizer(cat, p.client)
		}

		if err := compat.ValidateAll(ctx, libs, cfg.Meta.LatestGeneration, normalizers); err != nil {
			return err
		}

		fmt.Printf("%d library upgrades valid\n", len(libs))
		logg.Info("Library upgrades validated", zap.Int("count", len(libs)))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
}
