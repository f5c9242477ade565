package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"ornithe-meta/core/config"
	"ornithe-meta/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// refreshCmd builds one snapshot without serving it.
var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Build a version snapshot once and report its contents",
	Long:  `Fetches every upstream, reconciles all generations and prints per-collection counts. Use --json to save the summary to a file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		startTime := time.Now()

		jsonOutput, _ := cmd.Flags().GetBool("json")

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		logg.Info("Building version snapshot...",
			zap.Int("latest_generation", cfg.Meta.LatestGeneration),
			zap.Int("stable_generation", cfg.Meta.StableGeneration),
		)

		snap, err := newPipeline(cfg, logg).builder.Build(ctx)
		if err != nil {
			return fmt.Errorf("snapshot build failed: %w", err)
		}
		summary := snap.Summary()

		if jsonOutput {
			filename := fmt.Sprintf("snapshot_summary_%d.json", time.Now().Unix())
			data, err := json.MarshalIndent(summary, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			if err := os.WriteFile(filename, data, 0644); err != nil {
				return fmt.Errorf("failed to save JSON file: %w", err)
			}
			logg.Info("Snapshot summary saved", zap.String("file", filename))
		}

		gens := make([]int, 0, len(summary.PerGen))
		for gen := range summary.PerGen {
			gens = append(gens, gen)
		}
		sort.Ints(gens)

		fmt.Println("\n=== Version Snapshot ===")
		for _, gen := range gens {
			counts := summary.PerGen[gen]
			fmt.Printf("gen%d: game=%d intermediary=%d feather=%d osl=%d modules=%d fabric=%d quilt=%d\n",
				gen, counts["game"], counts["intermediary"], counts["feather"], counts["osl"],
				counts["oslModules"], counts["fabricLoader"], counts["quiltLoader"])
		}
		fmt.Printf("Raven: %d\n", summary.Raven)
		fmt.Printf("Sparrow: %d\n", summary.Sparrow)
		fmt.Printf("Nests: %d\n", summary.Nests)
		fmt.Printf("Installer: %d\n", summary.Installer)
		fmt.Printf("Library Upgrades: %d\n", summary.Libraries)
		fmt.Printf("Execution Time: %s\n", time.Since(startTime).String())

		logg.Info("Snapshot build completed", zap.Duration("took", snap.BuildDuration()))
		return nil
	},
}

func init() {
	refreshCmd.Flags().Bool("json", false, "Save the snapshot summary to a JSON file")
	RootCmd.AddCommand(refreshCmd)
}
