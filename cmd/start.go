package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ornithe-meta/core/config"
	"ornithe-meta/core/launcher"
	"ornithe-meta/core/loader"
	"ornithe-meta/core/logger"
	"ornithe-meta/core/middleware/rayid"
	"ornithe-meta/core/overrides"
	"ornithe-meta/core/snapshot"
	"ornithe-meta/core/storage"

	"ornithe-meta/feature/profile"
	"ornithe-meta/feature/status"
	"ornithe-meta/feature/versions"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "ornithe-meta/docs/swagger"
)

// @title Ornithe Meta API
// @version 3
// @description Version index and launcher profiles for the Ornithe toolchain.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the metadata server",
	Long: `Builds the first version snapshot, then serves it over HTTP while
refreshing it in the background.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// 3. Build the first snapshot; the server never starts without one
		p := newPipeline(cfg, logg)
		store := snapshot.NewStore()
		refresher := snapshot.NewRefresher(p.builder, store, cfg.Meta.RefreshInterval(), logger.Component(logg, "refresher"))
		if err := refresher.Start(ctx); err != nil {
			logg.Fatal("Initial snapshot failed", zap.Error(err))
		}

		// 4. Rebuild when an override file changes
		if cfg.Meta.WatchOverrides {
			watcher, err := overrides.NewWatcher(p.overrides.Dir(), logger.Component(logg, "overrides"))
			if err != nil {
				logg.Fatal("Failed to create override watcher", zap.Error(err))
			}
			if err := watcher.Start(); err != nil {
				logg.Warn("Override watcher not started", zap.String("dir", p.overrides.Dir()), zap.Error(err))
			} else {
				defer watcher.Stop()
				go func() {
					for file := range watcher.Changes {
						logg.Info("Override file changed", zap.String("file", file))
						refresher.Trigger()
					}
				}()
			}
		}

		// 5. Launcher metadata, cached in object storage when enabled
		var cache launcher.Cache
		if cfg.Storage.Enabled {
			client, err := storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
			objects := storage.NewObjectCache(client, cfg.Storage.Bucket, cfg.Storage.Prefix)
			if err := objects.EnsureBucket(ctx, cfg.Storage.Region); err != nil {
				logg.Fatal("Failed to prepare storage bucket", zap.Error(err))
			}
			cache = objects
		}
		meta := launcher.NewSource(p.client, cache, logger.Component(logg, "launcher"))

		// 6. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			ReadTimeout:           cfg.Server.ReadTimeout(),
			WriteTimeout:          cfg.Server.WriteTimeout(),
		})

		mgr := loader.NewManager(logg)
		mgr.Register(status.NewFeature(store, refresher, p.client))
		mgr.Register(versions.NewFeature(store, meta, cfg.Meta, logg))
		mgr.Register(profile.NewFeature(store, meta, cfg.Meta, logg))

		app.Use(recover.New())
		// RayID first so every log line carries it
		app.Use(rayid.New())
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			err := c.Next()
			l.Debug("Request handled", append(logger.RequestFields(c), zap.Int("status", c.Response().StatusCode()))...)
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Get("/swagger/*", swagger.HandlerDefault)

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		<-ctx.Done()
		logg.Info("Shutting down server...")
		if err := app.ShutdownWithTimeout(cfg.Server.ShutdownTimeout()); err != nil {
			logg.Warn("Server shutdown incomplete", zap.Error(err))
		}
		<-refresher.Done()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
