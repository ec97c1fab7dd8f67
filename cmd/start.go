package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rune-forge/core/codec"
	"rune-forge/core/config"
	"rune-forge/core/database"
	"rune-forge/core/loader"
	"rune-forge/core/logger"
	"rune-forge/core/middleware/auth"
	"rune-forge/core/middleware/rayid"
	"rune-forge/core/slot"
	"rune-forge/core/storage"

	"rune-forge/feature/forge"
	"rune-forge/feature/forge/catalog"
	"rune-forge/feature/forge/host"
	"rune-forge/feature/forge/session"
	"rune-forge/feature/forge/store"
	"rune-forge/feature/forge/synthesis"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the rune forge server",
	Long:  `Loads the save profile, reconciles crafted items and starts the HTTP server.`,
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

		// 3. Connect to Database (Optional)
		// Slot storage falls back to memory when the database is unreachable.
		var characterSlots, accountSlots slot.Store
		if db, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed, using in-memory slots", zap.Error(err))
			characterSlots = slot.NewMemoryStore()
			accountSlots = slot.NewMemoryStore()
		} else {
			logg = logg.With(zap.String("profile", cfg.Forge.Profile))
			logg.Info("Connected to profile database")
			characterSlots = slot.NewGormStore(db, cfg.Forge.Profile, slot.ScopeCharacter)
			accountSlots = slot.NewGormStore(db, cfg.Forge.Profile, slot.ScopeAccount)
		}

		// 4. Initialize Storage and load gamedata
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		bootCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Storage.TimeoutSeconds)*time.Second)
		defer cancel()

		if ok, err := client.BucketExists(bootCtx, cfg.Storage.Bucket); err != nil || !ok {
			logg.Warn("Gamedata bucket not reachable", zap.String("bucket", cfg.Storage.Bucket), zap.Error(err))
		}

		forgeCfg, err := catalog.LoadForgeConfig(bootCtx, client, cfg.Storage.Bucket, cfg.Forge.ConfigObject)
		if err != nil {
			logg.Fatal("Failed to load forge configuration", zap.Error(err))
		}

		cat, err := catalog.Load(bootCtx, client, cfg.Storage.Bucket, cfg.Forge.CatalogObject)
		if err != nil {
			logg.Fatal("Failed to load item catalog", zap.Error(err))
		}
		logg.Info("Item catalog loaded", zap.Int("items", cat.Len()))

		// 5. Assemble the forge
		registry := synthesis.NewRegistry(forgeCfg.Namespace)
		engine := synthesis.NewEngine(cat, forgeCfg, registry, logg)
		gameHost := host.NewMemory()
		recordStore := store.New(characterSlots, codec.NewFlate(), logg)
		sess := session.New(recordStore, engine, gameHost, accountSlots, forgeCfg, logg)

		// 6. Reconcile the save profile
		if err := sess.Reconcile(bootCtx); err != nil {
			logg.Fatal("Failed to reconcile craft records", zap.Error(err))
		}
		if err := sess.ReequipCrafted(); err != nil {
			logg.Warn("Reequip pass failed", zap.Error(err))
		}
		if err := sess.GrantWelcomeItems(bootCtx); err != nil {
			logg.Warn("Welcome grant failed", zap.Error(err))
		}

		// Cleanup runs shortly after startup so the host inventory has settled.
		time.AfterFunc(time.Duration(cfg.Forge.CleanupDelaySeconds)*time.Second, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := sess.CleanRecords(ctx); err != nil {
				logg.Warn("Cleanup pass failed", zap.Error(err))
			}
		})

		svc := forge.NewService(recordStore, sess, cat, gameHost, forgeCfg, logg)

		// 7. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// Middleware Registration
		// RayID must be first to trace everything
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 8. Load Features
		mgr := loader.NewManager()
		mgr.Register(forge.NewFeature(svc))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 9. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 10. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
