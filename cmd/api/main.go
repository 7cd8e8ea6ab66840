// cmd/api/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/verve-shop/storefront/internal/config"
	"github.com/verve-shop/storefront/internal/domain/cart"
	"github.com/verve-shop/storefront/internal/domain/catalog"
	"github.com/verve-shop/storefront/internal/domain/checkout"
	"github.com/verve-shop/storefront/internal/domain/order"
	"github.com/verve-shop/storefront/internal/domain/session"
	"github.com/verve-shop/storefront/internal/domain/storefront"
	"github.com/verve-shop/storefront/internal/infrastructure/database/postgres"
	"github.com/verve-shop/storefront/internal/infrastructure/database/redis"
	"github.com/verve-shop/storefront/internal/interfaces/http"
	"github.com/verve-shop/storefront/internal/interfaces/http/routes"
	"github.com/verve-shop/storefront/internal/pkg/auth"
	"github.com/verve-shop/storefront/internal/pkg/email"
	"github.com/verve-shop/storefront/internal/pkg/logger"
	"github.com/verve-shop/storefront/internal/pkg/pdf"
	"golang.org/x/sync/errgroup"
)

const sessionSweepInterval = 5 * time.Minute

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	log := logger.New(cfg)
	appLog := logger.Component(log, "app")
	appLog.Infof("🚀 Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	if err := run(cfg, log, appLog); err != nil {
		appLog.Fatalf("Server stopped with error: %v", err)
	}

	appLog.Info("✅ Server shutdown completed")
}

// run wires the application and blocks until shutdown. Resources opened here
// are released by its defers before main exits.
func run(cfg *config.Config, log *logrus.Logger, appLog *logrus.Entry) error {
	var (
		err          error
		deps         []http.Dependency
		catalogRepo  catalog.Repository = catalog.NewSampleRepository()
		orderRepo    order.Repository   = order.NewSampleRepository()
		sessionStore session.Store
		memoryStore  *session.MemoryStore
		redisClient  *redis.Client
	)

	// Catalog and order history
	if cfg.UsesDatabase() {
		db, err := postgres.NewConnection(cfg, logger.Component(log, "postgres"))
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		migration := postgres.NewMigration(db.GetDB(), logger.Component(log, "postgres"))
		if err := migration.Run(cfg.Catalog.Seed); err != nil {
			return fmt.Errorf("database migration failed: %w", err)
		}

		catalogRepo = postgres.NewCatalogRepository(db.GetDB())
		orderRepo = postgres.NewOrderRepository(db.GetDB())
		deps = append(deps, http.Dependency{Name: "database", Check: db.Health})
	} else {
		appLog.Info("📦 Serving the built-in sample catalog")
	}

	// Sessions
	if cfg.UsesRedis() {
		redisClient, err = redis.NewConnection(cfg, logger.Component(log, "redis"))
		if err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}
		defer redisClient.Close()

		sessionStore = redis.NewSessionStore(redisClient, cfg.Session.TTL)
		deps = append(deps, http.Dependency{Name: "redis", Check: redisClient.Health})
	} else {
		memoryStore = session.NewMemoryStore(cfg.Session.TTL)
		sessionStore = memoryStore
		appLog.Warn("⚠️ Sessions are kept in memory and will not survive a restart")
	}

	emailService, err := email.NewEmailService(cfg, logger.Component(log, "email"))
	if err != nil {
		return fmt.Errorf("failed to configure email: %w", err)
	}

	catalogService := catalog.NewService(catalogRepo)
	orderService := order.NewService(orderRepo)

	services := routes.Services{
		Config:     cfg,
		Logger:     logrus.NewEntry(log),
		Catalog:    catalogService,
		Cart:       cart.NewService(catalogService),
		Checkout:   checkout.NewService(emailService, logger.Component(log, "checkout")),
		Orders:     orderService,
		Storefront: storefront.NewService(catalogService, orderService),
		Sessions:   session.NewManager(sessionStore, logger.Component(log, "session")),
		Admin:      auth.NewAdminAuthenticator(cfg),
		Invoices:   pdf.NewService(cfg, logrus.NewEntry(log)),
	}
	if !cfg.AdminLoginEnabled() {
		appLog.Warn("🔒 ADMIN_PASSWORD_HASH is not set, admin login is disabled")
	}

	var rdb *goredis.Client
	if redisClient != nil {
		rdb = redisClient.GetClient()
	}

	server, err := http.NewServer(cfg, services, rdb, deps...)
	if err != nil {
		return fmt.Errorf("failed to create HTTP server: %w", err)
	}

	appLog.Info("✅ All systems operational!")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(server.Start)

	if memoryStore != nil {
		g.Go(func() error {
			ticker := time.NewTicker(sessionSweepInterval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
					if n := memoryStore.Sweep(); n > 0 {
						appLog.WithField("expired", n).Debug("🧹 Swept expired sessions")
					}
				}
			}
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		appLog.Info("👋 Shutting down gracefully...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return server.Stop(shutdownCtx)
	})

	return g.Wait()
}
