// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/verve-shop/storefront/internal/domain/catalog"
	"github.com/verve-shop/storefront/internal/domain/order"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Migration handles database migrations
type Migration struct {
	db     *gorm.DB
	logger *logrus.Entry
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB, logger *logrus.Entry) *Migration {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Migration{
		db:     db,
		logger: logger.WithField("component", "migration"),
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	m.logger.Info("🔄 Running database auto-migrations...")

	models := []interface{}{
		&catalog.Product{},
		&catalog.Review{},
		&order.Order{},
		&order.Address{},
	}

	for _, model := range models {
		m.logger.Debugf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	m.logger.Info("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	m.logger.Info("🔄 Creating additional database indexes...")

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_products_category_position ON products(category, position)",
		"CREATE INDEX IF NOT EXISTS idx_products_price ON products(price)",
		"CREATE INDEX IF NOT EXISTS idx_product_reviews_product_date ON product_reviews(product_id, date DESC)",
		"CREATE INDEX IF NOT EXISTS idx_orders_status_date ON orders(status, date DESC)",
	}

	failCount := 0
	for _, index := range indexes {
		if err := m.db.Exec(index).Error; err != nil {
			m.logger.WithError(err).Warn("⚠️ Failed to create index")
			failCount++
		}
	}

	m.logger.Infof("✅ Created %d indexes successfully (%d failed)", len(indexes)-failCount, failCount)
	return nil
}

// SeedInitialData loads the sample catalog and order history. Existing rows
// are left untouched so the seed can run on every start.
func (m *Migration) SeedInitialData() error {
	m.logger.Info("🌱 Seeding initial data...")

	products := catalog.SampleProducts()
	reviews := catalog.SampleReviews()
	orders := order.SampleOrders()
	addresses := order.SampleAddresses()

	return m.db.Transaction(func(tx *gorm.DB) error {
		steps := []struct {
			name string
			rows interface{}
		}{
			{"products", &products},
			{"product reviews", &reviews},
			{"orders", &orders},
			{"addresses", &addresses},
		}

		for _, step := range steps {
			result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(step.rows)
			if result.Error != nil {
				return fmt.Errorf("failed to seed %s: %w", step.name, result.Error)
			}
			m.logger.WithField("inserted", result.RowsAffected).Infof("✅ Seeded %s", step.name)
		}
		return nil
	})
}

// Run migrates the schema, creates indexes and optionally seeds
func (m *Migration) Run(seed bool) error {
	if err := m.RunAutoMigrations(); err != nil {
		return err
	}
	if err := m.CreateIndexes(); err != nil {
		return err
	}
	if seed {
		return m.SeedInitialData()
	}
	return nil
}
