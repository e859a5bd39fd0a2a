package repositories

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/maxaizer/hh-tracker/internal/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DbContext struct {
	DB *gorm.DB
}

func NewDbContext(connectionString string) (*DbContext, error) {
	db, err := gorm.Open(sqlite.Open(connectionString), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}

	return &DbContext{DB: db}, nil
}

func (c *DbContext) Migrate() error {
	err := c.DB.AutoMigrate(entities.User{})
	if err != nil {
		return fmt.Errorf("failed to migrate User entity: %w", err)
	}

	err = c.DB.AutoMigrate(entities.Vacancy{})
	if err != nil {
		return fmt.Errorf("failed to migrate Vacancy entity: %w", err)
	}

	err = c.DB.AutoMigrate(entities.SavedVacancy{})
	if err != nil {
		return fmt.Errorf("failed to migrate SavedVacancy entity: %w", err)
	}

	err = c.DB.AutoMigrate(entities.ProgressEntry{})
	if err != nil {
		return fmt.Errorf("failed to migrate ProgressEntry entity: %w", err)
	}

	// At most one live cache row per external id; permanent snapshots may
	// repeat an external id, one per save.
	if err = c.DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_cache_external_id ON vacancies (external_id) WHERE cache_expires_at IS NOT NULL; " +
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_user_external_id ON saved_vacancies (user_id, external_id);").
		Error; err != nil {
		return fmt.Errorf("failed to create vacancy indexes: %w", err)
	}

	return nil
}

func (c *DbContext) Close() error {
	db, err := c.DB.DB()
	if err != nil {
		return err
	}

	return db.Close()
}
