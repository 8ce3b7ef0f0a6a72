package database

import (
	"path/filepath"
	"testing"

	"portfolio_backend/internal/config"
	"portfolio_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialector(t *testing.T) {
	for _, driver := range []string{"postgres", "mysql", "sqlite"} {
		d, err := Dialector(driver, "dsn")
		require.NoError(t, err, driver)
		assert.NotNil(t, d)
	}

	_, err := Dialector("mongo", "dsn")
	assert.Error(t, err)
}

func TestConnect_SQLiteMigrates(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "data", "portfolio.db")

	db, err := Connect(config.DatabaseConfig{
		Driver:      "sqlite",
		DSN:         dsn,
		AutoMigrate: true,
	}, "test")
	require.NoError(t, err)

	for _, m := range models.All() {
		assert.True(t, db.Migrator().HasTable(m), "%T table missing", m)
	}
	assert.True(t, db.Migrator().HasColumn(&models.Project{}, "display_order"))
	assert.True(t, db.Migrator().HasColumn(&models.Experience{}, "experience_type"))
}
