package service

import (
	"testing"

	"batalla/backend/internal/database"
	"batalla/backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

// registerUser creates an account directly through the service.
func registerUser(t *testing.T, users *UserService, username, email, pass string) *models.User {
	t.Helper()
	user, err := users.Register(username, email, pass)
	require.NoError(t, err)
	return user
}
