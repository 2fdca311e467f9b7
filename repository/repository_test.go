package repository_test

import (
	"testing"

	"github.com/nmwangi/savoria/initializers"
	"github.com/nmwangi/savoria/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory store with foreign keys enforced.
// SQLite allows one writer, so the pool is capped at a single connection.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, initializers.SyncDatabase(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()

	user := models.User{
		Email:       email,
		Password:    "not-a-real-hash",
		Fullname:    "Jane Mwangi",
		PhoneNumber: "+254700000001",
		Country:     "Kenya",
		State:       "Nairobi",
		HomeAddress: "12 Riverside Drive",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}
