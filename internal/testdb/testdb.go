// Package testdb opens a migrated in-memory SQLite database for tests.
package testdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/ecommerce_api/internal/models"
	"github.com/Skotchmaster/ecommerce_api/pkg/db"
)

const DSN = "sqlite:file::memory:?_pragma=foreign_keys(1)"

func New(t testing.TB) *gorm.DB {
	t.Helper()

	gdb, err := db.Open(context.Background(), DSN)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(gdb) })

	require.NoError(t, gdb.AutoMigrate(models.All()...))
	return gdb
}
