package db

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"
)

func newTestRepositories(t *testing.T) (*Repositories, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "gestionale-repo-test.db")
	database, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return NewRepositories(database), database
}
