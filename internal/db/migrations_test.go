package db

import (
	"path/filepath"
	"testing"

	"github.com/terzostudio/gestionale/internal/models"
)

func TestOpenSQLiteAppliesMigrationsOnce(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "gestionale-migrations-test.db")

	database, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}

	client := models.Client{Name: "Persistente"}
	if err := database.Create(&client).Error; err != nil {
		t.Fatalf("create client: %v", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("close db: %v", err)
	}

	reopened, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("reopen must not re-run applied migrations: %v", err)
	}
	reopenedSQL, err := reopened.DB()
	if err != nil {
		t.Fatalf("unwrap reopened db: %v", err)
	}
	defer reopenedSQL.Close()

	var count int64
	if err := reopened.Model(&models.Client{}).Count(&count).Error; err != nil {
		t.Fatalf("count clients: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected the seeded row to survive a reopen, got %d", count)
	}

	var applied int64
	if err := reopened.Raw(`SELECT COUNT(*) FROM schema_migrations`).Scan(&applied).Error; err != nil {
		t.Fatalf("count applied migrations: %v", err)
	}
	if applied == 0 {
		t.Fatal("expected at least one recorded migration")
	}
}

func TestUserRepositoryFindByUsernameTrimsInput(t *testing.T) {
	repositories, _ := newTestRepositories(t)

	if err := repositories.Users.Create(&models.User{Username: "marta", PasswordHash: "x"}); err != nil {
		t.Fatalf("create user: %v", err)
	}

	user, err := repositories.Users.FindByUsername("  marta  ")
	if err != nil {
		t.Fatalf("find by username: %v", err)
	}
	if user.Username != "marta" {
		t.Fatalf("expected the trimmed lookup to match, got %q", user.Username)
	}
}
