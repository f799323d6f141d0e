package testhelpers

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/eco-travel-service/internal/repository/postgres"
)

// ApplyMigrations applies the embedded schema migrations to the test database
func ApplyMigrations(ctx context.Context, db *sqlx.DB) error {
	return postgres.NewDBForTest(db, nil).Migrate(ctx)
}
