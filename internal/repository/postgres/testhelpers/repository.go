package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/eco-travel-service/internal/domain/repository"
	"github.com/eco-travel-service/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewAccountRepositoryForTest creates an account repository with test database and logger
func NewAccountRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.AccountRepository {
	return postgres.NewAccountRepository(NewDBForTest(db, logger))
}
