package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/eco-travel-service/internal/domain"
	"github.com/eco-travel-service/internal/domain/repository"
	"github.com/eco-travel-service/internal/pkg/errors"
)

type accountRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewAccountRepository(db *DB) repository.AccountRepository {
	return &accountRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *accountRepository) Get(ctx context.Context, username string) (*domain.Account, error) {
	query := `
		SELECT username, password_hash, created_at, updated_at
		FROM accounts
		WHERE username = $1
	`

	var account domain.Account
	if err := r.db.GetContext(ctx, &account, query, username); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.ErrUserNotFound
		}
		r.logger.Error("Failed to get account", zap.String("username", username), zap.Error(err))
		return nil, fmt.Errorf("get account: %w: %w", errors.ErrDatabaseError, err)
	}

	return &account, nil
}

// Create вставляет запись в транзакции; конфликт по username - ErrUsernameTaken
func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w: %w", errors.ErrDatabaseError, err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO accounts (username, password_hash, created_at, updated_at)
		VALUES (:username, :password_hash, :created_at, :updated_at)
		ON CONFLICT (username) DO NOTHING
	`

	res, err := tx.NamedExecContext(ctx, query, account)
	if err != nil {
		r.logger.Error("Failed to create account", zap.String("username", account.Username), zap.Error(err))
		return fmt.Errorf("create account: %w: %w", errors.ErrDatabaseError, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("create account: %w: %w", errors.ErrDatabaseError, err)
	}
	if affected == 0 {
		return errors.ErrUsernameTaken
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w: %w", errors.ErrDatabaseError, err)
	}
	return nil
}

func (r *accountRepository) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	query := `
		UPDATE accounts
		SET password_hash = $2, updated_at = NOW()
		WHERE username = $1
	`

	res, err := r.db.ExecContext(ctx, query, username, passwordHash)
	if err != nil {
		r.logger.Error("Failed to update password", zap.String("username", username), zap.Error(err))
		return fmt.Errorf("update password: %w: %w", errors.ErrDatabaseError, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update password: %w: %w", errors.ErrDatabaseError, err)
	}
	if affected == 0 {
		return errors.ErrUserNotFound
	}
	return nil
}
