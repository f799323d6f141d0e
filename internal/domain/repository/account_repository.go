package repository

import (
	"context"

	"github.com/eco-travel-service/internal/domain"
)

// AccountRepository - хранилище учётных записей.
// Create returns errors.ErrUsernameTaken for an existing username;
// Get and UpdatePassword return errors.ErrUserNotFound for a missing one.
type AccountRepository interface {
	Get(ctx context.Context, username string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) error
	UpdatePassword(ctx context.Context, username, passwordHash string) error
}
