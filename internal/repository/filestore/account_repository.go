// Package filestore keeps accounts in a single JSON file.
//
// Writers inside one process are serialised by a mutex and every write
// replaces the file atomically (temp file + rename). Two processes sharing
// the same file can still lose each other's updates.
package filestore

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/eco-travel-service/internal/domain"
	"github.com/eco-travel-service/internal/domain/repository"
	"github.com/eco-travel-service/internal/pkg/errors"
)

type fileAccount struct {
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type accountRepository struct {
	path   string
	mu     sync.Mutex
	logger *zap.Logger
	now    func() time.Time
}

func NewAccountRepository(path string, logger *zap.Logger) repository.AccountRepository {
	return &accountRepository{
		path:   path,
		logger: logger,
		now:    time.Now,
	}
}

func (r *accountRepository) Get(_ context.Context, username string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	accounts, err := r.load()
	if err != nil {
		return nil, err
	}

	acc, ok := accounts[username]
	if !ok {
		return nil, errors.ErrUserNotFound
	}
	return &domain.Account{
		Username:     username,
		PasswordHash: acc.PasswordHash,
		CreatedAt:    acc.CreatedAt,
		UpdatedAt:    acc.UpdatedAt,
	}, nil
}

func (r *accountRepository) Create(_ context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	accounts, err := r.load()
	if err != nil {
		return err
	}
	if _, ok := accounts[account.Username]; ok {
		return errors.ErrUsernameTaken
	}

	created := account.CreatedAt
	if created.IsZero() {
		created = r.now().UTC()
	}
	updated := account.UpdatedAt
	if updated.IsZero() {
		updated = created
	}
	accounts[account.Username] = fileAccount{
		PasswordHash: account.PasswordHash,
		CreatedAt:    created,
		UpdatedAt:    updated,
	}

	if err := r.save(accounts); err != nil {
		return err
	}
	r.logger.Debug("Account created", zap.String("username", account.Username))
	return nil
}

func (r *accountRepository) UpdatePassword(_ context.Context, username, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	accounts, err := r.load()
	if err != nil {
		return err
	}
	acc, ok := accounts[username]
	if !ok {
		return errors.ErrUserNotFound
	}

	acc.PasswordHash = passwordHash
	acc.UpdatedAt = r.now().UTC()
	accounts[username] = acc

	return r.save(accounts)
}

// load - отсутствующий или пустой файл означает пустое хранилище
func (r *accountRepository) load() (map[string]fileAccount, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return make(map[string]fileAccount), nil
		}
		return nil, fmt.Errorf("read accounts file: %w", err)
	}

	accounts := make(map[string]fileAccount)
	if len(data) == 0 {
		return accounts, nil
	}
	if err := json.Unmarshal(data, &accounts); err != nil {
		r.logger.Error("Accounts file is corrupted", zap.String("path", r.path), zap.Error(err))
		return nil, fmt.Errorf("decode accounts file: %w", err)
	}
	return accounts, nil
}

func (r *accountRepository) save(accounts map[string]fileAccount) error {
	data, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		return fmt.Errorf("encode accounts: %w", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, ".accounts-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("replace accounts file: %w", err)
	}
	return nil
}
