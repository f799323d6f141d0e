package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/eco-travel-service/internal/domain"
	"github.com/eco-travel-service/internal/pkg/errors"
)

func newTestRepo(t *testing.T) (*accountRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.json")
	return NewAccountRepository(path, zap.NewNop()).(*accountRepository), path
}

func TestAccountRepository_MissingFileIsEmpty(t *testing.T) {
	repo, path := newTestRepo(t)

	acc, err := repo.Get(context.Background(), "alice")
	assert.Nil(t, acc)
	assert.ErrorIs(t, err, errors.ErrUserNotFound)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "reads must not create the file")
}

func TestAccountRepository_CreateGetUpdate(t *testing.T) {
	ctx := context.Background()
	repo, path := newTestRepo(t)

	fixed := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }

	require.NoError(t, repo.Create(ctx, &domain.Account{Username: "alice", PasswordHash: "h1"}))

	acc, err := repo.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "h1", acc.PasswordHash)
	assert.Equal(t, fixed, acc.CreatedAt)
	assert.Equal(t, fixed, acc.UpdatedAt)

	err = repo.Create(ctx, &domain.Account{Username: "alice", PasswordHash: "h2"})
	assert.ErrorIs(t, err, errors.ErrUsernameTaken)

	later := fixed.Add(time.Hour)
	repo.now = func() time.Time { return later }
	require.NoError(t, repo.UpdatePassword(ctx, "alice", "h3"))

	acc, err = repo.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "h3", acc.PasswordHash)
	assert.Equal(t, fixed, acc.CreatedAt)
	assert.Equal(t, later, acc.UpdatedAt)

	assert.ErrorIs(t, repo.UpdatePassword(ctx, "bob", "x"), errors.ErrUserNotFound)

	// file is plain JSON keyed by username, no temp files left behind
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var onDisk map[string]fileAccount
	require.NoError(t, json.Unmarshal(raw, &onDisk))
	assert.Contains(t, onDisk, "alice")

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestAccountRepository_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	repo, path := newTestRepo(t)
	require.NoError(t, repo.Create(ctx, &domain.Account{Username: "alice", PasswordHash: "h1"}))

	reopened := NewAccountRepository(path, zap.NewNop())
	acc, err := reopened.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "h1", acc.PasswordHash)
}

func TestAccountRepository_CorruptedFile(t *testing.T) {
	repo, path := newTestRepo(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := repo.Get(context.Background(), "alice")
	require.Error(t, err)
	assert.NotErrorIs(t, err, errors.ErrUserNotFound)
}

func TestAccountRepository_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = repo.Create(ctx, &domain.Account{
				Username:     fmt.Sprintf("user-%d", i),
				PasswordHash: "h",
			})
		}(i)
	}
	wg.Wait()

	for i := 0; i < 20; i++ {
		_, err := repo.Get(ctx, fmt.Sprintf("user-%d", i))
		assert.NoError(t, err, "user-%d lost", i)
	}
}
