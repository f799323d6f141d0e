package usecase_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/eco-travel-service/internal/domain"
	"github.com/eco-travel-service/internal/pkg/errors"
	"github.com/eco-travel-service/internal/usecase"
	"github.com/eco-travel-service/internal/usecase/dto"
)

func newAccountUseCase(repo *MockAccountRepository) *usecase.AccountUseCase {
	return usecase.NewAccountUseCase(repo, zap.NewNop()).WithHashCost(bcrypt.MinCost)
}

func TestAccountUseCase_Create_HashesPassword(t *testing.T) {
	repo := new(MockAccountRepository)
	uc := newAccountUseCase(repo)

	var stored *domain.Account
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Account")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*domain.Account) }).
		Return(nil)

	resp, err := uc.Create(context.Background(), dto.CreateAccountRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Username)

	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestAccountUseCase_Create_UsernameTaken(t *testing.T) {
	repo := new(MockAccountRepository)
	uc := newAccountUseCase(repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(errors.ErrUsernameTaken)

	_, err := uc.Create(context.Background(), dto.CreateAccountRequest{Username: "alice", Password: "secret123"})
	assert.ErrorIs(t, err, errors.ErrUsernameTaken)
}

func TestAccountUseCase_Verify(t *testing.T) {
	repo := new(MockAccountRepository)
	uc := newAccountUseCase(repo)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	repo.On("Get", mock.Anything, "alice").Return(&domain.Account{Username: "alice", PasswordHash: string(hash)}, nil)
	repo.On("Get", mock.Anything, "bob").Return(nil, errors.ErrUserNotFound)
	repo.On("Get", mock.Anything, "broken").Return(nil, fmt.Errorf("disk error"))

	ok, err := uc.Verify(context.Background(), dto.VerifyAccountRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = uc.Verify(context.Background(), dto.VerifyAccountRequest{Username: "alice", Password: "wrong"})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = uc.Verify(context.Background(), dto.VerifyAccountRequest{Username: "bob", Password: "secret123"})
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = uc.Verify(context.Background(), dto.VerifyAccountRequest{Username: "broken", Password: "x"})
	assert.Error(t, err)
}

func TestAccountUseCase_ResetPassword(t *testing.T) {
	repo := new(MockAccountRepository)
	uc := newAccountUseCase(repo)

	var newHash string
	repo.On("UpdatePassword", mock.Anything, "alice", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { newHash = args.String(2) }).
		Return(nil)
	repo.On("UpdatePassword", mock.Anything, "bob", mock.Anything).Return(errors.ErrUserNotFound)

	require.NoError(t, uc.ResetPassword(context.Background(), dto.ResetPasswordRequest{Username: "alice", NewPassword: "fresh-pass"}))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(newHash), []byte("fresh-pass")))

	err := uc.ResetPassword(context.Background(), dto.ResetPasswordRequest{Username: "bob", NewPassword: "fresh-pass"})
	assert.ErrorIs(t, err, errors.ErrUserNotFound)
}

func TestAccountUseCase_PasswordOverBcryptLimit(t *testing.T) {
	repo := new(MockAccountRepository)
	uc := newAccountUseCase(repo)

	long := strings.Repeat("я", 40)

	_, err := uc.Create(context.Background(), dto.CreateAccountRequest{Username: "alice", Password: long})
	assert.ErrorIs(t, err, errors.ErrInvalidRequest)

	err = uc.ResetPassword(context.Background(), dto.ResetPasswordRequest{Username: "alice", NewPassword: long})
	assert.ErrorIs(t, err, errors.ErrInvalidRequest)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}
