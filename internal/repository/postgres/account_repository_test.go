package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/eco-travel-service/internal/domain"
	"github.com/eco-travel-service/internal/domain/repository"
	"github.com/eco-travel-service/internal/pkg/errors"
	"github.com/eco-travel-service/internal/repository/postgres/testhelpers"
)

// AccountRepositoryTestSuite тестирует AccountRepository на реальной БД
type AccountRepositoryTestSuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.AccountRepository
	ctx    context.Context
}

func (s *AccountRepositoryTestSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())
	s.ctx = context.Background()

	s.Require().NoError(testhelpers.ApplyMigrations(s.ctx, s.testDB.DB))
	s.repo = testhelpers.NewAccountRepositoryForTest(s.testDB.DB, s.testDB.Logger)
}

func (s *AccountRepositoryTestSuite) SetupTest() {
	s.Require().NoError(s.testDB.Cleanup(s.ctx))
	s.Require().NoError(testhelpers.LoadFixtures(s.testDB.DB.DB, "testdata", []string{"accounts.sql"}))
}

func (s *AccountRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		_ = s.testDB.Cleanup(context.Background())
		s.testDB.Close()
	}
}

func (s *AccountRepositoryTestSuite) TestGet_Fixture() {
	acc, err := s.repo.Get(s.ctx, "fixture_user")
	s.Require().NoError(err)
	s.Equal("fixture_user", acc.Username)
	s.NotEmpty(acc.PasswordHash)
	s.False(acc.CreatedAt.IsZero())
}

func (s *AccountRepositoryTestSuite) TestGet_NotFound() {
	acc, err := s.repo.Get(s.ctx, "ghost")
	s.Nil(acc)
	s.ErrorIs(err, errors.ErrUserNotFound)
}

func (s *AccountRepositoryTestSuite) TestCreate() {
	now := time.Now().UTC().Truncate(time.Second)
	err := s.repo.Create(s.ctx, &domain.Account{
		Username:     "traveler",
		PasswordHash: "hash-1",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	s.Require().NoError(err)

	acc, err := s.repo.Get(s.ctx, "traveler")
	s.Require().NoError(err)
	s.Equal("hash-1", acc.PasswordHash)
	s.WithinDuration(now, acc.CreatedAt, time.Second)

	n, err := testhelpers.CountRows(s.testDB.DB.DB, "accounts")
	s.Require().NoError(err)
	s.Equal(2, n)
}

func (s *AccountRepositoryTestSuite) TestCreate_UsernameTaken() {
	now := time.Now()
	err := s.repo.Create(s.ctx, &domain.Account{
		Username:     "fixture_user",
		PasswordHash: "other",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	s.ErrorIs(err, errors.ErrUsernameTaken)

	acc, err := s.repo.Get(s.ctx, "fixture_user")
	s.Require().NoError(err)
	s.NotEqual("other", acc.PasswordHash)
}

func (s *AccountRepositoryTestSuite) TestUpdatePassword() {
	s.Require().NoError(s.repo.UpdatePassword(s.ctx, "fixture_user", "new-hash"))

	acc, err := s.repo.Get(s.ctx, "fixture_user")
	s.Require().NoError(err)
	s.Equal("new-hash", acc.PasswordHash)

	err = s.repo.UpdatePassword(s.ctx, "ghost", "x")
	s.ErrorIs(err, errors.ErrUserNotFound)
}

func TestAccountRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AccountRepositoryTestSuite))
}
