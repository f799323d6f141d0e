package usecase

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/eco-travel-service/internal/domain"
	"github.com/eco-travel-service/internal/domain/repository"
	"github.com/eco-travel-service/internal/pkg/errors"
	"github.com/eco-travel-service/internal/pkg/monitoring"
	"github.com/eco-travel-service/internal/usecase/dto"
)

// AccountUseCase - регистрация, проверка пароля и сброс. Пароли хранятся только как bcrypt-хеш.
type AccountUseCase struct {
	accountRepo repository.AccountRepository
	logger      *zap.Logger
	cost        int
	now         func() time.Time
}

func NewAccountUseCase(accountRepo repository.AccountRepository, logger *zap.Logger) *AccountUseCase {
	return &AccountUseCase{
		accountRepo: accountRepo,
		logger:      logger,
		cost:        bcrypt.DefaultCost,
		now:         time.Now,
	}
}

// WithHashCost меняет стоимость bcrypt (тесты используют bcrypt.MinCost)
func (uc *AccountUseCase) WithHashCost(cost int) *AccountUseCase {
	uc.cost = cost
	return uc
}

func (uc *AccountUseCase) Create(ctx context.Context, req dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	username := strings.TrimSpace(req.Username)

	hash, err := uc.hashPassword(req.Password)
	if err != nil {
		monitoring.RecordAccountOperation("create", false)
		return nil, err
	}

	now := uc.now().UTC()
	account := &domain.Account{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		monitoring.RecordAccountOperation("create", false)
		if stderrors.Is(err, errors.ErrUsernameTaken) {
			return nil, errors.ErrUsernameTaken.WithDetails(map[string]interface{}{"username": username})
		}
		uc.logger.Error("Failed to create account", zap.String("username", username), zap.Error(err))
		return nil, err
	}

	monitoring.RecordAccountOperation("create", true)
	uc.logger.Info("Account created", zap.String("username", username))

	return &dto.AccountResponse{
		Username:  username,
		CreatedAt: now.Format(time.RFC3339),
	}, nil
}

// Verify - true только при существующем пользователе и совпавшем пароле.
// Missing users and wrong passwords are indistinguishable to the caller.
func (uc *AccountUseCase) Verify(ctx context.Context, req dto.VerifyAccountRequest) (bool, error) {
	account, err := uc.accountRepo.Get(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if stderrors.Is(err, errors.ErrUserNotFound) {
			monitoring.RecordAccountOperation("verify", false)
			return false, nil
		}
		uc.logger.Error("Failed to load account", zap.Error(err))
		return false, err
	}

	ok := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)) == nil
	monitoring.RecordAccountOperation("verify", ok)
	return ok, nil
}

func (uc *AccountUseCase) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error {
	username := strings.TrimSpace(req.Username)

	hash, err := uc.hashPassword(req.NewPassword)
	if err != nil {
		monitoring.RecordAccountOperation("reset", false)
		return err
	}

	if err := uc.accountRepo.UpdatePassword(ctx, username, string(hash)); err != nil {
		monitoring.RecordAccountOperation("reset", false)
		if stderrors.Is(err, errors.ErrUserNotFound) {
			return errors.ErrUserNotFound.WithDetails(map[string]interface{}{"username": username})
		}
		uc.logger.Error("Failed to reset password", zap.String("username", username), zap.Error(err))
		return err
	}

	monitoring.RecordAccountOperation("reset", true)
	uc.logger.Info("Password reset", zap.String("username", username))
	return nil
}

// hashPassword - слишком длинный пароль это ошибка клиента, а не 500
func (uc *AccountUseCase) hashPassword(password string) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), uc.cost)
	if err != nil {
		if stderrors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
				"password": "exceeds 72 bytes",
			})
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}
