package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/eco-travel-service/internal/pkg/errors"
	"github.com/eco-travel-service/internal/pkg/utils"
	"github.com/eco-travel-service/internal/pkg/validator"
	"github.com/eco-travel-service/internal/usecase"
	"github.com/eco-travel-service/internal/usecase/dto"
)

// AccountHandler - регистрация, проверка и сброс пароля
type AccountHandler struct {
	accountUC *usecase.AccountUseCase
	logger    *zap.Logger
}

func NewAccountHandler(accountUC *usecase.AccountUseCase, logger *zap.Logger) *AccountHandler {
	return &AccountHandler{
		accountUC: accountUC,
		logger:    logger,
	}
}

// Create godoc
// @Summary Create account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body dto.CreateAccountRequest true "Credentials"
// @Success 201 {object} utils.SuccessResponse{data=dto.AccountResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/accounts [post]
func (h *AccountHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.accountUC.Create(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, resp)
}

// Verify godoc
// @Summary Verify credentials
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body dto.VerifyAccountRequest true "Credentials"
// @Success 200 {object} utils.SuccessResponse{data=dto.VerifyResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/accounts/verify [post]
func (h *AccountHandler) Verify(c *fiber.Ctx) error {
	var req dto.VerifyAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	ok, err := h.accountUC.Verify(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	if !ok {
		return utils.SendError(c, errors.ErrInvalidCredentials)
	}
	return utils.SendSuccess(c, dto.VerifyResponse{Valid: true}, nil)
}

// ResetPassword godoc
// @Summary Reset password
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "Username and new password"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/accounts/reset [post]
func (h *AccountHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	if err := h.accountUC.ResetPassword(c.UserContext(), req); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"username": req.Username}, nil)
}
