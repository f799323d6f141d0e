package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/eco-travel-service/internal/delivery/http/middleware"
	"github.com/eco-travel-service/internal/pkg/errors"
	"github.com/eco-travel-service/internal/pkg/utils"
	"github.com/eco-travel-service/internal/pkg/validator"
	"github.com/eco-travel-service/internal/usecase"
	"github.com/eco-travel-service/internal/usecase/dto"
)

// EvaluationHandler - оценка поездки и сравнение транспорта
type EvaluationHandler struct {
	evaluationUC *usecase.EvaluationUseCase
	logger       *zap.Logger
}

func NewEvaluationHandler(evaluationUC *usecase.EvaluationUseCase, logger *zap.Logger) *EvaluationHandler {
	return &EvaluationHandler{
		evaluationUC: evaluationUC,
		logger:       logger,
	}
}

// Evaluate godoc
// @Summary Evaluate a trip
// @Description Считает стоимость и CO2 выбранного плана, ранжирует все комбинации транспорт/проживание/питание по eco-score и возвращает рекомендацию, топ-3, экономию и эко-уровень
// @Tags Evaluation
// @Accept json
// @Produce json
// @Param request body dto.EvaluateRequest true "Trip parameters"
// @Success 200 {object} utils.SuccessResponse{data=dto.EvaluateResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Failure 429 {object} utils.ErrorResponse
// @Router /api/v1/evaluate [post]
func (h *EvaluationHandler) Evaluate(c *fiber.Ctx) error {
	start := time.Now()

	var req dto.EvaluateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.evaluationUC.Evaluate(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, &utils.Meta{
		Total:     resp.Result.Candidates,
		Cached:    resp.Cached,
		RequestID: middleware.RequestID(c),
		TimeMSec:  float64(time.Since(start).Microseconds()) / 1000,
	})
}

// CompareTransport godoc
// @Summary Compare transport modes
// @Description Цена, CO2, время в пути и доступность всех пяти видов транспорта для группы
// @Tags Evaluation
// @Accept json
// @Produce json
// @Param request body dto.CompareTransportRequest true "Route and party size"
// @Success 200 {object} utils.SuccessResponse{data=dto.CompareTransportResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/transport/compare [post]
func (h *EvaluationHandler) CompareTransport(c *fiber.Ctx) error {
	var req dto.CompareTransportRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.evaluationUC.CompareTransport(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, &utils.Meta{
		Total:     len(resp.Modes),
		RequestID: middleware.RequestID(c),
	})
}
