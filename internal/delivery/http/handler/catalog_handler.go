package handler

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/eco-travel-service/internal/pkg/utils"
	"github.com/eco-travel-service/internal/usecase"
)

// CatalogHandler обрабатывает запросы к справочнику
type CatalogHandler struct {
	catalogUC *usecase.CatalogUseCase
	logger    *zap.Logger
}

func NewCatalogHandler(catalogUC *usecase.CatalogUseCase, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: catalogUC,
		logger:    logger,
	}
}

// ListDestinations godoc
// @Summary List destinations
// @Description Все направления каталога с координатами, референсной дистанцией и базовыми ценами
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.DestinationsResponse}
// @Router /api/v1/catalog/destinations [get]
func (h *CatalogHandler) ListDestinations(c *fiber.Ctx) error {
	resp := h.catalogUC.ListDestinations(c.UserContext())
	return utils.SendSuccess(c, resp, &utils.Meta{Total: resp.Total})
}

// GetDestination godoc
// @Summary Get destination
// @Tags Catalog
// @Produce json
// @Param name path string true "Destination name"
// @Success 200 {object} utils.SuccessResponse{data=domain.Destination}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/catalog/destinations/{name} [get]
func (h *CatalogHandler) GetDestination(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		name = c.Params("name")
	}

	dest, err := h.catalogUC.GetDestination(c.UserContext(), name)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, dest, nil)
}

// ListCities godoc
// @Summary List origin cities
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.CitiesResponse}
// @Router /api/v1/catalog/cities [get]
func (h *CatalogHandler) ListCities(c *fiber.Ctx) error {
	resp := h.catalogUC.ListCities(c.UserContext())
	return utils.SendSuccess(c, resp, &utils.Meta{Total: resp.Total})
}

// ListOptions godoc
// @Summary List accommodation and food options
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.OptionsResponse}
// @Router /api/v1/catalog/options [get]
func (h *CatalogHandler) ListOptions(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.catalogUC.ListOptions(c.UserContext()), nil)
}

// GetStatistics godoc
// @Summary Get catalog statistics
// @Description Возвращает агрегированную статистику по каталогу
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.Statistics}
// @Router /api/v1/catalog/stats [get]
func (h *CatalogHandler) GetStatistics(c *fiber.Ctx) error {
	h.logger.Debug("Handling get statistics request")
	return utils.SendSuccess(c, h.catalogUC.GetStatistics(c.UserContext()), nil)
}
