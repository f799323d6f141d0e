package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/eco-travel-service/internal/domain"
	"github.com/eco-travel-service/internal/domain/repository"
	"github.com/eco-travel-service/internal/pkg/errors"
	"github.com/eco-travel-service/internal/pkg/monitoring"
	"github.com/eco-travel-service/internal/pkg/validator"
	"github.com/eco-travel-service/internal/planner"
	"github.com/eco-travel-service/internal/usecase/dto"
)

// EvaluationUseCase - оценка поездок поверх чистого планировщика: выбор точки
// отправления, кеширование результатов, метрики и логирование
type EvaluationUseCase struct {
	planner   *planner.Planner
	cacheRepo repository.CacheRepository
	cacheType string
	cacheTTL  time.Duration
	logger    *zap.Logger
}

// NewEvaluationUseCase - cacheRepo может быть nil, тогда результаты не кешируются
func NewEvaluationUseCase(
	p *planner.Planner,
	cacheRepo repository.CacheRepository,
	cacheType string,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *EvaluationUseCase {
	return &EvaluationUseCase{
		planner:   p,
		cacheRepo: cacheRepo,
		cacheType: cacheType,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// ResolveOrigin - явные координаты важнее названия города
func (uc *EvaluationUseCase) ResolveOrigin(city string, point *dto.Point) (domain.Coordinate, error) {
	if point != nil {
		return domain.Coordinate{Lon: point.Lon, Lat: point.Lat}, nil
	}

	city = strings.TrimSpace(city)
	if city == "" {
		return domain.Coordinate{}, errors.ErrInvalidRequest.WithMessage("origin_city or origin is required")
	}

	c, ok := uc.planner.Catalog().City(city)
	if !ok {
		return domain.Coordinate{}, errors.ErrUnknownCity.WithDetails(map[string]interface{}{
			"origin_city": city,
		})
	}
	return c.Coordinate, nil
}

func (uc *EvaluationUseCase) Evaluate(ctx context.Context, req dto.EvaluateRequest) (*dto.EvaluateResponse, error) {
	start := time.Now()

	origin, err := uc.ResolveOrigin(req.OriginCity, req.Origin)
	if err != nil {
		monitoring.RecordEvaluation("computed", time.Since(start), false)
		return nil, err
	}

	params := domain.TripParameters{
		Origin:        origin,
		Destination:   strings.TrimSpace(req.Destination),
		Travelers:     req.Travelers,
		Days:          req.Days,
		Transport:     domain.TransportMode(req.Transport),
		Accommodation: strings.TrimSpace(req.Accommodation),
		Food:          strings.TrimSpace(req.Food),
	}

	result, cached, err := uc.evaluate(ctx, params)
	source := "computed"
	if cached {
		source = "cache"
	}
	monitoring.RecordEvaluation(source, time.Since(start), err == nil)
	if err != nil {
		uc.logger.Debug("Evaluation rejected",
			zap.String("destination", params.Destination),
			zap.Error(err))
		return nil, err
	}

	if !cached {
		monitoring.RecordRecommendation(string(result.Tier), result.Savings.CO2Kg)
	}

	uc.logger.Debug("Trip evaluated",
		zap.String("destination", params.Destination),
		zap.Int("distance_km", result.DistanceKm),
		zap.String("recommended", string(result.Recommended.Transport)),
		zap.String("tier", string(result.Tier)),
		zap.Bool("cached", cached),
		zap.Duration("took", time.Since(start)))

	return &dto.EvaluateResponse{
		Origin:          origin,
		Destination:     params.Destination,
		Result:          result,
		TierDescription: result.Tier.Description(),
		Cached:          cached,
	}, nil
}

// EvaluateEvent - оценка для события из стрима
func (uc *EvaluationUseCase) EvaluateEvent(ctx context.Context, event *domain.TripEvaluateEvent) (*domain.EvaluationResult, error) {
	var point *dto.Point
	if event.HasCoordinates() {
		point = &dto.Point{Lat: *event.OriginLat, Lon: *event.OriginLon}
	}

	req := dto.EvaluateRequest{
		OriginCity:    event.OriginCity,
		Origin:        point,
		Destination:   event.Destination,
		Travelers:     event.Travelers,
		Days:          event.Days,
		Transport:     event.Transport,
		Accommodation: event.Accommodation,
		Food:          event.Food,
	}
	// события проходят ту же валидацию, что и HTTP запросы
	if err := validator.Validate(&req); err != nil {
		return nil, err
	}

	resp, err := uc.Evaluate(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp.Result, nil
}

func (uc *EvaluationUseCase) CompareTransport(ctx context.Context, req dto.CompareTransportRequest) (*dto.CompareTransportResponse, error) {
	origin, err := uc.ResolveOrigin(req.OriginCity, req.Origin)
	if err != nil {
		return nil, err
	}

	destination := strings.TrimSpace(req.Destination)
	quotes, distance, err := uc.planner.CompareModes(origin, destination, req.Travelers)
	if err != nil {
		return nil, err
	}

	return &dto.CompareTransportResponse{
		Origin:      origin,
		Destination: destination,
		DistanceKm:  distance,
		Modes:       quotes,
	}, nil
}

func (uc *EvaluationUseCase) evaluate(ctx context.Context, params domain.TripParameters) (*domain.EvaluationResult, bool, error) {
	key := uc.cacheKey(params)

	if uc.cacheRepo != nil && key != "" {
		cached, err := uc.cacheRepo.GetEvaluation(ctx, key)
		if err != nil {
			uc.logger.Warn("Failed to get evaluation from cache", zap.Error(err))
			monitoring.RecordError("evaluation", "cache_get")
		}
		if cached != nil {
			monitoring.RecordCacheHit(uc.cacheType)
			return cached, true, nil
		}
		monitoring.RecordCacheMiss(uc.cacheType)
	}

	result, err := uc.planner.Evaluate(params)
	if err != nil {
		return nil, false, err
	}

	if uc.cacheRepo != nil && key != "" {
		if err := uc.cacheRepo.SetEvaluation(ctx, key, result, uc.cacheTTL); err != nil {
			// Не возвращаем ошибку, т.к. результат уже посчитан
			uc.logger.Warn("Failed to cache evaluation", zap.Error(err))
			monitoring.RecordError("evaluation", "cache_set")
		}
	}

	return result, false, nil
}

// cacheKey - канонический хеш запроса. Пустая строка для неизвестного вида
// транспорта: такой запрос всё равно отклонит планировщик.
func (uc *EvaluationUseCase) cacheKey(params domain.TripParameters) string {
	mode, ok := domain.ParseTransportMode(string(params.Transport))
	if !ok {
		return ""
	}

	canonical := fmt.Sprintf("%s|%+v|%.6f|%.6f|%s|%d|%d|%s|%s|%s",
		uc.planner.Catalog().Version,
		uc.planner.Settings(),
		params.Origin.Lon,
		params.Origin.Lat,
		params.Destination,
		params.Travelers,
		params.Days,
		mode,
		params.Accommodation,
		params.Food,
	)
	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:])
}
