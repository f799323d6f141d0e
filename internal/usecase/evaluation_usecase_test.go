package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/eco-travel-service/internal/domain"
	"github.com/eco-travel-service/internal/pkg/errors"
	"github.com/eco-travel-service/internal/planner"
	"github.com/eco-travel-service/internal/repository/cache"
	"github.com/eco-travel-service/internal/repository/catalog"
	"github.com/eco-travel-service/internal/usecase"
	"github.com/eco-travel-service/internal/usecase/dto"
)

func newPlanner(t *testing.T) *planner.Planner {
	t.Helper()
	c, err := catalog.Load("", zap.NewNop())
	require.NoError(t, err)
	return planner.New(c, planner.DefaultSettings())
}

func jaipurRequest() dto.EvaluateRequest {
	return dto.EvaluateRequest{
		OriginCity:    "Delhi",
		Destination:   "Jaipur",
		Travelers:     2,
		Days:          5,
		Transport:     "Flight",
		Accommodation: "Standard Hotel (3-Star)",
		Food:          "Standard Restaurants",
	}
}

func TestEvaluationUseCase_Evaluate_CacheMissThenStore(t *testing.T) {
	cacheRepo := new(MockCacheRepository)
	uc := usecase.NewEvaluationUseCase(newPlanner(t), cacheRepo, "redis", time.Minute, zap.NewNop())

	cacheRepo.On("GetEvaluation", mock.Anything, mock.AnythingOfType("string")).Return(nil, nil)
	cacheRepo.On("SetEvaluation", mock.Anything, mock.AnythingOfType("string"), mock.Anything, time.Minute).Return(nil)

	resp, err := uc.Evaluate(context.Background(), jaipurRequest())
	require.NoError(t, err)

	assert.False(t, resp.Cached)
	assert.Equal(t, "Jaipur", resp.Destination)
	assert.Equal(t, domain.Coordinate{Lon: 77.209, Lat: 28.6139}, resp.Origin)
	assert.Equal(t, domain.TransportTrain, resp.Result.Recommended.Transport)
	assert.Equal(t, domain.TierGuardian.Description(), resp.TierDescription)
	cacheRepo.AssertExpectations(t)
}

func TestEvaluationUseCase_Evaluate_CacheHit(t *testing.T) {
	cacheRepo := new(MockCacheRepository)
	uc := usecase.NewEvaluationUseCase(newPlanner(t), cacheRepo, "redis", time.Minute, zap.NewNop())

	cached := &domain.EvaluationResult{DistanceKm: 1, Tier: domain.TierWarrior}
	cacheRepo.On("GetEvaluation", mock.Anything, mock.AnythingOfType("string")).Return(cached, nil)

	resp, err := uc.Evaluate(context.Background(), jaipurRequest())
	require.NoError(t, err)
	assert.True(t, resp.Cached)
	assert.Same(t, cached, resp.Result)
	cacheRepo.AssertNotCalled(t, "SetEvaluation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestEvaluationUseCase_Evaluate_CacheFailureIsNotFatal(t *testing.T) {
	cacheRepo := new(MockCacheRepository)
	uc := usecase.NewEvaluationUseCase(newPlanner(t), cacheRepo, "redis", time.Minute, zap.NewNop())

	cacheRepo.On("GetEvaluation", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("connection refused"))
	cacheRepo.On("SetEvaluation", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(fmt.Errorf("connection refused"))

	resp, err := uc.Evaluate(context.Background(), jaipurRequest())
	require.NoError(t, err)
	assert.False(t, resp.Cached)
	assert.NotNil(t, resp.Result)
}

func TestEvaluationUseCase_Evaluate_SameKeyForEquivalentRequests(t *testing.T) {
	cacheRepo := new(MockCacheRepository)
	uc := usecase.NewEvaluationUseCase(newPlanner(t), cacheRepo, "redis", time.Minute, zap.NewNop())

	var keys []string
	cacheRepo.On("GetEvaluation", mock.Anything, mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { keys = append(keys, args.String(1)) }).
		Return(nil, nil)
	cacheRepo.On("SetEvaluation", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	a := jaipurRequest()
	b := jaipurRequest()
	b.Transport = "flight"
	b.Destination = " Jaipur "
	c := jaipurRequest()
	c.Days = 6

	for _, req := range []dto.EvaluateRequest{a, b, c} {
		_, err := uc.Evaluate(context.Background(), req)
		require.NoError(t, err)
	}

	require.Len(t, keys, 3)
	assert.Equal(t, keys[0], keys[1])
	assert.NotEqual(t, keys[0], keys[2])
}

func TestEvaluationUseCase_Evaluate_WithMemoryCache(t *testing.T) {
	repo := cache.NewMemoryCacheRepository(16, time.Minute, zap.NewNop())
	uc := usecase.NewEvaluationUseCase(newPlanner(t), repo, "memory", time.Minute, zap.NewNop())

	first, err := uc.Evaluate(context.Background(), jaipurRequest())
	require.NoError(t, err)
	second, err := uc.Evaluate(context.Background(), jaipurRequest())
	require.NoError(t, err)

	assert.False(t, first.Cached)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Result, second.Result)
}

func TestEvaluationUseCase_Evaluate_ExplicitCoordinates(t *testing.T) {
	uc := usecase.NewEvaluationUseCase(newPlanner(t), nil, "", 0, zap.NewNop())

	req := jaipurRequest()
	req.OriginCity = "Mumbai"
	req.Origin = &dto.Point{Lat: 28.6139, Lon: 77.2090}

	resp, err := uc.Evaluate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 28.6139, resp.Origin.Lat)
	assert.InDelta(t, 235, resp.Result.DistanceKm, 5)
}

func TestEvaluationUseCase_Evaluate_Errors(t *testing.T) {
	uc := usecase.NewEvaluationUseCase(newPlanner(t), nil, "", 0, zap.NewNop())

	tests := []struct {
		name   string
		mutate func(*dto.EvaluateRequest)
		want   *errors.AppError
	}{
		{"no origin", func(r *dto.EvaluateRequest) { r.OriginCity = "" }, errors.ErrInvalidRequest},
		{"unknown city", func(r *dto.EvaluateRequest) { r.OriginCity = "Gotham" }, errors.ErrUnknownCity},
		{"unknown destination", func(r *dto.EvaluateRequest) { r.Destination = "Atlantis" }, errors.ErrUnknownDestination},
		{"unavailable flight", func(r *dto.EvaluateRequest) { r.Destination = "Agra" }, errors.ErrTransportUnavailable},
		{"bad coordinates", func(r *dto.EvaluateRequest) { r.Origin = &dto.Point{Lat: 95, Lon: 0} }, errors.ErrInvalidCoordinates},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := jaipurRequest()
			tt.mutate(&req)
			resp, err := uc.Evaluate(context.Background(), req)
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestEvaluationUseCase_EvaluateEvent(t *testing.T) {
	uc := usecase.NewEvaluationUseCase(newPlanner(t), nil, "", 0, zap.NewNop())

	lat, lon := 28.6139, 77.2090
	res, err := uc.EvaluateEvent(context.Background(), &domain.TripEvaluateEvent{
		OriginLat:     &lat,
		OriginLon:     &lon,
		Destination:   "Jaipur",
		Travelers:     2,
		Days:          5,
		Transport:     "Train",
		Accommodation: "Hostel/Dormitory",
		Food:          "Food Stalls/Dhabas",
	})
	require.NoError(t, err)
	assert.True(t, res.AlreadyOptimal)
	assert.Equal(t, domain.TierConscious, res.Tier)

	_, err = uc.EvaluateEvent(context.Background(), &domain.TripEvaluateEvent{
		OriginCity:    "Delhi",
		Destination:   "Jaipur",
		Travelers:     0,
		Days:          5,
		Transport:     "Train",
		Accommodation: "Hostel/Dormitory",
		Food:          "Food Stalls/Dhabas",
	})
	assert.ErrorIs(t, err, errors.ErrInvalidRequest)
}

func TestEvaluationUseCase_CompareTransport(t *testing.T) {
	uc := usecase.NewEvaluationUseCase(newPlanner(t), nil, "", 0, zap.NewNop())

	resp, err := uc.CompareTransport(context.Background(), dto.CompareTransportRequest{
		OriginCity:  "Delhi",
		Destination: "Agra",
		Travelers:   3,
	})
	require.NoError(t, err)
	require.Len(t, resp.Modes, 5)
	assert.False(t, resp.Modes[0].Available)
	assert.True(t, resp.Modes[1].Available)
	assert.Greater(t, resp.DistanceKm, 0)

	_, err = uc.CompareTransport(context.Background(), dto.CompareTransportRequest{
		OriginCity: "Delhi", Destination: "Nowhere", Travelers: 1,
	})
	assert.ErrorIs(t, err, errors.ErrUnknownDestination)
}
