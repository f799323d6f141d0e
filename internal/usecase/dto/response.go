package dto

import "github.com/eco-travel-service/internal/domain"

// EvaluateResponse - результат оценки с описанием уровня и признаком кеша
type EvaluateResponse struct {
	Origin          domain.Coordinate        `json:"origin"`
	Destination     string                   `json:"destination"`
	Result          *domain.EvaluationResult `json:"result"`
	TierDescription string                   `json:"tier_description"`
	Cached          bool                     `json:"-"`
}

// CompareTransportResponse - таблица сравнения видов транспорта
type CompareTransportResponse struct {
	Origin      domain.Coordinate  `json:"origin"`
	Destination string             `json:"destination"`
	DistanceKm  int                `json:"distance_km"`
	Modes       []domain.ModeQuote `json:"modes"`
}

// DestinationsResponse - список направлений каталога
type DestinationsResponse struct {
	Destinations []domain.Destination `json:"destinations"`
	Total        int                  `json:"total"`
}

// CitiesResponse - список городов отправления
type CitiesResponse struct {
	Cities []domain.City `json:"cities"`
	Total  int           `json:"total"`
}

// OptionsResponse - варианты проживания и питания
type OptionsResponse struct {
	Accommodations []domain.Option `json:"accommodations"`
	Foods          []domain.Option `json:"foods"`
}

// AccountResponse - учётная запись без хеша пароля
type AccountResponse struct {
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}

// VerifyResponse - результат проверки учётных данных
type VerifyResponse struct {
	Valid bool `json:"valid"`
}
