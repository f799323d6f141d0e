package domain

import "github.com/google/uuid"

// Stream names
const (
	StreamTripEvaluate  = "stream:trip:evaluate"
	StreamTripEvaluated = "stream:trip:evaluated"
)

// TripEvaluateEvent - входящее событие на оценку поездки
type TripEvaluateEvent struct {
	RequestID     uuid.UUID `json:"request_id"`
	OriginCity    string    `json:"origin_city,omitempty"`
	OriginLat     *float64  `json:"origin_lat,omitempty"`
	OriginLon     *float64  `json:"origin_lon,omitempty"`
	Destination   string    `json:"destination"`
	Travelers     int       `json:"travelers"`
	Days          int       `json:"days"`
	Transport     string    `json:"transport"`
	Accommodation string    `json:"accommodation"`
	Food          string    `json:"food"`
}

// HasCoordinates проверяет, переданы ли явные координаты отправления
func (e *TripEvaluateEvent) HasCoordinates() bool {
	return e.OriginLat != nil && e.OriginLon != nil
}

// TripEvaluatedEvent - результат оценки
type TripEvaluatedEvent struct {
	RequestID uuid.UUID         `json:"request_id"`
	Result    *EvaluationResult `json:"result,omitempty"`
	Error     string            `json:"error,omitempty"`
	ErrorCode string            `json:"error_code,omitempty"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
