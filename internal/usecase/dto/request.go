package dto

// Point - явные координаты отправления
type Point struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lon float64 `json:"lon" validate:"min=-180,max=180"`
}

// EvaluateRequest - запрос на оценку поездки.
// Origin is either a catalog city (origin_city) or explicit coordinates (origin).
type EvaluateRequest struct {
	OriginCity    string `json:"origin_city,omitempty" validate:"max=100"`
	Origin        *Point `json:"origin,omitempty"`
	Destination   string `json:"destination" validate:"required,max=100"`
	Travelers     int    `json:"travelers" validate:"required,min=1,max=100"`
	Days          int    `json:"days" validate:"required,min=1,max=365"`
	Transport     string `json:"transport" validate:"required,transport_mode"`
	Accommodation string `json:"accommodation" validate:"required,max=100"`
	Food          string `json:"food" validate:"required,max=100"`
}

// CompareTransportRequest - сравнение всех видов транспорта для группы
type CompareTransportRequest struct {
	OriginCity  string `json:"origin_city,omitempty" validate:"max=100"`
	Origin      *Point `json:"origin,omitempty"`
	Destination string `json:"destination" validate:"required,max=100"`
	Travelers   int    `json:"travelers" validate:"required,min=1,max=100"`
}

// CreateAccountRequest - регистрация
type CreateAccountRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64,alphanum"`
	Password string `json:"password" validate:"required,min=6,bcrypt_max"`
}

// VerifyAccountRequest - проверка логина и пароля
type VerifyAccountRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,bcrypt_max"`
}

// ResetPasswordRequest - сброс пароля
type ResetPasswordRequest struct {
	Username    string `json:"username" validate:"required,max=64"`
	NewPassword string `json:"new_password" validate:"required,min=6,bcrypt_max"`
}
