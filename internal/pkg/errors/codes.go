package errors

import "net/http"

var (
	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrUnknownDestination = New(
		"UNKNOWN_DESTINATION",
		"Destination not found in catalog",
		http.StatusNotFound,
	)

	ErrUnknownCity = New(
		"UNKNOWN_CITY",
		"City not found in catalog",
		http.StatusNotFound,
	)

	ErrUnknownAccommodation = New(
		"UNKNOWN_ACCOMMODATION",
		"Accommodation option not found in catalog",
		http.StatusBadRequest,
	)

	ErrUnknownFood = New(
		"UNKNOWN_FOOD",
		"Food option not found in catalog",
		http.StatusBadRequest,
	)

	ErrUnknownTransportMode = New(
		"UNKNOWN_TRANSPORT_MODE",
		"Unknown transport mode",
		http.StatusBadRequest,
	)

	ErrTransportUnavailable = New(
		"TRANSPORT_UNAVAILABLE",
		"Transport mode is not offered for this destination",
		http.StatusUnprocessableEntity,
	)

	ErrNoCandidates = New(
		"NO_CANDIDATES",
		"No candidate combinations to rank",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidCatalog = New(
		"INVALID_CATALOG",
		"Catalog data is invalid",
		http.StatusInternalServerError,
	)

	ErrUsernameTaken = New(
		"USERNAME_TAKEN",
		"Username already exists",
		http.StatusConflict,
	)

	ErrUserNotFound = New(
		"USER_NOT_FOUND",
		"User not found",
		http.StatusNotFound,
	)

	ErrInvalidCredentials = New(
		"INVALID_CREDENTIALS",
		"Invalid username or password",
		http.StatusUnauthorized,
	)

	ErrRateLimited = New(
		"RATE_LIMITED",
		"Too many requests",
		http.StatusTooManyRequests,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
