package errors

import "net/http"

var (
	ErrResolutionFailed = New(
		"RESOLUTION_FAILED",
		"Location could not be resolved",
		http.StatusNotFound,
	)

	ErrRoutingFailed = New(
		"ROUTING_FAILED",
		"Route could not be found",
		http.StatusBadGateway,
	)

	ErrResolutionMissing = New(
		"RESOLUTION_MISSING",
		"Resolved location has no coordinates",
		http.StatusInternalServerError,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidVehicle = New(
		"INVALID_VEHICLE",
		"Unknown vehicle profile",
		http.StatusBadRequest,
	)

	ErrInvalidUnit = New(
		"INVALID_UNIT",
		"Unknown distance unit",
		http.StatusBadRequest,
	)

	ErrMissingCredentials = New(
		"MISSING_CREDENTIALS",
		"GraphHopper API key is not configured",
		http.StatusUnauthorized,
	)

	ErrHistoryWrite = New(
		"HISTORY_WRITE_FAILED",
		"Trip history could not be written",
		http.StatusInternalServerError,
	)

	ErrArchiveDisabled = New(
		"ARCHIVE_DISABLED",
		"Trip history archive is not configured",
		http.StatusServiceUnavailable,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
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
