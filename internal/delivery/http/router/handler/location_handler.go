package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"canpestre/internal/delivery/http/response"
	domainerrors "canpestre/internal/domain/errors"
	"canpestre/internal/domain/repository"
	"canpestre/internal/usecase"
	"canpestre/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// defaultWindowMinutes bounds the location list when the client does not pass
// an explicit window.
const defaultWindowMinutes = 30

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler holds dependencies for location-related handlers
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// ListLocations handles GET /location/location_list. With ultima=true it
// returns the single most recent sample for a pet; otherwise a time-windowed
// list, newest first.
func (h *LocationHandler) ListLocations(c echo.Context) error {
	petID, err := parseOptionalInt64(c.QueryParam("mascota_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "mascota_id debe ser un número entero")
	}

	if isTruthyParam(c.QueryParam("ultima")) {
		if petID == nil {
			return response.BadRequest(c,
				domainerrors.ErrMissingPetID.ErrorCode(),
				domainerrors.ErrMissingPetID.Message())
		}

		location, err := h.locationUC.LatestLocation(c.Request().Context(), *petID)
		if err != nil {
			return h.handleLocationError(c, err)
		}

		return response.Success(c, http.StatusOK, location, "")
	}

	minutes, err := parseWindowMinutes(c.QueryParam("minutos"), defaultWindowMinutes)
	if err != nil {
		return response.BadRequest(c, "INVALID_WINDOW", "minutos debe ser un número entero positivo")
	}
	since := time.Now().Add(-time.Duration(minutes) * time.Minute)

	locations, err := h.locationUC.ListLocations(c.Request().Context(), usecase.LocationQuery{
		PetID: petID,
		Since: &since,
	})
	if err != nil {
		return h.handleLocationError(c, err)
	}

	return response.Success(c, http.StatusOK, locations, "")
}

// LatestLocations handles GET /location/latest: an id-cursor page for pollers
// that remember the last row they saw. Results come back ascending by id so
// last_id always moves forward.
func (h *LocationHandler) LatestLocations(c echo.Context) error {
	petID, err := parseOptionalInt64(c.QueryParam("mascota_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "mascota_id debe ser un número entero")
	}

	lastID, err := parseOptionalInt64(c.QueryParam("last_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_CURSOR", "last_id debe ser un número entero")
	}

	query := usecase.LocationQuery{
		PetID:   petID,
		AfterID: lastID,
	}

	if raw := c.QueryParam("minutos"); raw != "" {
		minutes, err := parseWindowMinutes(raw, 0)
		if err != nil {
			return response.BadRequest(c, "INVALID_WINDOW", "minutos debe ser un número entero positivo")
		}
		since := time.Now().Add(-time.Duration(minutes) * time.Minute)
		query.Since = &since
	}

	locations, err := h.locationUC.ListLocations(c.Request().Context(), query)
	if err != nil {
		return h.handleLocationError(c, err)
	}

	return response.Success(c, http.StatusOK, locations, "")
}

// CreateLocation handles POST /location/location_list and
// POST /location/mobile/. Both accept the same payload; the mobile variant
// exists because devices send Spanish coordinate keys, which the normalizer
// accepts either way.
func (h *LocationHandler) CreateLocation(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "No se pudo leer el cuerpo de la petición")
	}

	normalized, err := impl.NormalizeLocationEvent(payload)
	if err != nil {
		if errors.Is(err, impl.ErrMissingPetID) || errors.Is(err, impl.ErrInvalidPetID) {
			return response.BadRequest(c,
				domainerrors.ErrMissingPetID.ErrorCode(),
				domainerrors.ErrMissingPetID.Message())
		}

		return response.Error(c, http.StatusBadRequest,
			domainerrors.ErrLocationValidation.ErrorCode(),
			domainerrors.ErrLocationValidation.Message(),
			err.Error())
	}

	location, err := h.locationUC.RegisterLocation(c.Request().Context(), normalized)
	if err != nil {
		return h.handleLocationError(c, err)
	}

	return response.Success(c, http.StatusCreated, location, "Ubicación registrada")
}

// handleLocationError maps domain errors to HTTP responses.
func (h *LocationHandler) handleLocationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrLocationNotFound):
		return response.NotFound(c,
			domainerrors.ErrLocationNotFound.ErrorCode(),
			domainerrors.ErrLocationNotFound.Message())
	case errors.Is(err, repository.ErrLocationPetMissing):
		return response.Error(c, http.StatusBadRequest,
			domainerrors.ErrLocationValidation.ErrorCode(),
			domainerrors.ErrLocationValidation.Message(),
			domainerrors.ErrPetNotFound.Message())
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

// parseOptionalInt64 reads an optional integer query parameter.
func parseOptionalInt64(raw string) (*int64, error) {
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}

	return &value, nil
}

// parseWindowMinutes reads a positive minute count, falling back to def when
// the parameter is absent.
func parseWindowMinutes(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}

	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes <= 0 {
		return 0, errors.New("invalid window")
	}

	return minutes, nil
}

// isTruthyParam mirrors common query-string booleans.
func isTruthyParam(raw string) bool {
	switch raw {
	case "true", "True", "1", "yes":
		return true
	default:
		return false
	}
}
