package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"canpestre/internal/delivery/http/response"
	domainerrors "canpestre/internal/domain/errors"
	"canpestre/internal/domain/repository"
	"canpestre/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// OwnerHandlerParams holds dependencies for OwnerHandler, injected by Fx.
type OwnerHandlerParams struct {
	fx.In

	OwnerUC usecase.OwnerUsecase
	Logger  *slog.Logger
}

// OwnerHandler holds dependencies for owner-related handlers
type OwnerHandler struct {
	ownerUC usecase.OwnerUsecase
	logger  *slog.Logger
}

// NewOwnerHandler is the constructor for OwnerHandler
func NewOwnerHandler(params OwnerHandlerParams) *OwnerHandler {
	return &OwnerHandler{
		ownerUC: params.OwnerUC,
		logger:  params.Logger,
	}
}

// ListOwners handles GET /duenos/duenos_list
func (h *OwnerHandler) ListOwners(c echo.Context) error {
	owners, err := h.ownerUC.ListOwners(c.Request().Context())
	if err != nil {
		return h.handleOwnerError(c, err)
	}

	return response.Success(c, http.StatusOK, owners, "")
}

// GetOwner handles GET /duenos/duenos_id/:id
func (h *OwnerHandler) GetOwner(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "El id debe ser un número entero")
	}

	owner, err := h.ownerUC.GetOwner(c.Request().Context(), id)
	if err != nil {
		return h.handleOwnerError(c, err)
	}

	return response.Success(c, http.StatusOK, owner, "")
}

// CreateOwner handles POST /duenos/duenos_create
func (h *OwnerHandler) CreateOwner(c echo.Context) error {
	var input usecase.OwnerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de dueño no válidos")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), err.Error())
	}

	owner, err := h.ownerUC.CreateOwner(c.Request().Context(), &input)
	if err != nil {
		return h.handleOwnerError(c, err)
	}

	return response.Success(c, http.StatusCreated, owner, "Dueño registrado")
}

// UpdateOwner handles PUT /duenos/duenos_update/:id
func (h *OwnerHandler) UpdateOwner(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "El id debe ser un número entero")
	}

	var input usecase.OwnerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de dueño no válidos")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), err.Error())
	}

	owner, err := h.ownerUC.UpdateOwner(c.Request().Context(), id, &input)
	if err != nil {
		return h.handleOwnerError(c, err)
	}

	return response.Success(c, http.StatusOK, owner, "Dueño actualizado")
}

// DeleteOwner handles DELETE /duenos/duenos_delete/:id
func (h *OwnerHandler) DeleteOwner(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "El id debe ser un número entero")
	}

	if err := h.ownerUC.DeleteOwner(c.Request().Context(), id); err != nil {
		return h.handleOwnerError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Dueño eliminado")
}

// handleOwnerError maps domain errors to HTTP responses.
func (h *OwnerHandler) handleOwnerError(c echo.Context, err error) error {
	if errors.Is(err, repository.ErrOwnerNotFound) {
		return response.NotFound(c,
			domainerrors.ErrOwnerNotFound.ErrorCode(),
			domainerrors.ErrOwnerNotFound.Message())
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

// parseIDParam reads the :id path parameter as an int64.
func parseIDParam(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
