package handler

import (
	"log/slog"
	"net/http"

	"canpestre/internal/delivery/http/response"
	domainerrors "canpestre/internal/domain/errors"
	"canpestre/internal/domain/repository"
	"canpestre/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PetHandlerParams holds dependencies for PetHandler, injected by Fx.
type PetHandlerParams struct {
	fx.In

	PetUC  usecase.PetUsecase
	Logger *slog.Logger
}

// PetHandler holds dependencies for pet-related handlers
type PetHandler struct {
	petUC  usecase.PetUsecase
	logger *slog.Logger
}

// NewPetHandler is the constructor for PetHandler
func NewPetHandler(params PetHandlerParams) *PetHandler {
	return &PetHandler{
		petUC:  params.PetUC,
		logger: params.Logger,
	}
}

// ListPets handles GET /mascotas/mascotas_list
func (h *PetHandler) ListPets(c echo.Context) error {
	pets, err := h.petUC.ListPets(c.Request().Context())
	if err != nil {
		return h.handlePetError(c, err)
	}

	return response.Success(c, http.StatusOK, pets, "")
}

// GetPet handles GET /mascotas/mascotas_id/:id
func (h *PetHandler) GetPet(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "El id debe ser un número entero")
	}

	pet, err := h.petUC.GetPet(c.Request().Context(), id)
	if err != nil {
		return h.handlePetError(c, err)
	}

	return response.Success(c, http.StatusOK, pet, "")
}

// CreatePet handles POST /mascotas/mascotas_create
func (h *PetHandler) CreatePet(c echo.Context) error {
	var input usecase.PetInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de mascota no válidos")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), err.Error())
	}

	pet, err := h.petUC.CreatePet(c.Request().Context(), &input)
	if err != nil {
		return h.handlePetError(c, err)
	}

	return response.Success(c, http.StatusCreated, pet, "Mascota registrada")
}

// UpdatePet handles PUT /mascotas/mascotas_update/:id
func (h *PetHandler) UpdatePet(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "El id debe ser un número entero")
	}

	var input usecase.PetInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de mascota no válidos")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), err.Error())
	}

	pet, err := h.petUC.UpdatePet(c.Request().Context(), id, &input)
	if err != nil {
		return h.handlePetError(c, err)
	}

	return response.Success(c, http.StatusOK, pet, "Mascota actualizada")
}

// DeletePet handles DELETE /mascotas/mascotas_delete/:id
func (h *PetHandler) DeletePet(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "El id debe ser un número entero")
	}

	if err := h.petUC.DeletePet(c.Request().Context(), id); err != nil {
		return h.handlePetError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Mascota eliminada")
}

// handlePetError maps domain errors to HTTP responses.
func (h *PetHandler) handlePetError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrPetNotFound):
		return response.NotFound(c,
			domainerrors.ErrPetNotFound.ErrorCode(),
			domainerrors.ErrPetNotFound.Message())
	case errors.Is(err, repository.ErrPetOwnerMissing):
		return response.BadRequest(c,
			domainerrors.ErrOwnerNotFound.ErrorCode(),
			domainerrors.ErrOwnerNotFound.Message())
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
