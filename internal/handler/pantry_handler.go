package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"cookingapp/internal/errors"
	"cookingapp/internal/model"
	"cookingapp/internal/service"
)

// PantryHandler bundles HTTP handlers for pantry endpoints.
type PantryHandler struct {
	svc service.PantryService
}

// NewPantryHandler creates a handler layer.
func NewPantryHandler(svc service.PantryService) *PantryHandler {
	return &PantryHandler{svc: svc}
}

// CreatePantryRequest is the payload for creating a pantry.
type CreatePantryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// PantryCreatedResponse wraps a freshly created pantry.
type PantryCreatedResponse struct {
	Message string       `json:"message"`
	Pantry  model.Pantry `json:"pantry"`
}

// CreatePantry godoc
// @Summary Create pantry
// @Tags pantries
// @Accept json
// @Produce json
// @Param pantry body CreatePantryRequest true "Pantry payload"
// @Success 201 {object} PantryCreatedResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /pantries [post]
func (h *PantryHandler) CreatePantry(c echo.Context) error {
	var req CreatePantryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_BODY",
		})
	}

	// Normalize before the service sees anything: trimmed name, nil for
	// an empty description.
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "pantry name is required",
			Code:  "MISSING_NAME",
		})
	}
	if len(name) > 255 {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "pantry name must be at most 255 characters",
			Code:  "NAME_TOO_LONG",
		})
	}
	var description *string
	if req.Description != nil {
		if trimmed := strings.TrimSpace(*req.Description); trimmed != "" {
			if len(trimmed) > 1000 {
				return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
					Error: "pantry description must be at most 1000 characters",
					Code:  "DESCRIPTION_TOO_LONG",
				})
			}
			description = &trimmed
		}
	}

	pantry := model.Pantry{Name: name, Description: description}
	created, err := h.svc.CreatePantry(c.Request().Context(), &pantry)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, PantryCreatedResponse{
		Message: "pantry created successfully",
		Pantry:  *created,
	})
}

// GetPantry godoc
// @Summary Get pantry by id
// @Tags pantries
// @Produce json
// @Param id path int true "Pantry ID"
// @Success 200 {object} model.Pantry
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /pantries/{id} [get]
func (h *PantryHandler) GetPantry(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "pantry id must be a number",
			Code:  "INVALID_ID",
		})
	}
	pantry, err := h.svc.GetPantry(c.Request().Context(), uint(id))
	if err != nil {
		if err == errors.ErrPantryNotFound {
			return echo.NewHTTPError(http.StatusNotFound, errors.ErrorResponse{
				Error: fmt.Sprintf("pantry with id %d not found", id),
				Code:  "PANTRY_NOT_FOUND",
			})
		}
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, pantry)
}

// ListPantries godoc
// @Summary List pantries
// @Tags pantries
// @Produce json
// @Success 200 {array} model.Pantry
// @Failure 500 {object} errors.ErrorResponse
// @Router /pantries [get]
func (h *PantryHandler) ListPantries(c echo.Context) error {
	pantries, err := h.svc.ListPantries(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, pantries)
}
