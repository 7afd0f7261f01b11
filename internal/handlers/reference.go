package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/customer-templates/internal/service"
)

// ReferenceHTTPHandler serves read-only reference data
type ReferenceHTTPHandler struct {
	referenceSvc service.ReferenceService
}

// NewReferenceHTTPHandler builds new ReferenceHTTPHandler
func NewReferenceHTTPHandler(referenceSvc service.ReferenceService) *ReferenceHTTPHandler {
	return &ReferenceHTTPHandler{referenceSvc: referenceSvc}
}

// Users lists users
// @Summary     Get all users
// @Description Returns users customers can be assigned to
// @Tags        reference
// @Produce     json
// @Success     200    {array}  model.User
// @Router      /api/users [get]
func (h *ReferenceHTTPHandler) Users(c echo.Context) error {
	return c.JSON(http.StatusOK, h.referenceSvc.Users())
}

// Categories lists customer categories
// @Summary     Get all categories
// @Description Returns customer categories with display label and color
// @Tags        reference
// @Produce     json
// @Success     200    {array}  model.CategoryInfo
// @Router      /api/categories [get]
func (h *ReferenceHTTPHandler) Categories(c echo.Context) error {
	return c.JSON(http.StatusOK, h.referenceSvc.Categories())
}
