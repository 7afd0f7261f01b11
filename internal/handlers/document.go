package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/customer-templates/internal/document"
	"github.com/umalmyha/customer-templates/internal/model"
	"github.com/umalmyha/customer-templates/internal/service"
)

type documentRequest struct {
	CustomerID         string `param:"id" validate:"required"`
	CustomerTemplateID string `param:"customerTemplateId" validate:"required"`
}

type requestedDocument struct {
	Action   string `json:"action"`
	FileName string `json:"fileName"`
}

type documentRequestFunc func(ctx context.Context, customerID string, customerTemplateID string) (model.CustomerTemplate, error)

// DocumentHTTPHandler is http handler for customer documents endpoint
type DocumentHTTPHandler struct {
	documentSvc service.DocumentService
}

// NewDocumentHTTPHandler builds new DocumentHTTPHandler
func NewDocumentHTTPHandler(documentSvc service.DocumentService) *DocumentHTTPHandler {
	return &DocumentHTTPHandler{documentSvc: documentSvc}
}

// Download requests customer document download
// @Summary     Download customer document
// @Description Requests download of file generated from customer template
// @Tags        documents
// @Produce     json
// @Param       id                 path     string true "Customer id"
// @Param       customerTemplateId path     string true "Customer template id"
// @Success     202    {object} requestedDocument
// @Failure     400    {object} echo.HTTPError
// @Failure     404    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Router      /api/customers/{id}/templates/{customerTemplateId}/download [post]
func (h *DocumentHTTPHandler) Download(c echo.Context) error {
	return h.request(c, document.ActionDownload, h.documentSvc.Download)
}

// Print requests customer document print
// @Summary     Print customer document
// @Description Requests print of file generated from customer template
// @Tags        documents
// @Produce     json
// @Param       id                 path     string true "Customer id"
// @Param       customerTemplateId path     string true "Customer template id"
// @Success     202    {object} requestedDocument
// @Failure     400    {object} echo.HTTPError
// @Failure     404    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Router      /api/customers/{id}/templates/{customerTemplateId}/print [post]
func (h *DocumentHTTPHandler) Print(c echo.Context) error {
	return h.request(c, document.ActionPrint, h.documentSvc.Print)
}

func (h *DocumentHTTPHandler) request(c echo.Context, action string, fn documentRequestFunc) error {
	var dr documentRequest
	if err := c.Bind(&dr); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&dr); err != nil {
		return err
	}

	ct, err := fn(c.Request().Context(), dr.CustomerID, dr.CustomerTemplateID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusAccepted, &requestedDocument{Action: action, FileName: ct.FileName})
}
