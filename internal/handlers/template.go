package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/customer-templates/internal/model"
	"github.com/umalmyha/customer-templates/internal/service"
	"github.com/umalmyha/customer-templates/internal/validation"
)

const (
	mimeBytesNumber = 512
	uploadFileField = "file"
)

type newTemplate struct {
	Name         string   `json:"name" validate:"required"`
	FileName     string   `json:"fileName" validate:"required,wordfile"`
	Placeholders []string `json:"placeholders"`
}

type uploadTemplate struct {
	Name         string   `form:"name" validate:"required"`
	Placeholders []string `form:"placeholders"`
}

// TemplateHTTPHandler is http handler for template endpoint
type TemplateHTTPHandler struct {
	templateSvc        service.TemplateService
	validWordMimeTypes map[string]struct{}
}

// NewTemplateHTTPHandler builds new TemplateHTTPHandler
func NewTemplateHTTPHandler(templateSvc service.TemplateService) *TemplateHTTPHandler {
	return &TemplateHTTPHandler{
		templateSvc: templateSvc,
		validWordMimeTypes: map[string]struct{}{
			"application/msword":       {},
			"application/octet-stream": {},
			"application/zip":          {},
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
		},
	}
}

// GetAll gets all templates
// @Summary     Get all templates
// @Description Returns all global templates
// @Tags        templates
// @Produce     json
// @Success     200    {array}  model.Template
// @Failure     500    {object} echo.HTTPError
// @Router      /api/templates [get]
func (h *TemplateHTTPHandler) GetAll(c echo.Context) error {
	templates, err := h.templateSvc.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, templates)
}

// Stats summarizes templates
// @Summary     Templates statistics
// @Description Returns number of templates, total number of placeholders and the latest template
// @Tags        templates
// @Produce     json
// @Success     200    {object} model.TemplateStats
// @Failure     500    {object} echo.HTTPError
// @Router      /api/templates/stats [get]
func (h *TemplateHTTPHandler) Stats(c echo.Context) error {
	stats, err := h.templateSvc.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Placeholders lists commonly used placeholders
// @Summary     Common placeholders
// @Description Returns placeholders suggested when template is created
// @Tags        templates
// @Produce     json
// @Success     200    {array}  string
// @Router      /api/templates/placeholders [get]
func (h *TemplateHTTPHandler) Placeholders(c echo.Context) error {
	return c.JSON(http.StatusOK, h.templateSvc.Placeholders())
}

// Post creates new template
// @Summary     New Template
// @Description Creates template and materializes it for every existing customer
// @Tags        templates
// @Accept		json
// @Produce     json
// @Param 		newTemplate body	 newTemplate true "Data for new template"
// @Success     201    		{object} model.Template
// @Failure     400    		{object} validation.PayloadError
// @Failure     500    		{object} echo.HTTPError
// @Router      /api/templates [post]
func (h *TemplateHTTPHandler) Post(c echo.Context) error {
	var nt newTemplate
	if err := c.Bind(&nt); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	nt.Name = strings.TrimSpace(nt.Name)
	nt.FileName = strings.TrimSpace(nt.FileName)

	if err := c.Validate(&nt); err != nil {
		return err
	}

	return h.create(c, model.NewTemplate{
		Name:         nt.Name,
		FileName:     nt.FileName,
		Placeholders: normalizePlaceholders(nt.Placeholders),
	})
}

// Upload creates template from uploaded Word document
// @Summary     Upload template
// @Description Accepts Word document, only its name is kept, content is not stored
// @Tags        templates
// @Accept		mpfd
// @Produce     json
// @Param 		file         formData file   true  "Word document (.doc, .docx)"
// @Param 		name         formData string true  "Template name"
// @Param 		placeholders formData []string false "Placeholders" collectionFormat(multi)
// @Success     201   {object} model.Template
// @Failure     400   {object} validation.PayloadError
// @Failure     500   {object} echo.HTTPError
// @Router      /api/templates/upload [post]
func (h *TemplateHTTPHandler) Upload(c echo.Context) error {
	var ut uploadTemplate
	if err := c.Bind(&ut); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ut.Name = strings.TrimSpace(ut.Name)

	if err := c.Validate(&ut); err != nil {
		return err
	}

	fileHdr, err := c.FormFile(uploadFileField)
	if err != nil {
		pldErr := &validation.PayloadError{}
		pldErr.Violation(uploadFileField, "file is a required field")
		return pldErr
	}

	fileName := filepath.Base(fileHdr.Filename)
	if !validation.IsWordFile(fileName) {
		pldErr := &validation.PayloadError{}
		pldErr.Violation(uploadFileField, "file must be a Word document (.doc, .docx)")
		return pldErr
	}

	if err := h.checkContent(fileHdr.Open); err != nil {
		return err
	}

	return h.create(c, model.NewTemplate{
		Name:         ut.Name,
		FileName:     fileName,
		Placeholders: normalizePlaceholders(ut.Placeholders),
	})
}

// DeleteByID deletes template
// @Summary     Delete template by id
// @Description Deletes template and every customer template materialized from it
// @Tags        templates
// @Param       id     path 	string true "Template id"
// @Success     204    "Successful status code"
// @Failure     400    {object} echo.HTTPError
// @Failure     404    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Router      /api/templates/{id} [delete]
func (h *TemplateHTTPHandler) DeleteByID(c echo.Context) error {
	id := c.Param("id")
	if err := c.Validate(&identifier{ID: id}); err != nil {
		return err
	}

	if err := h.templateSvc.DeleteByID(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *TemplateHTTPHandler) create(c echo.Context, nt model.NewTemplate) error {
	template, err := h.templateSvc.Create(c.Request().Context(), nt)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, template)
}

func (h *TemplateHTTPHandler) checkContent(open func() (multipart.File, error)) error {
	file, err := open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("failed to load file content - %v", err))
	}
	defer file.Close()

	mimeBuff := make([]byte, mimeBytesNumber)
	n, err := file.Read(mimeBuff)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return echo.NewHTTPError(http.StatusBadRequest, "file is empty")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	mimeType := http.DetectContentType(mimeBuff[:n])
	if !h.isMimeTypeAllowed(mimeType) {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("MIME type %s is not allowed", mimeType))
	}
	return nil
}

func (h *TemplateHTTPHandler) isMimeTypeAllowed(mime string) bool {
	if _, ok := h.validWordMimeTypes[mime]; ok {
		return true
	}
	return false
}

// normalizePlaceholders trims placeholders, blank and repeated ones are dropped, order is kept
func normalizePlaceholders(placeholders []string) []string {
	seen := make(map[string]struct{}, len(placeholders))
	normalized := make([]string, 0, len(placeholders))

	for _, p := range placeholders {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		if _, ok := seen[p]; ok {
			continue
		}

		seen[p] = struct{}{}
		normalized = append(normalized, p)
	}
	return normalized
}
