package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/customer-templates/internal/model"
	"github.com/umalmyha/customer-templates/internal/service"
)

type identifier struct {
	ID string `json:"id" validate:"required"`
}

type customerFilter struct {
	Category model.Category `query:"category" validate:"omitempty,oneof=POTENTIAL CLOSED REGULAR PROMISING"`
}

type newCustomer struct {
	Code                string         `json:"code" validate:"omitempty,max=32"`
	Name                string         `json:"name" validate:"required"`
	TaxNumber           string         `json:"taxNumber" validate:"required"`
	BusinessLicenseDate string         `json:"businessLicenseDate" validate:"required,datetime=2006-01-02"`
	Representative      string         `json:"representative" validate:"required"`
	Position            string         `json:"position" validate:"required"`
	Email               string         `json:"email" validate:"required,email_simple"`
	Phone               string         `json:"phone" validate:"required,vnphone"`
	Address             string         `json:"address" validate:"required"`
	Category            model.Category `json:"category" validate:"required,oneof=POTENTIAL CLOSED REGULAR PROMISING"`
	Assignee            string         `json:"assignee" validate:"required"`
	CreatedBy           string         `json:"createdBy" validate:"required"`
}

// trim drops surrounding spaces, so blank values are rejected as missing
func (nc *newCustomer) trim() {
	for _, f := range []*string{
		&nc.Code, &nc.Name, &nc.TaxNumber, &nc.BusinessLicenseDate, &nc.Representative, &nc.Position,
		&nc.Email, &nc.Phone, &nc.Address, &nc.Assignee, &nc.CreatedBy,
	} {
		*f = strings.TrimSpace(*f)
	}
}

func (nc *newCustomer) model() model.NewCustomer {
	return model.NewCustomer{
		Code:                nc.Code,
		Name:                nc.Name,
		TaxNumber:           nc.TaxNumber,
		BusinessLicenseDate: nc.BusinessLicenseDate,
		Representative:      nc.Representative,
		Position:            nc.Position,
		Email:               nc.Email,
		Phone:               nc.Phone,
		Address:             nc.Address,
		Category:            nc.Category,
		Assignee:            nc.Assignee,
		CreatedBy:           nc.CreatedBy,
	}
}

type updateCustomer struct {
	ID string `param:"id" json:"-" form:"-" validate:"required"`
	newCustomer
	Templates *[]model.CustomerTemplate `json:"templates"`
}

type patchCustomer struct {
	ID                  string                    `param:"id" json:"-" form:"-" validate:"required"`
	Code                *string                   `json:"code" validate:"omitempty,min=1,max=32"`
	Name                *string                   `json:"name" validate:"omitempty,min=1"`
	TaxNumber           *string                   `json:"taxNumber" validate:"omitempty,min=1"`
	BusinessLicenseDate *string                   `json:"businessLicenseDate" validate:"omitempty,datetime=2006-01-02"`
	Representative      *string                   `json:"representative" validate:"omitempty,min=1"`
	Position            *string                   `json:"position" validate:"omitempty,min=1"`
	Email               *string                   `json:"email" validate:"omitempty,email_simple"`
	Phone               *string                   `json:"phone" validate:"omitempty,vnphone"`
	Address             *string                   `json:"address" validate:"omitempty,min=1"`
	Category            *model.Category           `json:"category" validate:"omitempty,oneof=POTENTIAL CLOSED REGULAR PROMISING"`
	Assignee            *string                   `json:"assignee" validate:"omitempty,min=1"`
	CreatedBy           *string                   `json:"createdBy" validate:"omitempty,min=1"`
	Templates           *[]model.CustomerTemplate `json:"templates"`
}

// trim drops surrounding spaces of provided fields, blank values are rejected by validation
func (pc *patchCustomer) trim() {
	for _, f := range []*string{
		pc.Code, pc.Name, pc.TaxNumber, pc.BusinessLicenseDate, pc.Representative, pc.Position,
		pc.Email, pc.Phone, pc.Address, pc.Assignee, pc.CreatedBy,
	} {
		if f != nil {
			*f = strings.TrimSpace(*f)
		}
	}
}

func (pc *patchCustomer) model() model.CustomerPatch {
	return model.CustomerPatch{
		Code:                pc.Code,
		Name:                pc.Name,
		TaxNumber:           pc.TaxNumber,
		BusinessLicenseDate: pc.BusinessLicenseDate,
		Representative:      pc.Representative,
		Position:            pc.Position,
		Email:               pc.Email,
		Phone:               pc.Phone,
		Address:             pc.Address,
		Category:            pc.Category,
		Assignee:            pc.Assignee,
		CreatedBy:           pc.CreatedBy,
		Templates:           pc.Templates,
	}
}

type nextCode struct {
	Code string `json:"code"`
}

// CustomerHTTPHandler is http handler for customer endpoint
type CustomerHTTPHandler struct {
	customerSvc service.CustomerService
}

// NewCustomerHTTPHandler builds new CustomerHTTPHandler
func NewCustomerHTTPHandler(customerSvc service.CustomerService) *CustomerHTTPHandler {
	return &CustomerHTTPHandler{customerSvc: customerSvc}
}

// Get gets customer
// @Summary     Get single customer by id
// @Description Returns single customer with provided id including its templates
// @Tags        customers
// @Produce     json
// @Param       id     path 	string true "Customer id"
// @Success     200    {object} model.Customer
// @Failure     400    {object} echo.HTTPError
// @Failure     404    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Router      /api/customers/{id} [get]
func (h *CustomerHTTPHandler) Get(c echo.Context) error {
	id := c.Param("id")
	if err := c.Validate(&identifier{ID: id}); err != nil {
		return err
	}

	customer, err := h.customerSvc.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, customer)
}

// GetAll gets all customers
// @Summary     Get all customers
// @Description Returns all customers, optionally narrowed by category
// @Tags        customers
// @Produce     json
// @Param       category query    string false "Customer category" Enums(POTENTIAL, CLOSED, REGULAR, PROMISING)
// @Success     200      {array}  model.Customer
// @Failure     400      {object} echo.HTTPError
// @Failure     500      {object} echo.HTTPError
// @Router      /api/customers [get]
func (h *CustomerHTTPHandler) GetAll(c echo.Context) error {
	var f customerFilter
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&f); err != nil {
		return err
	}

	customers, err := h.customerSvc.FindAll(c.Request().Context(), model.CustomerFilter{Category: f.Category})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customers)
}

// Post creates new customer
// @Summary     New Customer
// @Description Creates new customer, code is generated when omitted
// @Tags        customers
// @Accept		json
// @Produce     json
// @Param 		newCustomer body	 newCustomer true "Data for new customer"
// @Success     201    		{object} model.Customer
// @Failure     400    		{object} validation.PayloadError
// @Failure     500    		{object} echo.HTTPError
// @Router      /api/customers [post]
func (h *CustomerHTTPHandler) Post(c echo.Context) error {
	var nc newCustomer
	if err := c.Bind(&nc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	nc.trim()

	if err := c.Validate(&nc); err != nil {
		return err
	}

	customer, err := h.customerSvc.Create(c.Request().Context(), nc.model())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, customer)
}

// Put updates customer
// @Summary     Update Customer
// @Description Overwrites every editable field of existing customer, code is kept when omitted
// @Tags        customers
// @Accept		json
// @Produce     json
// @Param       id     		   path 	string 		   true "Customer id"
// @Param 		updateCustomer body	    updateCustomer true "Customer data"
// @Success     200    		   {object} model.Customer
// @Failure     400    		   {object} validation.PayloadError
// @Failure     404    		   {object} echo.HTTPError
// @Failure     500    		   {object} echo.HTTPError
// @Router      /api/customers/{id} [put]
func (h *CustomerHTTPHandler) Put(c echo.Context) error {
	var uc updateCustomer
	if err := c.Bind(&uc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	uc.trim()

	if err := c.Validate(&uc); err != nil {
		return err
	}

	patch := model.FullPatch(uc.model())
	patch.Templates = uc.Templates
	if uc.Code == "" {
		patch.Code = nil // code stays as it is when form omits it
	}

	customer, err := h.customerSvc.Update(c.Request().Context(), uc.ID, patch)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, customer)
}

// Patch partially updates customer
// @Summary     Patch Customer
// @Description Updates only provided fields of existing customer
// @Tags        customers
// @Accept		json
// @Produce     json
// @Param       id     		  path 	   string 		 true "Customer id"
// @Param 		patchCustomer body	   patchCustomer true "Fields to update"
// @Success     200    		  {object} model.Customer
// @Failure     400    		  {object} validation.PayloadError
// @Failure     404    		  {object} echo.HTTPError
// @Failure     500    		  {object} echo.HTTPError
// @Router      /api/customers/{id} [patch]
func (h *CustomerHTTPHandler) Patch(c echo.Context) error {
	var pc patchCustomer
	if err := c.Bind(&pc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	pc.trim()

	if err := c.Validate(&pc); err != nil {
		return err
	}

	customer, err := h.customerSvc.Update(c.Request().Context(), pc.ID, pc.model())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, customer)
}

// DeleteByID deletes customer
// @Summary     Delete customer by id
// @Description Deletes customer with provided id together with its templates
// @Tags        customers
// @Param       id     path 	string true "Customer id"
// @Success     204    "Successful status code"
// @Failure     400    {object} echo.HTTPError
// @Failure     404    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Router      /api/customers/{id} [delete]
func (h *CustomerHTTPHandler) DeleteByID(c echo.Context) error {
	id := c.Param("id")
	if err := c.Validate(&identifier{ID: id}); err != nil {
		return err
	}

	if err := h.customerSvc.DeleteByID(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// NextCode suggests code for new customer
// @Summary     Next customer code
// @Description Returns code following the highest existing one, e.g. KH005
// @Tags        customers
// @Produce     json
// @Success     200    {object} nextCode
// @Failure     500    {object} echo.HTTPError
// @Router      /api/customers/next-code [get]
func (h *CustomerHTTPHandler) NextCode(c echo.Context) error {
	code, err := h.customerSvc.NextCode(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, &nextCode{Code: code})
}

// Stats summarizes customers
// @Summary     Customers statistics
// @Description Returns total number of customers and number per category
// @Tags        customers
// @Produce     json
// @Success     200    {object} model.CustomerStats
// @Failure     500    {object} echo.HTTPError
// @Router      /api/customers/stats [get]
func (h *CustomerHTTPHandler) Stats(c echo.Context) error {
	stats, err := h.customerSvc.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
