package service

import (
	"context"

	"github.com/umalmyha/customer-templates/internal/model"
)

// Store is storage of customers and templates which services rely on
type Store interface {
	Customers(context.Context) []model.Customer
	Templates(context.Context) []model.Template
	GetCustomerByID(context.Context, string) (model.Customer, bool)
	GetTemplateByID(context.Context, string) (model.Template, bool)
	AddCustomer(context.Context, model.NewCustomer) model.Customer
	UpdateCustomer(context.Context, string, model.CustomerPatch) (model.Customer, bool)
	DeleteCustomer(context.Context, string) bool
	AddTemplate(context.Context, model.NewTemplate) model.Template
	DeleteTemplate(context.Context, string) bool
}
