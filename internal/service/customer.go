package service

import (
	"context"

	"github.com/sirupsen/logrus"
	apperrors "github.com/umalmyha/customer-templates/internal/errors"
	"github.com/umalmyha/customer-templates/internal/model"
)

const customerEntity = "customer"

// CustomerService represents behavior of customer service
type CustomerService interface {
	FindAll(context.Context, model.CustomerFilter) ([]model.Customer, error)
	FindByID(context.Context, string) (model.Customer, error)
	Create(context.Context, model.NewCustomer) (model.Customer, error)
	Update(context.Context, string, model.CustomerPatch) (model.Customer, error)
	DeleteByID(context.Context, string) error
	NextCode(context.Context) (string, error)
	Stats(context.Context) (model.CustomerStats, error)
}

type customerService struct {
	store Store
}

// NewCustomerService builds new customer service
func NewCustomerService(store Store) CustomerService {
	return &customerService{store: store}
}

func (s *customerService) FindAll(ctx context.Context, filter model.CustomerFilter) ([]model.Customer, error) {
	customers := make([]model.Customer, 0)
	for _, c := range s.store.Customers(ctx) {
		if filter.Match(c) {
			customers = append(customers, c)
		}
	}
	return customers, nil
}

func (s *customerService) FindByID(ctx context.Context, id string) (model.Customer, error) {
	c, ok := s.store.GetCustomerByID(ctx, id)
	if !ok {
		return model.Customer{}, apperrors.EntryNotFound(customerEntity, id)
	}
	return c, nil
}

func (s *customerService) Create(ctx context.Context, nc model.NewCustomer) (model.Customer, error) {
	customers := s.store.Customers(ctx)

	if nc.Code == "" {
		nc.Code = model.GenerateCustomerCode(customerCodes(customers))
	} else if hasCode(customers, nc.Code) {
		logrus.WithField("code", nc.Code).Warn("customer code is already in use")
	}

	return s.store.AddCustomer(ctx, nc), nil
}

func (s *customerService) Update(ctx context.Context, id string, patch model.CustomerPatch) (model.Customer, error) {
	c, ok := s.store.UpdateCustomer(ctx, id, patch)
	if !ok {
		return model.Customer{}, apperrors.EntryNotFound(customerEntity, id)
	}
	return c, nil
}

func (s *customerService) DeleteByID(ctx context.Context, id string) error {
	if !s.store.DeleteCustomer(ctx, id) {
		return apperrors.EntryNotFound(customerEntity, id)
	}
	return nil
}

func (s *customerService) NextCode(ctx context.Context) (string, error) {
	return model.GenerateCustomerCode(customerCodes(s.store.Customers(ctx))), nil
}

func (s *customerService) Stats(ctx context.Context) (model.CustomerStats, error) {
	stats := model.CustomerStats{ByCategory: make(map[model.Category]int)}
	for _, category := range model.Categories() {
		stats.ByCategory[category] = 0
	}

	for _, c := range s.store.Customers(ctx) {
		stats.Total++
		stats.ByCategory[c.Category]++
	}
	return stats, nil
}

func customerCodes(customers []model.Customer) []string {
	codes := make([]string, len(customers))
	for i, c := range customers {
		codes[i] = c.Code
	}
	return codes
}

func hasCode(customers []model.Customer, code string) bool {
	for _, c := range customers {
		if c.Code == code {
			return true
		}
	}
	return false
}
