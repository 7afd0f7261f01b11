package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	apperrors "github.com/umalmyha/customer-templates/internal/errors"
	"github.com/umalmyha/customer-templates/internal/kv"
	"github.com/umalmyha/customer-templates/internal/model"
	"github.com/umalmyha/customer-templates/internal/store"
)

func newTestStore() *store.Store {
	return store.New(kv.NewMemory(), kv.JSONCodec{}, store.WithClock(func() time.Time {
		return time.Date(2024, time.February, 1, 9, 0, 0, 0, time.UTC)
	}))
}

type customerServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	customerSvc CustomerService
	newCustomer model.NewCustomer
}

func (s *customerServiceTestSuite) SetupSuite() {
	s.ctx = context.Background()
	s.newCustomer = model.NewCustomer{
		Name:                "Công ty TNHH JKL",
		TaxNumber:           "0111222333",
		BusinessLicenseDate: "2023-04-12",
		Representative:      "Võ Thị Lan",
		Position:            "Giám đốc",
		Email:               "contact@jkl.vn",
		Phone:               "0945678901",
		Address:             "12 Đường JKL, Quận 5, TP.HCM",
		Category:            model.CategoryPotential,
		Assignee:            "Trần Thị B",
		CreatedBy:           "Nguyễn Văn A",
	}
}

func (s *customerServiceTestSuite) SetupTest() {
	s.customerSvc = NewCustomerService(newTestStore())
}

func (s *customerServiceTestSuite) TestFindAll() {
	s.T().Log("all customers are returned without filter")
	{
		customers, err := s.customerSvc.FindAll(s.ctx, model.CustomerFilter{})
		s.Require().NoError(err)
		s.Require().Len(customers, 4)
	}

	s.T().Log("customers are filtered by category")
	{
		customers, err := s.customerSvc.FindAll(s.ctx, model.CustomerFilter{Category: model.CategoryClosed})
		s.Require().NoError(err)
		s.Require().Len(customers, 1)
		s.Require().Equal("KH001", customers[0].Code)
	}
}

func (s *customerServiceTestSuite) TestFindByIDNotFound() {
	_, err := s.customerSvc.FindByID(s.ctx, "missing")
	s.Require().Error(err, "missing customer must be reported")
	s.Require().IsType(&apperrors.EntryNotFoundErr{}, err, "error must be entry not found error")
}

func (s *customerServiceTestSuite) TestCreateGeneratesCode() {
	c, err := s.customerSvc.Create(s.ctx, s.newCustomer)
	s.Require().NoError(err)
	s.Require().Equal("KH005", c.Code, "code must follow the biggest existing one")
	s.Require().Equal("2024-02-01", c.CreatedAt)

	next, err := s.customerSvc.NextCode(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal("KH006", next)
}

func (s *customerServiceTestSuite) TestCreateKeepsProvidedCode() {
	nc := s.newCustomer
	nc.Code = "KH001"

	c, err := s.customerSvc.Create(s.ctx, nc)
	s.Require().NoError(err, "duplicated code is advisory only")
	s.Require().Equal("KH001", c.Code)
}

func (s *customerServiceTestSuite) TestUpdate() {
	category := model.CategoryRegular

	s.T().Log("existing customer is updated")
	{
		c, err := s.customerSvc.Update(s.ctx, "4", model.CustomerPatch{Category: &category})
		s.Require().NoError(err)
		s.Require().Equal(model.CategoryRegular, c.Category)
	}

	s.T().Log("missing customer is reported")
	{
		_, err := s.customerSvc.Update(s.ctx, "missing", model.CustomerPatch{Category: &category})
		s.Require().IsType(&apperrors.EntryNotFoundErr{}, err)
	}
}

func (s *customerServiceTestSuite) TestDeleteByID() {
	s.Require().NoError(s.customerSvc.DeleteByID(s.ctx, "3"))

	err := s.customerSvc.DeleteByID(s.ctx, "3")
	s.Require().IsType(&apperrors.EntryNotFoundErr{}, err, "second deletion must report missing customer")
}

func (s *customerServiceTestSuite) TestStats() {
	stats, err := s.customerSvc.Stats(s.ctx)
	s.Require().NoError(err)
	s.Require().Equal(4, stats.Total)
	s.Require().Equal(map[model.Category]int{
		model.CategoryPotential: 1,
		model.CategoryClosed:    1,
		model.CategoryRegular:   1,
		model.CategoryPromising: 1,
	}, stats.ByCategory)
}

func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(customerServiceTestSuite))
}
