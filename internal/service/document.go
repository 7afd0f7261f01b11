package service

import (
	"context"
	"fmt"

	"github.com/umalmyha/customer-templates/internal/document"
	apperrors "github.com/umalmyha/customer-templates/internal/errors"
	"github.com/umalmyha/customer-templates/internal/model"
)

const customerTemplateEntity = "customer template"

// DocumentService represents behavior of document service
type DocumentService interface {
	Download(ctx context.Context, customerID string, customerTemplateID string) (model.CustomerTemplate, error)
	Print(ctx context.Context, customerID string, customerTemplateID string) (model.CustomerTemplate, error)
}

type documentService struct {
	store      Store
	downloader document.Requester
	printer    document.Requester
}

// NewDocumentService builds new document service
func NewDocumentService(store Store, downloader document.Requester, printer document.Requester) DocumentService {
	return &documentService{store: store, downloader: downloader, printer: printer}
}

func (s *documentService) Download(ctx context.Context, customerID string, customerTemplateID string) (model.CustomerTemplate, error) {
	return s.request(ctx, s.downloader, document.ActionDownload, customerID, customerTemplateID)
}

func (s *documentService) Print(ctx context.Context, customerID string, customerTemplateID string) (model.CustomerTemplate, error) {
	return s.request(ctx, s.printer, document.ActionPrint, customerID, customerTemplateID)
}

func (s *documentService) request(ctx context.Context, r document.Requester, action string, customerID string, customerTemplateID string) (model.CustomerTemplate, error) {
	c, ok := s.store.GetCustomerByID(ctx, customerID)
	if !ok {
		return model.CustomerTemplate{}, apperrors.EntryNotFound(customerEntity, customerID)
	}

	for _, ct := range c.Templates {
		if ct.ID != customerTemplateID {
			continue
		}

		if err := r.Request(ctx, ct.FileName); err != nil {
			return model.CustomerTemplate{}, fmt.Errorf("failed to %s file %s - %w", action, ct.FileName, err)
		}
		return ct, nil
	}
	return model.CustomerTemplate{}, apperrors.EntryNotFound(customerTemplateEntity, customerTemplateID)
}
