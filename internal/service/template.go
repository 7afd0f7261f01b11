package service

import (
	"context"
	"time"

	apperrors "github.com/umalmyha/customer-templates/internal/errors"
	"github.com/umalmyha/customer-templates/internal/model"
)

const templateEntity = "template"

// TemplateService represents behavior of template service
type TemplateService interface {
	FindAll(context.Context) ([]model.Template, error)
	FindByID(context.Context, string) (model.Template, error)
	Create(context.Context, model.NewTemplate) (model.Template, error)
	DeleteByID(context.Context, string) error
	Stats(context.Context) (model.TemplateStats, error)
	Placeholders() []string
}

type templateService struct {
	store Store
}

// NewTemplateService builds new template service
func NewTemplateService(store Store) TemplateService {
	return &templateService{store: store}
}

func (s *templateService) FindAll(ctx context.Context) ([]model.Template, error) {
	return s.store.Templates(ctx), nil
}

func (s *templateService) FindByID(ctx context.Context, id string) (model.Template, error) {
	t, ok := s.store.GetTemplateByID(ctx, id)
	if !ok {
		return model.Template{}, apperrors.EntryNotFound(templateEntity, id)
	}
	return t, nil
}

func (s *templateService) Create(ctx context.Context, nt model.NewTemplate) (model.Template, error) {
	if nt.Placeholders == nil {
		nt.Placeholders = make([]string, 0)
	}
	return s.store.AddTemplate(ctx, nt), nil
}

func (s *templateService) DeleteByID(ctx context.Context, id string) error {
	if !s.store.DeleteTemplate(ctx, id) {
		return apperrors.EntryNotFound(templateEntity, id)
	}
	return nil
}

// Stats counts templates with their placeholders and picks the most recently created one
func (s *templateService) Stats(ctx context.Context) (model.TemplateStats, error) {
	var stats model.TemplateStats
	var latestAt time.Time

	for _, t := range s.store.Templates(ctx) {
		stats.Total++
		stats.TotalPlaceholders += len(t.Placeholders)

		createdAt, _ := time.Parse(model.DateLayout, t.CreatedAt)
		if stats.Latest == nil || createdAt.After(latestAt) {
			t := t
			stats.Latest = &t
			latestAt = createdAt
		}
	}
	return stats, nil
}

func (s *templateService) Placeholders() []string {
	return model.CommonPlaceholders()
}
