// Package store owns customers and templates collections.
//
// Every mutation goes through Store, which keeps two rules:
// a new template is materialized for every customer existing at that moment (fan-out),
// and a deleted template disappears from every customer (cascade).
// Both collections are persisted under independent keys after each mutation.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/umalmyha/customer-templates/internal/kv"
	"github.com/umalmyha/customer-templates/internal/model"
	"github.com/umalmyha/customer-templates/internal/seed"
)

const (
	// CustomersKey is storage key of customers collection
	CustomersKey = "customers"
	// TemplatesKey is storage key of templates collection
	TemplatesKey = "templates"
)

// Option configures Store
type Option func(*Store)

// WithClock replaces source of current time
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator replaces generator of entity identifiers
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) {
		s.newID = gen
	}
}

// WithDefaults replaces collections used when nothing is persisted yet
func WithDefaults(customers []model.Customer, templates []model.Template) Option {
	return func(s *Store) {
		s.defaultCustomers = customers
		s.defaultTemplates = templates
	}
}

// Store is single source of truth for customers and templates
type Store struct {
	mu               sync.Mutex
	customers        *kv.Value[[]model.Customer]
	templates        *kv.Value[[]model.Template]
	defaultCustomers []model.Customer
	defaultTemplates []model.Template
	now              func() time.Time
	newID            func() string
}

// New builds store persisted in backend
func New(backend kv.Backend, codec kv.Codec, opts ...Option) *Store {
	s := &Store{
		customers:        kv.NewValue[[]model.Customer](backend, codec, CustomersKey),
		templates:        kv.NewValue[[]model.Template](backend, codec, TemplatesKey),
		defaultCustomers: seed.Customers(),
		defaultTemplates: seed.Templates(),
		now:              time.Now,
		newID:            uuid.NewString,
	}

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads both collections from storage, it is optional since every operation loads lazily
func (s *Store) Load(ctx context.Context) (customers int, templates int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.readCustomers(ctx)), len(s.readTemplates(ctx))
}

// Customers returns all customers in insertion order
func (s *Store) Customers(ctx context.Context) []model.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	customers := s.readCustomers(ctx)
	out := make([]model.Customer, len(customers))
	for i, c := range customers {
		out[i] = c.Clone()
	}
	return out
}

// Templates returns all templates in insertion order
func (s *Store) Templates(ctx context.Context) []model.Template {
	s.mu.Lock()
	defer s.mu.Unlock()

	templates := s.readTemplates(ctx)
	out := make([]model.Template, len(templates))
	for i, t := range templates {
		out[i] = t.Clone()
	}
	return out
}

// GetCustomerByID looks up customer, false is returned if there is no such customer
func (s *Store) GetCustomerByID(ctx context.Context, id string) (model.Customer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.readCustomers(ctx) {
		if c.ID == id {
			return c.Clone(), true
		}
	}
	return model.Customer{}, false
}

// GetTemplateByID looks up template, false is returned if there is no such template
func (s *Store) GetTemplateByID(ctx context.Context, id string) (model.Template, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.readTemplates(ctx) {
		if t.ID == id {
			return t.Clone(), true
		}
	}
	return model.Template{}, false
}

// AddCustomer appends new customer without templates. Code uniqueness is not checked.
func (s *Store) AddCustomer(ctx context.Context, nc model.NewCustomer) model.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := model.Customer{
		ID:                  s.newID(),
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
		CreatedAt:           model.Date(s.now()),
		Templates:           make([]model.CustomerTemplate, 0),
	}

	existing := s.readCustomers(ctx)
	customers := make([]model.Customer, 0, len(existing)+1)
	customers = append(customers, existing...)
	customers = append(customers, c)
	s.customers.Write(ctx, customers)

	return c.Clone()
}

// UpdateCustomer merges patch into customer, false is returned if there is no such customer
func (s *Store) UpdateCustomer(ctx context.Context, id string, patch model.CustomerPatch) (model.Customer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.readCustomers(ctx)
	idx := indexOfCustomer(existing, id)
	if idx < 0 {
		return model.Customer{}, false
	}

	customers := make([]model.Customer, len(existing))
	copy(customers, existing)
	customers[idx] = customers[idx].MergePatch(patch)
	s.customers.Write(ctx, customers)

	return customers[idx].Clone(), true
}

// DeleteCustomer removes customer together with its templates, false is returned if there is no such customer
func (s *Store) DeleteCustomer(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.readCustomers(ctx)
	idx := indexOfCustomer(existing, id)
	if idx < 0 {
		return false
	}

	customers := make([]model.Customer, 0, len(existing)-1)
	customers = append(customers, existing[:idx]...)
	customers = append(customers, existing[idx+1:]...)
	s.customers.Write(ctx, customers)

	return true
}

// AddTemplate appends new template and materializes it for every existing customer
func (s *Store) AddTemplate(ctx context.Context, nt model.NewTemplate) model.Template {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := model.Date(s.now())

	placeholders := make([]string, len(nt.Placeholders))
	copy(placeholders, nt.Placeholders)

	t := model.Template{
		ID:           s.newID(),
		Name:         nt.Name,
		FileName:     nt.FileName,
		Placeholders: placeholders,
		CreatedAt:    today,
	}

	existingTemplates := s.readTemplates(ctx)
	templates := make([]model.Template, 0, len(existingTemplates)+1)
	templates = append(templates, existingTemplates...)
	templates = append(templates, t)
	s.templates.Write(ctx, templates)

	existingCustomers := s.readCustomers(ctx)
	customers := make([]model.Customer, len(existingCustomers))
	for i, c := range existingCustomers {
		c = c.Clone()
		c.Templates = append(c.Templates, model.CustomerTemplate{
			ID:           s.newID(),
			TemplateID:   t.ID,
			TemplateName: t.Name,
			FileName:     t.FileNameFor(c.Code),
			CreatedAt:    today,
		})
		customers[i] = c
	}
	s.customers.Write(ctx, customers)

	return t.Clone()
}

// DeleteTemplate removes template and all its materializations.
// Materializations are purged even if template itself is missing, false reports the missing template.
func (s *Store) DeleteTemplate(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	existingTemplates := s.readTemplates(ctx)
	templates := make([]model.Template, 0, len(existingTemplates))
	for _, t := range existingTemplates {
		if t.ID != id {
			templates = append(templates, t)
		}
	}

	found := len(templates) != len(existingTemplates)
	if found {
		s.templates.Write(ctx, templates)
	}

	existingCustomers := s.readCustomers(ctx)
	customers := make([]model.Customer, len(existingCustomers))
	purged := false
	for i, c := range existingCustomers {
		kept := make([]model.CustomerTemplate, 0, len(c.Templates))
		for _, ct := range c.Templates {
			if ct.TemplateID != id {
				kept = append(kept, ct)
			}
		}

		if len(kept) != len(c.Templates) {
			purged = true
		}

		c.Templates = kept
		customers[i] = c
	}

	if purged {
		s.customers.Write(ctx, customers)
	}
	return found
}

func (s *Store) readCustomers(ctx context.Context) []model.Customer {
	return s.customers.Read(ctx, s.defaultCustomers)
}

func (s *Store) readTemplates(ctx context.Context) []model.Template {
	return s.templates.Read(ctx, s.defaultTemplates)
}

func indexOfCustomer(customers []model.Customer, id string) int {
	for i, c := range customers {
		if c.ID == id {
			return i
		}
	}
	return -1
}
