package model

// Customer is customer model entity
type Customer struct {
	ID                  string             `json:"id" bson:"_id,omitempty"`
	Code                string             `json:"code" bson:"code"`
	Name                string             `json:"name" bson:"name"`
	TaxNumber           string             `json:"taxNumber" bson:"taxNumber"`
	BusinessLicenseDate string             `json:"businessLicenseDate" bson:"businessLicenseDate"`
	Representative      string             `json:"representative" bson:"representative"`
	Position            string             `json:"position" bson:"position"`
	Email               string             `json:"email" bson:"email"`
	Phone               string             `json:"phone" bson:"phone"`
	Address             string             `json:"address" bson:"address"`
	Category            Category           `json:"category" bson:"category"`
	Assignee            string             `json:"assignee" bson:"assignee"`
	CreatedBy           string             `json:"createdBy" bson:"createdBy"`
	CreatedAt           string             `json:"createdAt" bson:"createdAt"`
	Templates           []CustomerTemplate `json:"templates" bson:"templates"`
}

// Clone returns copy of customer which doesn't share templates with the original
func (c Customer) Clone() Customer {
	templates := make([]CustomerTemplate, len(c.Templates))
	copy(templates, c.Templates)
	c.Templates = templates
	return c
}

// MergePatch applies all fields set in patch
func (c Customer) MergePatch(patch CustomerPatch) Customer {
	if patch.Code != nil {
		c.Code = *patch.Code
	}

	if patch.Name != nil {
		c.Name = *patch.Name
	}

	if patch.TaxNumber != nil {
		c.TaxNumber = *patch.TaxNumber
	}

	if patch.BusinessLicenseDate != nil {
		c.BusinessLicenseDate = *patch.BusinessLicenseDate
	}

	if patch.Representative != nil {
		c.Representative = *patch.Representative
	}

	if patch.Position != nil {
		c.Position = *patch.Position
	}

	if patch.Email != nil {
		c.Email = *patch.Email
	}

	if patch.Phone != nil {
		c.Phone = *patch.Phone
	}

	if patch.Address != nil {
		c.Address = *patch.Address
	}

	if patch.Category != nil {
		c.Category = *patch.Category
	}

	if patch.Assignee != nil {
		c.Assignee = *patch.Assignee
	}

	if patch.CreatedBy != nil {
		c.CreatedBy = *patch.CreatedBy
	}

	if patch.Templates != nil {
		templates := make([]CustomerTemplate, len(*patch.Templates))
		copy(templates, *patch.Templates)
		c.Templates = templates
	}
	return c
}

// NewCustomer holds everything caller provides to create customer
type NewCustomer struct {
	Code                string
	Name                string
	TaxNumber           string
	BusinessLicenseDate string
	Representative      string
	Position            string
	Email               string
	Phone               string
	Address             string
	Category            Category
	Assignee            string
	CreatedBy           string
}

// CustomerPatch is partial customer update, nil fields stay untouched.
// Identity and creation date are not patchable.
type CustomerPatch struct {
	Code                *string
	Name                *string
	TaxNumber           *string
	BusinessLicenseDate *string
	Representative      *string
	Position            *string
	Email               *string
	Phone               *string
	Address             *string
	Category            *Category
	Assignee            *string
	CreatedBy           *string
	Templates           *[]CustomerTemplate
}

// FullPatch builds patch which overwrites every editable field with values of nc
func FullPatch(nc NewCustomer) CustomerPatch {
	return CustomerPatch{
		Code:                &nc.Code,
		Name:                &nc.Name,
		TaxNumber:           &nc.TaxNumber,
		BusinessLicenseDate: &nc.BusinessLicenseDate,
		Representative:      &nc.Representative,
		Position:            &nc.Position,
		Email:               &nc.Email,
		Phone:               &nc.Phone,
		Address:             &nc.Address,
		Category:            &nc.Category,
		Assignee:            &nc.Assignee,
		CreatedBy:           &nc.CreatedBy,
	}
}

// CustomerTemplate is template materialized for single customer.
// TemplateName is copied at materialization time and never refreshed.
type CustomerTemplate struct {
	ID           string `json:"id" bson:"id"`
	TemplateID   string `json:"templateId" bson:"templateId"`
	TemplateName string `json:"templateName" bson:"templateName"`
	FileName     string `json:"fileName" bson:"fileName"`
	CreatedAt    string `json:"createdAt" bson:"createdAt"`
}

// CustomerFilter narrows customers list
type CustomerFilter struct {
	Category Category
}

// Match reports whether customer satisfies filter
func (f CustomerFilter) Match(c Customer) bool {
	return f.Category == "" || f.Category == c.Category
}

// CustomerStats is customers summary
type CustomerStats struct {
	Total      int              `json:"total"`
	ByCategory map[Category]int `json:"byCategory"`
}
