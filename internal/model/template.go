package model

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const docxExt = ".docx"

var codeCaser = cases.Lower(language.Und)

// Template is global document template
type Template struct {
	ID           string   `json:"id" bson:"id"`
	Name         string   `json:"name" bson:"name"`
	FileName     string   `json:"fileName" bson:"fileName"`
	Placeholders []string `json:"placeholders" bson:"placeholders"`
	CreatedAt    string   `json:"createdAt" bson:"createdAt"`
}

// Clone returns copy of template which doesn't share placeholders with the original
func (t Template) Clone() Template {
	placeholders := make([]string, len(t.Placeholders))
	copy(placeholders, t.Placeholders)
	t.Placeholders = placeholders
	return t
}

// FileNameFor derives customer specific file name, e.g. contract.docx -> contract-kh001.docx
func (t Template) FileNameFor(customerCode string) string {
	base := strings.TrimSuffix(t.FileName, docxExt)
	return base + "-" + codeCaser.String(customerCode) + docxExt
}

// NewTemplate holds everything caller provides to create template
type NewTemplate struct {
	Name         string
	FileName     string
	Placeholders []string
}

// TemplateStats is templates summary
type TemplateStats struct {
	Total             int       `json:"total"`
	TotalPlaceholders int       `json:"totalPlaceholders"`
	Latest            *Template `json:"latest"`
}

// CommonPlaceholders returns placeholders frequently used in templates
func CommonPlaceholders() []string {
	return []string{
		"{Tên khách hàng}",
		"{Mã khách hàng}",
		"{Mã số thuế}",
		"{Ngày cấp GĐKKD}",
		"{Người đại diện}",
		"{Chức vụ}",
		"{Email}",
		"{Số điện thoại}",
		"{Địa chỉ}",
		"{Mã hợp đồng}",
		"{Ngày ký hợp đồng}",
		"{Giá trị hợp đồng}",
	}
}
