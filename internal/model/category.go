package model

// Category classifies customer
type Category string

const (
	// CategoryPotential is potential customer
	CategoryPotential Category = "POTENTIAL"
	// CategoryClosed is customer with closed deal
	CategoryClosed Category = "CLOSED"
	// CategoryRegular is regular customer
	CategoryRegular Category = "REGULAR"
	// CategoryPromising is promising customer
	CategoryPromising Category = "PROMISING"
)

var categoryLabels = map[Category]string{
	CategoryPotential: "KH tiềm năng",
	CategoryClosed:    "KH đã chốt",
	CategoryRegular:   "KH thường",
	CategoryPromising: "KH khả quan",
}

var categoryColors = map[Category]string{
	CategoryPotential: "bg-yellow-100 text-yellow-800",
	CategoryClosed:    "bg-green-100 text-green-800",
	CategoryRegular:   "bg-blue-100 text-blue-800",
	CategoryPromising: "bg-purple-100 text-purple-800",
}

// CategoryInfo describes category for presentation
type CategoryInfo struct {
	Code  Category `json:"code"`
	Label string   `json:"label"`
	Color string   `json:"color"`
}

// Categories returns all categories in display order
func Categories() []Category {
	return []Category{CategoryPotential, CategoryClosed, CategoryRegular, CategoryPromising}
}

// Valid reports whether c is known category
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns human-readable category name
func (c Category) Label() string {
	return categoryLabels[c]
}

// Color returns css classes used to render category badge
func (c Category) Color() string {
	return categoryColors[c]
}

// Info returns presentation data of category
func (c Category) Info() CategoryInfo {
	return CategoryInfo{Code: c, Label: c.Label(), Color: c.Color()}
}
