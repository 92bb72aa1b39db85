package cashbook

import "fmt"

// Category classifies entries. A category belongs to exactly one side of the
// ledger (income or expense). Categories may form a hierarchy through
// ParentID; the hierarchy is advisory and cycles are not detected.
type Category struct {
	ID       string    `json:"id" validate:"required"`
	Name     string    `json:"name" validate:"required"`
	Type     EntryType `json:"type" validate:"required,oneof=income expense"`
	Icon     string    `json:"icon,omitempty"`
	Color    string    `json:"color,omitempty" validate:"omitempty,hexcolor"`
	ParentID string    `json:"parentId,omitempty"`
	Sort     int       `json:"sort"`
}

// NewCategory creates a validated category with a fresh id.
func NewCategory(name string, typ EntryType, sort int) (Category, error) {
	c := Category{
		ID:   newID(),
		Name: name,
		Type: typ,
		Sort: sort,
	}
	if err := validateStruct(c); err != nil {
		return Category{}, fmt.Errorf("invalid category: %w", err)
	}
	return c, nil
}
