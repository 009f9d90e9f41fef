// models/category.go
package models

// LocalizedLabel carries the two required locales for taxonomy labels.
type LocalizedLabel struct {
	De string `json:"de" bson:"de"`
	En string `json:"en" bson:"en"`
}

type SubCategory struct {
	ID    string         `json:"id" bson:"id"`
	Label LocalizedLabel `json:"label" bson:"label"`
}

// CategoryInfo is a top-level classification. Category ids are unique
// within the collection; subcategory ids are unique within their parent.
type CategoryInfo struct {
	ID            string         `json:"id" bson:"id"`
	Label         LocalizedLabel `json:"label" bson:"label"`
	IconName      string         `json:"iconName" bson:"iconName"`
	SubCategories []SubCategory  `json:"subCategories" bson:"subCategories"`
}

// FindCategory returns the category with the given id, or nil.
func FindCategory(categories []CategoryInfo, id string) *CategoryInfo {
	for i := range categories {
		if categories[i].ID == id {
			return &categories[i]
		}
	}
	return nil
}

// HasSubCategory reports whether the category contains the subcategory id.
func (c CategoryInfo) HasSubCategory(id string) bool {
	for _, sub := range c.SubCategories {
		if sub.ID == id {
			return true
		}
	}
	return false
}
