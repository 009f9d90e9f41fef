// models/filter.go
package models

// SubCategoryAll is the sentinel that disables subcategory filtering.
const SubCategoryAll = "all"

// VisibleProviders selects the public subset of a provider collection.
// A provider is included when all of the following hold, in order:
// the city matches exactly (case-sensitive), the category matches when
// one is selected, the subcategory matches when a category is selected
// and the subcategory is not "all", and the provider is approved.
// Input order is preserved.
func VisibleProviders(all []Provider, city, category, subCategory string) []Provider {
	result := make([]Provider, 0, len(all))
	for _, p := range all {
		if p.City != city {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		if category != "" && subCategory != SubCategoryAll && p.SubCategory != subCategory {
			continue
		}
		if !p.IsApproved {
			continue
		}
		result = append(result, p)
	}
	return result
}

// FavoriteProviders returns the providers whose id is in the favorite
// set, regardless of approval status. Ids that match nothing are
// silently skipped.
func FavoriteProviders(all []Provider, favoriteIDs []string) []Provider {
	ids := make(map[string]bool, len(favoriteIDs))
	for _, id := range favoriteIDs {
		ids[id] = true
	}
	result := make([]Provider, 0, len(favoriteIDs))
	for _, p := range all {
		if ids[p.ID] {
			result = append(result, p)
		}
	}
	return result
}
