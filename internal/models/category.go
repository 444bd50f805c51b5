package models

import "github.com/google/uuid"

// Category is the shared tag vocabulary used to match influencers to campaigns.
type Category struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// CategoryCarrier is implemented by everything that holds a category set
// (company profiles, influencer profiles, campaigns).
type CategoryCarrier interface {
	CategorySet() []Category
}

func categoryIDs(cats []Category) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(cats))
	for _, c := range cats {
		ids = append(ids, c.ID)
	}
	return ids
}

// CategoriesIntersect reports whether the two carriers share at least one category.
func CategoriesIntersect(a, b CategoryCarrier) bool {
	seen := make(map[uuid.UUID]struct{})
	for _, id := range categoryIDs(a.CategorySet()) {
		seen[id] = struct{}{}
	}
	for _, id := range categoryIDs(b.CategorySet()) {
		if _, ok := seen[id]; ok {
			return true
		}
	}
	return false
}
