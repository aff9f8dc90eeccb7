package domain

// Product category constants.
const (
	CategoryNecklaces = "necklaces"
	CategoryEarrings  = "earrings"
	CategoryRings     = "rings"
	CategoryBracelets = "bracelets"
)

// Product represents a jewelry piece in the catalog. Prices are in cents.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Price       int64  `json:"price"`
	Currency    string `json:"currency"`
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`
}

// ValidCategories returns the set of valid product categories.
func ValidCategories() []string {
	return []string{CategoryNecklaces, CategoryEarrings, CategoryRings, CategoryBracelets}
}

// IsValidCategory checks whether the given string is a valid product category.
func IsValidCategory(category string) bool {
	for _, c := range ValidCategories() {
		if c == category {
			return true
		}
	}
	return false
}
