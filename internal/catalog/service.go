// internal/catalog/service.go
package catalog

import "context"

// Service defines the catalogue query surface consumed by the presentation
// layer.
type Service interface {
	// Families lists the product family names, in catalogue order.
	Families(ctx context.Context) []string

	// AllCategories lists every category title in the catalogue, prefixed
	// with "All".
	AllCategories(ctx context.Context) []string

	// CategoriesForFamily lists the category titles for one family,
	// prefixed with "All" and with the catalogue correction rules applied.
	CategoriesForFamily(ctx context.Context, family string) []string

	// Products returns one page of products for a category within a
	// family. Page and limit must be positive integers.
	Products(ctx context.Context, page, limit int, category, family string) (PaginatedProducts, error)

	// ProductByID looks up a single product by its string identifier.
	ProductByID(ctx context.Context, id string) (Product, bool)

	// Search matches the query case-insensitively against product name,
	// item code, and category title.
	Search(ctx context.Context, query string) []Product
}
