// internal/catalog/implementation.go
package catalog

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrInvalidPage  = errors.New("page must be a positive integer")
	ErrInvalidLimit = errors.New("limit must be a positive integer")
)

// service implements the Service interface over an immutable Repository.
type service struct {
	repo   *Repository
	tracer trace.Tracer
}

// NewService creates a new catalogue query service.
func NewService(repo *Repository) Service {
	return &service{
		repo:   repo,
		tracer: otel.Tracer("livprint/catalog"),
	}
}

// Families lists the product family names in catalogue order.
func (s *service) Families(ctx context.Context) []string {
	_, span := s.tracer.Start(ctx, "catalog.families")
	defer span.End()

	families := s.repo.DistinctFamilies()
	span.SetAttributes(attribute.Int("catalog.families", len(families)))
	return families
}

// AllCategories lists every category title in the catalogue, prefixed with
// "All".
func (s *service) AllCategories(ctx context.Context) []string {
	_, span := s.tracer.Start(ctx, "catalog.all_categories")
	defer span.End()

	return append([]string{CategoryAll}, s.repo.DistinctCategories()...)
}

// CategoriesForFamily collects the distinct category titles of one family
// and applies the catalogue correction rules. The rules are unconditional
// domain data fixes and must run in this order: the Turtle Ortho ankle
// removal first, then the Exo Range forearm insertion (which shifts the
// indices the final metacarpals removal consults).
func (s *service) CategoriesForFamily(ctx context.Context, family string) []string {
	_, span := s.tracer.Start(ctx, "catalog.categories_for_family",
		trace.WithAttributes(attribute.String("catalog.family", family)),
	)
	defer span.End()

	var titles []string
	seen := make(map[string]bool)
	for _, rec := range s.repo.AllRecords() {
		if rec.ProductFamily.Name != family {
			continue
		}
		title := rec.Category.Title
		if title == "" || seen[title] {
			continue
		}
		seen[title] = true
		titles = append(titles, title)
	}

	if family == FamilyTurtleOrtho {
		titles = slices.DeleteFunc(titles, func(t string) bool { return t == categoryAnkle })
	}

	result := append([]string{CategoryAll}, titles...)

	if family == FamilyExoRange {
		if !slices.Contains(result, categoryForearm) {
			if i := slices.Index(result, categoryWrist); i >= 0 {
				result = slices.Insert(result, i+1, categoryForearm)
			} else {
				result = slices.Insert(result, 1, categoryForearm)
			}
		}
		result = slices.DeleteFunc(result, func(t string) bool { return t == categoryMetacarpals })
	}

	span.SetAttributes(attribute.Int("catalog.categories", len(result)))
	return result
}

// Products filters the catalogue and returns one display page.
//
// A category of "All" bypasses the family filter entirely and pages over the
// whole catalogue; this mirrors the storefront's observed behavior and is
// deliberate. Any other category first narrows to the family, drops Ankle
// records for Turtle Ortho, then narrows to the category.
func (s *service) Products(ctx context.Context, page, limit int, category, family string) (PaginatedProducts, error) {
	_, span := s.tracer.Start(ctx, "catalog.products",
		trace.WithAttributes(
			attribute.Int("catalog.page", page),
			attribute.Int("catalog.limit", limit),
			attribute.String("catalog.category", category),
			attribute.String("catalog.family", family),
		),
	)
	defer span.End()

	if page < 1 {
		return PaginatedProducts{}, ErrInvalidPage
	}
	if limit < 1 {
		return PaginatedProducts{}, ErrInvalidLimit
	}

	var filtered []CatalogRecord
	if category == CategoryAll {
		filtered = s.repo.AllRecords()
	} else {
		for _, rec := range s.repo.AllRecords() {
			if rec.ProductFamily.Name != family {
				continue
			}
			if family == FamilyTurtleOrtho && rec.Category.Title == categoryAnkle {
				continue
			}
			if rec.Category.Title != category {
				continue
			}
			filtered = append(filtered, rec)
		}
	}

	totalDocs := len(filtered)
	totalPages := (totalDocs + limit - 1) / limit
	offset := (page - 1) * limit

	docs := make([]Product, 0, limit)
	if offset < totalDocs {
		end := offset + limit
		if end > totalDocs {
			end = totalDocs
		}
		for _, rec := range filtered[offset:end] {
			docs = append(docs, ToProduct(rec))
		}
	}

	result := PaginatedProducts{
		Docs:          docs,
		HasNextPage:   page < totalPages,
		HasPrevPage:   page > 1,
		Limit:         limit,
		Page:          page,
		PagingCounter: offset + 1,
		TotalDocs:     totalDocs,
		TotalPages:    totalPages,
	}
	if result.HasNextPage {
		next := page + 1
		result.NextPage = &next
	}
	if result.HasPrevPage {
		prev := page - 1
		result.PrevPage = &prev
	}

	span.SetAttributes(
		attribute.Int("catalog.total_docs", totalDocs),
		attribute.Int("catalog.page_docs", len(docs)),
	)
	return result, nil
}

// ProductByID looks up a single product by its string identifier.
func (s *service) ProductByID(ctx context.Context, id string) (Product, bool) {
	_, span := s.tracer.Start(ctx, "catalog.product_by_id",
		trace.WithAttributes(attribute.String("catalog.product_id", id)),
	)
	defer span.End()

	numeric, err := strconv.Atoi(id)
	if err != nil {
		return Product{}, false
	}

	rec, ok := s.repo.RecordByID(numeric)
	if !ok {
		span.SetAttributes(attribute.Bool("catalog.found", false))
		return Product{}, false
	}
	return ToProduct(rec), true
}

// Search matches the query case-insensitively against name, item code, and
// category title. A record matches when any of the three contains the query
// as a substring, so the empty query matches every record; gating on a
// minimum query length is a presentation concern.
func (s *service) Search(ctx context.Context, query string) []Product {
	_, span := s.tracer.Start(ctx, "catalog.search",
		trace.WithAttributes(attribute.Int("catalog.query_len", len(query))),
	)
	defer span.End()

	q := strings.ToLower(query)
	var matches []Product
	for _, rec := range s.repo.AllRecords() {
		if strings.Contains(strings.ToLower(rec.Name), q) ||
			strings.Contains(strings.ToLower(rec.ItemCode), q) ||
			strings.Contains(strings.ToLower(rec.Category.Title), q) {
			matches = append(matches, ToProduct(rec))
		}
	}

	span.SetAttributes(attribute.Int("catalog.matches", len(matches)))
	return matches
}
