// internal/catalog/repository.go
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Repository holds the loaded catalogue records and the indices derived from
// them. It is read-only after construction, so concurrent readers need no
// locking.
type Repository struct {
	records    []CatalogRecord
	byID       map[int]int
	families   []string
	categories []string
}

// catalogueFile is the on-disk envelope of the catalogue dataset.
type catalogueFile struct {
	Catalogue []CatalogRecord `json:"catalogue"`
}

// NewRepository builds a repository over the given records. Record order is
// preserved; family and category indices keep first-seen order with
// duplicates and blanks removed.
func NewRepository(records []CatalogRecord) *Repository {
	r := &Repository{
		records: records,
		byID:    make(map[int]int, len(records)),
	}

	seenFamily := make(map[string]bool)
	seenCategory := make(map[string]bool)
	for i, rec := range records {
		if _, ok := r.byID[rec.ID]; !ok {
			r.byID[rec.ID] = i
		}
		if name := rec.ProductFamily.Name; name != "" && !seenFamily[name] {
			seenFamily[name] = true
			r.families = append(r.families, name)
		}
		if title := rec.Category.Title; title != "" && !seenCategory[title] {
			seenCategory[title] = true
			r.categories = append(r.categories, title)
		}
	}

	return r
}

// LoadRepository reads the catalogue dataset from disk and builds a
// repository over it.
func LoadRepository(path string) (*Repository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalogue: %w", err)
	}
	return ParseRepository(data)
}

// ParseRepository decodes a catalogue JSON envelope ({"catalogue": [...]}).
func ParseRepository(data []byte) (*Repository, error) {
	var file catalogueFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode catalogue: %w", err)
	}
	return NewRepository(file.Catalogue), nil
}

// AllRecords returns every record in load order. Callers must treat the
// returned slice as read-only.
func (r *Repository) AllRecords() []CatalogRecord {
	return r.records
}

// RecordByID looks a record up by its numeric identifier. The second return
// value is false when no record carries the id.
func (r *Repository) RecordByID(id int) (CatalogRecord, bool) {
	i, ok := r.byID[id]
	if !ok {
		return CatalogRecord{}, false
	}
	return r.records[i], true
}

// DistinctFamilies returns the product family names present in the
// catalogue, in first-seen order.
func (r *Repository) DistinctFamilies() []string {
	return append([]string(nil), r.families...)
}

// DistinctCategories returns the category titles present anywhere in the
// catalogue, in first-seen order.
func (r *Repository) DistinctCategories() []string {
	return append([]string(nil), r.categories...)
}
