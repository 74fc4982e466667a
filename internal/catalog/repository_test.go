// internal/catalog/repository_test.go
package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(id int, family, category string) CatalogRecord {
	return CatalogRecord{
		ID:            id,
		ItemCode:      fmt.Sprintf("IT-%03d", id),
		Name:          fmt.Sprintf("Item %d", id),
		Category:      Category{ID: id, Title: category},
		ProductFamily: ProductFamily{ID: 1, Name: family},
	}
}

func TestRepositoryDistinctFamilies(t *testing.T) {
	repo := NewRepository([]CatalogRecord{
		record(1, "Exo Range", "Wrist"),
		record(2, "Turtle Ortho", "Ankle"),
		record(3, "Exo Range", "Elbow"),
		record(4, "", "Knee"),
	})

	// First-seen order, duplicates and blanks removed.
	assert.Equal(t, []string{"Exo Range", "Turtle Ortho"}, repo.DistinctFamilies())
}

func TestRepositoryDistinctCategories(t *testing.T) {
	repo := NewRepository([]CatalogRecord{
		record(1, "Exo Range", "Wrist"),
		record(2, "Turtle Ortho", "Ankle"),
		record(3, "Exo Range", "Wrist"),
		record(4, "Turtle Ortho", ""),
	})

	assert.Equal(t, []string{"Wrist", "Ankle"}, repo.DistinctCategories())
}

func TestRepositoryRecordByID(t *testing.T) {
	repo := NewRepository([]CatalogRecord{
		record(1, "Exo Range", "Wrist"),
		record(2, "Turtle Ortho", "Ankle"),
	})

	rec, ok := repo.RecordByID(2)
	require.True(t, ok)
	assert.Equal(t, "Item 2", rec.Name)

	_, ok = repo.RecordByID(99)
	assert.False(t, ok)
}

func TestRepositoryIndicesAreCopies(t *testing.T) {
	repo := NewRepository([]CatalogRecord{record(1, "Exo Range", "Wrist")})

	families := repo.DistinctFamilies()
	families[0] = "mutated"
	assert.Equal(t, []string{"Exo Range"}, repo.DistinctFamilies())
}

func TestParseRepository(t *testing.T) {
	repo, err := ParseRepository([]byte(`{
		"catalogue": [
			{
				"id": 1,
				"itemCode": "EXO-WR-01",
				"name": "Exo Wrist Brace",
				"category": {"id": 1, "title": "Wrist"},
				"productFamily": {"id": 1, "name": "Exo Range"}
			}
		]
	}`))
	require.NoError(t, err)
	require.Len(t, repo.AllRecords(), 1)
	assert.Equal(t, "EXO-WR-01", repo.AllRecords()[0].ItemCode)
}

func TestParseRepositoryRejectsMalformedJSON(t *testing.T) {
	_, err := ParseRepository([]byte(`{"catalogue": [`))
	require.Error(t, err)
}

func TestLoadRepositoryShippedDataset(t *testing.T) {
	repo, err := LoadRepository("../../data/catalogue.json")
	require.NoError(t, err)

	assert.Equal(t, []string{"Exo Range", "Turtle Ortho"}, repo.DistinctFamilies())
	assert.NotEmpty(t, repo.AllRecords())

	for _, rec := range repo.AllRecords() {
		assert.NotZero(t, rec.ID)
		assert.NotEmpty(t, rec.ItemCode)
	}
}

func TestLoadRepositoryMissingFile(t *testing.T) {
	_, err := LoadRepository("testdata/does-not-exist.json")
	require.Error(t, err)
}
