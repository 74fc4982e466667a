// internal/catalog/mapper.go
package catalog

import (
	"strconv"
	"strings"
)

// Customization colors are a fixed business rule, not derived from record data.
var customizationColors = []string{"White", "Black"}

// ToProduct projects a raw catalogue record into its display shape. The
// mapping is pure: the same record always yields a structurally equal
// Product, and nothing in the returned value aliases the record's slices or
// maps. Missing optional fields map to empty strings and empty collections.
func ToProduct(rec CatalogRecord) Product {
	images := imageURLs(rec.Images)

	primary := ""
	if len(images) > 0 {
		primary = images[0]
	}

	features := make([]string, 0, len(rec.Features))
	for _, f := range rec.Features {
		features = append(features, strings.TrimSpace(f.Name))
	}

	description := rec.Description
	if description == "" {
		description = rec.Tagline
	}

	sizes := []string{}
	notes := ""
	if rec.SizingScheme != nil {
		sizes = make([]string, 0, len(rec.SizingScheme.SizeLabels))
		for _, l := range rec.SizingScheme.SizeLabels {
			sizes = append(sizes, l.Label)
		}
		notes = rec.SizingScheme.Notes
	}

	attrs := make(map[string]string, len(rec.TechnicalAttributes))
	for k, v := range rec.TechnicalAttributes {
		attrs[k] = v
	}

	return Product{
		ID:            strconv.Itoa(rec.ID),
		Name:          rec.Name,
		ItemCode:      rec.ItemCode,
		Description:   description,
		Tagline:       rec.Tagline,
		ImageURL:      primary,
		Images:        images,
		Features:      features,
		Category:      rec.Category.Title,
		ProductFamily: rec.ProductFamily.Name,
		STLFile:       rec.STLFile,
		Customization: Customization{
			Sizes:  sizes,
			Colors: append([]string(nil), customizationColors...),
		},
		TechnicalAttributes: attrs,
		MedicalIndications:  copyStrings(rec.MedicalIndications),
		AnatomicalTags:      copyStrings(rec.AnatomicalTags),
		Notes:               notes,
	}
}

// imageURLs flattens image descriptors to their display URLs, preferring the
// thumbnail variant and falling back to the original upload. Descriptors
// with no URL at all are dropped.
func imageURLs(images []ImageMeta) []string {
	urls := make([]string, 0, len(images))
	for _, meta := range images {
		url := meta.Image.Sizes.Thumbnail.URL
		if url == "" {
			url = meta.Image.URL
		}
		if url == "" {
			continue
		}
		urls = append(urls, url)
	}
	return urls
}

func copyStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
