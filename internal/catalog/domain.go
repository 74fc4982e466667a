// internal/catalog/domain.go
package catalog

// Family and category names that carry catalogue-specific correction rules.
const (
	CategoryAll = "All"

	FamilyExoRange    = "Exo Range"
	FamilyTurtleOrtho = "Turtle Ortho"

	categoryAnkle       = "Ankle"
	categoryForearm     = "Forearm"
	categoryWrist       = "Wrist"
	categoryMetacarpals = "Metacarpals"
)

// CatalogRecord is the raw description of one sellable device as loaded from
// the catalogue dataset. Records are immutable after load.
type CatalogRecord struct {
	ID                  int               `json:"id"`
	ItemCode            string            `json:"itemCode"`
	Name                string            `json:"name"`
	Tagline             string            `json:"tagline"`
	Description         string            `json:"description"`
	Category            Category          `json:"category"`
	ProductFamily       ProductFamily     `json:"productFamily"`
	Features            []Feature         `json:"features"`
	MedicalIndications  []string          `json:"medicalIndications"`
	SizingScheme        *SizingScheme     `json:"sizingScheme"`
	AnatomicalTags      []string          `json:"anatomicalTags"`
	Images              []ImageMeta       `json:"images"`
	TechnicalAttributes map[string]string `json:"technicalAttributes"`
	STLFile             string            `json:"stlFile"`
}

// Category is a sub-grouping within a product family.
type Category struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// ProductFamily is the top-level product grouping.
type ProductFamily struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Feature is one descriptor attached to a record.
type Feature struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Explanation string `json:"explanation,omitempty"`
}

// SizingScheme describes the ordered size options for a record.
type SizingScheme struct {
	ID         int         `json:"id"`
	Name       string      `json:"name"`
	SizeLabels []SizeLabel `json:"sizeLabels"`
	Notes      string      `json:"notes"`
}

// SizeLabel is one entry of a sizing scheme, in scheme order.
type SizeLabel struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ImageMeta attaches an uploaded image to a record.
type ImageMeta struct {
	ID    string      `json:"id"`
	Image ImageObject `json:"image"`
}

// ImageObject is the uploaded asset with its derived sizes.
type ImageObject struct {
	URL   string     `json:"url"`
	Sizes ImageSizes `json:"sizes"`
}

// ImageSizes holds the pre-rendered variants of an image.
type ImageSizes struct {
	Thumbnail ImageSize `json:"thumbnail"`
	Card      ImageSize `json:"card"`
	Tablet    ImageSize `json:"tablet"`
}

// ImageSize is one rendered variant; URL is empty when the variant was never
// generated.
type ImageSize struct {
	URL string `json:"url"`
}

// Product is the display-oriented projection of a CatalogRecord used by all
// user-facing flows.
type Product struct {
	ID                  string            `json:"id"`
	Name                string            `json:"name"`
	ItemCode            string            `json:"itemCode"`
	Description         string            `json:"description"`
	Tagline             string            `json:"tagline"`
	ImageURL            string            `json:"imageUrl"`
	Images              []string          `json:"images"`
	Features            []string          `json:"features"`
	Category            string            `json:"category"`
	ProductFamily       string            `json:"productFamily"`
	STLFile             string            `json:"stlFile,omitempty"`
	Customization       Customization     `json:"customization"`
	TechnicalAttributes map[string]string `json:"technicalAttributes"`
	MedicalIndications  []string          `json:"medicalIndications"`
	AnatomicalTags      []string          `json:"anatomicalTags"`
	Notes               string            `json:"notes,omitempty"`
}

// Customization lists the size and color options offered for a product.
type Customization struct {
	Sizes  []string `json:"sizes"`
	Colors []string `json:"colors"`
}

// PaginatedProducts is the page envelope the presentation layer renders.
type PaginatedProducts struct {
	Docs          []Product `json:"docs"`
	HasNextPage   bool      `json:"hasNextPage"`
	HasPrevPage   bool      `json:"hasPrevPage"`
	Limit         int       `json:"limit"`
	NextPage      *int      `json:"nextPage"`
	Page          int       `json:"page"`
	PagingCounter int       `json:"pagingCounter"`
	PrevPage      *int      `json:"prevPage"`
	TotalDocs     int       `json:"totalDocs"`
	TotalPages    int       `json:"totalPages"`
}
