package pipeline

// Status is the categorical outcome of processing one image.
type Status string

const (
	// StatusSuccess means a region was found and measured.
	StatusSuccess Status = "success"

	// StatusNoRegion means binarization left an all-background image.
	// This is recorded, not raised; the record carries zero descriptors
	// and is excluded from aggregation.
	StatusNoRegion Status = "no_region"

	// StatusInvalid means the image was malformed or unreadable. Fatal to
	// that image only, never to the batch.
	StatusInvalid Status = "invalid_input"
)

// DescriptorRecord is one row of the run's result table: the shape
// descriptors of the largest foreground region of one labeled image.
type DescriptorRecord struct {
	// Label is the class label the sample arrived with.
	Label string `json:"label"`

	// Path is the source image file.
	Path string `json:"path"`

	// Area is the pixel count of the selected region.
	Area int `json:"area"`

	// Eccentricity is the selected region's elongation measure in [0,1).
	Eccentricity float64 `json:"eccentricity"`

	// EulerNumber is the selected region's components-minus-holes count,
	// typically in {-1, 0, 1} for single digits.
	EulerNumber int `json:"euler_number"`

	// Regions is the total number of foreground components the image had
	// before the largest-area selection.
	Regions int `json:"regions"`

	// Status documents whether extraction succeeded. Descriptor fields are
	// zero-valued unless Status is StatusSuccess.
	Status Status `json:"status"`

	// Err carries the failure detail for StatusInvalid records.
	Err string `json:"error,omitempty"`
}

// OK reports whether the record contributes to downstream aggregation.
func (r DescriptorRecord) OK() bool {
	return r.Status == StatusSuccess
}
