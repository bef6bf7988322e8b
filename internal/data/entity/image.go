package entity

// ImageAsset is an entry in the image registry. Uploaded product photos are
// stored inline as data URIs rather than on a blob store.
type ImageAsset struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	ImageHint   string `json:"imageHint"`
}
