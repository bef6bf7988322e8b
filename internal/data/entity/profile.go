package entity

// ArtisanProfile is a hand-authored seed profile keyed by artisan id. It
// carries the editorial content (bio, style, gallery) that predates the
// credential record; the public artisan view merges it with the credential
// record field by field, credential values winning only when non-empty.
type ArtisanProfile struct {
	ID              string   `json:"id"`
	Craft           string   `json:"craft"`
	Region          string   `json:"region"`
	Style           string   `json:"style"`
	Bio             string   `json:"bio"`
	AvatarImageID   string   `json:"avatarImageId"`
	CoverImageID    string   `json:"coverImageId"`
	GalleryImageIDs []string `json:"galleryImageIds"`
}
