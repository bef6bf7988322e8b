package response

import "artisanverse/internal/data/entity"

// ArtisanView is the merged public artisan record: the hand-authored seed
// profile overlaid field by field with the credential record, credential
// values winning only when non-empty.
type ArtisanView struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Email           string            `json:"email"`
	Craft           string            `json:"craft"`
	Region          string            `json:"region"`
	Style           string            `json:"style"`
	Bio             string            `json:"bio"`
	AvatarImageID   string            `json:"avatarImageId"`
	CoverImageID    string            `json:"coverImageId"`
	GalleryImageIDs []string          `json:"galleryImageIds"`
	Products        []*entity.Product `json:"products"`
}
