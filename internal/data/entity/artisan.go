package entity

const (
	RoleArtisan  = "artisan"
	RoleCustomer = "customer"
)

// Artisan is the persisted credential record for a seller account. Profile
// fields (craft, region, style, bio) are empty until the artisan edits their
// profile; the public view falls back to the hand-authored seed profile for
// anything left empty here.
type Artisan struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password"`
	Role         string `json:"role"`

	Craft  string `json:"craft,omitempty"`
	Region string `json:"region,omitempty"`
	Style  string `json:"style,omitempty"`
	Bio    string `json:"bio,omitempty"`
}
