package request

// UpdateProfileRequest carries the editable profile fields. Name is always
// required; the optional fields fall back to the stored value when empty so a
// partial edit cannot blank a field.
type UpdateProfileRequest struct {
	Name   string `json:"name" validate:"required,min=2"`
	Craft  string `json:"craft,omitempty"`
	Region string `json:"region,omitempty"`
	Style  string `json:"style,omitempty"`
	Bio    string `json:"bio,omitempty"`
}
