package request

// ImagePayload is one uploaded product photo, base64-encoded by the client.
type ImagePayload struct {
	MIMEType string `json:"mimeType" validate:"required"`
	Data     string `json:"data" validate:"required"`
}

type SaveProductRequest struct {
	Title       string         `json:"title" validate:"required,min=1"`
	Description string         `json:"description" validate:"required,min=1"`
	SeoTags     []string       `json:"seoTags,omitempty"`
	Keywords    string         `json:"keywords,omitempty"`
	Images      []ImagePayload `json:"images" validate:"required,min=1,max=3"`
}
