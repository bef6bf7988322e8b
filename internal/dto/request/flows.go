package request

// Inputs for the AI content-generation flows. Each flow validates its input
// before any external call is made; a validation failure carries one message
// per invalid field and never reaches the generation service.

type ProductDetailsInput struct {
	Keywords string         `json:"keywords" validate:"required,min=3"`
	Images   []ImagePayload `json:"images" validate:"required,min=1,max=3"`
}

type ArtisanBioInput struct {
	ArtisanName string `json:"artisanName" validate:"required,min=2"`
	CraftType   string `json:"craftType" validate:"required,min=2"`
	Region      string `json:"region" validate:"required,min=2"`
	Style       string `json:"style" validate:"required,min=2"`
	Background  string `json:"background" validate:"required,min=10"`
}

type ProductNarrativeInput struct {
	ProductName        string `json:"productName" validate:"required,min=2"`
	ProductDescription string `json:"productDescription" validate:"required,min=10"`
	ArtisanBackground  string `json:"artisanBackground" validate:"required,min=10"`
}

type SalesSample struct {
	Date    string  `json:"date" validate:"required"`
	Revenue float64 `json:"revenue"`
}

type TrafficSample struct {
	Date  string `json:"date" validate:"required"`
	Views int    `json:"views"`
}

type GrowthInsightsInput struct {
	SalesData   []SalesSample   `json:"salesData" validate:"required,min=1,dive"`
	TrafficData []TrafficSample `json:"trafficData" validate:"required,min=1,dive"`
}

type InstagramPostInput struct {
	ProductName        string   `json:"productName" validate:"required,min=2"`
	ProductDescription string   `json:"productDescription" validate:"required,min=10"`
	Tags               []string `json:"tags,omitempty"`
}
