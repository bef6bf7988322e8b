package response

// Outputs of the AI content-generation flows. Each is decoded from the
// model's JSON response and checked against the declared shape before being
// returned; a mismatch is a generation failure, not a partial result.

type ProductDetailsOutput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	SeoTags     []string `json:"seoTags"`
}

type ArtisanBioOutput struct {
	Bio string `json:"bio"`
}

type ProductNarrativeOutput struct {
	Narrative string `json:"narrative"`
}

type GrowthInsightsOutput struct {
	Insights  []string `json:"insights"`
	NextSteps []string `json:"nextSteps"`
}

type InstagramPostOutput struct {
	Post string `json:"post"`
}
