package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"artisanverse/internal/ai"
	"artisanverse/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeGenerator counts calls and replays a canned response, so tests can
// assert that invalid input never reaches the external service.
type fakeGenerator struct {
	calls    int
	response []byte
	err      error
	lastReq  ai.Request
}

func (f *fakeGenerator) Generate(ctx context.Context, req ai.Request) ([]byte, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func validProductDetailsInput() *request.ProductDetailsInput {
	return &request.ProductDetailsInput{
		Keywords: "handmade ceramic vase",
		Images: []request.ImagePayload{
			{MIMEType: "image/png", Data: base64.StdEncoding.EncodeToString([]byte("png-bytes"))},
		},
	}
}

func TestFlowService_ProductDetails(t *testing.T) {
	gen := &fakeGenerator{response: []byte(`{"title":"Tuscan Vase","description":"Two paragraphs.","seoTags":["vase","ceramic"]}`)}
	s := NewFlowService(gen, zap.NewNop())

	out, err := s.ProductDetails(context.Background(), validProductDetailsInput())
	require.NoError(t, err)
	assert.Equal(t, "Tuscan Vase", out.Title)
	assert.Len(t, out.SeoTags, 2)
	assert.Equal(t, 1, gen.calls)
	assert.Len(t, gen.lastReq.Images, 1)
	assert.Contains(t, gen.lastReq.Prompt, "handmade ceramic vase")
}

func TestFlowService_InvalidInputMakesNoExternalCall(t *testing.T) {
	gen := &fakeGenerator{response: []byte(`{}`)}
	s := NewFlowService(gen, zap.NewNop())

	_, err := s.ProductDetails(context.Background(), &request.ProductDetailsInput{
		Keywords: "",
		Images:   []request.ImagePayload{{MIMEType: "image/png", Data: "aGk="}},
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "Keywords")
	assert.Zero(t, gen.calls)
}

func TestFlowService_GeneratorFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("upstream timeout")}
	s := NewFlowService(gen, zap.NewNop())

	_, err := s.ProductDetails(context.Background(), validProductDetailsInput())

	var generationErr *ai.GenerationError
	require.ErrorAs(t, err, &generationErr)
	assert.Equal(t, "product-details", generationErr.Flow)
	assert.Equal(t, 1, gen.calls)
}

func TestFlowService_MalformedOutputShape(t *testing.T) {
	// Valid JSON but missing the required fields
	gen := &fakeGenerator{response: []byte(`{"unexpected":"shape"}`)}
	s := NewFlowService(gen, zap.NewNop())

	_, err := s.ProductDetails(context.Background(), validProductDetailsInput())

	var generationErr *ai.GenerationError
	require.ErrorAs(t, err, &generationErr)
}

func TestFlowService_NoCachingBetweenCalls(t *testing.T) {
	gen := &fakeGenerator{response: []byte(`{"bio":"A warm bio."}`)}
	s := NewFlowService(gen, zap.NewNop())

	in := &request.ArtisanBioInput{
		ArtisanName: "Ana",
		CraftType:   "Pottery",
		Region:      "Tuscany",
		Style:       "Organic",
		Background:  "Twenty years at the wheel.",
	}

	for i := 0; i < 3; i++ {
		out, err := s.ArtisanBio(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, "A warm bio.", out.Bio)
	}

	// Identical inputs always re-invoke the service
	assert.Equal(t, 3, gen.calls)
}

func TestFlowService_GrowthInsights(t *testing.T) {
	gen := &fakeGenerator{response: []byte(`{"insights":["a","b","c"],"nextSteps":["x","y"]}`)}
	s := NewFlowService(gen, zap.NewNop())

	out, err := s.GrowthInsights(context.Background(), &request.GrowthInsightsInput{
		SalesData:   []request.SalesSample{{Date: "2026-08-01", Revenue: 120}},
		TrafficData: []request.TrafficSample{{Date: "2026-08-01", Views: 540}},
	})
	require.NoError(t, err)
	assert.Len(t, out.Insights, 3)
	assert.Len(t, out.NextSteps, 2)

	// The samples are embedded into the prompt as JSON
	assert.Contains(t, gen.lastReq.Prompt, `"2026-08-01"`)
}

func TestFlowService_GrowthInsightsRequiresData(t *testing.T) {
	gen := &fakeGenerator{}
	s := NewFlowService(gen, zap.NewNop())

	_, err := s.GrowthInsights(context.Background(), &request.GrowthInsightsInput{})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Zero(t, gen.calls)
}

func TestFlowService_InstagramPost(t *testing.T) {
	gen := &fakeGenerator{response: []byte(`{"post":"New vase in the shop! #handmade"}`)}
	s := NewFlowService(gen, zap.NewNop())

	out, err := s.InstagramPost(context.Background(), &request.InstagramPostInput{
		ProductName:        "Tuscan Vase",
		ProductDescription: "A hand-thrown ceramic vase.",
		Tags:               []string{"pottery", "handmade"},
	})
	require.NoError(t, err)
	assert.Contains(t, out.Post, "#handmade")
	assert.Contains(t, gen.lastReq.Prompt, "pottery, handmade")
}
