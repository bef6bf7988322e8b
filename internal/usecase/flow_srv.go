package usecase

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"artisanverse/internal/ai"
	"artisanverse/internal/dto/request"
	"artisanverse/internal/dto/response"
	"artisanverse/pkg/utils"

	"go.uber.org/zap"
)

// FlowService exposes the AI content-generation flows. Every flow follows the
// same contract: validate the input (no external call on failure), render the
// prompt, invoke the generator once, and decode the output against the
// declared shape. External failures and malformed outputs surface as a
// generation error with no retry and no partial result.
type FlowService interface {
	ProductDetails(ctx context.Context, in *request.ProductDetailsInput) (*response.ProductDetailsOutput, error)
	ArtisanBio(ctx context.Context, in *request.ArtisanBioInput) (*response.ArtisanBioOutput, error)
	ProductNarrative(ctx context.Context, in *request.ProductNarrativeInput) (*response.ProductNarrativeOutput, error)
	GrowthInsights(ctx context.Context, in *request.GrowthInsightsInput) (*response.GrowthInsightsOutput, error)
	InstagramPost(ctx context.Context, in *request.InstagramPostInput) (*response.InstagramPostOutput, error)
}

type flowService struct {
	gen ai.Generator
	log *zap.Logger
}

func NewFlowService(gen ai.Generator, log *zap.Logger) FlowService {
	return &flowService{
		gen: gen,
		log: log,
	}
}

func (s *flowService) ProductDetails(ctx context.Context, in *request.ProductDetailsInput) (*response.ProductDetailsOutput, error) {
	if errs := utils.ValidateStruct(in); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	images := make([]ai.ImageInput, 0, len(in.Images))
	for i, payload := range in.Images {
		data, err := base64.StdEncoding.DecodeString(payload.Data)
		if err != nil || len(data) == 0 {
			return nil, &ValidationError{Fields: map[string]string{
				fmt.Sprintf("images[%d]", i): "image data is not valid base64",
			}}
		}
		images = append(images, ai.ImageInput{MIMEType: payload.MIMEType, Data: data})
	}

	out := &response.ProductDetailsOutput{}
	err := s.invoke(ctx, "product-details", ai.Request{
		Prompt: fmt.Sprintf(productDetailsPrompt, in.Keywords),
		Images: images,
	}, out)
	if err != nil {
		return nil, err
	}

	if out.Title == "" || out.Description == "" || len(out.SeoTags) == 0 {
		return nil, &ai.GenerationError{Flow: "product-details", Err: errors.New("response missing required fields")}
	}
	return out, nil
}

func (s *flowService) ArtisanBio(ctx context.Context, in *request.ArtisanBioInput) (*response.ArtisanBioOutput, error) {
	if errs := utils.ValidateStruct(in); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	out := &response.ArtisanBioOutput{}
	err := s.invoke(ctx, "artisan-bio", ai.Request{
		Prompt: fmt.Sprintf(artisanBioPrompt, in.ArtisanName, in.CraftType, in.Region, in.Style, in.Background),
	}, out)
	if err != nil {
		return nil, err
	}

	if out.Bio == "" {
		return nil, &ai.GenerationError{Flow: "artisan-bio", Err: errors.New("response missing bio")}
	}
	return out, nil
}

func (s *flowService) ProductNarrative(ctx context.Context, in *request.ProductNarrativeInput) (*response.ProductNarrativeOutput, error) {
	if errs := utils.ValidateStruct(in); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	out := &response.ProductNarrativeOutput{}
	err := s.invoke(ctx, "product-narrative", ai.Request{
		Prompt: fmt.Sprintf(productNarrativePrompt, in.ProductName, in.ProductDescription, in.ArtisanBackground),
	}, out)
	if err != nil {
		return nil, err
	}

	if out.Narrative == "" {
		return nil, &ai.GenerationError{Flow: "product-narrative", Err: errors.New("response missing narrative")}
	}
	return out, nil
}

func (s *flowService) GrowthInsights(ctx context.Context, in *request.GrowthInsightsInput) (*response.GrowthInsightsOutput, error) {
	if errs := utils.ValidateStruct(in); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	// The samples go into the prompt as JSON, matching the declared shape
	sales, err := json.Marshal(in.SalesData)
	if err != nil {
		return nil, fmt.Errorf("marshal sales data: %w", err)
	}
	traffic, err := json.Marshal(in.TrafficData)
	if err != nil {
		return nil, fmt.Errorf("marshal traffic data: %w", err)
	}

	out := &response.GrowthInsightsOutput{}
	err = s.invoke(ctx, "growth-insights", ai.Request{
		Prompt: fmt.Sprintf(growthInsightsPrompt, sales, traffic),
	}, out)
	if err != nil {
		return nil, err
	}

	if len(out.Insights) == 0 || len(out.NextSteps) == 0 {
		return nil, &ai.GenerationError{Flow: "growth-insights", Err: errors.New("response missing insights or next steps")}
	}
	return out, nil
}

func (s *flowService) InstagramPost(ctx context.Context, in *request.InstagramPostInput) (*response.InstagramPostOutput, error) {
	if errs := utils.ValidateStruct(in); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	out := &response.InstagramPostOutput{}
	err := s.invoke(ctx, "instagram-post", ai.Request{
		Prompt: fmt.Sprintf(instagramPostPrompt, in.ProductName, in.ProductDescription, strings.Join(in.Tags, ", ")),
	}, out)
	if err != nil {
		return nil, err
	}

	if out.Post == "" {
		return nil, &ai.GenerationError{Flow: "instagram-post", Err: errors.New("response missing post")}
	}
	return out, nil
}

// invoke runs one generation call and decodes the JSON output into out.
func (s *flowService) invoke(ctx context.Context, flow string, req ai.Request, out any) error {
	raw, err := s.gen.Generate(ctx, req)
	if err != nil {
		s.log.Error("Generation call failed", zap.Error(err), zap.String("flow", flow))
		return &ai.GenerationError{Flow: flow, Err: err}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		s.log.Error("Generation output did not match declared shape",
			zap.Error(err), zap.String("flow", flow))
		return &ai.GenerationError{Flow: flow, Err: fmt.Errorf("decode response: %w", err)}
	}

	return nil
}
