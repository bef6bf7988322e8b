package adaptor

import (
	"encoding/json"
	"net/http"

	"artisanverse/internal/dto/request"
	"artisanverse/internal/usecase"
	"artisanverse/pkg/utils"

	"go.uber.org/zap"
)

type FlowHandler struct {
	service usecase.FlowService
	log     *zap.Logger
}

func NewFlowHandler(service usecase.FlowService, log *zap.Logger) *FlowHandler {
	return &FlowHandler{
		service: service,
		log:     log,
	}
}

// ProductDetails handles POST /api/ai/product-details
func (h *FlowHandler) ProductDetails(w http.ResponseWriter, r *http.Request) {
	var in request.ProductDetailsInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	out, err := h.service.ProductDetails(r.Context(), &in)
	if err != nil {
		handleServiceError(w, h.log, err, "generate product details")
		return
	}

	utils.ResponseSuccess(w, "Product details generated successfully.", out)
}

// ArtisanBio handles POST /api/ai/artisan-bio
func (h *FlowHandler) ArtisanBio(w http.ResponseWriter, r *http.Request) {
	var in request.ArtisanBioInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	out, err := h.service.ArtisanBio(r.Context(), &in)
	if err != nil {
		handleServiceError(w, h.log, err, "generate bio")
		return
	}

	utils.ResponseSuccess(w, "Bio generated successfully.", out)
}

// ProductNarrative handles POST /api/ai/product-narrative
func (h *FlowHandler) ProductNarrative(w http.ResponseWriter, r *http.Request) {
	var in request.ProductNarrativeInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	out, err := h.service.ProductNarrative(r.Context(), &in)
	if err != nil {
		handleServiceError(w, h.log, err, "generate narrative")
		return
	}

	utils.ResponseSuccess(w, "Narrative generated successfully.", out)
}

// GrowthInsights handles POST /api/ai/growth-insights
func (h *FlowHandler) GrowthInsights(w http.ResponseWriter, r *http.Request) {
	var in request.GrowthInsightsInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	out, err := h.service.GrowthInsights(r.Context(), &in)
	if err != nil {
		handleServiceError(w, h.log, err, "generate growth insights")
		return
	}

	utils.ResponseSuccess(w, "Insights generated successfully.", out)
}

// InstagramPost handles POST /api/ai/instagram-post
func (h *FlowHandler) InstagramPost(w http.ResponseWriter, r *http.Request) {
	var in request.InstagramPostInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	out, err := h.service.InstagramPost(r.Context(), &in)
	if err != nil {
		handleServiceError(w, h.log, err, "generate post")
		return
	}

	utils.ResponseSuccess(w, "Post generated successfully.", out)
}
