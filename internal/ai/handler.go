package ai

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fbai-pro/backend/internal/httpx"
	"github.com/fbai-pro/backend/internal/validate"
)

// Handler exposes the heuristic endpoints. All of them are stateless
// request/response transforms: validate, compute, serialize.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Routes mounts the heuristic endpoints on a chi router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/keyword-research", h.KeywordResearch)
	r.Post("/competitor-analysis", h.CompetitorAnalysis)
	r.Post("/listing-optimize", h.ListingOptimize)
	r.Post("/product-research", h.ProductResearch)
	return r
}

// KeywordRequest is the JSON body for POST /api/ai/keyword-research.
type KeywordRequest struct {
	Title       string `json:"title" validate:"required,min=1"`
	Description string `json:"description"`
}

// KeywordResearch extracts ranked keywords from free product text.
func (h *Handler) KeywordResearch(w http.ResponseWriter, r *http.Request) {
	var req KeywordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		httpx.ErrorFrom(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, map[string][]string{
		"keywords": ExtractKeywords(req.Title, req.Description),
	})
}

// CompetitionRequest is the JSON body for POST /api/ai/competitor-analysis.
type CompetitionRequest struct {
	Keywords []string `json:"keywords" validate:"required,min=1"`
}

// CompetitorAnalysis classifies each keyword phrase into a competition level.
func (h *Handler) CompetitorAnalysis(w http.ResponseWriter, r *http.Request) {
	var req CompetitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		httpx.ErrorFrom(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, map[string][]KeywordCompetition{
		"analysis": ClassifyCompetition(req.Keywords),
	})
}

// ListingOptimize composes listing copy from structured product inputs.
func (h *Handler) ListingOptimize(w http.ResponseWriter, r *http.Request) {
	var req ListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		httpx.ErrorFrom(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, ComposeListing(req))
}

// ProductResearch computes the weighted opportunity score.
func (h *Handler) ProductResearch(w http.ResponseWriter, r *http.Request) {
	var req OpportunityInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		httpx.ErrorFrom(w, err)
		return
	}

	breakdown := OpportunityBreakdown{
		DemandScore:      *req.DemandScore,
		CompetitionScore: *req.CompetitionScore,
		ProfitMargin:     *req.ProfitMargin,
		MarketSaturation: *req.MarketSaturation,
	}
	httpx.JSON(w, http.StatusOK, map[string]interface{}{
		"opportunityScore": ScoreOpportunity(breakdown),
		"breakdown":        breakdown,
	})
}
