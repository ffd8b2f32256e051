package apiserver

import (
	"encoding/json"
	"net/http"

	"github.com/brewsmith/v1/internal/domain/brewing"
	"github.com/brewsmith/v1/internal/domain/optimization"
	"github.com/brewsmith/v1/internal/ports/inbound"
	"github.com/brewsmith/v1/internal/ports/outbound"
	"github.com/brewsmith/v1/pkg/errors"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handlers serves the optimizer API endpoints.
type Handlers struct {
	service  inbound.OptimizerService
	catalog  outbound.StyleCatalog
	validate *validator.Validate
	logger   *zap.Logger
}

// NewHandlers creates the optimizer API handlers.
func NewHandlers(service inbound.OptimizerService, catalog outbound.StyleCatalog, logger *zap.Logger) *Handlers {
	return &Handlers{
		service:  service,
		catalog:  catalog,
		validate: validator.New(),
		logger:   logger.Named("api-handlers"),
	}
}

// recipePayload carries recipe parameters over the wire.
type recipePayload struct {
	Name         string  `json:"name" validate:"required"`
	BatchSizeGal float64 `json:"batch_size_gal" validate:"gt=0"`
	BoilSizeGal  float64 `json:"boil_size_gal" validate:"gt=0"`
	Efficiency   float64 `json:"efficiency" validate:"gt=0,lte=1"`
}

func (p recipePayload) toDomain() (*brewing.Recipe, error) {
	return brewing.NewRecipe(p.Name, p.BatchSizeGal, p.BoilSizeGal, p.Efficiency)
}

// ingredientPayload carries one bill-of-materials line over the wire.
type ingredientPayload struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name" validate:"required"`
	Category    string  `json:"category" validate:"required,oneof=grain hop yeast other"`
	Amount      float64 `json:"amount" validate:"gte=0"`
	Unit        string  `json:"unit" validate:"required,oneof=lb oz g kg pkg"`
	Color       float64 `json:"color,omitempty"`
	PPG         float64 `json:"ppg,omitempty"`
	AlphaAcid   float64 `json:"alpha_acid,omitempty"`
	BoilTime    int     `json:"boil_time,omitempty"`
	Attenuation float64 `json:"attenuation,omitempty"`
}

func (p ingredientPayload) toDomain() (brewing.Ingredient, error) {
	id := uuid.Nil
	if p.ID != "" {
		parsed, err := uuid.Parse(p.ID)
		if err != nil {
			return brewing.Ingredient{}, errors.NewValidationError("ingredient id must be a UUID")
		}
		id = parsed
	}
	ing := brewing.Ingredient{
		ID:          id,
		Name:        p.Name,
		Category:    brewing.IngredientCategory(p.Category),
		Amount:      p.Amount,
		Unit:        brewing.MeasurementUnit(p.Unit),
		Color:       p.Color,
		PPG:         p.PPG,
		AlphaAcid:   p.AlphaAcid,
		BoilTime:    p.BoilTime,
		Attenuation: p.Attenuation,
	}
	if err := ing.Validate(); err != nil {
		return brewing.Ingredient{}, errors.NewValidationError(err.Error())
	}
	return ing, nil
}

func toDomainIngredients(payloads []ingredientPayload) ([]brewing.Ingredient, error) {
	ingredients := make([]brewing.Ingredient, 0, len(payloads))
	for _, p := range payloads {
		ing, err := p.toDomain()
		if err != nil {
			return nil, err
		}
		ingredients = append(ingredients, ing)
	}
	return ingredients, nil
}

type complianceRequest struct {
	Metrics brewing.RecipeMetrics `json:"metrics" validate:"required"`
	Style   string                `json:"style" validate:"required"`
}

// AnalyzeCompliance handles POST /compliance.
func (h *Handlers) AnalyzeCompliance(w http.ResponseWriter, r *http.Request) {
	var req complianceRequest
	if !h.decode(w, r, &req) {
		return
	}

	guide, err := h.service.ResolveStyle(r.Context(), req.Style)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	compliance, err := h.service.AnalyzeStyleCompliance(r.Context(), req.Metrics, *guide)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, compliance)
}

// GenerateTargets handles POST /targets.
func (h *Handlers) GenerateTargets(w http.ResponseWriter, r *http.Request) {
	var req complianceRequest
	if !h.decode(w, r, &req) {
		return
	}

	guide, err := h.service.ResolveStyle(r.Context(), req.Style)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	compliance, err := h.service.AnalyzeStyleCompliance(r.Context(), req.Metrics, *guide)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	targets, err := h.service.GenerateOptimizationTargets(r.Context(), *compliance, *guide)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"targets":    targets,
		"compliance": compliance,
	})
}

type planRequest struct {
	Recipe      recipePayload         `json:"recipe" validate:"required"`
	Ingredients []ingredientPayload   `json:"ingredients" validate:"required,dive"`
	Metrics     brewing.RecipeMetrics `json:"metrics" validate:"required"`
	Style       string                `json:"style" validate:"required"`
}

// GeneratePlan handles POST /plan.
func (h *Handlers) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if !h.decode(w, r, &req) {
		return
	}

	recipe, err := req.Recipe.toDomain()
	if err != nil {
		h.writeError(w, r, errors.NewValidationError(err.Error()))
		return
	}
	ingredients, err := toDomainIngredients(req.Ingredients)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	guide, err := h.service.ResolveStyle(r.Context(), req.Style)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	plan, err := h.service.GenerateAdjustmentPlan(r.Context(), inbound.GeneratePlanCommand{
		Recipe:      recipe,
		Ingredients: ingredients,
		Metrics:     req.Metrics,
		Style:       *guide,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, plan)
}

type effectsRequest struct {
	Recipe      recipePayload                   `json:"recipe" validate:"required"`
	Ingredients []ingredientPayload             `json:"ingredients" validate:"required,dive"`
	Metrics     brewing.RecipeMetrics           `json:"metrics" validate:"required"`
	Changes     []optimization.IngredientChange `json:"changes" validate:"required"`
}

// PreviewEffects handles POST /effects.
func (h *Handlers) PreviewEffects(w http.ResponseWriter, r *http.Request) {
	var req effectsRequest
	if !h.decode(w, r, &req) {
		return
	}

	recipe, err := req.Recipe.toDomain()
	if err != nil {
		h.writeError(w, r, errors.NewValidationError(err.Error()))
		return
	}
	ingredients, err := toDomainIngredients(req.Ingredients)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	effects, err := h.service.CalculateCascadingEffects(r.Context(), inbound.PreviewChangesCommand{
		Recipe:      recipe,
		Ingredients: ingredients,
		Changes:     req.Changes,
		Metrics:     req.Metrics,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, effects)
}

// ListStyles handles GET /styles.
func (h *Handlers) ListStyles(w http.ResponseWriter, r *http.Request) {
	guides, err := h.catalog.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"styles": guides})
}

// GetStyle handles GET /styles/{id}. The path segment may be an
// identifier or a style name.
func (h *Handlers) GetStyle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	guide, err := h.catalog.FindByID(r.Context(), id)
	if err != nil {
		guide, err = h.service.ResolveStyle(r.Context(), id)
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, guide)
}

func (h *Handlers) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeError(w, r, errors.NewBadRequestError("invalid JSON body"))
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		h.writeError(w, r, errors.NewValidationError(err.Error()))
		return false
	}
	return true
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *Handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := errors.Wrap(err, "request failed")
	requestID := chimiddleware.GetReqID(r.Context())

	if appErr.StatusCode() >= http.StatusInternalServerError {
		h.logger.Error("Request failed",
			zap.String("request_id", requestID),
			zap.String("path", r.URL.Path),
			zap.Error(appErr),
		)
	}
	h.writeJSON(w, appErr.StatusCode(), errors.ToErrorResponse(appErr, requestID))
}
