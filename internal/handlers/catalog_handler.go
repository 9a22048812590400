package handlers

import (
	"errors"
	"net/http"

	"github.com/dtal-platform/api/internal/catalog"
	apierrors "github.com/dtal-platform/api/internal/errors"
	"github.com/dtal-platform/api/internal/i18n"
	"github.com/dtal-platform/api/internal/mcp"
	"github.com/dtal-platform/api/internal/middleware"
	"github.com/dtal-platform/api/internal/models"
	"github.com/dtal-platform/api/internal/services"
	"github.com/dtal-platform/api/internal/source"
	"github.com/gin-gonic/gin"
)

// CatalogHandler handles catalog-related HTTP requests.
type CatalogHandler struct {
	service services.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler instance.
func NewCatalogHandler(service services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		service: service,
	}
}

// ListRequest represents the query parameters for the catalog list endpoint.
type ListRequest struct {
	Query    string `form:"q"`
	Category string `form:"category"`
}

// ListResponse represents the response for the catalog list endpoint.
type ListResponse struct {
	DTALs      []CardData `json:"dtals"`
	Categories []string   `json:"categories"`
	Count      int        `json:"count"`
}

// CardData is the localized overview card for one catalog entry.
type CardData struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Description         string `json:"description"`
	Category            string `json:"category"`
	Jurisdiction        string `json:"jurisdiction"`
	Version             string `json:"version"`
	LastUpdated         string `json:"last_updated"`
	CalculatorAvailable bool   `json:"calculator_available"`
}

// DetailResponse is the localized detail view of one catalog entry.
type DetailResponse struct {
	CardData
	MCPURL        string          `json:"mcp_url"`
	Parameters    []ParameterData `json:"parameters"`
	LawReferences []string        `json:"law_references"`
}

// ParameterData is the localized declaration of one calculator input field.
type ParameterData struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Required    bool     `json:"required"`
	Options     []string `json:"options,omitempty"`
	Unit        string   `json:"unit,omitempty"`
}

// OptionsResponse carries the flat selection lists for the calculator form.
type OptionsResponse struct {
	Municipalities     []string `json:"municipalities"`
	BusinessActivities []string `json:"business_activities"`
}

// IntegrationResponse carries the MCP integration guide for one entry.
type IntegrationResponse struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Guide       mcp.Guide `json:"guide"`
}

// SourceResponse carries the published source artifacts for one entry.
type SourceResponse struct {
	Label       string               `json:"label"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	License     string               `json:"license"`
	Files       []SourceFileData     `json:"files"`
	Deployment  []DeploymentStepData `json:"deployment"`
}

// SourceFileData is one localized source artifact.
type SourceFileData struct {
	Name        string `json:"name"`
	Language    string `json:"language"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

// DeploymentStepData is one localized deployment guide section.
type DeploymentStepData struct {
	Title    string `json:"title"`
	Commands string `json:"commands"`
}

// List handles GET /api/v1/dtals.
// It returns the visible catalog subset for the query and category filters,
// localized in the request language, plus the distinct category set.
func (h *CatalogHandler) List(c *gin.Context) {
	lang := middleware.GetLanguage(c)

	var req ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		apierrors.BadRequest(c, "Invalid query parameters", nil)
		return
	}

	result, err := h.service.ListDTALs(c.Request.Context(), req.Query, req.Category, lang)
	if err != nil {
		apierrors.InternalServerError(c, "Failed to list catalog entries", err)
		return
	}

	cards := make([]CardData, 0, len(result.Visible))
	for i := range result.Visible {
		cards = append(cards, h.mapCard(&result.Visible[i], lang))
	}

	c.JSON(http.StatusOK, ListResponse{
		DTALs:      cards,
		Categories: result.Categories,
		Count:      len(cards),
	})
}

// Get handles GET /api/v1/dtals/:id.
// It returns the localized detail view including the parameter schema.
func (h *CatalogHandler) Get(c *gin.Context) {
	lang := middleware.GetLanguage(c)
	id := c.Param("id")

	entry, err := h.service.GetDTAL(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrDTALNotFound) {
			apierrors.NotFound(c, "No catalog entry with this id")
			return
		}
		apierrors.InternalServerError(c, "Failed to load catalog entry", err)
		return
	}

	params := make([]ParameterData, 0, len(entry.Parameters))
	for _, p := range entry.Parameters {
		params = append(params, ParameterData{
			Key:         p.Key,
			Name:        p.Name.Resolve(lang),
			Description: p.Description.Resolve(lang),
			Type:        p.Type,
			Required:    p.Required,
			Options:     p.Options,
			Unit:        p.Unit,
		})
	}

	c.JSON(http.StatusOK, DetailResponse{
		CardData:      h.mapCard(entry, lang),
		MCPURL:        entry.MCPURL,
		Parameters:    params,
		LawReferences: entry.LawReferences,
	})
}

// Options handles GET /api/v1/dtals/:id/options.
// It returns the static selection lists backing the calculator form.
func (h *CatalogHandler) Options(c *gin.Context) {
	id := c.Param("id")

	if _, err := h.service.GetDTAL(c.Request.Context(), id); err != nil {
		apierrors.NotFound(c, "No catalog entry with this id")
		return
	}

	c.JSON(http.StatusOK, OptionsResponse{
		Municipalities:     catalog.Municipalities,
		BusinessActivities: catalog.BusinessActivities,
	})
}

// Integration handles GET /api/v1/dtals/:id/integration.
// It returns the MCP integration guide rendered from the entry's server URL.
func (h *CatalogHandler) Integration(c *gin.Context) {
	lang := middleware.GetLanguage(c)
	id := c.Param("id")

	entry, err := h.service.GetDTAL(c.Request.Context(), id)
	if err != nil {
		apierrors.NotFound(c, "No catalog entry with this id")
		return
	}

	c.JSON(http.StatusOK, IntegrationResponse{
		Title:       i18n.Lookup("mcpTitle", lang),
		Description: i18n.Lookup("mcpDescription", lang),
		Guide:       mcp.BuildGuide(entry.ID, entry.MCPURL),
	})
}

// Source handles GET /api/v1/dtals/:id/source.
// It returns the entry's published source files and deployment guide, with
// file descriptions and section titles resolved in the request language.
func (h *CatalogHandler) Source(c *gin.Context) {
	lang := middleware.GetLanguage(c)
	id := c.Param("id")

	if _, err := h.service.GetDTAL(c.Request.Context(), id); err != nil {
		apierrors.NotFound(c, "No catalog entry with this id")
		return
	}

	bundle := source.BuildBundle()

	files := make([]SourceFileData, 0, len(bundle.Files))
	for _, f := range bundle.Files {
		files = append(files, SourceFileData{
			Name:        f.Name,
			Language:    f.Language,
			Description: f.Description.Resolve(lang),
			Content:     f.Content,
		})
	}

	steps := make([]DeploymentStepData, 0, len(bundle.Deployment))
	for _, s := range bundle.Deployment {
		steps = append(steps, DeploymentStepData{
			Title:    s.Title.Resolve(lang),
			Commands: s.Commands,
		})
	}

	c.JSON(http.StatusOK, SourceResponse{
		Label:       i18n.Lookup("sourceCode", lang),
		Title:       i18n.Lookup("sourceTitle", lang),
		Description: i18n.Lookup("sourceDescription", lang),
		License:     bundle.License,
		Files:       files,
		Deployment:  steps,
	})
}

// mapCard resolves every dual field of an entry with the same language.
func (h *CatalogHandler) mapCard(entry *models.DTAL, lang i18n.Language) CardData {
	return CardData{
		ID:                  entry.ID,
		Name:                entry.Name.Resolve(lang),
		Description:         entry.Description.Resolve(lang),
		Category:            entry.Category.Resolve(lang),
		Jurisdiction:        entry.Jurisdiction.Resolve(lang),
		Version:             entry.Version,
		LastUpdated:         i18n.FormatDate(entry.LastUpdated, lang),
		CalculatorAvailable: h.service.HasCalculator(entry.ID),
	}
}
