package handlers

import (
	"log/slog"
	"net/http"

	"bizsite-backend/common"
	"bizsite-backend/generator"
	"bizsite-backend/model"
	"bizsite-backend/services"

	"github.com/gin-gonic/gin"
)

// ProjectHandler exposes the project lifecycle: create from a profile,
// edit, scan, suggest and generate.
type ProjectHandler struct {
	logger *slog.Logger
	cfg    *common.Config
	sites  *services.SiteService
}

func NewProjectHandler(cfg *common.Config, sites *services.SiteService) *ProjectHandler {
	logger := slog.With("handler", "ProjectHandler")

	return &ProjectHandler{
		logger: logger,
		cfg:    cfg,
		sites:  sites,
	}
}

type createProjectRequest struct {
	Profile model.BusinessProfile `json:"profile" binding:"required"`
}

// CreateProject handles POST /api/v1/projects.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request must include a business profile."})
		return
	}

	if req.Profile.Slug != "" {
		slug, ok, errMsg := common.ValidateSiteSlug(req.Profile.Slug)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": errMsg})
			return
		}
		req.Profile.Slug = slug
	}

	project, err := h.sites.CreateProject(c.Request.Context(), req.Profile)
	if err != nil {
		h.logger.Error("Failed to create project", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, project)
}

// GetProject handles GET /api/v1/projects/:id.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID := c.Param("id")

	project, err := h.sites.GetProject(c.Request.Context(), projectID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	c.JSON(http.StatusOK, project)
}

// ListProjects handles GET /api/v1/projects.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	ids, err := h.sites.ListProjects(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list projects", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list projects"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": ids})
}

// UpdateProject handles PUT /api/v1/projects/:id.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	projectID := c.Param("id")

	var update services.ProjectUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update payload"})
		return
	}

	if update.Profile != nil && update.Profile.Slug != "" {
		slug, ok, errMsg := common.ValidateSiteSlug(update.Profile.Slug)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": errMsg})
			return
		}
		update.Profile.Slug = slug
	}

	project, err := h.sites.UpdateProject(c.Request.Context(), projectID, update)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject handles DELETE /api/v1/projects/:id.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	projectID := c.Param("id")

	if err := h.sites.DeleteProject(c.Request.Context(), projectID); err != nil {
		h.logger.Error("Failed to delete project", "project_id", projectID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ScanCompliance handles POST /api/v1/projects/:id/compliance.
func (h *ProjectHandler) ScanCompliance(c *gin.Context) {
	projectID := c.Param("id")

	_, summary, err := h.sites.ScanCompliance(c.Request.Context(), projectID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// SuggestLayout handles POST /api/v1/projects/:id/layout-suggestion.
func (h *ProjectHandler) SuggestLayout(c *gin.Context) {
	projectID := c.Param("id")

	suggestion, err := h.sites.SuggestLayout(c.Request.Context(), projectID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	c.JSON(http.StatusOK, suggestion)
}

type generateRequest struct {
	Images           []generator.LocalImage `json:"images"`
	IncludeLlmsTxt   *bool                  `json:"includeLlmsTxt"`
	IncludeHumansTxt *bool                  `json:"includeHumansTxt"`
}

type generateResponse struct {
	Project *model.ProjectRecord `json:"project"`
	Files   []string             `json:"files"`
}

// GenerateSite handles POST /api/v1/projects/:id/generate.
func (h *ProjectHandler) GenerateSite(c *gin.Context) {
	projectID := c.Param("id")

	var req generateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid generate payload"})
			return
		}
	}

	options := generator.GenerationOptions{
		IncludeLlmsTxt:   h.cfg.IncludeLlmsTxt,
		IncludeHumansTxt: h.cfg.IncludeHumansTxt,
	}
	if req.IncludeLlmsTxt != nil {
		options.IncludeLlmsTxt = *req.IncludeLlmsTxt
	}
	if req.IncludeHumansTxt != nil {
		options.IncludeHumansTxt = *req.IncludeHumansTxt
	}

	project, files, err := h.sites.GenerateSite(c.Request.Context(), projectID, req.Images, options)
	if err != nil {
		h.logger.Error("Failed to generate site", "project_id", projectID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate site"})
		return
	}

	c.JSON(http.StatusOK, generateResponse{
		Project: project,
		Files:   files.Paths(),
	})
}
