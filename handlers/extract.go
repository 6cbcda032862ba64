package handlers

import (
	"log/slog"
	"net/http"

	"bizsite-backend/common"
	"bizsite-backend/model"
	"bizsite-backend/parser"

	"github.com/gin-gonic/gin"
)

// ExtractHandler turns raw HTML captures into business profiles. Live
// URL fetching is not done here; callers hand over the HTML they
// already retrieved.
type ExtractHandler struct {
	logger *slog.Logger
	cfg    *common.Config
	parser *parser.Parser
}

func NewExtractHandler(cfg *common.Config) *ExtractHandler {
	logger := slog.With("handler", "ExtractHandler")

	return &ExtractHandler{
		logger: logger,
		cfg:    cfg,
		parser: parser.New(),
	}
}

type extractRequest struct {
	HTML      string `json:"html" binding:"required"`
	SourceURL string `json:"sourceUrl"`
	Mode      string `json:"mode"`
}

type extractResponse struct {
	OK                  bool                   `json:"ok"`
	Data                *model.BusinessProfile `json:"data,omitempty"`
	Error               string                 `json:"error,omitempty"`
	FallbackSuggestions []string               `json:"fallbackSuggestions"`
}

var fallbackSuggestions = []string{
	"Upload a saved HTML file using Upload HTML mode.",
	"Use Manual Entry mode and type services/contact details directly.",
	"Confirm the capture contains the public business profile markup.",
}

// ExtractFromHTML handles POST /api/v1/extract-html.
func (h *ExtractHandler) ExtractFromHTML(c *gin.Context) {
	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, extractResponse{
			OK:                  false,
			Error:               "Request must include the raw HTML to parse.",
			FallbackSuggestions: fallbackSuggestions,
		})
		return
	}

	var profile *model.BusinessProfile
	if req.Mode == string(model.ExtractionModeUploadHTML) {
		profile = h.parser.ParseUploaded([]byte(req.HTML), c.ContentType(), req.SourceURL)
	} else {
		profile = h.parser.Parse(req.HTML, req.SourceURL)
	}

	h.logger.Info("Profile extracted",
		"mode", profile.Mode,
		"name", profile.Name,
		"images", len(profile.Images),
		"faqs", len(profile.FAQs))

	c.JSON(http.StatusOK, extractResponse{
		OK:                  true,
		Data:                profile,
		FallbackSuggestions: []string{},
	})
}
