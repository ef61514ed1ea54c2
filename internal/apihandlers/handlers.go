package apihandlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"smartreply/internal/app"
	"smartreply/internal/models"
)

// APIHandler carries the wired application into the gin handlers.
type APIHandler struct {
	App *app.App
}

// NewAPIHandler creates a handler set over the application.
func NewAPIHandler(a *app.App) *APIHandler {
	return &APIHandler{App: a}
}

// ProcessRequest is the body of POST /api/process.
type ProcessRequest struct {
	Text string `json:"text"`
}

// BatchRequest is the body of POST /api/batch.
type BatchRequest struct {
	Texts []string `json:"texts"`
}

// BatchResponse wraps the ordered batch results.
type BatchResponse struct {
	Results []models.ProcessResult `json:"results"`
}

// ProcessHandler classifies a single text and returns the full result record.
func (h *APIHandler) ProcessHandler(c *gin.Context) {
	var req ProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	content := strings.TrimSpace(req.Text)
	result := h.App.Batch.ProcessSingle(c.Request.Context(), content, "/api/process")
	c.JSON(http.StatusOK, result)
}

// BatchHandler classifies a JSON list of texts, preserving input order.
func (h *APIHandler) BatchHandler(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	results, err := h.App.Batch.ProcessBatch(c.Request.Context(), req.Texts)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, BatchResponse{Results: results})
}

// HealthHandler reports liveness.
func (h *APIHandler) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
