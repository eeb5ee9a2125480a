package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/truthlens-backend/internal/http/response"
	"github.com/yungbote/truthlens-backend/internal/services"
)

type AnalysisHandler struct {
	analyses services.AnalysisService
}

func NewAnalysisHandler(analyses services.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analyses: analyses}
}

// GET /api/analyses/:id
func (h *AnalysisHandler) Get(c *gin.Context) {
	a, err := h.analyses.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"analysis": a})
}

// POST /api/uploads/:id/analysis. A missing upload is a 404 error, not
// a null result.
func (h *AnalysisHandler) Start(c *gin.Context) {
	a, err := h.analyses.Start(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"analysis": a})
}
