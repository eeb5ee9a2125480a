package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/truthlens-backend/internal/http/response"
	"github.com/yungbote/truthlens-backend/internal/services"
)

type UploadHandler struct {
	uploads services.UploadService
}

func NewUploadHandler(uploads services.UploadService) *UploadHandler {
	return &UploadHandler{uploads: uploads}
}

// POST /api/uploads
func (h *UploadHandler) Create(c *gin.Context) {
	var input services.CreateUploadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	upload, err := h.uploads.Create(c.Request.Context(), input)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"upload": upload})
}

// GET /api/uploads/:id
func (h *UploadHandler) Get(c *gin.Context) {
	upload, err := h.uploads.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"upload": upload})
}

// DELETE /api/uploads/:id. Deletes the upload and its linked analysis.
// A missing upload reports cleared=false rather than an error.
func (h *UploadHandler) Clear(c *gin.Context) {
	cleared, err := h.uploads.Clear(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"cleared": cleared})
}
