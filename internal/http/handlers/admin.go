package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/truthlens-backend/internal/http/response"
	"github.com/yungbote/truthlens-backend/internal/store"
)

type AdminHandler struct {
	docs store.Store
}

func NewAdminHandler(docs store.Store) *AdminHandler {
	return &AdminHandler{docs: docs}
}

var knownKinds = map[store.Kind]bool{
	store.KindUser:     true,
	store.KindUpload:   true,
	store.KindAnalysis: true,
	store.KindFile:     true,
	store.KindAI:       true,
}

// GET /api/admin/documents/:kind. Bulk query by kind. Only the external
// backend supports it; the in-memory backend reports the capability gap
// instead of faking parity.
func (h *AdminHandler) ListDocuments(c *gin.Context) {
	kind := store.Kind(c.Param("kind"))
	if !knownKinds[kind] {
		response.RespondError(c, http.StatusBadRequest, "unknown_kind", fmt.Errorf("unknown document kind %q", kind))
		return
	}

	lister, ok := h.docs.(store.Lister)
	if !ok {
		response.RespondError(c, http.StatusNotImplemented, "bulk_query_unsupported",
			fmt.Errorf("active store backend has no bulk query support"))
		return
	}

	docs, err := lister.ListKind(c.Request.Context(), kind)
	if err != nil {
		response.RespondFromError(c, err)
		return
	}
	if docs == nil {
		docs = []json.RawMessage{}
	}
	response.RespondOK(c, gin.H{"kind": kind, "documents": docs})
}
