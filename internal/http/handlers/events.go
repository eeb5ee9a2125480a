package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/truthlens-backend/internal/http/response"
	"github.com/yungbote/truthlens-backend/internal/platform/logger"
	"github.com/yungbote/truthlens-backend/internal/realtime"
)

type EventsHandler struct {
	log *logger.Logger
	hub *realtime.Hub
}

func NewEventsHandler(log *logger.Logger, hub *realtime.Hub) *EventsHandler {
	return &EventsHandler{
		log: log.With("handler", "EventsHandler"),
		hub: hub,
	}
}

// GET /api/uploads/:id/events. Streams AnalysisReady events for one
// upload as server-sent events until the client disconnects. Events
// published before the stream opened are not replayed.
func (h *EventsHandler) AnalysisEvents(c *gin.Context) {
	uploadID := strings.TrimSpace(c.Param("id"))
	if uploadID == "" {
		response.RespondError(c, http.StatusBadRequest, "missing_upload_id", nil)
		return
	}

	client := h.hub.NewClient()
	h.hub.AddChannel(client, uploadID)
	h.log.Debug("analysis event stream open", "upload_id", uploadID, "client_id", client.ID)

	h.hub.ServeHTTP(c.Writer, c.Request, client)

	h.hub.CloseClient(client)
	h.log.Debug("analysis event stream closed", "upload_id", uploadID, "client_id", client.ID)
}
