package services

import (
	"context"

	"github.com/yungbote/truthlens-backend/internal/analysis"
	"github.com/yungbote/truthlens-backend/internal/platform/logger"
	"github.com/yungbote/truthlens-backend/internal/realtime"
	"github.com/yungbote/truthlens-backend/internal/realtime/bus"
)

// AnalysisNotifier announces a finished analysis on the channel named by
// its upload id.
type AnalysisNotifier interface {
	AnalysisReady(ctx context.Context, a *analysis.Analysis)
}

type analysisNotifier struct {
	hub *realtime.Hub
	bus bus.Bus
	log *logger.Logger
}

// NewAnalysisNotifier publishes through the events bus when one is
// configured (the bus forwarder feeds every instance's hub, this one
// included); otherwise it broadcasts on the local hub directly.
func NewAnalysisNotifier(hub *realtime.Hub, b bus.Bus, log *logger.Logger) AnalysisNotifier {
	return &analysisNotifier{
		hub: hub,
		bus: b,
		log: log.With("service", "AnalysisNotifier"),
	}
}

func (n *analysisNotifier) AnalysisReady(ctx context.Context, a *analysis.Analysis) {
	if n == nil || a == nil {
		return
	}
	msg := realtime.Message{
		Channel: a.UploadID,
		Event:   realtime.EventAnalysisReady,
		Data:    a,
	}
	if n.bus != nil {
		if err := n.bus.Publish(ctx, msg); err != nil {
			n.log.Warn("events bus publish failed; falling back to local hub", "error", err, "upload_id", a.UploadID)
			n.hub.Broadcast(msg)
		}
		return
	}
	n.hub.Broadcast(msg)
}
