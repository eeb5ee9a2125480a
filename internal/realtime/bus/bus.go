// Package bus forwards realtime messages between process instances.
// A single instance serves subscribers straight from the in-process hub;
// the redis bus exists so analyses finished on one instance reach
// clients streaming from another.
package bus

import (
	"context"

	"github.com/yungbote/truthlens-backend/internal/realtime"
)

type Bus interface {
	Publish(ctx context.Context, msg realtime.Message) error
	StartForwarder(ctx context.Context, onMsg func(m realtime.Message)) error
	Close() error
}
