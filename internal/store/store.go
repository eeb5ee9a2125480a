// Package store provides keyed document storage per document kind,
// backed either by an in-process map or by an external Redis document
// database chosen at construction time.
package store

import (
	"context"
	"encoding/json"
	"errors"
)

// Kind namespaces document ids; the id itself carries the kind prefix,
// e.g. "upload::<uuid>".
type Kind string

const (
	KindUser     Kind = "user"
	KindUpload   Kind = "upload"
	KindAnalysis Kind = "analysis"
	KindFile     Kind = "file"
	KindAI       Kind = "ai"
)

// ErrNotConnected is returned by the external backend when an operation
// runs before Connect. Hitting it is a configuration error, not a miss.
var ErrNotConnected = errors.New("document store not connected")

// Store is last-writer-wins upsert storage with no cross-entity
// referential integrity; cascade deletes are the caller's job.
// Get reports a miss as (nil, nil), never as an error.
type Store interface {
	Save(ctx context.Context, kind Kind, id string, doc json.RawMessage) error
	Get(ctx context.Context, kind Kind, id string) (json.RawMessage, error)
	Delete(ctx context.Context, kind Kind, id string) (bool, error)
	Close() error
}

// Lister is the optional bulk-query capability. Only the external
// backend implements it; callers discover support by type assertion.
type Lister interface {
	ListKind(ctx context.Context, kind Kind) ([]json.RawMessage, error)
}
