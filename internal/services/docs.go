package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yungbote/truthlens-backend/internal/store"
)

// Documents cross the store boundary as JSON so both backends stay
// shape-agnostic.

func saveDoc(ctx context.Context, s store.Store, kind store.Kind, id string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s document: %w", kind, err)
	}
	return s.Save(ctx, kind, id, raw)
}

// getDoc reports a miss as (nil, nil).
func getDoc[T any](ctx context.Context, s store.Store, kind store.Kind, id string) (*T, error) {
	raw, err := s.Get(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("unmarshal %s document %s: %w", kind, id, err)
	}
	return &v, nil
}
