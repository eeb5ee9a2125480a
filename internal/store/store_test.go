package store

import (
	"testing"

	"github.com/yungbote/truthlens-backend/internal/platform/logger"
)

func mustLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	t.Cleanup(log.Sync)
	return log
}
