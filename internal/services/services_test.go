package services

import (
	"context"
	"errors"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/yungbote/truthlens-backend/internal/analysis"
	"github.com/yungbote/truthlens-backend/internal/pkg/pointers"
	"github.com/yungbote/truthlens-backend/internal/platform/apierr"
	"github.com/yungbote/truthlens-backend/internal/platform/logger"
	"github.com/yungbote/truthlens-backend/internal/realtime"
	"github.com/yungbote/truthlens-backend/internal/store"
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

type fixtureEnv struct {
	docs     *store.Memory
	hub      *realtime.Hub
	users    UserService
	uploads  UploadService
	analyses AnalysisService
}

// newEnv wires services over the in-memory backend. fixturePath may
// point at a missing file to exercise the synthesized-empty path.
func newEnv(t *testing.T, fixturePath string) *fixtureEnv {
	t.Helper()
	log := mustLogger(t)
	docs := store.NewMemory()
	hub := realtime.NewHub(log)
	notifier := NewAnalysisNotifier(hub, nil, log)
	return &fixtureEnv{
		docs:     docs,
		hub:      hub,
		users:    NewUserService(docs, log),
		uploads:  NewUploadService(docs, log),
		analyses: NewAnalysisService(docs, notifier, fixturePath, log),
	}
}

func missingFixture(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "missing.json")
}

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "analysis_example.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestUserCreateGetDelete(t *testing.T) {
	env := newEnv(t, missingFixture(t))
	ctx := context.Background()

	created, err := env.users.Create(ctx, CreateUserInput{
		AccountID: "acc-1",
		Name:      "Alice",
		Email:     pointers.String("alice@example.com"),
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if created.ID == "" || created.CreatedAt == "" {
		t.Fatalf("created user missing id or timestamp: %+v", created)
	}

	got, err := env.users.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if got == nil || got.Name != "Alice" || got.Email == nil || *got.Email != "alice@example.com" {
		t.Fatalf("get user: want Alice got %+v", got)
	}

	removed, err := env.users.Delete(ctx, created.ID)
	if err != nil || !removed {
		t.Fatalf("delete user: want=(true,nil) got=(%v,%v)", removed, err)
	}
	got, err = env.users.Get(ctx, created.ID)
	if err != nil || got != nil {
		t.Fatalf("get after delete: want=(nil,nil) got=(%+v,%v)", got, err)
	}
}

func TestUserGetMissReturnsNil(t *testing.T) {
	env := newEnv(t, missingFixture(t))
	got, err := env.users.Get(context.Background(), "user::nope")
	if err != nil || got != nil {
		t.Fatalf("miss: want=(nil,nil) got=(%+v,%v)", got, err)
	}
}

func TestUploadCreateDefaults(t *testing.T) {
	env := newEnv(t, missingFixture(t))
	ctx := context.Background()

	up, err := env.uploads.Create(ctx, CreateUploadInput{
		Files: []FileInput{{Name: "essay.txt"}},
	})
	if err != nil {
		t.Fatalf("create upload: %v", err)
	}
	if up.Status != analysis.StatusPending {
		t.Fatalf("status: want=%s got=%s", analysis.StatusPending, up.Status)
	}
	if up.Settings.FactCheck || up.Settings.LogicalFallacyCheck || up.Settings.AIGenerationCheck {
		t.Fatalf("omitted settings should default to all-false: %+v", up.Settings)
	}
	if len(up.Files) != 1 {
		t.Fatalf("files: want=1 got=%d", len(up.Files))
	}
	if up.Files[0].UserID != nil {
		t.Fatalf("file uploader should be absent when neither specified one, got %q", *up.Files[0].UserID)
	}
	if up.AnalysisID != nil {
		t.Fatalf("fresh upload should not reference an analysis")
	}
}

func TestUploadFileInheritsUploader(t *testing.T) {
	env := newEnv(t, missingFixture(t))
	ctx := context.Background()

	up, err := env.uploads.Create(ctx, CreateUploadInput{
		UserID: pointers.String("user::owner"),
		Files: []FileInput{
			{Name: "a.txt"},
			{Name: "b.txt", UserID: pointers.String("user::other")},
		},
	})
	if err != nil {
		t.Fatalf("create upload: %v", err)
	}
	if up.Files[0].UserID == nil || *up.Files[0].UserID != "user::owner" {
		t.Fatalf("file without uploader should inherit the upload's, got %v", up.Files[0].UserID)
	}
	if up.Files[1].UserID == nil || *up.Files[1].UserID != "user::other" {
		t.Fatalf("file with its own uploader should keep it, got %v", up.Files[1].UserID)
	}
}

func TestStartAnalysisTransitionsUpload(t *testing.T) {
	env := newEnv(t, missingFixture(t))
	ctx := context.Background()

	up, err := env.uploads.Create(ctx, CreateUploadInput{Files: []FileInput{{Name: "doc.txt"}}})
	if err != nil {
		t.Fatalf("create upload: %v", err)
	}

	result, err := env.analyses.Start(ctx, up.ID)
	if err != nil {
		t.Fatalf("start analysis: %v", err)
	}
	if result.Status != analysis.StatusReady {
		t.Fatalf("analysis status: want=%s got=%s", analysis.StatusReady, result.Status)
	}
	if result.UploadID != up.ID {
		t.Fatalf("analysis upload link: want=%s got=%s", up.ID, result.UploadID)
	}
	if result.StartedAt == nil || result.FinishedAt == nil {
		t.Fatalf("analysis missing timestamps: %+v", result)
	}

	stored, err := env.uploads.Get(ctx, up.ID)
	if err != nil || stored == nil {
		t.Fatalf("get upload after start: (%+v,%v)", stored, err)
	}
	if stored.Status != analysis.StatusReady {
		t.Fatalf("upload status: want=%s got=%s", analysis.StatusReady, stored.Status)
	}
	if stored.AnalysisID == nil || *stored.AnalysisID != result.ID {
		t.Fatalf("upload analysis link: want=%s got=%v", result.ID, stored.AnalysisID)
	}

	persisted, err := env.analyses.Get(ctx, result.ID)
	if err != nil || persisted == nil {
		t.Fatalf("get analysis: (%+v,%v)", persisted, err)
	}
}

func TestStartAnalysisSynthesizesEmptyResult(t *testing.T) {
	env := newEnv(t, missingFixture(t))
	ctx := context.Background()

	up, _ := env.uploads.Create(ctx, CreateUploadInput{Files: []FileInput{{Name: "doc.txt"}}})
	result, err := env.analyses.Start(ctx, up.ID)
	if err != nil {
		t.Fatalf("start analysis: %v", err)
	}

	if len(result.FactChecks) != 0 || len(result.Fallacies) != 0 {
		t.Fatalf("synthesized analysis should have no checks: %+v", result)
	}
	if result.AICheck == nil || result.AICheck.IsAI {
		t.Fatalf("synthesized analysis wants a placeholder non-AI check, got %+v", result.AICheck)
	}
	b := result.Breakdown
	if b == nil {
		t.Fatalf("synthesized analysis missing breakdown")
	}
	if b.FactCheckScore != nil || b.LogicalFallacyScore != nil ||
		b.AIGenerationScore != nil || b.OverallCredibilityScore != nil {
		t.Fatalf("synthesized breakdown should be all-nil: %+v", b)
	}
	if result.Summary == nil || result.Summary.FactChecks != 0 || result.Summary.Fallacies != 0 {
		t.Fatalf("synthesized summary should be empty: %+v", result.Summary)
	}
}

func TestStartAnalysisFromFixtureRecomputesBreakdown(t *testing.T) {
	path := writeFixture(t, `{
		"id": "analysis::canned",
		"upload_id": "upload::canned",
		"status": "ready",
		"breakdown": {"fact_check_score": 0.01, "logical_fallacy_score": 0.01, "ai_generation_score": 0.01, "overall_credibility_score": 0.01},
		"fact_checks": [
			{"id": "fc::1", "statement": "a", "score": 0.8, "sources_for": [], "sources_against": []},
			{"id": "fc::2", "statement": "b", "score": 0.6, "sources_for": [], "sources_against": []}
		],
		"fallacies": [{"id": "fal::1", "name": "strawman", "statement": "c", "severity": 0.4}],
		"ai_check": {"id": "ai::1", "is_ai": false, "score": 0.2}
	}`)
	env := newEnv(t, path)
	ctx := context.Background()

	up, _ := env.uploads.Create(ctx, CreateUploadInput{Files: []FileInput{{Name: "doc.txt"}}})
	result, err := env.analyses.Start(ctx, up.ID)
	if err != nil {
		t.Fatalf("start analysis: %v", err)
	}

	if result.ID == "analysis::canned" || result.UploadID != up.ID {
		t.Fatalf("fixture ids should be relabeled: %+v", result)
	}
	b := result.Breakdown
	if b == nil || b.FactCheckScore == nil {
		t.Fatalf("breakdown missing after fixture start: %+v", b)
	}
	// fact mean 0.7, fallacy 1-0.4=0.6, ai 0.2 inverted 0.8 -> overall 0.7
	if math.Abs(*b.FactCheckScore-0.7) > 1e-6 {
		t.Fatalf("fact_check_score: want=0.7 got=%v", *b.FactCheckScore)
	}
	if math.Abs(*b.OverallCredibilityScore-0.7) > 1e-6 {
		t.Fatalf("overall: want=0.7 got=%v", *b.OverallCredibilityScore)
	}
	if result.Summary == nil || result.Summary.FactChecks != 2 || result.Summary.Fallacies != 1 {
		t.Fatalf("summary should count fixture contents: %+v", result.Summary)
	}
	if result.Summary.AIScore == nil || *result.Summary.AIScore != 0.2 {
		t.Fatalf("summary ai score: want=0.2 got=%v", result.Summary.AIScore)
	}
}

func TestStartAnalysisUnknownUploadFails(t *testing.T) {
	env := newEnv(t, missingFixture(t))

	_, err := env.analyses.Start(context.Background(), "upload::missing")
	if err == nil {
		t.Fatalf("start on missing upload should fail")
	}
	var ae *apierr.Error
	if !errors.As(err, &ae) {
		t.Fatalf("want apierr.Error, got %T: %v", err, err)
	}
	if ae.Status != http.StatusNotFound || ae.Code != "upload_not_found" {
		t.Fatalf("want (404, upload_not_found) got (%d, %s)", ae.Status, ae.Code)
	}
}

func TestStartAnalysisNotifiesSubscriber(t *testing.T) {
	env := newEnv(t, missingFixture(t))
	ctx := context.Background()

	up, _ := env.uploads.Create(ctx, CreateUploadInput{Files: []FileInput{{Name: "doc.txt"}}})

	client := env.hub.NewClient()
	env.hub.AddChannel(client, up.ID)

	other := env.hub.NewClient()
	env.hub.AddChannel(other, "upload::someone-else")

	result, err := env.analyses.Start(ctx, up.ID)
	if err != nil {
		t.Fatalf("start analysis: %v", err)
	}

	select {
	case msg := <-client.Outbound:
		if msg.Event != realtime.EventAnalysisReady {
			t.Fatalf("event: want=%s got=%s", realtime.EventAnalysisReady, msg.Event)
		}
		if msg.Channel != up.ID {
			t.Fatalf("channel: want=%s got=%s", up.ID, msg.Channel)
		}
		got, ok := msg.Data.(*analysis.Analysis)
		if !ok || got.ID != result.ID {
			t.Fatalf("payload: want analysis %s got %#v", result.ID, msg.Data)
		}
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for AnalysisReady")
	}

	select {
	case msg := <-other.Outbound:
		t.Fatalf("subscriber on another upload received %+v", msg)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestClearUploadCascades(t *testing.T) {
	env := newEnv(t, missingFixture(t))
	ctx := context.Background()

	up, _ := env.uploads.Create(ctx, CreateUploadInput{Files: []FileInput{{Name: "doc.txt"}}})
	result, err := env.analyses.Start(ctx, up.ID)
	if err != nil {
		t.Fatalf("start analysis: %v", err)
	}

	cleared, err := env.uploads.Clear(ctx, up.ID)
	if err != nil || !cleared {
		t.Fatalf("clear: want=(true,nil) got=(%v,%v)", cleared, err)
	}

	gotUp, err := env.uploads.Get(ctx, up.ID)
	if err != nil || gotUp != nil {
		t.Fatalf("upload after clear: want=(nil,nil) got=(%+v,%v)", gotUp, err)
	}
	gotAn, err := env.analyses.Get(ctx, result.ID)
	if err != nil || gotAn != nil {
		t.Fatalf("analysis after clear: want=(nil,nil) got=(%+v,%v)", gotAn, err)
	}
}

func TestClearUploadMissingReportsFalse(t *testing.T) {
	env := newEnv(t, missingFixture(t))
	cleared, err := env.uploads.Clear(context.Background(), "upload::missing")
	if err != nil {
		t.Fatalf("clear missing should not error: %v", err)
	}
	if cleared {
		t.Fatalf("clear missing: want=false got=true")
	}
}
