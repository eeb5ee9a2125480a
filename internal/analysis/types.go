// Package analysis holds the document model for users, uploads, and
// analyses, plus the credibility breakdown computation.
package analysis

// Analysis lifecycle states. StatusError is part of the stored model but
// the demo pipeline never produces it; a real check pipeline would.
const (
	StatusPending = "pending"
	StatusReady   = "ready"
	StatusError   = "error"
)

type User struct {
	ID            string  `json:"id"`
	AccountID     string  `json:"account_id"`
	Name          string  `json:"name"`
	Email         *string `json:"email"`
	WalletAddress *string `json:"wallet_address"`
	CreatedAt     string  `json:"created_at"`
}

// FileRef is embedded in its Upload; files are not separately addressable.
type FileRef struct {
	ID          string  `json:"id"`
	UserID      *string `json:"user_id"`
	Name        string  `json:"name"`
	ContentType *string `json:"content_type"`
	Size        *int64  `json:"size"`
	StorageURL  *string `json:"storage_url"`
}

type Settings struct {
	FactCheck           bool `json:"fact_check"`
	LogicalFallacyCheck bool `json:"logical_fallacy_check"`
	AIGenerationCheck   bool `json:"ai_generation_check"`
}

type Upload struct {
	ID         string    `json:"id"`
	UserID     *string   `json:"user_id"`
	CreatedAt  string    `json:"created_at"`
	Status     string    `json:"status"`
	Files      []FileRef `json:"files"`
	Settings   Settings  `json:"settings"`
	AnalysisID *string   `json:"analysis_id"`
}

type Source struct {
	Title *string  `json:"title"`
	URL   string   `json:"url"`
	Score *float64 `json:"score"`
}

type FactCheck struct {
	ID             string   `json:"id"`
	Statement      string   `json:"statement"`
	Score          *float64 `json:"score,omitempty"`
	SourcesFor     []Source `json:"sources_for"`
	SourcesAgainst []Source `json:"sources_against"`
}

type Fallacy struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Statement      string   `json:"statement"`
	ContextExcerpt *string  `json:"context_excerpt,omitempty"`
	Position       *string  `json:"position,omitempty"`
	Severity       *float64 `json:"severity,omitempty"`
}

type AICheck struct {
	ID          string   `json:"id"`
	IsAI        bool     `json:"is_ai"`
	Score       *float64 `json:"score,omitempty"`
	Explanation *string  `json:"explanation,omitempty"`
}

type Summary struct {
	FactChecks int      `json:"fact_checks"`
	Fallacies  int      `json:"fallacies"`
	AIScore    *float64 `json:"ai_score"`
}

// Breakdown scores are each either nil (no relevant input) or in [0,1].
// OverallCredibilityScore is non-nil iff at least one component is.
type Breakdown struct {
	FactCheckScore          *float64 `json:"fact_check_score"`
	LogicalFallacyScore     *float64 `json:"logical_fallacy_score"`
	AIGenerationScore       *float64 `json:"ai_generation_score"`
	OverallCredibilityScore *float64 `json:"overall_credibility_score"`
}

type Analysis struct {
	ID         string      `json:"id"`
	UploadID   string      `json:"upload_id"`
	Status     string      `json:"status"`
	StartedAt  *string     `json:"started_at"`
	FinishedAt *string     `json:"finished_at"`
	Summary    *Summary    `json:"summary"`
	Breakdown  *Breakdown  `json:"breakdown"`
	FactChecks []FactCheck `json:"fact_checks"`
	Fallacies  []Fallacy   `json:"fallacies"`
	AICheck    *AICheck    `json:"ai_check"`
}
