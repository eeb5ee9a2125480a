package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/yungbote/truthlens-backend/internal/analysis"
	"github.com/yungbote/truthlens-backend/internal/ident"
	"github.com/yungbote/truthlens-backend/internal/pkg/pointers"
	"github.com/yungbote/truthlens-backend/internal/platform/apierr"
	"github.com/yungbote/truthlens-backend/internal/platform/logger"
	"github.com/yungbote/truthlens-backend/internal/store"
)

type AnalysisService interface {
	Get(ctx context.Context, id string) (*analysis.Analysis, error)
	// Start runs the demo analysis for the upload: it loads the canned
	// fixture (or synthesizes an empty result), recomputes the breakdown,
	// persists the analysis, flips the upload to ready, and notifies
	// subscribers. A missing upload is an error, not a nil result.
	Start(ctx context.Context, uploadID string) (*analysis.Analysis, error)
}

type analysisService struct {
	docs        store.Store
	notifier    AnalysisNotifier
	log         *logger.Logger
	fixturePath string
}

func NewAnalysisService(docs store.Store, notifier AnalysisNotifier, fixturePath string, log *logger.Logger) AnalysisService {
	return &analysisService{
		docs:        docs,
		notifier:    notifier,
		log:         log.With("service", "AnalysisService"),
		fixturePath: fixturePath,
	}
}

func (s *analysisService) Get(ctx context.Context, id string) (*analysis.Analysis, error) {
	return getDoc[analysis.Analysis](ctx, s.docs, store.KindAnalysis, id)
}

func (s *analysisService) Start(ctx context.Context, uploadID string) (*analysis.Analysis, error) {
	upload, err := getDoc[analysis.Upload](ctx, s.docs, store.KindUpload, uploadID)
	if err != nil {
		return nil, err
	}
	if upload == nil {
		return nil, apierr.New(http.StatusNotFound, "upload_not_found", fmt.Errorf("upload %s not found", uploadID))
	}

	analysisID := ident.MakeID(string(store.KindAnalysis))
	started := ident.NowISO()

	result, ok := analysis.LoadFixture(s.fixturePath)
	if ok {
		// Relabel the fixture so it links to this upload, then recompute
		// the breakdown and summary from its own contents; any
		// fixture-supplied aggregates are overwritten.
		result.ID = analysisID
		result.UploadID = uploadID
		result.Status = analysis.StatusReady
		result.StartedAt = &started
		result.FinishedAt = pointers.String(ident.NowISO())
		breakdown := analysis.ComputeBreakdown(result.FactChecks, result.Fallacies, result.AICheck)
		result.Breakdown = &breakdown
		result.Summary = summarize(result)
	} else {
		s.log.Debug("no analysis fixture available; synthesizing empty result", "upload_id", uploadID)
		result = &analysis.Analysis{
			ID:         analysisID,
			UploadID:   uploadID,
			Status:     analysis.StatusReady,
			StartedAt:  &started,
			FinishedAt: pointers.String(ident.NowISO()),
			Summary:    &analysis.Summary{},
			Breakdown:  &analysis.Breakdown{},
			FactChecks: []analysis.FactCheck{},
			Fallacies:  []analysis.Fallacy{},
			AICheck: &analysis.AICheck{
				ID:          ident.MakeID(string(store.KindAI)),
				IsAI:        false,
				Score:       pointers.Float64(0.0),
				Explanation: pointers.String("placeholder"),
			},
		}
	}

	if err := saveDoc(ctx, s.docs, store.KindAnalysis, analysisID, result); err != nil {
		return nil, err
	}

	upload.AnalysisID = &analysisID
	upload.Status = analysis.StatusReady
	if err := saveDoc(ctx, s.docs, store.KindUpload, uploadID, upload); err != nil {
		return nil, err
	}

	s.notifier.AnalysisReady(ctx, result)
	s.log.Info("analysis ready", "upload_id", uploadID, "analysis_id", analysisID)
	return result, nil
}

func summarize(a *analysis.Analysis) *analysis.Summary {
	sum := &analysis.Summary{
		FactChecks: len(a.FactChecks),
		Fallacies:  len(a.Fallacies),
	}
	if a.AICheck != nil && a.AICheck.Score != nil {
		sum.AIScore = pointers.Float64(*a.AICheck.Score)
	}
	return sum
}
