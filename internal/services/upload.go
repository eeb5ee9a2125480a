package services

import (
	"context"

	"github.com/yungbote/truthlens-backend/internal/analysis"
	"github.com/yungbote/truthlens-backend/internal/ident"
	"github.com/yungbote/truthlens-backend/internal/platform/logger"
	"github.com/yungbote/truthlens-backend/internal/store"
)

type UploadService interface {
	Create(ctx context.Context, input CreateUploadInput) (*analysis.Upload, error)
	Get(ctx context.Context, id string) (*analysis.Upload, error)
	// Clear deletes the upload and its linked analysis. It reports false
	// without error when the upload does not exist.
	Clear(ctx context.Context, id string) (bool, error)
}

type uploadService struct {
	docs store.Store
	log  *logger.Logger
}

func NewUploadService(docs store.Store, log *logger.Logger) UploadService {
	return &uploadService{
		docs: docs,
		log:  log.With("service", "UploadService"),
	}
}

func (s *uploadService) Create(ctx context.Context, input CreateUploadInput) (*analysis.Upload, error) {
	files := make([]analysis.FileRef, 0, len(input.Files))
	for _, f := range input.Files {
		uploader := f.UserID
		if uploader == nil {
			uploader = input.UserID // inherit from the upload
		}
		files = append(files, analysis.FileRef{
			ID:          ident.MakeID(string(store.KindFile)),
			UserID:      uploader,
			Name:        f.Name,
			ContentType: f.ContentType,
			Size:        f.Size,
			StorageURL:  f.StorageURL,
		})
	}

	settings := analysis.Settings{}
	if input.Settings != nil {
		settings = analysis.Settings{
			FactCheck:           input.Settings.FactCheck,
			LogicalFallacyCheck: input.Settings.LogicalFallacyCheck,
			AIGenerationCheck:   input.Settings.AIGenerationCheck,
		}
	}

	upload := &analysis.Upload{
		ID:        ident.MakeID(string(store.KindUpload)),
		UserID:    input.UserID,
		CreatedAt: ident.NowISO(),
		Status:    analysis.StatusPending,
		Files:     files,
		Settings:  settings,
	}
	if err := saveDoc(ctx, s.docs, store.KindUpload, upload.ID, upload); err != nil {
		return nil, err
	}
	s.log.Debug("upload created", "upload_id", upload.ID, "files", len(files))
	return upload, nil
}

func (s *uploadService) Get(ctx context.Context, id string) (*analysis.Upload, error) {
	return getDoc[analysis.Upload](ctx, s.docs, store.KindUpload, id)
}

func (s *uploadService) Clear(ctx context.Context, id string) (bool, error) {
	upload, err := s.Get(ctx, id)
	if err != nil {
		return false, err
	}
	if upload == nil {
		return false, nil
	}

	if upload.AnalysisID != nil {
		if _, err := s.docs.Delete(ctx, store.KindAnalysis, *upload.AnalysisID); err != nil {
			return false, err
		}
	}
	if _, err := s.docs.Delete(ctx, store.KindUpload, id); err != nil {
		return false, err
	}
	s.log.Debug("upload cleared", "upload_id", id)
	return true, nil
}
