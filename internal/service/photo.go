package service

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/ella-quan/meowhome/internal/media"
	"github.com/ella-quan/meowhome/internal/model"
	"github.com/ella-quan/meowhome/internal/realtime"
	"github.com/ella-quan/meowhome/internal/store"
)

// PhotoWriter is the persistence surface the photo service needs.
type PhotoWriter interface {
	SetPhoto(ctx context.Context, p model.Photo) error
	DeletePhoto(ctx context.Context, id string) error
}

// PhotoService handles the family photo gallery.
type PhotoService struct {
	store    *store.Store
	repo     PhotoWriter
	media    media.Store
	notifier realtime.Notifier
	logger   *slog.Logger
}

// NewPhotoService creates a new photo service.
func NewPhotoService(st *store.Store, repo PhotoWriter, mediaStore media.Store, notifier realtime.Notifier, logger *slog.Logger) *PhotoService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PhotoService{store: st, repo: repo, media: mediaStore, notifier: notifier, logger: logger}
}

// AddPhoto records a photo whose binary already has a URL, either from
// Upload or hosted externally.
func (s *PhotoService) AddPhoto(ctx context.Context, req model.CreatePhotoRequest) (model.Photo, error) {
	if req.URL == "" {
		return model.Photo{}, ErrPhotoURLRequired
	}

	p := model.Photo{
		ID:         req.ID,
		URL:        req.URL,
		Caption:    req.Caption,
		UploadedBy: req.UploadedBy,
		Timestamp:  time.Now(),
	}
	if p.ID == "" {
		p.ID = newID()
	}

	s.store.PutPhoto(p)
	if err := s.repo.SetPhoto(ctx, p); err != nil {
		s.logger.Error("photo not persisted",
			slog.String("photo_id", p.ID),
			slog.String("error", err.Error()),
		)
	}
	s.changed()
	return p, nil
}

// UploadPhoto saves the binary to media storage and records the
// resulting gallery entry.
func (s *PhotoService) UploadPhoto(ctx context.Context, filename string, r io.Reader, caption, uploadedBy string) (model.Photo, error) {
	url, err := s.media.Save(filename, r)
	if err != nil {
		return model.Photo{}, err
	}
	return s.AddPhoto(ctx, model.CreatePhotoRequest{
		URL:        url,
		Caption:    caption,
		UploadedBy: uploadedBy,
	})
}

// DeletePhoto removes the gallery entry and, when the binary lives in
// our media storage, the binary too. Deleting an unknown id is a no-op.
func (s *PhotoService) DeletePhoto(ctx context.Context, id string) {
	p, ok := s.store.Photo(id)

	s.store.DeletePhoto(id)
	if err := s.repo.DeletePhoto(ctx, id); err != nil {
		s.logger.Error("photo delete not persisted",
			slog.String("photo_id", id),
			slog.String("error", err.Error()),
		)
	}
	if ok && s.media != nil {
		if err := s.media.Remove(p.URL); err != nil {
			s.logger.Warn("photo binary not removed",
				slog.String("photo_id", id),
				slog.String("error", err.Error()),
			)
		}
	}
	s.changed()
}

// ListPhotos returns the current gallery snapshot, newest first.
func (s *PhotoService) ListPhotos() []model.Photo {
	return s.store.Photos()
}

func (s *PhotoService) changed() {
	if s.notifier != nil {
		s.notifier.CollectionChanged(realtime.CollectionPhotos)
	}
}
