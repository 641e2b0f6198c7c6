// Package product exposes the product media endpoints: image and video
// upload plus delete by stored file name.
package product

import (
	"context"
	"log/slog"

	"github.com/ksr/files/internal/media"
)

// Service stores validated product media.
type Service struct {
	images *media.Store
	videos *media.Store
	logger *slog.Logger
}

// NewService creates a Service backed by one store per media kind.
func NewService(images, videos *media.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		images: images,
		videos: videos,
		logger: logger.With(slog.String("component", "product_service")),
	}
}

// SaveImages stores files in order with sortOrder starting at 1. If any write
// fails, the images already written by this call are removed before the error
// is returned, so a failed upload leaves nothing behind.
func (s *Service) SaveImages(ctx context.Context, productID string, files []media.Candidate) ([]media.Descriptor, error) {
	saved, err := s.images.SaveBatch(ctx, productID, toInputs(files), 1)
	if err != nil {
		s.discard(ctx, s.images, saved)
		return nil, err
	}
	return saved, nil
}

// SaveVideo stores a single video.
func (s *Service) SaveVideo(ctx context.Context, productID string, file media.Candidate) (media.Descriptor, error) {
	return s.videos.Save(ctx, productID, toInput(file))
}

// DeleteImage removes a stored image. Missing files are not an error.
func (s *Service) DeleteImage(ctx context.Context, fileName string) error {
	return deleteChecked(ctx, s.images, fileName)
}

// DeleteVideo removes a stored video. Missing files are not an error.
func (s *Service) DeleteVideo(ctx context.Context, fileName string) error {
	return deleteChecked(ctx, s.videos, fileName)
}

func deleteChecked(ctx context.Context, store *media.Store, fileName string) error {
	if err := media.CheckFileName(fileName); err != nil {
		return err
	}
	return store.Delete(ctx, fileName)
}

// discard is best effort; the original error is what the caller sees.
func (s *Service) discard(ctx context.Context, store *media.Store, saved []media.Descriptor) {
	ctx = context.WithoutCancel(ctx)
	for _, d := range saved {
		if err := store.Delete(ctx, d.FileName); err != nil {
			s.logger.Warn("cleanup after failed batch",
				slog.String("file_name", d.FileName),
				slog.String("error", err.Error()),
			)
		}
	}
}

func toInput(c media.Candidate) media.SaveInput {
	return media.SaveInput{Data: c.Data, OriginalName: c.OriginalName, MediaType: c.MediaType}
}

func toInputs(cs []media.Candidate) []media.SaveInput {
	out := make([]media.SaveInput, len(cs))
	for i, c := range cs {
		out[i] = toInput(c)
	}
	return out
}
