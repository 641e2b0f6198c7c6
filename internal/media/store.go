package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Descriptor describes a stored file. The file name is its identity.
type Descriptor struct {
	FileName  string `json:"fileName"`
	URL       string `json:"url"`
	SortOrder *int   `json:"sortOrder,omitempty"`
}

// SaveInput is one item to persist.
type SaveInput struct {
	Data         []byte
	OriginalName string
	MediaType    string
}

// Store persists files of a single Kind under root/<segment>.
type Store struct {
	kind          Kind
	root          string
	publicBaseURL string
	namer         Namer
	logger        *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithNamer overrides the clock and random source used for file names.
func WithNamer(n Namer) Option {
	return func(s *Store) { s.namer = n }
}

// NewStore creates a Store for kind. publicBaseURL is used verbatim apart
// from a trailing slash.
func NewStore(kind Kind, root, publicBaseURL string, logger *slog.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		kind:          kind,
		root:          root,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger.With(slog.String("component", "media_store"), slog.String("kind", kind.String())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Kind returns the kind this store serves.
func (s *Store) Kind() Kind { return s.kind }

// PublicURL returns {publicBaseURL}/public/{segment}/{fileName}.
func (s *Store) PublicURL(fileName string) string {
	return s.publicBaseURL + "/public/" + s.kind.Policy().Segment + "/" + fileName
}

// Save writes in.Data under a freshly generated name. The bytes go to a
// temporary file that is renamed into place only after a successful fsync.
func (s *Store) Save(ctx context.Context, entityID string, in SaveInput) (Descriptor, error) {
	d, err := s.save(ctx, entityID, in)
	observe(s.kind, "save", err)
	return d, err
}

func (s *Store) save(ctx context.Context, entityID string, in SaveInput) (Descriptor, error) {
	if err := ctx.Err(); err != nil {
		return Descriptor{}, newError(CodeWriteFailed, "request cancelled", err)
	}
	// The entity id becomes the name prefix, and the name must stay deletable.
	if !IsSafeFileName(entityID) {
		return Descriptor{}, newError(CodeInvalidFileName, "invalid entity id", nil)
	}

	dir, err := EnsureDirectory(s.root, s.kind)
	if err != nil {
		return Descriptor{}, err
	}

	name, err := s.namer.GenerateFileName(s.kind, entityID, in.OriginalName, in.MediaType)
	if err != nil {
		return Descriptor{}, newError(CodeWriteFailed, "generate file name", err)
	}

	if err := writeFileAtomic(filepath.Join(dir, name), in.Data); err != nil {
		s.logger.Error("write failed",
			slog.String("entity_id", entityID),
			slog.String("file_name", name),
			slog.String("error", err.Error()),
		)
		return Descriptor{}, newError(CodeWriteFailed, fmt.Sprintf("write %s", name), err)
	}
	bytesWritten.WithLabelValues(s.kind.String()).Add(float64(len(in.Data)))

	s.logger.Info("file stored",
		slog.String("entity_id", entityID),
		slog.String("file_name", name),
		slog.Int("size", len(in.Data)),
	)

	return Descriptor{FileName: name, URL: s.PublicURL(name)}, nil
}

// SaveBatch saves items in order, numbering them from startIndex (1 when
// startIndex < 1). It is not transactional: on failure the descriptors
// written so far are returned together with the error, and their files stay
// on disk.
func (s *Store) SaveBatch(ctx context.Context, entityID string, items []SaveInput, startIndex int) ([]Descriptor, error) {
	if startIndex < 1 {
		startIndex = 1
	}
	saved := make([]Descriptor, 0, len(items))
	for i, item := range items {
		d, err := s.Save(ctx, entityID, item)
		if err != nil {
			return saved, err
		}
		order := startIndex + i
		d.SortOrder = &order
		saved = append(saved, d)
	}
	return saved, nil
}

// Delete removes fileName from the kind's directory. A missing file is not an
// error. The caller must have checked the name with IsSafeFileName.
func (s *Store) Delete(ctx context.Context, fileName string) error {
	err := s.delete(ctx, fileName)
	observe(s.kind, "delete", err)
	return err
}

func (s *Store) delete(_ context.Context, fileName string) error {
	dir, err := EnsureDirectory(s.root, s.kind)
	if err != nil {
		return err
	}
	err = os.Remove(filepath.Join(dir, fileName))
	if err == nil {
		s.logger.Info("file deleted", slog.String("file_name", fileName))
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return newError(CodeDeleteFailed, fmt.Sprintf("delete %s", fileName), err)
}

func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return err
	}

	if _, err := io.Copy(f, bytes.NewReader(data)); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
