package media

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// PublicPrefix is the URL prefix under which stored files are served back.
const PublicPrefix = "/uploads"

// DiskStore writes uploads into a single directory and serves them under
// PublicPrefix. The directory is created lazily on first save.
type DiskStore struct {
	root   string
	logger zerolog.Logger
}

func NewDiskStore(root string) *DiskStore {
	return &DiskStore{
		root:   root,
		logger: log.With().Str("component", "diskStore").Logger(),
	}
}

// Root returns the directory backing the store, for static file serving.
func (s *DiskStore) Root() string {
	return s.root
}

func (s *DiskStore) Save(_ context.Context, originalName string, r io.Reader) (string, error) {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(originalName))
	dst, err := os.Create(filepath.Join(s.root, name))
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(dst, r); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", err
	}
	if err := dst.Close(); err != nil {
		return "", err
	}

	return path.Join(PublicPrefix, name), nil
}

func (s *DiskStore) Delete(_ context.Context, ref string) error {
	// Refs are stored as PublicPrefix/<name>; only the final element maps
	// to a file in the store.
	name := path.Base(ref)
	if name == "." || name == "/" || name == "" {
		return nil
	}

	err := os.Remove(filepath.Join(s.root, name))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		s.logger.Error().Err(err).Str("ref", ref).Msg("Failed to delete media file")
	}
	return err
}
