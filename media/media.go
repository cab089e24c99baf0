// Package media persists uploaded project files and hands back public
// reference paths. Cleanup of replaced or orphaned files is advisory:
// callers log failures and move on, the project row stays authoritative.
package media

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/ewinters/portfolio-backend/errs"
)

// MaxUploadSize caps a single media upload at 5 MiB.
const MaxUploadSize int64 = 5 << 20

// allowedTypes is the upload allow-list. Types are detected by sniffing
// file content, not trusted from the multipart header.
var allowedTypes = []string{"image/jpeg", "image/png", "image/gif"}

type Store interface {
	// Save writes the file and returns its public reference path. The
	// stored name is unique per call; originalName only contributes the
	// extension.
	Save(ctx context.Context, originalName string, r io.Reader) (string, error)
	// Delete removes the file behind a reference path. A missing file is
	// not an error.
	Delete(ctx context.Context, ref string) error
}

// ValidateUpload enforces the size cap and content-type allow-list before
// anything is written to a store.
func ValidateUpload(fh *multipart.FileHeader) error {
	if fh.Size > MaxUploadSize {
		return errs.NewMaxFileSizeExceededError(MaxUploadSize)
	}

	f, err := fh.Open()
	if err != nil {
		return errs.NewMalformedPayloadError("media", err)
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := f.Read(head)
	if err != nil && err != io.EOF {
		return errs.NewMalformedPayloadError("media", err)
	}

	contentType := http.DetectContentType(head[:n])
	for _, allowed := range allowedTypes {
		if contentType == allowed {
			return nil
		}
	}
	return errs.NewUnsupportedMediaTypeError(contentType, allowedTypes)
}
