package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// Upload destinations under the base directory.
const (
	BookingPhotoDir = "bookings"
	ProfilePicDir   = "profiles"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeFilename strips any path components and collapses characters
// that are unsafe in a filename.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	name = strings.Trim(name, "._")
	if name == "" {
		name = "upload"
	}
	return name
}

// UploadService persists multipart uploads under a base directory,
// renaming each file with a nanosecond timestamp prefix so concurrent
// uploads of the same filename cannot collide.
type UploadService struct {
	BaseDir string
}

func NewUploadService(baseDir string) *UploadService {
	return &UploadService{BaseDir: baseDir}
}

// Save writes the upload into BaseDir/subdir and returns the stored
// filename (not the full path; the static file route serves the rest).
func (s *UploadService) Save(fh *multipart.FileHeader, subdir string) (string, error) {
	dir := filepath.Join(s.BaseDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir upload dir: %w", err)
	}

	filename := fmt.Sprintf("%d_%s", time.Now().UnixNano(), SanitizeFilename(fh.Filename))

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return filename, nil
}
