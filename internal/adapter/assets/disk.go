package assets

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"adforge/internal/config/configs"
	"adforge/internal/core/port"
)

// PlaceholderURL is returned when neither an uploaded file nor a
// supplied URL yields a banner reference.
const PlaceholderURL = "https://via.placeholder.com/120?text=No+Image"

// allowedExtensions is the fixed allow-list for uploaded banners,
// matched case-insensitively against the substring after the last dot.
var allowedExtensions = map[string]struct{}{
	"png":  {},
	"jpg":  {},
	"jpeg": {},
	"gif":  {},
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// DiskIngestor implements port.AssetIngestor by persisting uploads under
// a fixed directory and serving them through a static retrieval
// endpoint. Concurrent uploads with identical sanitized filenames
// silently overwrite one another; collision detection is out of scope.
type DiskIngestor struct {
	dir     string
	baseURL string
	urlPath string
}

// NewDiskIngestor creates an ingestor for the configured upload
// directory. The directory is created on first use.
func NewDiskIngestor(cfg configs.Uploads) *DiskIngestor {
	return &DiskIngestor{
		dir:     cfg.Dir,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		urlPath: "/" + strings.Trim(cfg.URLPath, "/"),
	}
}

// Ingest resolves the final banner URL. An upload with an allowed
// extension is sanitized, stored and returned as a fully-qualified URL;
// an unsupported upload is ignored and the supplied URL (verbatim) or
// the fixed placeholder URL is returned instead.
func (d *DiskIngestor) Ingest(_ context.Context, upload *port.BannerUpload, suppliedURL string) (string, error) {
	if upload != nil && upload.Filename != "" && allowedFile(upload.Filename) {
		name := SanitizeFilename(upload.Filename)
		if name != "" {
			if err := d.store(name, upload.Reader); err != nil {
				return "", err
			}
			return fmt.Sprintf("%s%s/%s", d.baseURL, d.urlPath, name), nil
		}
	}
	if suppliedURL != "" {
		return suppliedURL, nil
	}
	return PlaceholderURL, nil
}

func (d *DiskIngestor) store(name string, r io.Reader) error {
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(d.dir, name))
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(f, r)
	return err
}

// allowedFile reports whether the filename carries an extension from the
// allow-list.
func allowedFile(filename string) bool {
	i := strings.LastIndex(filename, ".")
	if i < 0 {
		return false
	}
	_, ok := allowedExtensions[strings.ToLower(filename[i+1:])]
	return ok
}

// SanitizeFilename strips directory components and characters unsafe for
// a filesystem path, and trims leading dots so the result cannot escape
// the upload directory. Spaces become underscores. An empty string means
// nothing safe remains.
func SanitizeFilename(filename string) string {
	// Drop any directory component, whichever separator was used.
	if i := strings.LastIndexAny(filename, `/\`); i >= 0 {
		filename = filename[i+1:]
	}
	filename = strings.ReplaceAll(filename, " ", "_")
	filename = unsafeChars.ReplaceAllString(filename, "")
	filename = strings.TrimLeft(filename, ".")
	return filename
}
