package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/linque-cms/internal/config"
	"github.com/linque-cms/internal/logger"
	"github.com/linque-cms/internal/storage"
)

// UploadService validates post asset uploads and writes them to the bucket.
type UploadService struct {
	cfg   *config.Config
	store storage.Storage
}

// NewUploadService creates an upload service. Pass a nil store when no bucket
// is configured; every upload then fails with ErrStorageNotConfigured.
func NewUploadService(cfg *config.Config, store storage.Storage) *UploadService {
	return &UploadService{cfg: cfg, store: store}
}

// SaveAsset uploads one file under the given post slug and returns its public
// URL. Keys follow posts/<slug>/<timestamp>-<name><ext> with both slug and
// name sanitized to URL-safe form.
func (s *UploadService) SaveAsset(ctx context.Context, file *multipart.FileHeader, postSlug string) (string, error) {
	if s.store == nil {
		return "", ErrStorageNotConfigured
	}
	if file.Size > s.cfg.Upload.MaxSize {
		return "", fmt.Errorf("%w: file exceeds %d MB limit", ErrInvalidInput, s.cfg.Upload.MaxSize/1024/1024)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if len(s.cfg.Upload.AllowedExtensions) > 0 {
		if ext == "" || !isAllowedExtension(ext, s.cfg.Upload.AllowedExtensions) {
			return "", fmt.Errorf("%w: extension %q not allowed", ErrInvalidInput, ext)
		}
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// Sniff the real MIME type from the header bytes rather than trusting
	// the client-sent value.
	buffer := make([]byte, 512)
	if _, err := src.Read(buffer); err != nil && err != io.EOF {
		return "", err
	}
	if _, err := src.Seek(0, 0); err != nil {
		return "", err
	}
	contentType := http.DetectContentType(buffer)
	if len(s.cfg.Upload.AllowedTypes) > 0 {
		allowed := false
		for _, t := range s.cfg.Upload.AllowedTypes {
			if strings.EqualFold(contentType, t) {
				allowed = true
				break
			}
		}
		if !allowed {
			return "", fmt.Errorf("%w: content type %q not allowed", ErrInvalidInput, contentType)
		}
	}

	base := strings.TrimSuffix(file.Filename, filepath.Ext(file.Filename))
	key := AssetKey(postSlug, base, ext, time.Now())
	if err := s.store.Upload(ctx, key, src, contentType); err != nil {
		return "", fmt.Errorf("upload asset: %w", err)
	}

	url := strings.TrimRight(s.cfg.Storage.PublicBaseURL, "/") + "/" + key
	logger.Infow("asset_uploaded", "key", key, "content_type", contentType, "size", file.Size)
	return url, nil
}

// AssetKey builds the bucket key for one uploaded asset. name may be a full
// filename; a trailing extension matching ext is dropped so it is not
// doubled into the key.
func AssetKey(postSlug, name, ext string, now time.Time) string {
	if trailing := filepath.Ext(name); trailing != "" && strings.EqualFold(trailing, ext) {
		name = strings.TrimSuffix(name, trailing)
	}
	return fmt.Sprintf("posts/%s/%d-%s%s", slugify(postSlug), now.UnixMilli(), slugify(name), ext)
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// slugify lowercases and collapses everything outside [a-z0-9] into single
// hyphens. Inputs that sanitize to nothing become "untitled" so keys never
// contain empty path segments.
func slugify(raw string) string {
	value := nonSlugChars.ReplaceAllString(strings.ToLower(raw), "-")
	value = strings.Trim(value, "-")
	if value == "" {
		return "untitled"
	}
	return value
}

func isAllowedExtension(ext string, allowed []string) bool {
	for _, allowedExt := range allowed {
		normalized := strings.ToLower(strings.TrimSpace(allowedExt))
		if normalized == "" {
			continue
		}
		if !strings.HasPrefix(normalized, ".") {
			normalized = "." + normalized
		}
		if strings.EqualFold(ext, normalized) {
			return true
		}
	}
	return false
}
