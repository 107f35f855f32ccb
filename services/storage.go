// services/storage.go
package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"beautybook-backend/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// MediaStorage wraps the Cloudinary client used for business photos.
type MediaStorage struct {
	cld    *cloudinary.Cloudinary
	folder string
}

var (
	mediaOnce sync.Once
	media     *MediaStorage
	mediaErr  error
)

// GetMediaStorage lazily initializes the Cloudinary client from config.
func GetMediaStorage() (*MediaStorage, error) {
	mediaOnce.Do(func() {
		cfg := config.AppConfig
		if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
			mediaErr = errors.New("cloudinary credentials not configured")
			return
		}
		cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			mediaErr = fmt.Errorf("failed to initialize cloudinary: %w", err)
			return
		}
		media = &MediaStorage{cld: cld, folder: cfg.CloudinaryFolder}
	})
	return media, mediaErr
}

// UploadBase64 stores a data-URI or raw base64 image and returns its storage key.
func (s *MediaStorage) UploadBase64(ctx context.Context, data, publicID string) (string, error) {
	if data == "" {
		return "", errors.New("empty image payload")
	}
	if !strings.HasPrefix(data, "data:") {
		data = "data:image/jpeg;base64," + data
	}

	resp, err := s.cld.Upload.Upload(ctx, data, uploader.UploadParams{
		PublicID: publicID,
		Folder:   s.folder,
	})
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}
	return resp.PublicID, nil
}

// SignedURL builds a signed delivery URL for a storage key.
func (s *MediaStorage) SignedURL(key string) (string, error) {
	img, err := s.cld.Image(key)
	if err != nil {
		return "", fmt.Errorf("invalid storage key: %w", err)
	}
	img.Config.URL.SignURL = true
	return img.String()
}

// Destroy removes a stored image by key.
func (s *MediaStorage) Destroy(ctx context.Context, key string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: key})
	return err
}

// ParseStorageKey accepts either a bare storage key or a full delivery URL
// and returns the key. Full URLs must contain an /image/upload/ segment.
func ParseStorageKey(raw string) (string, error) {
	if raw == "" {
		return "", errors.New("missing key")
	}
	if !strings.Contains(raw, "://") {
		return raw, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("malformed storage URL: %w", err)
	}
	const marker = "/image/upload/"
	idx := strings.Index(u.Path, marker)
	if idx == -1 {
		return "", errors.New("malformed storage URL: missing upload segment")
	}
	key := u.Path[idx+len(marker):]
	// Strip a version prefix like v1712345678/.
	if parts := strings.SplitN(key, "/", 2); len(parts) == 2 && strings.HasPrefix(parts[0], "v") {
		allDigits := len(parts[0]) > 1
		for _, r := range parts[0][1:] {
			if r < '0' || r > '9' {
				allDigits = false
				break
			}
		}
		if allDigits {
			key = parts[1]
		}
	}
	// Strip the file extension.
	if dot := strings.LastIndex(key, "."); dot > strings.LastIndex(key, "/") {
		key = key[:dot]
	}
	if key == "" {
		return "", errors.New("malformed storage URL: empty key")
	}
	return key, nil
}
