package usecase

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"linkup/internal/entity"
	"linkup/pkg/config"
	"linkup/pkg/logger"
)

// uploadsPublicPrefix is the public object path under the storage base URL.
const uploadsPublicPrefix = "/storage/v1/object/public/uploads/"

// BlobStore is the object storage surface the media adapter needs.
// *s3.Client satisfies it.
type BlobStore interface {
	PutObject(key string, body io.Reader, contentType string) error
	GetObject(key string) ([]byte, error)
}

type MediaUseCase interface {
	// ResolveDisplayURL turns a stored path into a fetchable URL. Empty paths
	// resolve to the placeholder image; absolute URLs pass through unchanged.
	ResolveDisplayURL(path string) string
	// Upload pushes a local media handle to object storage and returns the
	// public URL. Object names are <folder>/<unix-ms> with a fixed extension
	// per media kind; an existing name fails the upload rather than
	// overwriting it.
	Upload(folder string, media *entity.LocalMedia) (string, error)
	// Download stages a stored object at a deterministic local path derived
	// from the object's filename.
	Download(remoteURL string) (string, error)
}

type mediaUseCase struct {
	store       BlobStore
	baseURL     string
	placeholder string
	mediaDir    string
	logger      *logger.Logger
	now         func() time.Time
}

func NewMediaUseCase(store BlobStore, cfg *config.Config, log *logger.Logger) MediaUseCase {
	return &mediaUseCase{
		store:       store,
		baseURL:     strings.TrimSuffix(cfg.StorageBaseURL, "/"),
		placeholder: cfg.PlaceholderImage,
		mediaDir:    cfg.MediaDir,
		logger:      log,
		now:         time.Now,
	}
}

func (uc *mediaUseCase) publicURL(name string) string {
	return uc.baseURL + uploadsPublicPrefix + name
}

func (uc *mediaUseCase) ResolveDisplayURL(storedPath string) string {
	if storedPath == "" {
		return uc.publicURL(uc.placeholder)
	}
	if strings.HasPrefix(storedPath, "http://") || strings.HasPrefix(storedPath, "https://") {
		return storedPath
	}
	return uc.publicURL(storedPath)
}

func (uc *mediaUseCase) Upload(folder string, media *entity.LocalMedia) (string, error) {
	if media == nil {
		return "", fmt.Errorf("no local media to upload")
	}

	ext, contentType := ".mp4", "video/*"
	if media.Type == entity.MediaImage {
		ext, contentType = ".png", "image/*"
	}
	name := fmt.Sprintf("%s/%d%s", folder, uc.now().UnixMilli(), ext)

	data, err := readLocalFile(media.URI)
	if err != nil {
		return "", fmt.Errorf("could not read local media: %w", err)
	}

	if err := uc.store.PutObject(name, bytes.NewReader(data), contentType); err != nil {
		return "", fmt.Errorf("could not upload media: %w", err)
	}

	return uc.publicURL(name), nil
}

func (uc *mediaUseCase) Download(remoteURL string) (string, error) {
	idx := strings.Index(remoteURL, uploadsPublicPrefix)
	if idx < 0 {
		return "", fmt.Errorf("not a managed storage URL: %s", remoteURL)
	}
	key := remoteURL[idx+len(uploadsPublicPrefix):]
	if key == "" {
		return "", fmt.Errorf("storage URL has no object name: %s", remoteURL)
	}

	data, err := uc.store.GetObject(key)
	if err != nil {
		return "", fmt.Errorf("could not download media: %w", err)
	}

	localPath := filepath.Join(uc.mediaDir, path.Base(key))
	if err := os.WriteFile(localPath, data, 0o644); err != nil {
		return "", fmt.Errorf("could not stage media locally: %w", err)
	}
	return localPath, nil
}

func readLocalFile(uri string) ([]byte, error) {
	return os.ReadFile(strings.TrimPrefix(uri, "file://"))
}
