package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"newsportal/models"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// sniffLength is how many leading bytes are inspected to detect the image type.
const sniffLength = 3072

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ObjectStore is the external media service: it keeps uploaded bytes and
// hands back a stable public URL for them.
type ObjectStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	FileURL(key string) string
}

type MediaService interface {
	UploadImage(ctx context.Context, actor models.Identity, body io.Reader, size int64) (*models.MediaUploadResponse, error)
}

type mediaService struct {
	store    ObjectStore
	folder   string
	maxBytes int64
}

// NewMediaService accepts a nil store; uploads then fail as unavailable.
func NewMediaService(store ObjectStore, folder string, maxBytes int64) MediaService {
	return &mediaService{
		store:    store,
		folder:   strings.Trim(folder, "/"),
		maxBytes: maxBytes,
	}
}

// UploadImage checks size and content type, stores the image and returns
// its URL. The image itself is never transformed.
func (s *mediaService) UploadImage(ctx context.Context, actor models.Identity, body io.Reader, size int64) (*models.MediaUploadResponse, error) {
	if err := authorize(actor); err != nil {
		return nil, err
	}
	if s.store == nil {
		return nil, models.ErrorUnavailable{Message: "Media storage is not configured"}
	}
	if size <= 0 {
		return nil, models.ErrorBadRequest{Message: "File is empty"}
	}
	if size > s.maxBytes {
		return nil, models.ErrorBadRequest{Message: fmt.Sprintf("File exceeds the %d byte limit", s.maxBytes)}
	}

	head := make([]byte, sniffLength)
	n, err := io.ReadFull(body, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	head = head[:n]

	contentType := mimetype.Detect(head).String()
	ext, ok := imageExtensions[contentType]
	if !ok {
		return nil, models.ErrorBadRequest{Message: "Unsupported image type " + contentType}
	}

	key := uuid.NewString() + ext
	if s.folder != "" {
		key = s.folder + "/" + key
	}

	reader := io.MultiReader(bytes.NewReader(head), body)
	if err := s.store.Upload(ctx, key, contentType, reader, size); err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}

	log.WithFields(log.Fields{"key": key, "size": size, "actor_id": actor.ID}).Info("image uploaded")
	return &models.MediaUploadResponse{URL: s.store.FileURL(key)}, nil
}
