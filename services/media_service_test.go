package services

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"newsportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	objects      map[string][]byte
	contentTypes map[string]string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{objects: map[string][]byte{}, contentTypes: map[string]string{}}
}

func (m *memoryStore) Upload(_ context.Context, key, contentType string, body io.Reader, _ int64) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	m.objects[key] = data
	m.contentTypes[key] = contentType
	return nil
}

func (m *memoryStore) FileURL(key string) string {
	return "https://cdn.example.com/" + key
}

var pngImage = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a,
	0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89,
}

func TestUploadImage(t *testing.T) {
	store := newMemoryStore()
	svc := NewMediaService(store, "/newsportal/", 1024)
	actor := models.Identity{ID: 1, Role: models.RoleEditor}

	response, err := svc.UploadImage(context.Background(), actor, bytes.NewReader(pngImage), int64(len(pngImage)))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(response.URL, "https://cdn.example.com/newsportal/"))
	assert.True(t, strings.HasSuffix(response.URL, ".png"))

	require.Len(t, store.objects, 1)
	for key, data := range store.objects {
		assert.Equal(t, pngImage, data)
		assert.Equal(t, "image/png", store.contentTypes[key])
	}
}

func TestUploadImageRejections(t *testing.T) {
	ctx := context.Background()
	actor := models.Identity{ID: 1, Role: models.RoleAdmin}
	svc := NewMediaService(newMemoryStore(), "media", 16)

	_, err := svc.UploadImage(ctx, actor, bytes.NewReader(pngImage), int64(len(pngImage)))
	assert.IsType(t, models.ErrorBadRequest{}, err)

	_, err = svc.UploadImage(ctx, actor, bytes.NewReader(nil), 0)
	assert.IsType(t, models.ErrorBadRequest{}, err)

	text := []byte("just some text")
	_, err = svc.UploadImage(ctx, actor, bytes.NewReader(text), int64(len(text)))
	assert.IsType(t, models.ErrorBadRequest{}, err)

	_, err = svc.UploadImage(ctx, models.Identity{ID: 2, Role: models.RoleUser}, bytes.NewReader(pngImage), int64(len(pngImage)))
	assert.IsType(t, models.ErrorForbidden{}, err)

	_, err = NewMediaService(nil, "media", 1024).UploadImage(ctx, actor, bytes.NewReader(pngImage), int64(len(pngImage)))
	assert.IsType(t, models.ErrorUnavailable{}, err)
}
