package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewS3ClientWithoutCredentials(t *testing.T) {
	client, err := NewS3Client("", "us-east-1", "", "", "media", "")
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestNewS3ClientRequiresBucket(t *testing.T) {
	_, err := NewS3Client("https://s3.example.com", "us-east-1", "key", "secret", "", "")
	assert.Error(t, err)
}

func TestFileURL(t *testing.T) {
	client, err := NewS3Client("https://s3.example.com/", "us-east-1", "key", "secret", "media", "")
	require.NoError(t, err)
	assert.Equal(t, "https://s3.example.com/media/newsportal/a.png", client.FileURL("newsportal/a.png"))

	cdn, err := NewS3Client("https://s3.example.com", "us-east-1", "key", "secret", "media", "https://cdn.example.com/")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/newsportal/a.png", cdn.FileURL("newsportal/a.png"))
}
