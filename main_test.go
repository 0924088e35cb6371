package main

import (
	"testing"

	"newsportal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunReturnsConfigErrors(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", config.DefaultJWTSecret)

	err := run(false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestRunReturnsDatabaseErrors(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("DB_HOST", "127.0.0.1")
	t.Setenv("DB_PORT", "1")

	err := run(false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connect database")
}
