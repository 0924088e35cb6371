package services

import (
	"testing"

	"newsportal/models"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	f := newFixture(t)

	response, err := f.auth.Login(f.ctx, models.LoginRequest{Email: "editor@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, f.editor.ID, response.User.ID)
	assert.Equal(t, models.RoleEditor, response.User.Role)

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(response.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, float64(f.editor.ID), claims["user_id"])
	assert.Equal(t, "EDITOR", claims["role"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	f := newFixture(t)

	_, err := f.auth.Login(f.ctx, models.LoginRequest{Email: "editor@example.com", Password: "wrong"})
	assert.IsType(t, models.ErrorUnauthorized{}, err)

	_, err = f.auth.Login(f.ctx, models.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.IsType(t, models.ErrorUnauthorized{}, err)

	_, err = f.auth.Login(f.ctx, models.LoginRequest{Email: "not-an-email", Password: "password123"})
	assert.IsType(t, models.ErrorBadRequest{}, err)
}

func TestGetUserByID(t *testing.T) {
	f := newFixture(t)

	user, err := f.auth.GetUserByID(f.ctx, f.admin.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", user.Email)

	_, err = f.auth.GetUserByID(f.ctx, 9999)
	assert.IsType(t, models.ErrorNotFound{}, err)
}
