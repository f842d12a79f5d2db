package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"portfolio/internal/model"
)

func testOwner() *model.Owner {
	return &model.Owner{
		ID:    1,
		Name:  "Site Owner",
		Email: "owner@example.com",
		Role:  model.RoleOwner,
	}
}

func TestTokenService_AccessTokenRoundtrip(t *testing.T) {
	svc := NewTokenService("access-secret", "refresh-secret", 7, 30)

	raw, err := svc.IssueAccessToken(testOwner())
	assert.NoError(t, err)
	assert.NotEmpty(t, raw)

	claims, err := svc.VerifyAccessToken(raw)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)
	assert.Equal(t, "owner@example.com", claims.Email)
	assert.Equal(t, model.RoleOwner, claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestTokenService_RefreshTokenRoundtrip(t *testing.T) {
	svc := NewTokenService("access-secret", "refresh-secret", 7, 30)

	raw, err := svc.IssueRefreshToken(testOwner())
	assert.NoError(t, err)

	claims, err := svc.VerifyRefreshToken(raw)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)
	assert.NotEmpty(t, claims.ID)
}

func TestTokenService_ExpiredToken(t *testing.T) {
	expired := NewTokenService("access-secret", "refresh-secret", -1, -1)

	raw, err := expired.IssueAccessToken(testOwner())
	assert.NoError(t, err)

	_, err = expired.VerifyAccessToken(raw)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.NotErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_MalformedToken(t *testing.T) {
	svc := NewTokenService("access-secret", "refresh-secret", 7, 30)

	tests := []struct {
		name string
		raw  string
	}{
		{"garbage", "not-a-token"},
		{"empty", ""},
		{"truncated", "eyJhbGciOiJIUzI1NiJ9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.VerifyAccessToken(tt.raw)
			assert.ErrorIs(t, err, ErrTokenInvalid)
		})
	}
}

func TestTokenService_CrossSecretRejection(t *testing.T) {
	svc := NewTokenService("access-secret", "refresh-secret", 7, 30)

	// an access token must not verify as a refresh token and vice versa
	access, err := svc.IssueAccessToken(testOwner())
	assert.NoError(t, err)
	_, err = svc.VerifyRefreshToken(access)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	refresh, err := svc.IssueRefreshToken(testOwner())
	assert.NoError(t, err)
	_, err = svc.VerifyAccessToken(refresh)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_DifferentServiceSecrets(t *testing.T) {
	issuer := NewTokenService("secret-a", "refresh-a", 7, 30)
	verifier := NewTokenService("secret-b", "refresh-b", 7, 30)

	raw, err := issuer.IssueAccessToken(testOwner())
	assert.NoError(t, err)

	_, err = verifier.VerifyAccessToken(raw)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
