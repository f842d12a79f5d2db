package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"portfolio/internal/auth"
	apierrors "portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/validation"
)

const bcryptCost = 12

// LoginResult is the public-safe outcome of a successful login.
type LoginResult struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         *model.Owner `json:"user"`
}

// ProfileUpdate carries the mutable profile fields; empty values are skipped.
type ProfileUpdate struct {
	Name    string `json:"name"`
	Bio     string `json:"bio"`
	Phone   string `json:"phone"`
	Picture string `json:"picture"`
}

// AuthService handles the session lifecycle for the owner account.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (accessToken string, err error)
	Logout(ctx context.Context, claims *auth.AccessClaims, refreshToken string) error
	ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error
	GetProfile(ctx context.Context, userID uint) (*model.Owner, error)
	UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) (*model.Owner, error)
}

type authService struct {
	owners     repository.OwnerRepository
	tokens     *auth.TokenService
	tokenStore auth.TokenStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(owners repository.OwnerRepository, tokens *auth.TokenService, tokenStore auth.TokenStoreInterface) AuthService {
	return &authService{
		owners:     owners,
		tokens:     tokens,
		tokenStore: tokenStore,
	}
}

// Login authenticates the owner and returns a token pair. An unknown email
// and a wrong password fail identically to resist account enumeration.
func (s *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if !validation.IsEmail(email) {
		return nil, apierrors.BadRequest("Valid email is required")
	}
	if password == "" {
		return nil, apierrors.BadRequest("Password is required")
	}

	owner, err := s.owners.FindByEmail(ctx, email)
	if err != nil {
		return nil, apierrors.Unauthorized("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(owner.PasswordHash), []byte(password)); err != nil {
		return nil, apierrors.Unauthorized("Invalid credentials")
	}

	accessToken, err := s.tokens.IssueAccessToken(owner)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokens.IssueRefreshToken(owner)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         owner,
	}, nil
}

// RefreshToken exchanges a valid refresh token for a new access token. The
// refresh token itself is not rotated.
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", apierrors.Unauthorized("Refresh token is required")
	}

	claims, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			return "", apierrors.Unauthorized("Refresh token expired")
		}
		return "", apierrors.Unauthorized("Invalid refresh token")
	}
	if denied, _ := s.tokenStore.IsTokenDenied(ctx, claims.ID); denied {
		return "", apierrors.Unauthorized("Invalid refresh token")
	}

	// re-fetch handles an account deleted after token issuance
	owner, err := s.owners.FindByID(ctx, claims.UserID)
	if err != nil {
		return "", apierrors.Unauthorized("User not found")
	}

	return s.tokens.IssueAccessToken(owner)
}

// Logout revokes the presented tokens until their natural expiry. Revocation
// is best effort; clearing the client cookies is the handler's job.
func (s *authService) Logout(ctx context.Context, claims *auth.AccessClaims, refreshToken string) error {
	if claims != nil && claims.ExpiresAt != nil {
		_ = s.tokenStore.DenyToken(ctx, claims.ID, time.Until(claims.ExpiresAt.Time))
	}
	if refreshToken != "" {
		if rc, err := s.tokens.VerifyRefreshToken(refreshToken); err == nil && rc.ExpiresAt != nil {
			_ = s.tokenStore.DenyToken(ctx, rc.ID, time.Until(rc.ExpiresAt.Time))
		}
	}
	return nil
}

// ChangePassword verifies the current password and stores a new hash.
// Previously issued tokens stay valid until they expire.
func (s *authService) ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return apierrors.BadRequest("Both old and new passwords are required")
	}
	if msg := validation.CheckPassword(newPassword); msg != "" {
		return apierrors.BadRequest(msg)
	}

	owner, err := s.owners.FindByID(ctx, userID)
	if err != nil {
		return apierrors.NotFound("User not found")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(owner.PasswordHash), []byte(oldPassword)); err != nil {
		return apierrors.Unauthorized("Current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return err
	}
	owner.PasswordHash = string(hash)
	return s.owners.Update(ctx, owner)
}

func (s *authService) GetProfile(ctx context.Context, userID uint) (*model.Owner, error) {
	owner, err := s.owners.FindByID(ctx, userID)
	if err != nil {
		return nil, apierrors.NotFound("User not found")
	}
	return owner, nil
}

// UpdateProfile applies the provided (non-empty) profile fields.
func (s *authService) UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) (*model.Owner, error) {
	owner, err := s.owners.FindByID(ctx, userID)
	if err != nil {
		return nil, apierrors.NotFound("User not found")
	}
	if update.Name != "" {
		owner.Name = update.Name
	}
	if update.Bio != "" {
		owner.Bio = update.Bio
	}
	if update.Phone != "" {
		owner.Phone = update.Phone
	}
	if update.Picture != "" {
		owner.Picture = update.Picture
	}
	if err := s.owners.Update(ctx, owner); err != nil {
		return nil, err
	}
	return owner, nil
}
