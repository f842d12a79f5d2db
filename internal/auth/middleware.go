package auth

import (
	"errors"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apierrors "portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

const (
	claimsContextKey   = "user"
	identityContextKey = "identity"
)

// Identity is the authenticated principal attached to the request context.
type Identity struct {
	ID    uint
	Email string
	Role  model.Role
}

// Authenticate verifies the access token. Lookup order: cookie "token", then
// the Authorization header with a Bearer prefix, then the raw header value.
func Authenticate(tokens *TokenService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  claimsContextKey,
		TokenLookup: "cookie:token,header:Authorization:Bearer ,header:Authorization",
		ParseTokenFunc: func(c echo.Context, raw string) (interface{}, error) {
			return tokens.VerifyAccessToken(raw)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			switch {
			case errors.Is(err, ErrTokenExpired):
				return apierrors.Unauthorized("Token expired")
			case errors.Is(err, ErrTokenInvalid):
				return apierrors.Unauthorized("Invalid token")
			default:
				// no token found in cookie or headers
				return apierrors.Unauthorized("Authentication required")
			}
		},
	})
}

// LoadIdentity resolves verified claims into a live account. It rejects
// revoked tokens and tokens whose account has since disappeared.
func LoadIdentity(store TokenStoreInterface, owners repository.OwnerRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(claimsContextKey).(*AccessClaims)
			if !ok {
				return apierrors.Unauthorized("Authentication required")
			}
			ctx := c.Request().Context()
			if denied, _ := store.IsTokenDenied(ctx, claims.ID); denied {
				return apierrors.Unauthorized("Invalid token")
			}
			owner, err := owners.FindByID(ctx, claims.UserID)
			if err != nil {
				return apierrors.Unauthorized("User not found")
			}
			c.Set(identityContextKey, &Identity{ID: owner.ID, Email: owner.Email, Role: owner.Role})
			return next(c)
		}
	}
}

// RequireOwner allows only OWNER and ADMIN roles through.
func RequireOwner(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ident := IdentityFrom(c)
		if ident == nil {
			return apierrors.Unauthorized("Authentication required")
		}
		if !ident.Role.IsPrivileged() {
			return apierrors.Forbidden("Access denied. Owner privileges required.")
		}
		return next(c)
	}
}

// IdentityFrom returns the authenticated identity, or nil before LoadIdentity.
func IdentityFrom(c echo.Context) *Identity {
	ident, _ := c.Get(identityContextKey).(*Identity)
	return ident
}

// ClaimsFrom returns the verified access claims, or nil before Authenticate.
func ClaimsFrom(c echo.Context) *AccessClaims {
	claims, _ := c.Get(claimsContextKey).(*AccessClaims)
	return claims
}
