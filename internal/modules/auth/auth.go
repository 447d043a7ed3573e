package auth

import (
	"context"

	"github.com/dgrijalva/jwt-go"
	"github.com/ecobazaar/ecobazaar-backend/internal/modules/user"
)

// Service defines the interface for authentication-related business logic.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*Session, error)
	Login(ctx context.Context, email, password string) (*Session, error)
}

// RegisterRequest holds the data for creating a new account.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	ShopName string `json:"shop_name,omitempty"`
}

// Session is returned after a successful login or registration.
type Session struct {
	Token string     `json:"token"`
	User  *user.User `json:"user"`
}

// Claims are the JWT claims carried by every authenticated request.
type Claims struct {
	jwt.StandardClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

type contextKey struct{}

// ClaimsFromContext returns the claims stored by the middleware, if any.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(contextKey{}).(*Claims)
	return c, ok
}

func contextWithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}
