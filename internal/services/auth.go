package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	pkgerrors "github.com/algeria-ecosystem/ecosystem/internal/pkg/errors"
	"github.com/algeria-ecosystem/ecosystem/internal/pkg/logger"
)

type JWTClaims struct {
	jwt.RegisteredClaims
}

// AuthService is the one authorization rule in the system: admin tasks carry a
// bearer credential, the service resolves it to a caller identity, and
// everything else is public.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
}

type authService struct {
	log               *logger.Logger
	jwtSecretKey      string
	tokenTTL          time.Duration
	adminEmail        string
	adminPasswordHash string
}

func NewAuthService(
	log *logger.Logger,
	jwtSecretKey string,
	tokenTTL time.Duration,
	adminEmail string,
	adminPasswordHash string,
) AuthService {
	serviceLog := log.With("service", "AuthService")
	return &authService{
		log:               serviceLog,
		jwtSecretKey:      jwtSecretKey,
		tokenTTL:          tokenTTL,
		adminEmail:        adminEmail,
		adminPasswordHash: adminPasswordHash,
	}
}

// Login checks the configured admin credentials and mints the bearer token
// the admin tasks require. With no configured credentials it always fails.
func (as *authService) Login(ctx context.Context, email, password string) (string, error) {
	if as.adminEmail == "" || as.adminPasswordHash == "" {
		return "", fmt.Errorf("%w: admin login is not configured", pkgerrors.ErrUnauthorized)
	}
	if email != as.adminEmail {
		return "", fmt.Errorf("%w: unknown admin", pkgerrors.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(as.adminPasswordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("%w: bad credentials", pkgerrors.ErrUnauthorized)
	}

	claims := JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(as.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(as.jwtSecretKey))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// SetContextFromToken resolves a bearer token to a caller identity and
// attaches it to the context. A missing or unresolvable token is an
// ErrUnauthorized; data is never touched on that path.
func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	if tokenString == "" {
		return ctx, fmt.Errorf("%w: missing bearer token", pkgerrors.ErrUnauthorized)
	}
	parsedToken, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(as.jwtSecretKey), nil
	})
	if err != nil {
		return ctx, fmt.Errorf("%w: %v", pkgerrors.ErrUnauthorized, err)
	}
	claims, ok := parsedToken.Claims.(*JWTClaims)
	if !ok || !parsedToken.Valid {
		return ctx, fmt.Errorf("%w: invalid or expired token", pkgerrors.ErrUnauthorized)
	}
	return WithIdentity(ctx, &Identity{Subject: claims.Subject}), nil
}
