package jwt

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service verifies access tokens issued by the identity provider and
// exposes the claims the attendance API relies on. Token issuance
// (login, refresh, SSO) happens outside this service.
type Service interface {
	JWTAuth() *jwtauth.JWTAuth
	Identity(ctx context.Context) (Identity, error)
}

// Identity is the caller identity carried in access-token claims.
type Identity struct {
	UserID   string
	UserName string
	Role     string
}

type JWTService struct {
	secretKey string
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string) Service {
	return &JWTService{
		secretKey: secretKey,
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// Identity extracts the caller identity from the verified token in ctx.
func (j *JWTService) Identity(ctx context.Context) (Identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Identity{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Identity{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)

	return Identity{
		UserID:   userID,
		UserName: name,
		Role:     role,
	}, nil
}
