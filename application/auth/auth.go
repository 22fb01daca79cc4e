package auth

import (
	"context"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	"github.com/muhammadheryan/restock/cmd/config"
	redisrepo "github.com/muhammadheryan/restock/repository/redis"
)

// AuthApp validates bearer tokens issued by the account service and resolves
// the tenant they are scoped to.
type AuthApp interface {
	ValidateToken(ctx context.Context, tokenString string) (uint64, error)
}

type authAppImpl struct {
	config    *config.Config
	redisRepo redisrepo.Repository
}

func NewAuthApp(config *config.Config, redisRepo redisrepo.Repository) AuthApp {
	return &authAppImpl{
		config:    config,
		redisRepo: redisRepo,
	}
}

func (s *authAppImpl) ValidateToken(ctx context.Context, tokenString string) (uint64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return 0, fmt.Errorf("invalid claims")
	}

	// Subject carries the tenant id
	tenantID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || tenantID == 0 {
		return 0, fmt.Errorf("invalid tenant id in token")
	}

	jti := claims.ID
	if jti == "" {
		return 0, fmt.Errorf("token missing jti")
	}

	// The session must still be alive and bound to the same tenant
	sessionTenantID, err := s.redisRepo.GetSession(ctx, jti)
	if err != nil {
		return 0, fmt.Errorf("invalid or expired session")
	}
	if sessionTenantID != tenantID {
		return 0, fmt.Errorf("token does not match session")
	}

	return tenantID, nil
}
