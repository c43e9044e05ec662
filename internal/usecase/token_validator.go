package usecase

import (
	"seckill-service/internal/domain/auth"
	"seckill-service/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator resolves a bearer token to the buyer and their role.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, auth.Role, error)
}

type tokenValidator struct {
	jwt *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidator{jwt: jwtService}
}

func (v *tokenValidator) ValidateToken(tokenString string) (uuid.UUID, auth.Role, error) {
	claims, err := v.jwt.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}
	userID, err := claims.UserID()
	if err != nil {
		return uuid.Nil, "", err
	}
	role, err := auth.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", err
	}
	return userID, role, nil
}
