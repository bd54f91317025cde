package pkg

import (
	"time"

	"github.com/SergSukh/api-yamdb-33-all/config"
	"github.com/SergSukh/api-yamdb-33-all/internal/model/user"
	authsdk "github.com/SergSukh/api-yamdb-33-all/packages/auth-sdk"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateAccessToken signs an HS256 bearer token for u.
func GenerateAccessToken(u *user.User) (string, error) {
	if config.Conf.JWT.Secret == "" {
		return "", authsdk.ErrEmptySecret
	}

	now := time.Now()
	expirationTime := now.Add(time.Duration(config.Conf.JWT.ExpireTime) * time.Hour)

	claims := &authsdk.Claims{
		UserID:   u.ID,
		Username: u.Username,
		Role:     u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.JWT.Secret))
}

// ParseAccessToken verifies a token issued by GenerateAccessToken.
func ParseAccessToken(tokenString string) (*authsdk.UserContext, error) {
	return authsdk.ParseToken(tokenString, config.Conf.JWT.Secret)
}
