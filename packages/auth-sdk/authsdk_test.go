package authsdk

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/metadata"
)

const secret = "test-secret-key"

func sign(t *testing.T, key string, method jwt.SigningMethod, expiresIn time.Duration) string {
	t.Helper()
	claims := &Claims{
		UserID:   7,
		Username: "alice",
		Role:     "moderator",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return token
}

func TestParseToken(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"valid", sign(t, secret, jwt.SigningMethodHS256, time.Hour), nil},
		{"empty", "", ErrNoToken},
		{"garbage", "not-a-jwt", ErrInvalidToken},
		{"wrong secret", sign(t, "other", jwt.SigningMethodHS256, time.Hour), ErrInvalidToken},
		{"expired", sign(t, secret, jwt.SigningMethodHS256, -time.Minute), ErrExpiredToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := ParseToken(tt.token, secret)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint(7), user.UserID)
			assert.Equal(t, "alice", user.Username)
			assert.Equal(t, "moderator", user.Role)
		})
	}
}

func TestParseToken_EmptySecret(t *testing.T) {
	forged := sign(t, "", jwt.SigningMethodHS256, time.Hour)

	user, err := ParseToken(forged, "")
	assert.ErrorIs(t, err, ErrEmptySecret)
	assert.Nil(t, user)

	_, err = ParseToken(forged, secret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractBearer(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr error
	}{
		{"Bearer abc", "abc", nil},
		{"bearer abc", "abc", nil},
		{"", "", ErrNoToken},
		{"Basic abc", "", ErrInvalidToken},
		{"Bearer ", "", ErrInvalidToken},
		{"abc", "", ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ExtractBearer(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetUserFromContext(t *testing.T) {
	token := sign(t, secret, jwt.SigningMethodHS256, time.Hour)

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer "+token))
	assert.Equal(t, uint(7), GetUserFromContext(ctx, secret).UserID)

	ctx = metadata.NewIncomingContext(context.Background(), metadata.Pairs("x-access-token", token))
	assert.Equal(t, "alice", GetUserFromContext(ctx, secret).Username)

	assert.Zero(t, GetUserFromContext(context.Background(), secret).UserID)

	ctx = metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer junk"))
	assert.Zero(t, GetUserFromContext(ctx, secret).UserID)

	forged := sign(t, "", jwt.SigningMethodHS256, time.Hour)
	ctx = metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer "+forged))
	assert.Zero(t, GetUserFromContext(ctx, "").UserID)
}
