package token

import (
	"context"
	"testing"
	"time"

	"github.com/SergSukh/api-yamdb-33-all/config"
	"github.com/SergSukh/api-yamdb-33-all/internal/model/user"
	"github.com/SergSukh/api-yamdb-33-all/internal/pkg"
	"github.com/SergSukh/api-yamdb-33-all/internal/testutils"
	userPkg "github.com/SergSukh/api-yamdb-33-all/internal/user"
	"github.com/SergSukh/api-yamdb-33-all/packages/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_Exchange(t *testing.T) {
	config.Conf = &config.AppConfig{JWT: config.JWTConfig{Secret: "test-secret-key", ExpireTime: 1}}
	db := testutils.SetupTestDB(t)
	ctx := context.Background()

	pending := testutils.CreateTestUser(db,
		testutils.WithUsername("alice"),
		testutils.WithConfirmationCode("right-code"),
	)
	require.False(t, pending.Confirmed())

	repo := userPkg.NewUserRepository(db)
	service := NewTokenService(repo)
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	service.now = func() time.Time { return fixed }

	t.Run("unknown username", func(t *testing.T) {
		_, err := service.Exchange(ctx, TokenRequest{Username: "nobody", ConfirmationCode: "right-code"})
		require.NotNil(t, err)
		assert.Equal(t, response.NotFound, err.Code)
	})

	t.Run("wrong code", func(t *testing.T) {
		_, err := service.Exchange(ctx, TokenRequest{Username: "alice", ConfirmationCode: "wrong"})
		require.NotNil(t, err)
		assert.Equal(t, response.InvalidCredentials, err.Code)
		assert.Equal(t, 400, err.Status())

		stored, findErr := repo.FindByUsername(ctx, "alice")
		require.NoError(t, findErr)
		assert.False(t, stored.Confirmed())
	})

	t.Run("correct code twice", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			resp, err := service.Exchange(ctx, TokenRequest{Username: "alice", ConfirmationCode: "right-code"})
			require.Nil(t, err)

			claims, parseErr := pkg.ParseAccessToken(resp.Token)
			require.NoError(t, parseErr)
			assert.Equal(t, pending.ID, claims.UserID)
			assert.Equal(t, user.RoleUser, claims.Role)
		}

		var count int64
		require.NoError(t, db.Model(&user.User{}).Where("username = ?", "alice").Count(&count).Error)
		assert.Equal(t, int64(1), count)

		stored, err := repo.FindByUsername(ctx, "alice")
		require.NoError(t, err)
		require.True(t, stored.Confirmed())
		assert.True(t, stored.ConfirmedAt.Equal(fixed))
	})
}
