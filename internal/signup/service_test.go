package signup

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/SergSukh/api-yamdb-33-all/internal/pkg"
	"github.com/SergSukh/api-yamdb-33-all/internal/testutils"
	"github.com/SergSukh/api-yamdb-33-all/internal/user"
	"github.com/SergSukh/api-yamdb-33-all/packages/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newService(t *testing.T, withRedis bool) (*SignupService, *user.UserService, *testutils.FakeMailer) {
	t.Helper()
	db := testutils.SetupTestDB(t)
	mailer := &testutils.FakeMailer{}
	users := user.NewUserService(db, mailer, user.Options{MailFrom: "noreply@test", BcryptCost: bcrypt.MinCost})
	if !withRedis {
		return NewSignupService(users, nil, 0), users, mailer
	}
	rdb, _ := testutils.SetupTestRedis(t)
	return NewSignupService(users, rdb, time.Minute), users, mailer
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     SignupRequest
		field   string
		wantErr bool
	}{
		{"valid", SignupRequest{Username: "alice", Email: "alice@example.com"}, "", false},
		{"reserved name with bad email", SignupRequest{Username: "me", Email: "not-an-email"}, "username", true},
		{"reserved name without email", SignupRequest{Username: "me"}, "username", true},
		{"bad username", SignupRequest{Username: "a b", Email: "a@example.com"}, "username", true},
		{"missing email", SignupRequest{Username: "alice"}, "email", true},
		{"bad email", SignupRequest{Username: "alice", Email: "alice"}, "email", true},
		{"email too long", SignupRequest{Username: "alice", Email: strings.Repeat("a", 250) + "@x.io"}, "email", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRequest(tt.req)
			if !tt.wantErr {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, response.InvalidParameter, err.Code)
			assert.Contains(t, err.Fields, tt.field)
		})
	}
}

func TestSignupService_Signup(t *testing.T) {
	service, users, mailer := newService(t, false)
	ctx := context.Background()

	resp, err := service.Signup(ctx, SignupRequest{Username: "alice", Email: "alice@example.com"})
	require.Nil(t, err)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "alice@example.com", resp.Email)

	sent := mailer.Last()
	assert.Equal(t, "alice@example.com", sent.To)
	assert.NotEmpty(t, sent.Code)

	stored, findErr := users.Repository().FindByUsername(ctx, "alice")
	require.NoError(t, findErr)
	assert.False(t, stored.Confirmed())
	assert.NotEqual(t, sent.Code, stored.ConfirmationCode)
	assert.True(t, pkg.VerifyConfirmationCode(stored.ConfirmationCode, sent.Code))

	t.Run("taken username", func(t *testing.T) {
		_, err := service.Signup(ctx, SignupRequest{Username: "alice", Email: "other@example.com"})
		require.NotNil(t, err)
		assert.Equal(t, response.Conflict, err.Code)
	})

	t.Run("taken email", func(t *testing.T) {
		_, err := service.Signup(ctx, SignupRequest{Username: "other", Email: "alice@example.com"})
		require.NotNil(t, err)
		assert.Equal(t, response.Conflict, err.Code)
	})

	t.Run("mail failure leaves no record", func(t *testing.T) {
		mailer.Fail = true
		defer func() { mailer.Fail = false }()

		_, err := service.Signup(ctx, SignupRequest{Username: "bob", Email: "bob@example.com"})
		require.NotNil(t, err)
		assert.Equal(t, 500, err.Status())

		_, findErr := users.Repository().FindByUsername(ctx, "bob")
		assert.Error(t, findErr)
	})
}

func TestSignupService_Cooldown(t *testing.T) {
	service, _, mailer := newService(t, true)
	ctx := context.Background()

	mailer.Fail = true
	_, err := service.Signup(ctx, SignupRequest{Username: "bob", Email: "bob@example.com"})
	require.NotNil(t, err)

	// a failed attempt releases the cooldown
	mailer.Fail = false
	_, err = service.Signup(ctx, SignupRequest{Username: "bob", Email: "bob@example.com"})
	require.Nil(t, err)

	_, err = service.Signup(ctx, SignupRequest{Username: "bobby", Email: "bob@example.com"})
	require.NotNil(t, err)
	assert.Equal(t, response.InvalidParameter, err.Code)
	assert.Contains(t, err.Fields, "email")
	assert.Len(t, mailer.Sent, 1)
}
