package user

import (
	"context"
	"testing"

	userModel "github.com/SergSukh/api-yamdb-33-all/internal/model/user"
	"github.com/SergSukh/api-yamdb-33-all/internal/pkg"
	"github.com/SergSukh/api-yamdb-33-all/internal/testutils"
	"github.com/SergSukh/api-yamdb-33-all/packages/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSuperuser_Create(t *testing.T) {
	service, db, mailer := setup(t)
	ctx := context.Background()

	code, err := service.EnsureSuperuser(ctx, "root", "root@example.com")
	require.Nil(t, err)
	assert.NotEmpty(t, code)
	assert.Empty(t, mailer.Sent)

	var stored userModel.User
	require.NoError(t, db.Where("username = ?", "root").First(&stored).Error)
	assert.Equal(t, userModel.RoleAdmin, stored.Role)
	assert.True(t, stored.IsSuperuser)
	assert.True(t, stored.IsStaff)
	assert.True(t, pkg.VerifyConfirmationCode(stored.ConfirmationCode, code))
}

func TestEnsureSuperuser_Promote(t *testing.T) {
	service, db, _ := setup(t)
	existing := testutils.CreateTestUser(db)

	code, err := service.EnsureSuperuser(context.Background(), existing.Username, "")
	require.Nil(t, err)

	var stored userModel.User
	require.NoError(t, db.First(&stored, existing.ID).Error)
	assert.Equal(t, userModel.RoleAdmin, stored.Role)
	assert.Equal(t, existing.Email, stored.Email)
	assert.True(t, stored.IsSuperuser)
	assert.True(t, pkg.VerifyConfirmationCode(stored.ConfirmationCode, code))

	var count int64
	db.Model(&userModel.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestEnsureSuperuser_Invalid(t *testing.T) {
	service, db, _ := setup(t)
	taken := testutils.CreateTestUser(db)

	tests := []struct {
		name     string
		username string
		email    string
		code     response.ResponseCode
		field    string
	}{
		{"reserved", "me", "me@example.com", response.InvalidParameter, "username"},
		{"missing email", "root", "", response.InvalidParameter, "email"},
		{"email taken", "root", taken.Email, response.Conflict, "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.EnsureSuperuser(context.Background(), tt.username, tt.email)
			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Contains(t, err.Fields, tt.field)
		})
	}
}
