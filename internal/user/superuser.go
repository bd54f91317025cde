package user

import (
	"context"
	"errors"
	"log/slog"

	userModel "github.com/SergSukh/api-yamdb-33-all/internal/model/user"
	"github.com/SergSukh/api-yamdb-33-all/internal/pkg"
	"github.com/SergSukh/api-yamdb-33-all/packages/response"

	"gorm.io/gorm"
)

// EnsureSuperuser creates username as an admin superuser, or promotes the
// existing account, and returns a fresh confirmation code for it. The code
// is handed back to the operator instead of being mailed. email is only
// used when the account does not exist yet.
func (s *UserService) EnsureSuperuser(ctx context.Context, username, email string) (string, *response.BusinessError) {
	u, err := s.repo.FindByUsername(ctx, username)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if be := ValidateUsername(username); be != nil {
			return "", be
		}
		if email == "" {
			return "", response.Validation("email", "this field is required")
		}
		if be := s.EnsureAvailable(ctx, username, email, 0); be != nil {
			return "", be
		}
		u = &userModel.User{Username: username, Email: email}
	case err != nil:
		return "", response.Internal(err)
	}

	code := pkg.GenerateConfirmationCode()
	hash, err := pkg.HashConfirmationCode(code, s.opts.BcryptCost)
	if err != nil {
		return "", response.Internal(err)
	}
	u.ConfirmationCode = hash
	u.Role = userModel.RoleAdmin
	u.IsStaff = true
	u.IsSuperuser = true

	if u.ID == 0 {
		err = s.repo.Create(ctx, u)
	} else {
		err = s.repo.Save(ctx, u)
	}
	if err != nil {
		return "", pkg.DBError(err, "user")
	}

	slog.Info("superuser ready", "username", u.Username)
	return code, nil
}
