package token

import (
	"context"
	"log/slog"
	"time"

	"github.com/SergSukh/api-yamdb-33-all/internal/pkg"
	"github.com/SergSukh/api-yamdb-33-all/internal/user"
	"github.com/SergSukh/api-yamdb-33-all/packages/response"
)

type TokenService struct {
	repo *user.UserRepository
	now  func() time.Time
}

func NewTokenService(repo *user.UserRepository) *TokenService {
	return &TokenService{repo: repo, now: time.Now}
}

// Exchange trades a username and confirmation code for a bearer token. The
// code stays valid, so repeating a successful exchange yields a new token.
func (s *TokenService) Exchange(ctx context.Context, req TokenRequest) (*TokenResponse, *response.BusinessError) {
	u, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, pkg.DBError(err, "user")
	}

	if !pkg.VerifyConfirmationCode(u.ConfirmationCode, req.ConfirmationCode) {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.InvalidCredentials),
			response.WithErrorMessage("invalid confirmation code"),
			response.WithErrorField("confirmation_code", "invalid confirmation code"),
		)
	}

	if !u.Confirmed() {
		now := s.now()
		u.ConfirmedAt = &now
		if err := s.repo.Save(ctx, u); err != nil {
			return nil, response.Internal(err)
		}
		slog.Info("account confirmed", "username", u.Username)
	}

	token, err := pkg.GenerateAccessToken(u)
	if err != nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("failed to issue token"),
			response.WithError(err),
		)
	}

	return &TokenResponse{Token: token}, nil
}
