package signup

import (
	"context"
	"log/slog"
	"time"

	userModel "github.com/SergSukh/api-yamdb-33-all/internal/model/user"
	"github.com/SergSukh/api-yamdb-33-all/internal/user"
	"github.com/SergSukh/api-yamdb-33-all/packages/database"
	"github.com/SergSukh/api-yamdb-33-all/packages/response"

	"github.com/go-playground/validator/v10"
)

const RedisKeyPrefix = "yamdb:signup:"

var validate = validator.New()

type SignupService struct {
	users    *user.UserService
	redis    *database.RedisClient
	cooldown time.Duration
}

// NewSignupService wires signup onto the user store. redis may be nil, which
// disables the per-email cooldown.
func NewSignupService(users *user.UserService, redis *database.RedisClient, cooldown time.Duration) *SignupService {
	return &SignupService{users: users, redis: redis, cooldown: cooldown}
}

// Signup registers a pending account and mails it a confirmation code.
func (s *SignupService) Signup(ctx context.Context, req SignupRequest) (*SignupResponse, *response.BusinessError) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	release, err := s.acquireCooldown(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	if err := s.register(ctx, req); err != nil {
		release()
		return nil, err
	}

	return &SignupResponse{Username: req.Username, Email: req.Email}, nil
}

func (s *SignupService) register(ctx context.Context, req SignupRequest) *response.BusinessError {
	if err := s.users.EnsureAvailable(ctx, req.Username, req.Email, 0); err != nil {
		return err
	}
	return s.users.CreatePending(ctx, &userModel.User{
		Username: req.Username,
		Email:    req.Email,
		Role:     userModel.RoleUser,
	})
}

func validateRequest(req SignupRequest) *response.BusinessError {
	if err := user.ValidateUsername(req.Username); err != nil {
		return err
	}
	if req.Email == "" {
		return response.Validation("email", "this field is required")
	}
	if err := validate.Var(req.Email, "email,max=254"); err != nil {
		return response.Validation("email", "enter a valid email address")
	}
	return nil
}

// acquireCooldown marks email as recently signed up. The returned func
// clears the mark so a failed attempt can be retried at once.
func (s *SignupService) acquireCooldown(ctx context.Context, email string) (func(), *response.BusinessError) {
	noop := func() {}
	if s.redis == nil || s.cooldown <= 0 {
		return noop, nil
	}

	key := RedisKeyPrefix + email
	ok, err := s.redis.SetNX(ctx, key, 1, s.cooldown).Result()
	if err != nil {
		slog.Warn("signup cooldown unavailable", "err", err)
		return noop, nil
	}
	if !ok {
		return nil, response.Validation("email", "a confirmation code was sent recently, try again later")
	}

	return func() {
		if err := s.redis.Del(context.WithoutCancel(ctx), key).Err(); err != nil {
			slog.Warn("release signup cooldown", "key", key, "err", err)
		}
	}, nil
}
