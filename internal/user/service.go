package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SergSukh/api-yamdb-33-all/internal/dto"
	userModel "github.com/SergSukh/api-yamdb-33-all/internal/model/user"
	"github.com/SergSukh/api-yamdb-33-all/internal/permission"
	"github.com/SergSukh/api-yamdb-33-all/internal/pkg"
	"github.com/SergSukh/api-yamdb-33-all/packages/response"

	"gorm.io/gorm"
)

var errMailDelivery = errors.New("confirmation mail not delivered")

// Options tune how confirmation codes are issued.
type Options struct {
	MailFrom   string
	BcryptCost int
}

type UserService struct {
	db     *gorm.DB
	repo   *UserRepository
	mailer pkg.Mailer
	opts   Options
}

func NewUserService(db *gorm.DB, mailer pkg.Mailer, opts Options) *UserService {
	return &UserService{
		db:     db,
		repo:   NewUserRepository(db),
		mailer: mailer,
		opts:   opts,
	}
}

// Repository exposes the store, e.g. to resolve token subjects.
func (s *UserService) Repository() *UserRepository {
	return s.repo
}

// EnsureAvailable fails with Conflict when username or email is taken by
// another account.
func (s *UserService) EnsureAvailable(ctx context.Context, username, email string, excludeID uint) *response.BusinessError {
	existing, err := s.repo.FindConflict(ctx, username, email, excludeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return response.Internal(err)
	}

	field, msg := "email", "a user with that email already exists"
	if existing.Username == username {
		field, msg = "username", "a user with that username already exists"
	}
	return response.NewBusinessError(
		response.WithErrorCode(response.Conflict),
		response.WithErrorMessage(msg),
		response.WithErrorField(field, msg),
	)
}

// CreatePending stores u with a fresh confirmation code and mails the code.
// The account is rolled back when the mail cannot be delivered.
func (s *UserService) CreatePending(ctx context.Context, u *userModel.User) *response.BusinessError {
	code := pkg.GenerateConfirmationCode()
	hash, err := pkg.HashConfirmationCode(code, s.opts.BcryptCost)
	if err != nil {
		return response.Internal(err)
	}
	u.ConfirmationCode = hash
	u.ConfirmedAt = nil
	if u.Role == "" {
		u.Role = userModel.RoleUser
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, u); err != nil {
			return err
		}
		if err := s.mailer.SendConfirmationCode(s.opts.MailFrom, u.Email, u.Username, code); err != nil {
			return fmt.Errorf("%w: %v", errMailDelivery, err)
		}
		return nil
	})
	if errors.Is(err, errMailDelivery) {
		slog.Error("send confirmation code", "username", u.Username, "err", err)
		return response.NewBusinessError(
			response.WithErrorCode(response.Fail),
			response.WithErrorMessage("failed to send confirmation code"),
			response.WithError(err),
		)
	}
	if err != nil {
		return pkg.DBError(err, "user")
	}

	slog.Info("confirmation code issued", "username", u.Username)
	return nil
}

func (s *UserService) List(ctx context.Context, subject permission.Subject, q ListQuery) (*dto.Page[UserResponse], *response.BusinessError) {
	var onlyID *uint
	if id, restricted := permission.ScopeUsers(subject); restricted {
		onlyID = &id
	}

	users, total, err := s.repo.List(ctx, q.Search, onlyID, q.Offset(), q.Limit())
	if err != nil {
		return nil, response.Internal(err)
	}

	results := make([]UserResponse, len(users))
	for i := range users {
		results[i] = ToUserResponse(&users[i])
	}
	page := dto.NewPage(total, results)
	return &page, nil
}

func (s *UserService) Create(ctx context.Context, subject permission.Subject, req CreateUserRequest) (*UserResponse, *response.BusinessError) {
	if err := permission.Authorize(subject, permission.ActionCreate, permission.ResourceUser, nil).Err(); err != nil {
		return nil, err
	}
	if err := ValidateUsername(req.Username); err != nil {
		return nil, err
	}
	if err := s.EnsureAvailable(ctx, req.Username, req.Email, 0); err != nil {
		return nil, err
	}

	u := &userModel.User{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Role:      req.Role,
	}
	if err := s.CreatePending(ctx, u); err != nil {
		return nil, err
	}

	resp := ToUserResponse(u)
	return &resp, nil
}

func (s *UserService) Get(ctx context.Context, subject permission.Subject, username string) (*UserResponse, *response.BusinessError) {
	u, err := s.loadAuthorized(ctx, subject, permission.ActionRetrieve, username)
	if err != nil {
		return nil, err
	}
	resp := ToUserResponse(u)
	return &resp, nil
}

func (s *UserService) Update(ctx context.Context, subject permission.Subject, username string, req UpdateUserRequest) (*UserResponse, *response.BusinessError) {
	u, err := s.loadAuthorized(ctx, subject, permission.ActionUpdate, username)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, subject, u, req, true)
}

func (s *UserService) Delete(ctx context.Context, subject permission.Subject, username string) *response.BusinessError {
	u, err := s.loadAuthorized(ctx, subject, permission.ActionDelete, username)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, u); err != nil {
		return response.Internal(err)
	}
	slog.Info("user deleted", "username", u.Username, "by", subject.Username)
	return nil
}

// Me returns the caller's own profile.
func (s *UserService) Me(ctx context.Context, subject permission.Subject) (*UserResponse, *response.BusinessError) {
	u, err := s.me(ctx, subject)
	if err != nil {
		return nil, err
	}
	resp := ToUserResponse(u)
	return &resp, nil
}

// UpdateMe edits the caller's own profile; role is read-only here.
func (s *UserService) UpdateMe(ctx context.Context, subject permission.Subject, req UpdateUserRequest) (*UserResponse, *response.BusinessError) {
	u, err := s.me(ctx, subject)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, subject, u, req, false)
}

func (s *UserService) me(ctx context.Context, subject permission.Subject) (*userModel.User, *response.BusinessError) {
	if !subject.IsAuthenticated() {
		return nil, permission.Precheck(subject, permission.ActionRetrieve, permission.ResourceUser).Err()
	}
	u, err := s.repo.FindByID(ctx, subject.UserID)
	if err != nil {
		return nil, pkg.DBError(err, "user")
	}
	return u, nil
}

func (s *UserService) loadAuthorized(ctx context.Context, subject permission.Subject, action permission.Action, username string) (*userModel.User, *response.BusinessError) {
	if err := permission.Precheck(subject, action, permission.ResourceUser).Err(); err != nil {
		return nil, err
	}
	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, pkg.DBError(err, "user")
	}
	obj := &permission.Object{OwnerID: u.ID}
	if err := permission.Authorize(subject, action, permission.ResourceUser, obj).Err(); err != nil {
		return nil, err
	}
	return u, nil
}

// apply writes the non-nil fields of req onto u. Role edits are honoured
// only when allowRole is set and the caller is an admin; otherwise ignored.
func (s *UserService) apply(ctx context.Context, subject permission.Subject, u *userModel.User, req UpdateUserRequest, allowRole bool) (*UserResponse, *response.BusinessError) {
	username, email := u.Username, u.Email
	if req.Username != nil {
		if err := ValidateUsername(*req.Username); err != nil {
			return nil, err
		}
		username = *req.Username
	}
	if req.Email != nil {
		email = *req.Email
	}
	if username != u.Username || email != u.Email {
		if err := s.EnsureAvailable(ctx, username, email, u.ID); err != nil {
			return nil, err
		}
	}

	u.Username, u.Email = username, email
	if req.FirstName != nil {
		u.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		u.LastName = *req.LastName
	}
	if req.Bio != nil {
		u.Bio = *req.Bio
	}
	if req.Role != nil && allowRole && permission.CanChangeRole(subject) {
		if *req.Role != u.Role {
			slog.Info("role changed", "username", u.Username, "from", u.Role, "to", *req.Role, "by", subject.Username)
		}
		u.Role = *req.Role
	}

	if err := s.repo.Save(ctx, u); err != nil {
		return nil, pkg.DBError(err, "user")
	}
	resp := ToUserResponse(u)
	return &resp, nil
}
