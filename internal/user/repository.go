package user

import (
	"context"
	"strings"

	"github.com/SergSukh/api-yamdb-33-all/internal/model/feedback"
	userModel "github.com/SergSukh/api-yamdb-33-all/internal/model/user"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// WithTx returns a repository bound to tx.
func (r *UserRepository) WithTx(tx *gorm.DB) *UserRepository {
	return &UserRepository{db: tx}
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*userModel.User, error) {
	var u userModel.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*userModel.User, error) {
	var u userModel.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// FindConflict returns an account other than excludeID holding username or email.
func (r *UserRepository) FindConflict(ctx context.Context, username, email string, excludeID uint) (*userModel.User, error) {
	var u userModel.User
	query := r.db.WithContext(ctx).Where("username = ? OR email = ?", username, email)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *userModel.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) Save(ctx context.Context, u *userModel.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

// Delete removes the account with its reviews and every comment on them or by it.
func (r *UserRepository) Delete(ctx context.Context, u *userModel.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ownReviews := tx.Model(&feedback.Review{}).Select("id").Where("author_id = ?", u.ID)
		if err := tx.Where("author_id = ? OR review_id IN (?)", u.ID, ownReviews).
			Delete(&feedback.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("author_id = ?", u.ID).Delete(&feedback.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(u).Error
	})
}

// List pages through accounts ordered by username. onlyID, when set, limits
// the result to that account.
func (r *UserRepository) List(ctx context.Context, search string, onlyID *uint, offset, limit int) ([]userModel.User, int64, error) {
	query := r.db.WithContext(ctx).Model(&userModel.User{})
	if search = strings.TrimSpace(search); search != "" {
		query = query.Where("LOWER(username) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if onlyID != nil {
		query = query.Where("id = ?", *onlyID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []userModel.User
	if err := query.Order("username ASC").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}
