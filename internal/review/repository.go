package review

import (
	"context"

	"github.com/SergSukh/api-yamdb-33-all/internal/model/feedback"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// ListByTitle pages through a title's reviews, newest first.
func (r *ReviewRepository) ListByTitle(ctx context.Context, titleID uint, offset, limit int) ([]feedback.Review, int64, error) {
	query := r.db.WithContext(ctx).Model(&feedback.Review{}).Where("title_id = ?", titleID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []feedback.Review
	if err := query.Preload("Author").
		Order("pub_date DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&reviews).Error; err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

// FindInTitle loads a review only when it belongs to titleID.
func (r *ReviewRepository) FindInTitle(ctx context.Context, titleID, reviewID uint) (*feedback.Review, error) {
	var review feedback.Review
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("id = ? AND title_id = ?", reviewID, titleID).
		First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) ExistsReview(ctx context.Context, authorID, titleID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&feedback.Review{}).
		Where("author_id = ? AND title_id = ?", authorID, titleID).
		Count(&count).Error
	return count > 0, err
}

func (r *ReviewRepository) Create(ctx context.Context, review *feedback.Review) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(review).Error
}

func (r *ReviewRepository) Update(ctx context.Context, review *feedback.Review) error {
	return r.db.WithContext(ctx).Model(review).Select("text", "score").Updates(review).Error
}

// Delete removes the review and its comments.
func (r *ReviewRepository) Delete(ctx context.Context, review *feedback.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("review_id = ?", review.ID).Delete(&feedback.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&feedback.Review{ID: review.ID}).Error
	})
}
