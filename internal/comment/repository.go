package comment

import (
	"context"

	"github.com/SergSukh/api-yamdb-33-all/internal/model/feedback"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) ListByReview(ctx context.Context, reviewID uint, offset, limit int) ([]feedback.Comment, int64, error) {
	query := r.db.WithContext(ctx).Model(&feedback.Comment{}).Where("review_id = ?", reviewID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []feedback.Comment
	if err := query.Preload("Author").
		Order("pub_date DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&comments).Error; err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (r *CommentRepository) FindInReview(ctx context.Context, reviewID, commentID uint) (*feedback.Comment, error) {
	var c feedback.Comment
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("id = ? AND review_id = ?", commentID, reviewID).
		First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommentRepository) Create(ctx context.Context, c *feedback.Comment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(c).Error
}

func (r *CommentRepository) UpdateText(ctx context.Context, c *feedback.Comment) error {
	return r.db.WithContext(ctx).Model(c).Select("text").Updates(c).Error
}

func (r *CommentRepository) Delete(ctx context.Context, c *feedback.Comment) error {
	return r.db.WithContext(ctx).Delete(&feedback.Comment{ID: c.ID}).Error
}
