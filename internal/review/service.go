package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SergSukh/api-yamdb-33-all/internal/dto"
	"github.com/SergSukh/api-yamdb-33-all/internal/model/feedback"
	"github.com/SergSukh/api-yamdb-33-all/internal/model/user"
	"github.com/SergSukh/api-yamdb-33-all/internal/permission"
	"github.com/SergSukh/api-yamdb-33-all/internal/pkg"
	"github.com/SergSukh/api-yamdb-33-all/packages/response"
)

// TitleLookup checks that a reviewed title exists.
type TitleLookup interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

type ReviewService struct {
	repo   *ReviewRepository
	titles TitleLookup
}

func NewReviewService(repo *ReviewRepository, titles TitleLookup) *ReviewService {
	return &ReviewService{repo: repo, titles: titles}
}

func (s *ReviewService) List(ctx context.Context, titleID uint, q dto.PageQuery) (*dto.Page[ReviewResponse], *response.BusinessError) {
	if err := s.ensureTitle(ctx, titleID); err != nil {
		return nil, err
	}

	reviews, total, err := s.repo.ListByTitle(ctx, titleID, q.Offset(), q.Limit())
	if err != nil {
		return nil, response.Internal(err)
	}

	results := make([]ReviewResponse, len(reviews))
	for i := range reviews {
		results[i] = ToReviewResponse(&reviews[i])
	}
	page := dto.NewPage(total, results)
	return &page, nil
}

func (s *ReviewService) Get(ctx context.Context, titleID, reviewID uint) (*ReviewResponse, *response.BusinessError) {
	review, err := s.repo.FindInTitle(ctx, titleID, reviewID)
	if err != nil {
		return nil, pkg.DBError(err, "review")
	}
	resp := ToReviewResponse(review)
	return &resp, nil
}

// Create adds the caller's review of a title; a second review by the same
// author fails with Conflict.
func (s *ReviewService) Create(ctx context.Context, subject permission.Subject, titleID uint, req ReviewRequest) (*ReviewResponse, *response.BusinessError) {
	if err := permission.Authorize(subject, permission.ActionCreate, permission.ResourceFeedback, nil).Err(); err != nil {
		return nil, err
	}
	if err := s.ensureTitle(ctx, titleID); err != nil {
		return nil, err
	}
	if err := validateScore(*req.Score); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsReview(ctx, subject.UserID, titleID)
	if err != nil {
		return nil, response.Internal(err)
	}
	if exists {
		return nil, duplicateReview()
	}

	review := &feedback.Review{
		TitleID:  titleID,
		AuthorID: subject.UserID,
		Text:     req.Text,
		Score:    *req.Score,
	}
	if err := s.repo.Create(ctx, review); err != nil {
		if pkg.IsUniqueViolation(err) {
			return nil, duplicateReview()
		}
		return nil, response.Internal(err)
	}

	review.Author = &user.User{ID: subject.UserID, Username: subject.Username}
	resp := ToReviewResponse(review)
	return &resp, nil
}

func (s *ReviewService) Update(ctx context.Context, subject permission.Subject, titleID, reviewID uint, req ReviewPatchRequest) (*ReviewResponse, *response.BusinessError) {
	review, bizErr := s.loadAuthorized(ctx, subject, permission.ActionUpdate, titleID, reviewID)
	if bizErr != nil {
		return nil, bizErr
	}

	if req.Text != nil {
		review.Text = *req.Text
	}
	if req.Score != nil {
		if err := validateScore(*req.Score); err != nil {
			return nil, err
		}
		review.Score = *req.Score
	}

	if err := s.repo.Update(ctx, review); err != nil {
		return nil, response.Internal(err)
	}
	resp := ToReviewResponse(review)
	return &resp, nil
}

func (s *ReviewService) Delete(ctx context.Context, subject permission.Subject, titleID, reviewID uint) *response.BusinessError {
	review, bizErr := s.loadAuthorized(ctx, subject, permission.ActionDelete, titleID, reviewID)
	if bizErr != nil {
		return bizErr
	}
	if err := s.repo.Delete(ctx, review); err != nil {
		return response.Internal(err)
	}

	if review.AuthorID != subject.UserID {
		slog.Info("review removed by staff", "review_id", review.ID, "by", subject.Username)
	}
	return nil
}

func (s *ReviewService) loadAuthorized(ctx context.Context, subject permission.Subject, action permission.Action, titleID, reviewID uint) (*feedback.Review, *response.BusinessError) {
	if err := permission.Precheck(subject, action, permission.ResourceFeedback).Err(); err != nil {
		return nil, err
	}
	review, err := s.repo.FindInTitle(ctx, titleID, reviewID)
	if err != nil {
		return nil, pkg.DBError(err, "review")
	}
	obj := &permission.Object{OwnerID: review.AuthorID}
	if err := permission.Authorize(subject, action, permission.ResourceFeedback, obj).Err(); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) ensureTitle(ctx context.Context, titleID uint) *response.BusinessError {
	ok, err := s.titles.Exists(ctx, titleID)
	if err != nil {
		return response.Internal(err)
	}
	if !ok {
		return response.NotFoundError("title not found")
	}
	return nil
}

func validateScore(score int) *response.BusinessError {
	if score < feedback.MinScore || score > feedback.MaxScore {
		return response.Validation("score", fmt.Sprintf("score must be between %d and %d", feedback.MinScore, feedback.MaxScore))
	}
	return nil
}

func duplicateReview() *response.BusinessError {
	return response.ConflictError("you have already reviewed this title")
}
