package comment

import (
	"context"

	"github.com/SergSukh/api-yamdb-33-all/internal/dto"
	"github.com/SergSukh/api-yamdb-33-all/internal/model/feedback"
	"github.com/SergSukh/api-yamdb-33-all/internal/model/user"
	"github.com/SergSukh/api-yamdb-33-all/internal/permission"
	"github.com/SergSukh/api-yamdb-33-all/internal/pkg"
	"github.com/SergSukh/api-yamdb-33-all/packages/response"
)

// ReviewLookup resolves a review within its title.
type ReviewLookup interface {
	FindInTitle(ctx context.Context, titleID, reviewID uint) (*feedback.Review, error)
}

// Path identifies the review a comment hangs off.
type Path struct {
	TitleID  uint
	ReviewID uint
}

type CommentService struct {
	repo    *CommentRepository
	reviews ReviewLookup
}

func NewCommentService(repo *CommentRepository, reviews ReviewLookup) *CommentService {
	return &CommentService{repo: repo, reviews: reviews}
}

func (s *CommentService) List(ctx context.Context, p Path, q dto.PageQuery) (*dto.Page[CommentResponse], *response.BusinessError) {
	if err := s.ensureReview(ctx, p); err != nil {
		return nil, err
	}

	comments, total, err := s.repo.ListByReview(ctx, p.ReviewID, q.Offset(), q.Limit())
	if err != nil {
		return nil, response.Internal(err)
	}

	results := make([]CommentResponse, len(comments))
	for i := range comments {
		results[i] = ToCommentResponse(&comments[i])
	}
	page := dto.NewPage(total, results)
	return &page, nil
}

func (s *CommentService) Get(ctx context.Context, p Path, commentID uint) (*CommentResponse, *response.BusinessError) {
	if err := s.ensureReview(ctx, p); err != nil {
		return nil, err
	}
	c, err := s.repo.FindInReview(ctx, p.ReviewID, commentID)
	if err != nil {
		return nil, pkg.DBError(err, "comment")
	}
	resp := ToCommentResponse(c)
	return &resp, nil
}

func (s *CommentService) Create(ctx context.Context, subject permission.Subject, p Path, req CommentRequest) (*CommentResponse, *response.BusinessError) {
	if err := permission.Authorize(subject, permission.ActionCreate, permission.ResourceFeedback, nil).Err(); err != nil {
		return nil, err
	}
	if err := s.ensureReview(ctx, p); err != nil {
		return nil, err
	}

	c := &feedback.Comment{ReviewID: p.ReviewID, AuthorID: subject.UserID, Text: req.Text}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, response.Internal(err)
	}

	c.Author = &user.User{ID: subject.UserID, Username: subject.Username}
	resp := ToCommentResponse(c)
	return &resp, nil
}

func (s *CommentService) Update(ctx context.Context, subject permission.Subject, p Path, commentID uint, req CommentRequest) (*CommentResponse, *response.BusinessError) {
	c, bizErr := s.loadAuthorized(ctx, subject, permission.ActionUpdate, p, commentID)
	if bizErr != nil {
		return nil, bizErr
	}

	c.Text = req.Text
	if err := s.repo.UpdateText(ctx, c); err != nil {
		return nil, response.Internal(err)
	}
	resp := ToCommentResponse(c)
	return &resp, nil
}

func (s *CommentService) Delete(ctx context.Context, subject permission.Subject, p Path, commentID uint) *response.BusinessError {
	c, bizErr := s.loadAuthorized(ctx, subject, permission.ActionDelete, p, commentID)
	if bizErr != nil {
		return bizErr
	}
	if err := s.repo.Delete(ctx, c); err != nil {
		return response.Internal(err)
	}
	return nil
}

func (s *CommentService) loadAuthorized(ctx context.Context, subject permission.Subject, action permission.Action, p Path, commentID uint) (*feedback.Comment, *response.BusinessError) {
	if err := permission.Precheck(subject, action, permission.ResourceFeedback).Err(); err != nil {
		return nil, err
	}
	if err := s.ensureReview(ctx, p); err != nil {
		return nil, err
	}
	c, err := s.repo.FindInReview(ctx, p.ReviewID, commentID)
	if err != nil {
		return nil, pkg.DBError(err, "comment")
	}
	obj := &permission.Object{OwnerID: c.AuthorID}
	if err := permission.Authorize(subject, action, permission.ResourceFeedback, obj).Err(); err != nil {
		return nil, err
	}
	return c, nil
}

// ensureReview fails with NotFound unless the review belongs to the title.
func (s *CommentService) ensureReview(ctx context.Context, p Path) *response.BusinessError {
	if _, err := s.reviews.FindInTitle(ctx, p.TitleID, p.ReviewID); err != nil {
		return pkg.DBError(err, "review")
	}
	return nil
}
