package genre

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SergSukh/api-yamdb-33-all/internal/dto"
	"github.com/SergSukh/api-yamdb-33-all/internal/model/catalog"
	"github.com/SergSukh/api-yamdb-33-all/internal/permission"
	"github.com/SergSukh/api-yamdb-33-all/internal/pkg"
	"github.com/SergSukh/api-yamdb-33-all/packages/response"

	"gorm.io/gorm"
)

type GenreService struct {
	repo *GenreRepository
}

func NewGenreService(db *gorm.DB) *GenreService {
	return &GenreService{repo: NewGenreRepository(db)}
}

func (s *GenreService) List(ctx context.Context, q ListQuery) (*dto.Page[GenreResponse], *response.BusinessError) {
	genres, total, err := s.repo.List(ctx, q.Search, q.Offset(), q.Limit())
	if err != nil {
		return nil, response.Internal(err)
	}

	results := make([]GenreResponse, len(genres))
	for i := range genres {
		results[i] = ToGenreResponse(&genres[i])
	}
	page := dto.NewPage(total, results)
	return &page, nil
}

func (s *GenreService) Create(ctx context.Context, subject permission.Subject, req GenreRequest) (*GenreResponse, *response.BusinessError) {
	if err := permission.Authorize(subject, permission.ActionCreate, permission.ResourceCatalog, nil).Err(); err != nil {
		return nil, err
	}

	slug, bizErr := pkg.ResolveSlug(req.Slug, req.Name)
	if bizErr != nil {
		return nil, bizErr
	}
	if _, err := s.repo.FindBySlug(ctx, slug); err == nil {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Conflict),
			response.WithErrorMessage("genre with this slug already exists"),
			response.WithErrorField("slug", "genre with this slug already exists"),
		)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.Internal(err)
	}

	g := &catalog.Genre{Name: req.Name, Slug: slug}
	if err := s.repo.Create(ctx, g); err != nil {
		return nil, pkg.DBError(err, "genre")
	}

	resp := ToGenreResponse(g)
	return &resp, nil
}

func (s *GenreService) Delete(ctx context.Context, subject permission.Subject, slug string) *response.BusinessError {
	if err := permission.Authorize(subject, permission.ActionDelete, permission.ResourceCatalog, nil).Err(); err != nil {
		return err
	}

	g, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return pkg.DBError(err, "genre")
	}
	if err := s.repo.Delete(ctx, g); err != nil {
		return response.Internal(err)
	}

	slog.Info("genre deleted", "slug", slug, "by", subject.Username)
	return nil
}
