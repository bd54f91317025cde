package author

import (
	"context"
	"log/slog"

	"github.com/SergSukh/api-yamdb-33-all/internal/dto"
	"github.com/SergSukh/api-yamdb-33-all/internal/model/catalog"
	"github.com/SergSukh/api-yamdb-33-all/internal/permission"
	"github.com/SergSukh/api-yamdb-33-all/internal/pkg"
	"github.com/SergSukh/api-yamdb-33-all/packages/response"

	"gorm.io/gorm"
)

type AuthorService struct {
	repo *AuthorRepository
}

func NewAuthorService(db *gorm.DB) *AuthorService {
	return &AuthorService{repo: NewAuthorRepository(db)}
}

func (s *AuthorService) List(ctx context.Context, q dto.PageQuery) (*dto.Page[AuthorResponse], *response.BusinessError) {
	authors, total, err := s.repo.List(ctx, q.Offset(), q.Limit())
	if err != nil {
		return nil, response.Internal(err)
	}

	ids := make([]uint, len(authors))
	for i, a := range authors {
		ids[i] = a.ID
	}
	names, err := s.repo.TitleNames(ctx, ids)
	if err != nil {
		return nil, response.Internal(err)
	}

	results := make([]AuthorResponse, len(authors))
	for i := range authors {
		results[i] = ToAuthorResponse(&authors[i], names[authors[i].ID])
	}
	page := dto.NewPage(total, results)
	return &page, nil
}

func (s *AuthorService) Get(ctx context.Context, slug string) (*AuthorResponse, *response.BusinessError) {
	a, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, pkg.DBError(err, "author")
	}
	return s.respond(ctx, a)
}

func (s *AuthorService) Create(ctx context.Context, subject permission.Subject, req AuthorRequest) (*AuthorResponse, *response.BusinessError) {
	if err := permission.Authorize(subject, permission.ActionCreate, permission.ResourceCatalog, nil).Err(); err != nil {
		return nil, err
	}

	slug, bizErr := pkg.ResolveSlug(req.Slug, req.FirstName, req.LastName)
	if bizErr != nil {
		return nil, bizErr
	}
	if err := s.ensureSlugFree(ctx, slug, 0); err != nil {
		return nil, err
	}

	a := &catalog.Author{FirstName: req.FirstName, LastName: req.LastName, Slug: slug}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, pkg.DBError(err, "author")
	}

	resp := ToAuthorResponse(a, nil)
	return &resp, nil
}

func (s *AuthorService) Update(ctx context.Context, subject permission.Subject, slug string, req AuthorPatchRequest) (*AuthorResponse, *response.BusinessError) {
	if err := permission.Authorize(subject, permission.ActionUpdate, permission.ResourceCatalog, nil).Err(); err != nil {
		return nil, err
	}

	a, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, pkg.DBError(err, "author")
	}

	if req.FirstName != nil {
		a.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		a.LastName = *req.LastName
	}
	if req.Slug != nil {
		newSlug, bizErr := pkg.ResolveSlug(*req.Slug, a.FirstName, a.LastName)
		if bizErr != nil {
			return nil, bizErr
		}
		if err := s.ensureSlugFree(ctx, newSlug, a.ID); err != nil {
			return nil, err
		}
		a.Slug = newSlug
	}

	if err := s.repo.Save(ctx, a); err != nil {
		return nil, pkg.DBError(err, "author")
	}
	return s.respond(ctx, a)
}

func (s *AuthorService) Delete(ctx context.Context, subject permission.Subject, slug string) *response.BusinessError {
	if err := permission.Authorize(subject, permission.ActionDelete, permission.ResourceCatalog, nil).Err(); err != nil {
		return err
	}

	a, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return pkg.DBError(err, "author")
	}
	if err := s.repo.Delete(ctx, a); err != nil {
		return response.Internal(err)
	}

	slog.Info("author deleted", "slug", slug, "by", subject.Username)
	return nil
}

func (s *AuthorService) ensureSlugFree(ctx context.Context, slug string, excludeID uint) *response.BusinessError {
	taken, err := s.repo.SlugTaken(ctx, slug, excludeID)
	if err != nil {
		return response.Internal(err)
	}
	if taken {
		return response.NewBusinessError(
			response.WithErrorCode(response.Conflict),
			response.WithErrorMessage("author with this slug already exists"),
			response.WithErrorField("slug", "author with this slug already exists"),
		)
	}
	return nil
}

func (s *AuthorService) respond(ctx context.Context, a *catalog.Author) (*AuthorResponse, *response.BusinessError) {
	names, err := s.repo.TitleNames(ctx, []uint{a.ID})
	if err != nil {
		return nil, response.Internal(err)
	}
	resp := ToAuthorResponse(a, names[a.ID])
	return &resp, nil
}
