package category

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

type CategoryService struct {
	repo *CategoryRepository
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{repo: NewCategoryRepository(db)}
}

func (s *CategoryService) List(ctx context.Context, q ListQuery) (*dto.Page[CategoryResponse], *response.BusinessError) {
	categories, total, err := s.repo.List(ctx, q.Search, q.Offset(), q.Limit())
	if err != nil {
		return nil, response.Internal(err)
	}

	results := make([]CategoryResponse, len(categories))
	for i := range categories {
		results[i] = ToCategoryResponse(&categories[i])
	}
	page := dto.NewPage(total, results)
	return &page, nil
}

func (s *CategoryService) Create(ctx context.Context, subject permission.Subject, req CategoryRequest) (*CategoryResponse, *response.BusinessError) {
	if err := permission.Authorize(subject, permission.ActionCreate, permission.ResourceCatalog, nil).Err(); err != nil {
		return nil, err
	}

	slug, bizErr := pkg.ResolveSlug(req.Slug, req.Name)
	if bizErr != nil {
		return nil, bizErr
	}
	exists, err := s.repo.ExistsSlug(ctx, slug)
	if err != nil {
		return nil, response.Internal(err)
	}
	if exists {
		return nil, response.NewBusinessError(
			response.WithErrorCode(response.Conflict),
			response.WithErrorMessage("category with this slug already exists"),
			response.WithErrorField("slug", "category with this slug already exists"),
		)
	}

	c := &catalog.Category{Name: req.Name, Slug: slug, Description: req.Description}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, pkg.DBError(err, "category")
	}

	resp := ToCategoryResponse(c)
	return &resp, nil
}

func (s *CategoryService) Delete(ctx context.Context, subject permission.Subject, slug string) *response.BusinessError {
	if err := permission.Authorize(subject, permission.ActionDelete, permission.ResourceCatalog, nil).Err(); err != nil {
		return err
	}

	c, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return pkg.DBError(err, "category")
	}
	if err := s.repo.Delete(ctx, c); err != nil {
		return response.Internal(err)
	}

	slog.Info("category deleted", "slug", slug, "by", subject.Username)
	return nil
}
