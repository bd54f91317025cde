package title

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SergSukh/api-yamdb-33-all/internal/dto"
	"github.com/SergSukh/api-yamdb-33-all/internal/model/catalog"
	"github.com/SergSukh/api-yamdb-33-all/internal/permission"
	"github.com/SergSukh/api-yamdb-33-all/internal/pkg"
	"github.com/SergSukh/api-yamdb-33-all/internal/rating"
	"github.com/SergSukh/api-yamdb-33-all/packages/response"

	"gorm.io/gorm"
)

type TitleService struct {
	repo    *TitleRepository
	ratings *rating.Aggregator
	now     func() time.Time
}

func NewTitleService(db *gorm.DB, ratings *rating.Aggregator) *TitleService {
	return &TitleService{
		repo:    NewTitleRepository(db),
		ratings: ratings,
		now:     time.Now,
	}
}

// Repository exposes the store to the feedback packages.
func (s *TitleService) Repository() *TitleRepository {
	return s.repo
}

func (s *TitleService) List(ctx context.Context, q ListQuery) (*dto.Page[TitleResponse], *response.BusinessError) {
	titles, total, err := s.repo.List(ctx, q, q.Offset(), q.Limit())
	if err != nil {
		return nil, response.Internal(err)
	}

	ids := make([]uint, len(titles))
	for i, t := range titles {
		ids[i] = t.ID
	}
	ratings, err := s.ratings.Ratings(ctx, ids)
	if err != nil {
		return nil, response.Internal(err)
	}

	results := make([]TitleResponse, len(titles))
	for i := range titles {
		results[i] = ToTitleResponse(&titles[i], ratings[titles[i].ID])
	}
	page := dto.NewPage(total, results)
	return &page, nil
}

func (s *TitleService) Get(ctx context.Context, id uint) (*TitleResponse, *response.BusinessError) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, pkg.DBError(err, "title")
	}
	return s.respond(ctx, t)
}

func (s *TitleService) Create(ctx context.Context, subject permission.Subject, req TitleRequest) (*TitleResponse, *response.BusinessError) {
	if err := permission.Authorize(subject, permission.ActionCreate, permission.ResourceCatalog, nil).Err(); err != nil {
		return nil, err
	}
	if err := s.validateYear(*req.Year); err != nil {
		return nil, err
	}

	t := &catalog.Title{Name: req.Name, Year: *req.Year, Description: req.Description}
	if err := s.setCategory(ctx, t, req.Category); err != nil {
		return nil, err
	}
	if err := s.setAuthor(ctx, t, req.Author); err != nil {
		return nil, err
	}
	genreIDs, bizErr := s.resolveGenres(ctx, req.Genre)
	if bizErr != nil {
		return nil, bizErr
	}
	if err := s.ensureUnique(ctx, t); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, t, genreIDs); err != nil {
		return nil, pkg.DBError(err, "title")
	}
	slog.Info("title created", "id", t.ID, "name", t.Name, "by", subject.Username)

	return s.Get(ctx, t.ID)
}

func (s *TitleService) Update(ctx context.Context, subject permission.Subject, id uint, req TitlePatchRequest) (*TitleResponse, *response.BusinessError) {
	if err := permission.Authorize(subject, permission.ActionUpdate, permission.ResourceCatalog, nil).Err(); err != nil {
		return nil, err
	}

	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, pkg.DBError(err, "title")
	}

	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Year != nil {
		if err := s.validateYear(*req.Year); err != nil {
			return nil, err
		}
		t.Year = *req.Year
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Category != nil {
		if err := s.setCategory(ctx, t, *req.Category); err != nil {
			return nil, err
		}
	}
	if req.Author != nil {
		if err := s.setAuthor(ctx, t, *req.Author); err != nil {
			return nil, err
		}
	}
	var genreIDs *[]uint
	if req.Genre != nil {
		ids, bizErr := s.resolveGenres(ctx, *req.Genre)
		if bizErr != nil {
			return nil, bizErr
		}
		genreIDs = &ids
	}
	if err := s.ensureUnique(ctx, t); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, t, genreIDs); err != nil {
		return nil, pkg.DBError(err, "title")
	}
	return s.Get(ctx, t.ID)
}

func (s *TitleService) Delete(ctx context.Context, subject permission.Subject, id uint) *response.BusinessError {
	if err := permission.Authorize(subject, permission.ActionDelete, permission.ResourceCatalog, nil).Err(); err != nil {
		return err
	}

	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return pkg.DBError(err, "title")
	}
	if err := s.repo.Delete(ctx, t); err != nil {
		return response.Internal(err)
	}

	slog.Info("title deleted", "id", id, "by", subject.Username)
	return nil
}

func (s *TitleService) validateYear(year int) *response.BusinessError {
	if current := s.now().Year(); year > current {
		return response.Validation("year", fmt.Sprintf("year cannot be later than %d", current))
	}
	return nil
}

func (s *TitleService) setCategory(ctx context.Context, t *catalog.Title, slug string) *response.BusinessError {
	if slug == "" {
		t.CategoryID, t.Category = nil, nil
		return nil
	}
	c, err := s.repo.FindCategory(ctx, slug)
	if err != nil {
		return unknownSlug("category", slug, err)
	}
	t.CategoryID, t.Category = &c.ID, c
	return nil
}

func (s *TitleService) setAuthor(ctx context.Context, t *catalog.Title, slug string) *response.BusinessError {
	if slug == "" {
		t.AuthorID, t.Author = nil, nil
		return nil
	}
	a, err := s.repo.FindAuthor(ctx, slug)
	if err != nil {
		return unknownSlug("author", slug, err)
	}
	t.AuthorID, t.Author = &a.ID, a
	return nil
}

func (s *TitleService) resolveGenres(ctx context.Context, slugs []string) ([]uint, *response.BusinessError) {
	unique := make([]string, 0, len(slugs))
	seen := make(map[string]bool, len(slugs))
	for _, slug := range slugs {
		if !seen[slug] {
			seen[slug] = true
			unique = append(unique, slug)
		}
	}

	genres, err := s.repo.FindGenres(ctx, unique)
	if err != nil {
		return nil, response.Internal(err)
	}

	found := make(map[string]uint, len(genres))
	for _, g := range genres {
		found[g.Slug] = g.ID
	}
	ids := make([]uint, 0, len(unique))
	var missing []string
	for _, slug := range unique {
		id, ok := found[slug]
		if !ok {
			missing = append(missing, slug)
			continue
		}
		ids = append(ids, id)
	}
	if len(missing) > 0 {
		return nil, response.Validation("genre", "unknown genre slugs: "+strings.Join(missing, ", "))
	}
	return ids, nil
}

func (s *TitleService) ensureUnique(ctx context.Context, t *catalog.Title) *response.BusinessError {
	dup, err := s.repo.Duplicate(ctx, t.Name, t.Year, t.CategoryID, t.ID)
	if err != nil {
		return response.Internal(err)
	}
	if dup {
		return response.ConflictError("a title with this name, year and category already exists")
	}
	return nil
}

func (s *TitleService) respond(ctx context.Context, t *catalog.Title) (*TitleResponse, *response.BusinessError) {
	r, err := s.ratings.Rating(ctx, t.ID)
	if err != nil {
		return nil, response.Internal(err)
	}
	resp := ToTitleResponse(t, r)
	return &resp, nil
}

func unknownSlug(field, slug string, err error) *response.BusinessError {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return response.Validation(field, fmt.Sprintf("object with slug %q does not exist", slug))
	}
	return response.Internal(err)
}
