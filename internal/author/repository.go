package author

import (
	"context"

	"github.com/SergSukh/api-yamdb-33-all/internal/model/catalog"

	"gorm.io/gorm"
)

type AuthorRepository struct {
	db *gorm.DB
}

func NewAuthorRepository(db *gorm.DB) *AuthorRepository {
	return &AuthorRepository{db: db}
}

func (r *AuthorRepository) List(ctx context.Context, offset, limit int) ([]catalog.Author, int64, error) {
	query := r.db.WithContext(ctx).Model(&catalog.Author{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var authors []catalog.Author
	if err := query.Order("last_name ASC, first_name ASC, id ASC").Offset(offset).Limit(limit).Find(&authors).Error; err != nil {
		return nil, 0, err
	}
	return authors, total, nil
}

func (r *AuthorRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Author, error) {
	var a catalog.Author
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// SlugTaken reports whether another author than excludeID uses slug.
func (r *AuthorRepository) SlugTaken(ctx context.Context, slug string, excludeID uint) (bool, error) {
	query := r.db.WithContext(ctx).Model(&catalog.Author{}).Where("slug = ?", slug)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// TitleNames returns title names per author id.
func (r *AuthorRepository) TitleNames(ctx context.Context, authorIDs []uint) (map[uint][]string, error) {
	names := make(map[uint][]string, len(authorIDs))
	if len(authorIDs) == 0 {
		return names, nil
	}

	var titles []catalog.Title
	if err := r.db.WithContext(ctx).
		Select("id", "name", "author_id").
		Where("author_id IN ?", authorIDs).
		Order("name ASC").
		Find(&titles).Error; err != nil {
		return nil, err
	}
	for _, t := range titles {
		names[*t.AuthorID] = append(names[*t.AuthorID], t.Name)
	}
	return names, nil
}

func (r *AuthorRepository) Create(ctx context.Context, a *catalog.Author) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AuthorRepository) Save(ctx context.Context, a *catalog.Author) error {
	return r.db.WithContext(ctx).Save(a).Error
}

// Delete detaches the author from its titles, then removes it.
func (r *AuthorRepository) Delete(ctx context.Context, a *catalog.Author) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&catalog.Title{}).
			Where("author_id = ?", a.ID).
			Update("author_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(a).Error
	})
}
