package genre

import (
	"context"
	"strings"

	"github.com/SergSukh/api-yamdb-33-all/internal/model/catalog"

	"gorm.io/gorm"
)

type GenreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) *GenreRepository {
	return &GenreRepository{db: db}
}

func (r *GenreRepository) List(ctx context.Context, search string, offset, limit int) ([]catalog.Genre, int64, error) {
	query := r.db.WithContext(ctx).Model(&catalog.Genre{})
	if search = strings.TrimSpace(search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(slug) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var genres []catalog.Genre
	if err := query.Order("name ASC, id ASC").Offset(offset).Limit(limit).Find(&genres).Error; err != nil {
		return nil, 0, err
	}
	return genres, total, nil
}

func (r *GenreRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Genre, error) {
	var g catalog.Genre
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GenreRepository) Create(ctx context.Context, g *catalog.Genre) error {
	return r.db.WithContext(ctx).Create(g).Error
}

// Delete unlinks the genre from every title, then removes it.
func (r *GenreRepository) Delete(ctx context.Context, g *catalog.Genre) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("genre_id = ?", g.ID).Delete(&catalog.GenreTitle{}).Error; err != nil {
			return err
		}
		return tx.Delete(g).Error
	})
}
