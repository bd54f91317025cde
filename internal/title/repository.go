package title

import (
	"context"
	"strings"

	"github.com/SergSukh/api-yamdb-33-all/internal/model/catalog"
	"github.com/SergSukh/api-yamdb-33-all/internal/model/feedback"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TitleRepository struct {
	db *gorm.DB
}

func NewTitleRepository(db *gorm.DB) *TitleRepository {
	return &TitleRepository{db: db}
}

func (r *TitleRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Category").
		Preload("Author").
		Preload("Genres", func(db *gorm.DB) *gorm.DB {
			return db.Order("genres.name ASC")
		})
}

func (r *TitleRepository) List(ctx context.Context, q ListQuery, offset, limit int) ([]catalog.Title, int64, error) {
	query := r.db.WithContext(ctx).Model(&catalog.Title{})
	if q.Year != nil {
		query = query.Where("year = ?", *q.Year)
	}
	if name := strings.TrimSpace(q.Name); name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}
	if q.Category != "" {
		query = query.Where("category_id IN (?)",
			r.db.Model(&catalog.Category{}).Select("id").Where("slug = ?", q.Category))
	}
	if q.Genre != "" {
		query = query.Where("id IN (?)",
			r.db.Model(&catalog.GenreTitle{}).
				Select("genre_titles.title_id").
				Joins("JOIN genres ON genres.id = genre_titles.genre_id").
				Where("genres.slug = ?", q.Genre))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ids []uint
	if err := query.Order("id ASC").Offset(offset).Limit(limit).Pluck("id", &ids).Error; err != nil {
		return nil, 0, err
	}
	if len(ids) == 0 {
		return nil, total, nil
	}

	var titles []catalog.Title
	if err := r.withRelations(ctx).Where("id IN ?", ids).Order("id ASC").Find(&titles).Error; err != nil {
		return nil, 0, err
	}
	return titles, total, nil
}

func (r *TitleRepository) FindByID(ctx context.Context, id uint) (*catalog.Title, error) {
	var t catalog.Title
	if err := r.withRelations(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TitleRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&catalog.Title{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Duplicate reports whether a title other than excludeID has the same name,
// year and category. A nil category only matches other uncategorised titles.
func (r *TitleRepository) Duplicate(ctx context.Context, name string, year int, categoryID *uint, excludeID uint) (bool, error) {
	query := r.db.WithContext(ctx).Model(&catalog.Title{}).Where("name = ? AND year = ?", name, year)
	if categoryID == nil {
		query = query.Where("category_id IS NULL")
	} else {
		query = query.Where("category_id = ?", *categoryID)
	}
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

func (r *TitleRepository) FindCategory(ctx context.Context, slug string) (*catalog.Category, error) {
	var c catalog.Category
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *TitleRepository) FindAuthor(ctx context.Context, slug string) (*catalog.Author, error) {
	var a catalog.Author
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *TitleRepository) FindGenres(ctx context.Context, slugs []string) ([]catalog.Genre, error) {
	var genres []catalog.Genre
	if len(slugs) == 0 {
		return genres, nil
	}
	err := r.db.WithContext(ctx).Where("slug IN ?", slugs).Find(&genres).Error
	return genres, err
}

// Create inserts t and links it to genreIDs.
func (r *TitleRepository) Create(ctx context.Context, t *catalog.Title, genreIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(t).Error; err != nil {
			return err
		}
		return linkGenres(tx, t.ID, genreIDs)
	})
}

// Update writes the scalar columns of t; genreIDs, when non-nil, replaces
// the genre links.
func (r *TitleRepository) Update(ctx context.Context, t *catalog.Title, genreIDs *[]uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(t).
			Select("name", "year", "description", "author_id", "category_id").
			Updates(t).Error; err != nil {
			return err
		}
		if genreIDs == nil {
			return nil
		}
		if err := tx.Where("title_id = ?", t.ID).Delete(&catalog.GenreTitle{}).Error; err != nil {
			return err
		}
		return linkGenres(tx, t.ID, *genreIDs)
	})
}

// Delete removes the title with its genre links, reviews and their comments.
func (r *TitleRepository) Delete(ctx context.Context, t *catalog.Title) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		reviews := tx.Model(&feedback.Review{}).Select("id").Where("title_id = ?", t.ID)
		if err := tx.Where("review_id IN (?)", reviews).Delete(&feedback.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("title_id = ?", t.ID).Delete(&feedback.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("title_id = ?", t.ID).Delete(&catalog.GenreTitle{}).Error; err != nil {
			return err
		}
		return tx.Delete(&catalog.Title{ID: t.ID}).Error
	})
}

func linkGenres(tx *gorm.DB, titleID uint, genreIDs []uint) error {
	if len(genreIDs) == 0 {
		return nil
	}
	links := make([]catalog.GenreTitle, len(genreIDs))
	for i, id := range genreIDs {
		links[i] = catalog.GenreTitle{TitleID: titleID, GenreID: id}
	}
	return tx.Create(&links).Error
}
