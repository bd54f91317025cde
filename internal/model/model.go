package model

import (
	"fmt"

	"github.com/SergSukh/api-yamdb-33-all/internal/model/catalog"
	"github.com/SergSukh/api-yamdb-33-all/internal/model/feedback"
	"github.com/SergSukh/api-yamdb-33-all/internal/model/user"

	"gorm.io/gorm"
)

// uncategorizedTitleIndex is a partial index; postgres and sqlite share the syntax.
const uncategorizedTitleIndex = `CREATE UNIQUE INDEX IF NOT EXISTS idx_titles_name_year_uncategorized
	ON titles (name, year) WHERE category_id IS NULL`

// GetModels returns every migrated model, parents first.
func GetModels() []any {
	return []any{
		&user.User{},
		&catalog.Category{},
		&catalog.Genre{},
		&catalog.Author{},
		&catalog.Title{},
		&catalog.GenreTitle{},
		&feedback.Review{},
		&feedback.Comment{},
	}
}

func InitTable(db *gorm.DB) error {
	if err := db.SetupJoinTable(&catalog.Title{}, "Genres", &catalog.GenreTitle{}); err != nil {
		return fmt.Errorf("setup genre_titles: %w", err)
	}

	if err := db.AutoMigrate(GetModels()...); err != nil {
		return fmt.Errorf("migrate tables: %w", err)
	}

	// NULLs never collide in idx_titles_name_year_category.
	if err := db.Exec(uncategorizedTitleIndex).Error; err != nil {
		return fmt.Errorf("create uncategorized title index: %w", err)
	}

	return nil
}
