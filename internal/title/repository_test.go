package title

import (
	"context"
	"testing"

	"github.com/SergSukh/api-yamdb-33-all/internal/model/catalog"
	"github.com/SergSukh/api-yamdb-33-all/internal/pkg"
	"github.com/SergSukh/api-yamdb-33-all/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitleRepository_CreateEnforcesUniqueness(t *testing.T) {
	db := testutils.SetupTestDB(t)
	repo := NewTitleRepository(db)
	ctx := context.Background()
	films := testutils.CreateTestCategory(db, "films")
	books := testutils.CreateTestCategory(db, "books")

	tests := []struct {
		name     string
		category *uint
	}{
		{"without category", nil},
		{"with category", &films.ID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := &catalog.Title{Name: "X " + tt.name, Year: 2020, CategoryID: tt.category}
			require.NoError(t, repo.Create(ctx, first, nil))

			second := &catalog.Title{Name: "X " + tt.name, Year: 2020, CategoryID: tt.category}
			err := repo.Create(ctx, second, nil)
			require.Error(t, err)
			assert.True(t, pkg.IsUniqueViolation(err), err.Error())

			var count int64
			require.NoError(t, db.Model(&catalog.Title{}).Where("name = ?", "X "+tt.name).Count(&count).Error)
			assert.Equal(t, int64(1), count)
		})
	}

	// Same name and year stay allowed across categories and next to an uncategorized row.
	require.NoError(t, repo.Create(ctx, &catalog.Title{Name: "X without category", Year: 2020, CategoryID: &books.ID}, nil))
	require.NoError(t, repo.Create(ctx, &catalog.Title{Name: "X without category", Year: 2021}, nil))
}
