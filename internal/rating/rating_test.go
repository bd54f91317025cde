package rating

import (
	"context"
	"errors"
	"testing"

	"github.com/SergSukh/api-yamdb-33-all/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScores map[uint]Stats

func (f fakeScores) ScoreStats(_ context.Context, ids []uint) (map[uint]Stats, error) {
	out := make(map[uint]Stats)
	for _, id := range ids {
		if s, ok := f[id]; ok {
			out[id] = s
		}
	}
	return out, nil
}

type failingScores struct{}

func (failingScores) ScoreStats(context.Context, []uint) (map[uint]Stats, error) {
	return nil, errors.New("store down")
}

func TestMean(t *testing.T) {
	tests := []struct {
		name  string
		stats Stats
		want  *float64
	}{
		{"no reviews", Stats{}, nil},
		{"single review", Stats{Sum: 7, Count: 1}, ptr(7)},
		{"4 and 8", Stats{Sum: 12, Count: 2}, ptr(6)},
		{"thirds round down", Stats{Sum: 10, Count: 3}, ptr(3.33)},
		{"two thirds round up", Stats{Sum: 20, Count: 3}, ptr(6.67)},
		{"half rounds away from zero", Stats{Sum: 25, Count: 8}, ptr(3.13)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mean(tt.stats)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

func TestAggregator_Ratings(t *testing.T) {
	agg := NewAggregator(fakeScores{1: {Sum: 12, Count: 2}})

	ratings, err := agg.Ratings(context.Background(), []uint{1, 2})
	require.NoError(t, err)
	require.Contains(t, ratings, uint(2))
	assert.Nil(t, ratings[2])
	assert.InDelta(t, 6.0, *ratings[1], 1e-9)

	empty, err := agg.Ratings(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = NewAggregator(failingScores{}).Rating(context.Background(), 1)
	assert.Error(t, err)
}

// TestAggregator_Store two reviews scored 4 and 8 on "X" (2020, fiction) rate 6.0
func TestAggregator_Store(t *testing.T) {
	db := testutils.SetupTestDB(t)
	agg := NewAggregator(NewRepository(db))
	ctx := context.Background()

	fiction := testutils.CreateTestCategory(db, "fiction")
	title := testutils.CreateTestTitle(db, testutils.WithTitleName("X"), testutils.WithYear(2020), testutils.WithCategory(fiction))
	other := testutils.CreateTestTitle(db)

	got, err := agg.Rating(ctx, title.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "no reviews must yield no rating, not zero")

	testutils.CreateTestReview(db, title.ID, testutils.CreateTestUser(db).ID, 4)
	testutils.CreateTestReview(db, title.ID, testutils.CreateTestUser(db).ID, 8)
	testutils.CreateTestReview(db, other.ID, testutils.CreateTestUser(db).ID, 1)

	got, err = agg.Rating(ctx, title.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, 6.0, *got, 1e-9)

	// recomputed on every read
	testutils.CreateTestReview(db, title.ID, testutils.CreateTestUser(db).ID, 10)
	got, err = agg.Rating(ctx, title.ID)
	require.NoError(t, err)
	assert.InDelta(t, 7.33, *got, 1e-9)
}

func ptr(f float64) *float64 {
	return &f
}
