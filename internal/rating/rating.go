// Package rating computes the average review score of titles on every read.
package rating

import (
	"context"
	"math"
)

// Stats score totals of one title.
type Stats struct {
	Sum   int64
	Count int64
}

// ScoreRepository supplies review score totals grouped by title.
type ScoreRepository interface {
	ScoreStats(ctx context.Context, titleIDs []uint) (map[uint]Stats, error)
}

type Aggregator struct {
	repo ScoreRepository
}

func NewAggregator(repo ScoreRepository) *Aggregator {
	return &Aggregator{repo: repo}
}

// Rating returns the mean score of a title rounded to two decimals, or nil
// when the title has no reviews.
func (a *Aggregator) Rating(ctx context.Context, titleID uint) (*float64, error) {
	ratings, err := a.Ratings(ctx, []uint{titleID})
	if err != nil {
		return nil, err
	}
	return ratings[titleID], nil
}

// Ratings is Rating for many titles in one query. Titles without reviews
// map to nil.
func (a *Aggregator) Ratings(ctx context.Context, titleIDs []uint) (map[uint]*float64, error) {
	result := make(map[uint]*float64, len(titleIDs))
	if len(titleIDs) == 0 {
		return result, nil
	}

	stats, err := a.repo.ScoreStats(ctx, titleIDs)
	if err != nil {
		return nil, err
	}

	for _, id := range titleIDs {
		result[id] = Mean(stats[id])
	}
	return result, nil
}

// Mean is sum/count rounded half away from zero to two decimals.
func Mean(s Stats) *float64 {
	if s.Count <= 0 {
		return nil
	}
	avg := math.Round(float64(s.Sum)/float64(s.Count)*100) / 100
	return &avg
}
