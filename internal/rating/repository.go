package rating

import (
	"context"

	"github.com/SergSukh/api-yamdb-33-all/internal/model/feedback"

	"gorm.io/gorm"
)

type scoreRepository struct {
	db *gorm.DB
}

// NewRepository reads score totals from the reviews table.
func NewRepository(db *gorm.DB) ScoreRepository {
	return &scoreRepository{db: db}
}

func (r *scoreRepository) ScoreStats(ctx context.Context, titleIDs []uint) (map[uint]Stats, error) {
	var rows []struct {
		TitleID uint
		Total   int64
		Cnt     int64
	}

	err := r.db.WithContext(ctx).
		Model(&feedback.Review{}).
		Select("title_id, SUM(score) AS total, COUNT(*) AS cnt").
		Where("title_id IN ?", titleIDs).
		Group("title_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := make(map[uint]Stats, len(rows))
	for _, row := range rows {
		stats[row.TitleID] = Stats{Sum: row.Total, Count: row.Cnt}
	}
	return stats, nil
}
