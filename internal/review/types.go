package review

import (
	"time"

	"github.com/SergSukh/api-yamdb-33-all/internal/model/feedback"
)

type ReviewRequest struct {
	Text  string `json:"text" binding:"required"`
	Score *int   `json:"score" binding:"required,gte=1,lte=10"`
}

type ReviewPatchRequest struct {
	Text  *string `json:"text" binding:"omitempty,min=1"`
	Score *int    `json:"score" binding:"omitempty,gte=1,lte=10"`
}

type ReviewResponse struct {
	ID      uint      `json:"id"`
	Title   uint      `json:"title"`
	Text    string    `json:"text"`
	Author  string    `json:"author"`
	Score   int       `json:"score"`
	PubDate time.Time `json:"pub_date"`
}

func ToReviewResponse(r *feedback.Review) ReviewResponse {
	resp := ReviewResponse{
		ID:      r.ID,
		Title:   r.TitleID,
		Text:    r.Text,
		Score:   r.Score,
		PubDate: r.PubDate,
	}
	if r.Author != nil {
		resp.Author = r.Author.Username
	}
	return resp
}
