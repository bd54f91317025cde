package comment

import (
	"time"

	"github.com/SergSukh/api-yamdb-33-all/internal/model/feedback"
)

type CommentRequest struct {
	Text string `json:"text" binding:"required"`
}

type CommentResponse struct {
	ID      uint      `json:"id"`
	Text    string    `json:"text"`
	Author  string    `json:"author"`
	PubDate time.Time `json:"pub_date"`
}

func ToCommentResponse(c *feedback.Comment) CommentResponse {
	resp := CommentResponse{ID: c.ID, Text: c.Text, PubDate: c.PubDate}
	if c.Author != nil {
		resp.Author = c.Author.Username
	}
	return resp
}
