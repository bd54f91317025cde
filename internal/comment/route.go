package comment

import (
	"github.com/SergSukh/api-yamdb-33-all/internal/middleware"
	"github.com/SergSukh/api-yamdb-33-all/internal/permission"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, service *CommentService) {
	h := &CommentHandler{service: service}
	require := func(a permission.Action) gin.HandlerFunc {
		return middleware.Require(permission.ResourceFeedback, a)
	}

	comments := r.Group("/titles/:title_id/reviews/:review_id/comments")
	comments.GET("", h.list)
	comments.POST("", require(permission.ActionCreate), h.create)
	comments.GET("/:comment_id", h.retrieve)
	comments.PATCH("/:comment_id", require(permission.ActionUpdate), h.update)
	comments.DELETE("/:comment_id", require(permission.ActionDelete), h.delete)
}
