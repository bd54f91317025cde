package review

import (
	"github.com/SergSukh/api-yamdb-33-all/internal/middleware"
	"github.com/SergSukh/api-yamdb-33-all/internal/permission"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, service *ReviewService) {
	h := &ReviewHandler{service: service}
	require := func(a permission.Action) gin.HandlerFunc {
		return middleware.Require(permission.ResourceFeedback, a)
	}

	reviews := r.Group("/titles/:title_id/reviews")
	reviews.GET("", h.list)
	reviews.POST("", require(permission.ActionCreate), h.create)
	reviews.GET("/:review_id", h.retrieve)
	reviews.PATCH("/:review_id", require(permission.ActionUpdate), h.update)
	reviews.DELETE("/:review_id", require(permission.ActionDelete), h.delete)
}
