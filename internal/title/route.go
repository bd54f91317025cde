package title

import (
	"github.com/SergSukh/api-yamdb-33-all/internal/middleware"
	"github.com/SergSukh/api-yamdb-33-all/internal/permission"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, service *TitleService) {
	h := &TitleHandler{service: service}
	admin := func(a permission.Action) gin.HandlerFunc {
		return middleware.Require(permission.ResourceCatalog, a)
	}

	titles := r.Group("/titles")
	titles.GET("", h.list)
	titles.POST("", admin(permission.ActionCreate), h.create)
	titles.GET("/:title_id", h.retrieve)
	titles.PATCH("/:title_id", admin(permission.ActionUpdate), h.update)
	titles.DELETE("/:title_id", admin(permission.ActionDelete), h.delete)
}
