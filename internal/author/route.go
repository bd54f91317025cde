package author

import (
	"github.com/SergSukh/api-yamdb-33-all/internal/middleware"
	"github.com/SergSukh/api-yamdb-33-all/internal/permission"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, service *AuthorService) {
	h := &AuthorHandler{service: service}
	admin := func(a permission.Action) gin.HandlerFunc {
		return middleware.Require(permission.ResourceCatalog, a)
	}

	authors := r.Group("/author")
	authors.GET("", h.list)
	authors.POST("", admin(permission.ActionCreate), h.create)
	authors.GET("/:slug", h.retrieve)
	authors.PATCH("/:slug", admin(permission.ActionUpdate), h.update)
	authors.DELETE("/:slug", admin(permission.ActionDelete), h.delete)
}
