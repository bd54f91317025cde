package category

import (
	"github.com/SergSukh/api-yamdb-33-all/internal/middleware"
	"github.com/SergSukh/api-yamdb-33-all/internal/permission"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, service *CategoryService) {
	h := &CategoryHandler{service: service}

	categories := r.Group("/categories")
	categories.GET("", h.list)
	categories.POST("", middleware.Require(permission.ResourceCatalog, permission.ActionCreate), h.create)
	categories.DELETE("/:slug", middleware.Require(permission.ResourceCatalog, permission.ActionDelete), h.delete)
}
