package genre

import (
	"github.com/SergSukh/api-yamdb-33-all/internal/middleware"
	"github.com/SergSukh/api-yamdb-33-all/internal/permission"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, service *GenreService) {
	h := &GenreHandler{service: service}

	genres := r.Group("/genres")
	genres.GET("", h.list)
	genres.POST("", middleware.Require(permission.ResourceCatalog, permission.ActionCreate), h.create)
	genres.DELETE("/:slug", middleware.Require(permission.ResourceCatalog, permission.ActionDelete), h.delete)
}
