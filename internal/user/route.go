package user

import (
	"github.com/SergSukh/api-yamdb-33-all/internal/middleware"
	"github.com/SergSukh/api-yamdb-33-all/internal/permission"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, service *UserService) {
	h := &UserHandler{service: service}
	require := func(a permission.Action) gin.HandlerFunc {
		return middleware.Require(permission.ResourceUser, a)
	}

	users := r.Group("/users")
	users.GET("", require(permission.ActionList), h.list)
	users.POST("", require(permission.ActionCreate), h.create)
	users.GET("/me", require(permission.ActionRetrieve), h.me)
	users.PATCH("/me", require(permission.ActionUpdate), h.updateMe)
	users.GET("/:username", require(permission.ActionRetrieve), h.retrieve)
	users.PATCH("/:username", require(permission.ActionUpdate), h.update)
	users.DELETE("/:username", require(permission.ActionDelete), h.delete)
}
