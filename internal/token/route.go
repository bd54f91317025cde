package token

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, service *TokenService) {
	h := &TokenHandler{service: service}
	r.POST("/token", h.handle)
}
