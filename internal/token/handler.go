package token

import (
	"github.com/SergSukh/api-yamdb-33-all/internal/dto"

	"github.com/gin-gonic/gin"
)

type TokenHandler struct {
	service *TokenService
}

// handle
// @Summary Exchange a confirmation code for a token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body TokenRequest true "credentials"
// @Success 201 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /auth/token [post]
func (h *TokenHandler) handle(c *gin.Context) {
	var req TokenRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	result, err := h.service.Exchange(c.Request.Context(), req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.CreatedResponse(c, result)
}
