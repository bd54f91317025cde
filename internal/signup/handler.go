package signup

import (
	"github.com/SergSukh/api-yamdb-33-all/internal/dto"

	"github.com/gin-gonic/gin"
)

type SignupHandler struct {
	service *SignupService
}

// handle
// @Summary Request a confirmation code
// @Description Creates a pending account and mails it a one-time confirmation code
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "signup"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 409 {object} dto.Response
// @Router /auth/signup [post]
func (h *SignupHandler) handle(c *gin.Context) {
	var req SignupRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	result, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, result)
}
