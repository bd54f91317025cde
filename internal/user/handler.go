package user

import (
	"github.com/SergSukh/api-yamdb-33-all/internal/dto"
	"github.com/SergSukh/api-yamdb-33-all/internal/middleware"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service *UserService
}

// list
// @Summary List users
// @Description Admins see every account, other users only themselves
// @Tags users
// @Produce json
// @Param search query string false "username substring"
// @Param page query int false "page number"
// @Param page_size query int false "page size"
// @Success 200 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Router /users [get]
func (h *UserHandler) list(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	page, err := h.service.List(c.Request.Context(), middleware.CurrentSubject(c), q)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, page)
}

// create
// @Summary Create user
// @Description Admin only. A confirmation code is mailed to the new account.
// @Tags users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "account"
// @Success 201 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 403 {object} dto.Response
// @Failure 409 {object} dto.Response
// @Router /users [post]
func (h *UserHandler) create(c *gin.Context) {
	var req CreateUserRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	result, err := h.service.Create(c.Request.Context(), middleware.CurrentSubject(c), req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.CreatedResponse(c, result)
}

func (h *UserHandler) retrieve(c *gin.Context) {
	result, err := h.service.Get(c.Request.Context(), middleware.CurrentSubject(c), c.Param("username"))
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, result)
}

func (h *UserHandler) update(c *gin.Context) {
	var req UpdateUserRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	result, err := h.service.Update(c.Request.Context(), middleware.CurrentSubject(c), c.Param("username"), req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, result)
}

func (h *UserHandler) delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), middleware.CurrentSubject(c), c.Param("username")); err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.NoContentResponse(c)
}

// me
// @Summary Current user profile
// @Tags users
// @Produce json
// @Success 200 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Router /users/me [get]
func (h *UserHandler) me(c *gin.Context) {
	result, err := h.service.Me(c.Request.Context(), middleware.CurrentSubject(c))
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, result)
}

func (h *UserHandler) updateMe(c *gin.Context) {
	var req UpdateUserRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	result, err := h.service.UpdateMe(c.Request.Context(), middleware.CurrentSubject(c), req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, result)
}
