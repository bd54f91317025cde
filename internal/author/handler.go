package author

import (
	"github.com/SergSukh/api-yamdb-33-all/internal/dto"
	"github.com/SergSukh/api-yamdb-33-all/internal/middleware"

	"github.com/gin-gonic/gin"
)

type AuthorHandler struct {
	service *AuthorService
}

// list
// @Summary List authors
// @Tags author
// @Produce json
// @Success 200 {object} dto.Response
// @Router /author [get]
func (h *AuthorHandler) list(c *gin.Context) {
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	page, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, page)
}

func (h *AuthorHandler) retrieve(c *gin.Context) {
	result, err := h.service.Get(c.Request.Context(), c.Param("slug"))
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, result)
}

func (h *AuthorHandler) create(c *gin.Context) {
	var req AuthorRequest
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

func (h *AuthorHandler) update(c *gin.Context) {
	var req AuthorPatchRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	result, err := h.service.Update(c.Request.Context(), middleware.CurrentSubject(c), c.Param("slug"), req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, result)
}

func (h *AuthorHandler) delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), middleware.CurrentSubject(c), c.Param("slug")); err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.NoContentResponse(c)
}
