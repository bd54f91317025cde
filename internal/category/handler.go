package category

import (
	"github.com/SergSukh/api-yamdb-33-all/internal/dto"
	"github.com/SergSukh/api-yamdb-33-all/internal/middleware"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	service *CategoryService
}

// list
// @Summary List categories
// @Tags categories
// @Produce json
// @Param search query string false "name or slug substring"
// @Success 200 {object} dto.Response
// @Router /categories [get]
func (h *CategoryHandler) list(c *gin.Context) {
	var q ListQuery
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

// create
// @Summary Create category
// @Tags categories
// @Accept json
// @Produce json
// @Param request body CategoryRequest true "category"
// @Success 201 {object} dto.Response
// @Failure 403 {object} dto.Response
// @Failure 409 {object} dto.Response
// @Router /categories [post]
func (h *CategoryHandler) create(c *gin.Context) {
	var req CategoryRequest
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

func (h *CategoryHandler) delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), middleware.CurrentSubject(c), c.Param("slug")); err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.NoContentResponse(c)
}
