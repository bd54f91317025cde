package genre

import (
	"github.com/SergSukh/api-yamdb-33-all/internal/dto"
	"github.com/SergSukh/api-yamdb-33-all/internal/middleware"

	"github.com/gin-gonic/gin"
)

type GenreHandler struct {
	service *GenreService
}

// list
// @Summary List genres
// @Tags genres
// @Produce json
// @Param search query string false "name or slug substring"
// @Success 200 {object} dto.Response
// @Router /genres [get]
func (h *GenreHandler) list(c *gin.Context) {
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

func (h *GenreHandler) create(c *gin.Context) {
	var req GenreRequest
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

func (h *GenreHandler) delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), middleware.CurrentSubject(c), c.Param("slug")); err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.NoContentResponse(c)
}
