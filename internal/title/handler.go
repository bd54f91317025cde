package title

import (
	"github.com/SergSukh/api-yamdb-33-all/internal/dto"
	"github.com/SergSukh/api-yamdb-33-all/internal/middleware"

	"github.com/gin-gonic/gin"
)

type TitleHandler struct {
	service *TitleService
}

// list
// @Summary List titles
// @Tags titles
// @Produce json
// @Param year query int false "exact year"
// @Param genre query string false "genre slug"
// @Param category query string false "category slug"
// @Param name query string false "name substring"
// @Success 200 {object} dto.Response
// @Router /titles [get]
func (h *TitleHandler) list(c *gin.Context) {
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

// retrieve
// @Summary Get title with its rating
// @Tags titles
// @Produce json
// @Param title_id path int true "title id"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /titles/{title_id} [get]
func (h *TitleHandler) retrieve(c *gin.Context) {
	id, ok := dto.ParseID(c, "title_id")
	if !ok {
		return
	}

	result, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, result)
}

// create
// @Summary Create title
// @Tags titles
// @Accept json
// @Produce json
// @Param request body TitleRequest true "title"
// @Success 201 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 409 {object} dto.Response
// @Router /titles [post]
func (h *TitleHandler) create(c *gin.Context) {
	var req TitleRequest
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

func (h *TitleHandler) update(c *gin.Context) {
	id, ok := dto.ParseID(c, "title_id")
	if !ok {
		return
	}
	var req TitlePatchRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	result, err := h.service.Update(c.Request.Context(), middleware.CurrentSubject(c), id, req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, result)
}

func (h *TitleHandler) delete(c *gin.Context) {
	id, ok := dto.ParseID(c, "title_id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.CurrentSubject(c), id); err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.NoContentResponse(c)
}
