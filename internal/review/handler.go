package review

import (
	"github.com/SergSukh/api-yamdb-33-all/internal/dto"
	"github.com/SergSukh/api-yamdb-33-all/internal/middleware"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	service *ReviewService
}

// list
// @Summary List reviews of a title, newest first
// @Tags reviews
// @Produce json
// @Param title_id path int true "title id"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /titles/{title_id}/reviews [get]
func (h *ReviewHandler) list(c *gin.Context) {
	titleID, ok := dto.ParseID(c, "title_id")
	if !ok {
		return
	}
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	page, err := h.service.List(c.Request.Context(), titleID, q)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, page)
}

// create
// @Summary Review a title
// @Description One review per user and title
// @Tags reviews
// @Accept json
// @Produce json
// @Param title_id path int true "title id"
// @Param request body ReviewRequest true "review"
// @Success 201 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Failure 409 {object} dto.Response
// @Router /titles/{title_id}/reviews [post]
func (h *ReviewHandler) create(c *gin.Context) {
	titleID, ok := dto.ParseID(c, "title_id")
	if !ok {
		return
	}
	var req ReviewRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	result, err := h.service.Create(c.Request.Context(), middleware.CurrentSubject(c), titleID, req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.CreatedResponse(c, result)
}

func (h *ReviewHandler) retrieve(c *gin.Context) {
	titleID, reviewID, ok := parseIDs(c)
	if !ok {
		return
	}

	result, err := h.service.Get(c.Request.Context(), titleID, reviewID)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, result)
}

func (h *ReviewHandler) update(c *gin.Context) {
	titleID, reviewID, ok := parseIDs(c)
	if !ok {
		return
	}
	var req ReviewPatchRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	result, err := h.service.Update(c.Request.Context(), middleware.CurrentSubject(c), titleID, reviewID, req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, result)
}

func (h *ReviewHandler) delete(c *gin.Context) {
	titleID, reviewID, ok := parseIDs(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.CurrentSubject(c), titleID, reviewID); err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.NoContentResponse(c)
}

func parseIDs(c *gin.Context) (titleID, reviewID uint, ok bool) {
	if titleID, ok = dto.ParseID(c, "title_id"); !ok {
		return 0, 0, false
	}
	if reviewID, ok = dto.ParseID(c, "review_id"); !ok {
		return 0, 0, false
	}
	return titleID, reviewID, true
}
