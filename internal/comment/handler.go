package comment

import (
	"github.com/SergSukh/api-yamdb-33-all/internal/dto"
	"github.com/SergSukh/api-yamdb-33-all/internal/middleware"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	service *CommentService
}

func parsePath(c *gin.Context) (Path, bool) {
	titleID, ok := dto.ParseID(c, "title_id")
	if !ok {
		return Path{}, false
	}
	reviewID, ok := dto.ParseID(c, "review_id")
	if !ok {
		return Path{}, false
	}
	return Path{TitleID: titleID, ReviewID: reviewID}, true
}

// list
// @Summary List comments on a review
// @Tags comments
// @Produce json
// @Param title_id path int true "title id"
// @Param review_id path int true "review id"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Router /titles/{title_id}/reviews/{review_id}/comments [get]
func (h *CommentHandler) list(c *gin.Context) {
	p, ok := parsePath(c)
	if !ok {
		return
	}
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	page, err := h.service.List(c.Request.Context(), p, q)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, page)
}

func (h *CommentHandler) create(c *gin.Context) {
	p, ok := parsePath(c)
	if !ok {
		return
	}
	var req CommentRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	result, err := h.service.Create(c.Request.Context(), middleware.CurrentSubject(c), p, req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.CreatedResponse(c, result)
}

func (h *CommentHandler) retrieve(c *gin.Context) {
	p, ok := parsePath(c)
	if !ok {
		return
	}
	commentID, ok := dto.ParseID(c, "comment_id")
	if !ok {
		return
	}

	result, err := h.service.Get(c.Request.Context(), p, commentID)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, result)
}

func (h *CommentHandler) update(c *gin.Context) {
	p, ok := parsePath(c)
	if !ok {
		return
	}
	commentID, ok := dto.ParseID(c, "comment_id")
	if !ok {
		return
	}
	var req CommentRequest
	if !dto.BindJSON(c, &req) {
		return
	}

	result, err := h.service.Update(c.Request.Context(), middleware.CurrentSubject(c), p, commentID, req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, result)
}

func (h *CommentHandler) delete(c *gin.Context) {
	p, ok := parsePath(c)
	if !ok {
		return
	}
	commentID, ok := dto.ParseID(c, "comment_id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.CurrentSubject(c), p, commentID); err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.NoContentResponse(c)
}
