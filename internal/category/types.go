package category

import (
	"github.com/SergSukh/api-yamdb-33-all/internal/dto"
	"github.com/SergSukh/api-yamdb-33-all/internal/model/catalog"
)

type CategoryRequest struct {
	Name        string `json:"name" binding:"required,max=256"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type CategoryResponse struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

func ToCategoryResponse(c *catalog.Category) CategoryResponse {
	return CategoryResponse{Name: c.Name, Slug: c.Slug, Description: c.Description}
}

type ListQuery struct {
	dto.PageQuery
	Search string `form:"search"`
}
