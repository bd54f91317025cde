package genre

import (
	"github.com/SergSukh/api-yamdb-33-all/internal/dto"
	"github.com/SergSukh/api-yamdb-33-all/internal/model/catalog"
)

type GenreRequest struct {
	Name string `json:"name" binding:"required,max=256"`
	Slug string `json:"slug"`
}

type GenreResponse struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func ToGenreResponse(g *catalog.Genre) GenreResponse {
	return GenreResponse{Name: g.Name, Slug: g.Slug}
}

type ListQuery struct {
	dto.PageQuery
	Search string `form:"search"`
}
