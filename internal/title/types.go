package title

import (
	"github.com/SergSukh/api-yamdb-33-all/internal/dto"
	"github.com/SergSukh/api-yamdb-33-all/internal/model/catalog"
)

// TitleRequest references category, author and genres by slug
type TitleRequest struct {
	Name        string   `json:"name" binding:"required,max=256"`
	Year        *int     `json:"year" binding:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Genre       []string `json:"genre"`
	Author      string   `json:"author"`
}

// TitlePatchRequest partial update; an empty category or author slug clears it
type TitlePatchRequest struct {
	Name        *string   `json:"name" binding:"omitempty,min=1,max=256"`
	Year        *int      `json:"year"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Genre       *[]string `json:"genre"`
	Author      *string   `json:"author"`
}

type CategoryRef struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type GenreRef struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type TitleResponse struct {
	ID          uint         `json:"id"`
	Name        string       `json:"name"`
	Year        int          `json:"year"`
	Description string       `json:"description"`
	Rating      *float64     `json:"rating"`
	Category    *CategoryRef `json:"category"`
	Genre       []GenreRef   `json:"genre"`
	Author      *string      `json:"author"`
}

func ToTitleResponse(t *catalog.Title, rating *float64) TitleResponse {
	resp := TitleResponse{
		ID:          t.ID,
		Name:        t.Name,
		Year:        t.Year,
		Description: t.Description,
		Rating:      rating,
		Genre:       make([]GenreRef, len(t.Genres)),
	}
	if t.Category != nil {
		resp.Category = &CategoryRef{Name: t.Category.Name, Slug: t.Category.Slug}
	}
	if t.Author != nil {
		slug := t.Author.Slug
		resp.Author = &slug
	}
	for i, g := range t.Genres {
		resp.Genre[i] = GenreRef{Name: g.Name, Slug: g.Slug}
	}
	return resp
}

type ListQuery struct {
	dto.PageQuery
	Year     *int   `form:"year"`
	Genre    string `form:"genre"`
	Category string `form:"category"`
	Name     string `form:"name"`
}
