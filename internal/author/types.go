package author

import (
	"github.com/SergSukh/api-yamdb-33-all/internal/model/catalog"
)

type AuthorRequest struct {
	FirstName string `json:"first_name" binding:"required,max=150"`
	LastName  string `json:"last_name" binding:"max=150"`
	Slug      string `json:"slug"`
}

type AuthorPatchRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,min=1,max=150"`
	LastName  *string `json:"last_name" binding:"omitempty,max=150"`
	Slug      *string `json:"slug"`
}

// AuthorResponse lists the names of the author's titles
type AuthorResponse struct {
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Slug      string   `json:"slug"`
	Titles    []string `json:"titles"`
}

func ToAuthorResponse(a *catalog.Author, titles []string) AuthorResponse {
	if titles == nil {
		titles = []string{}
	}
	return AuthorResponse{
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Slug:      a.Slug,
		Titles:    titles,
	}
}
