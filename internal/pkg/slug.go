package pkg

import (
	"regexp"
	"strings"

	"github.com/SergSukh/api-yamdb-33-all/packages/response"

	"github.com/gosimple/slug"
)

const MaxSlugLength = 50

var slugRegex = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

// Slugify derives a URL-safe slug from parts, transliterating non-Latin text.
func Slugify(parts ...string) string {
	s := slug.Make(strings.Join(parts, " "))
	if len(s) > MaxSlugLength {
		s = strings.TrimRight(s[:MaxSlugLength], "-")
	}
	return s
}

// ResolveSlug returns given when set, otherwise a slug derived from parts,
// and checks the result against the slug format.
func ResolveSlug(given string, parts ...string) (string, *response.BusinessError) {
	s := strings.TrimSpace(given)
	if s == "" {
		s = Slugify(parts...)
	}
	if s == "" {
		return "", response.Validation("slug", "this field is required")
	}
	if len(s) > MaxSlugLength {
		return "", response.Validation("slug", "ensure this field has no more than 50 characters")
	}
	if !slugRegex.MatchString(s) {
		return "", response.Validation("slug", "enter a valid slug: letters, digits, underscores or hyphens")
	}
	return s, nil
}
