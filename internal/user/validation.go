package user

import (
	"regexp"
	"unicode/utf8"

	userModel "github.com/SergSukh/api-yamdb-33-all/internal/model/user"
	"github.com/SergSukh/api-yamdb-33-all/packages/response"
)

const MaxUsernameLength = 150

// letters, digits and @ . + - _
var usernameRegex = regexp.MustCompile(`^[\p{L}\p{N}_.@+-]+$`)

// ValidateUsername checks the reserved name first, then length and charset.
func ValidateUsername(username string) *response.BusinessError {
	if username == userModel.ReservedUsername {
		return response.Validation("username", `the username "me" is reserved`)
	}
	if username == "" {
		return response.Validation("username", "this field is required")
	}
	if utf8.RuneCountInString(username) > MaxUsernameLength {
		return response.Validation("username", "ensure this field has no more than 150 characters")
	}
	if !usernameRegex.MatchString(username) {
		return response.Validation("username", "enter a valid username: letters, digits and @/./+/-/_ only")
	}
	return nil
}
