// Package permission decides whether a subject may perform an action on a
// resource. Decisions are pure: they only look at the subject, the action
// and the owner of the target object.
package permission

import (
	"strings"

	"github.com/SergSukh/api-yamdb-33-all/internal/model/user"
)

// Role is ordered; a higher value includes every right of the lower ones.
type Role int

const (
	RoleUnknown   Role = 0
	RoleUser      Role = 10
	RoleModerator Role = 50
	RoleAdmin     Role = 80
)

// RoleLevelMap role name to level
var RoleLevelMap = map[string]Role{
	user.RoleUser:      RoleUser,
	user.RoleModerator: RoleModerator,
	user.RoleAdmin:     RoleAdmin,
}

// ParseRole is case sensitive; unknown names map to RoleUnknown.
func ParseRole(name string) Role {
	if role, ok := RoleLevelMap[name]; ok {
		return role
	}
	return RoleUnknown
}

func (r Role) String() string {
	switch r {
	case RoleUser:
		return user.RoleUser
	case RoleModerator:
		return user.RoleModerator
	case RoleAdmin:
		return user.RoleAdmin
	default:
		return "unknown"
	}
}

// IsValidRoleName reports whether name can be stored on a user.
func IsValidRoleName(name string) bool {
	return ParseRole(name) != RoleUnknown
}

// RoleNames lists the assignable roles, lowest first.
func RoleNames() string {
	return strings.Join([]string{user.RoleUser, user.RoleModerator, user.RoleAdmin}, " ")
}

// Subject the caller of an operation. The zero value is anonymous.
type Subject struct {
	UserID      uint
	Username    string
	Role        Role
	IsSuperuser bool
}

func Anonymous() Subject {
	return Subject{}
}

// SubjectFromUser builds a subject from a stored account.
func SubjectFromUser(u *user.User) Subject {
	if u == nil {
		return Anonymous()
	}
	return Subject{
		UserID:      u.ID,
		Username:    u.Username,
		Role:        ParseRole(u.Role),
		IsSuperuser: u.IsSuperuser,
	}
}

func (s Subject) IsAuthenticated() bool {
	return s.UserID != 0
}

// EffectiveRole folds the superuser flag into the role order.
func (s Subject) EffectiveRole() Role {
	if !s.IsAuthenticated() {
		return RoleUnknown
	}
	if s.IsSuperuser {
		return RoleAdmin
	}
	return s.Role
}

// RoleAtLeast is the single comparison every rule goes through.
func RoleAtLeast(s Subject, required Role) bool {
	return s.EffectiveRole() >= required
}

func (s Subject) IsAdmin() bool {
	return RoleAtLeast(s, RoleAdmin)
}
