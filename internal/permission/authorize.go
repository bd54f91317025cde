package permission

import "github.com/SergSukh/api-yamdb-33-all/packages/response"

type Action string

const (
	ActionList     Action = "list"
	ActionRetrieve Action = "retrieve"
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
)

// IsSafe reports whether the action only reads.
func (a Action) IsSafe() bool {
	return a == ActionList || a == ActionRetrieve
}

type Resource string

const (
	ResourceUser     Resource = "user"
	ResourceCatalog  Resource = "catalog"
	ResourceFeedback Resource = "feedback"
)

// Object the target of an object-level check.
type Object struct {
	OwnerID uint
}

type Reason string

const (
	ReasonNone            Reason = ""
	ReasonUnauthenticated Reason = "unauthenticated"
	ReasonForbidden       Reason = "forbidden"
)

type Decision struct {
	Allowed bool
	Reason  Reason
}

var (
	allow           = Decision{Allowed: true}
	unauthenticated = Decision{Reason: ReasonUnauthenticated}
	forbidden       = Decision{Reason: ReasonForbidden}
)

// Err converts a deny into the matching business error; nil when allowed.
func (d Decision) Err() *response.BusinessError {
	switch {
	case d.Allowed:
		return nil
	case d.Reason == ReasonUnauthenticated:
		return response.NewBusinessError(
			response.WithErrorCode(response.Unauthorized),
			response.WithErrorMessage("authentication credentials were not provided"),
		)
	default:
		return response.NewBusinessError(
			response.WithErrorCode(response.Forbidden),
			response.WithErrorMessage("you do not have permission to perform this action"),
		)
	}
}

// Precheck applies the rules that do not depend on the target object. It
// runs before the object is loaded, so anonymous callers get 401 even for
// objects that do not exist.
func Precheck(s Subject, a Action, r Resource) Decision {
	if !a.IsSafe() && !s.IsAuthenticated() {
		return unauthenticated
	}

	switch r {
	case ResourceCatalog:
		if a.IsSafe() || RoleAtLeast(s, RoleAdmin) {
			return allow
		}
		return forbidden
	case ResourceFeedback:
		return allow
	case ResourceUser:
		if !s.IsAuthenticated() {
			return unauthenticated
		}
		if (a == ActionCreate || a == ActionDelete) && !s.IsAdmin() {
			return forbidden
		}
		return allow
	default:
		return forbidden
	}
}

// Authorize decides whether s may perform a on r. obj is the loaded target of
// an object-level action and nil for collection actions.
func Authorize(s Subject, a Action, r Resource, obj *Object) Decision {
	if d := Precheck(s, a, r); !d.Allowed {
		return d
	}

	switch r {
	case ResourceFeedback:
		return authorizeFeedback(s, a, obj)
	case ResourceUser:
		return authorizeUser(s, a, obj)
	default:
		return allow
	}
}

func authorizeFeedback(s Subject, a Action, obj *Object) Decision {
	switch a {
	case ActionList, ActionRetrieve, ActionCreate:
		return allow
	case ActionUpdate, ActionDelete:
		if owns(s, obj) || RoleAtLeast(s, RoleModerator) {
			return allow
		}
		return forbidden
	default:
		return forbidden
	}
}

func authorizeUser(s Subject, a Action, obj *Object) Decision {
	switch a {
	case ActionList:
		// non-admins only ever see themselves, see ScopeUsers
		return allow
	case ActionRetrieve, ActionUpdate:
		if owns(s, obj) || s.IsAdmin() {
			return allow
		}
		return forbidden
	case ActionCreate, ActionDelete:
		return allow
	default:
		return forbidden
	}
}

// ScopeUsers returns the only user id a subject may list. restricted is false
// for admins, who see every account.
func ScopeUsers(s Subject) (userID uint, restricted bool) {
	if s.IsAdmin() {
		return 0, false
	}
	return s.UserID, true
}

// CanChangeRole reports whether s may assign roles to accounts.
func CanChangeRole(s Subject) bool {
	return s.IsAdmin()
}

func owns(s Subject, obj *Object) bool {
	return obj != nil && s.IsAuthenticated() && obj.OwnerID == s.UserID
}
