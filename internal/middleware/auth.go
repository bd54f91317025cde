package middleware

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SergSukh/api-yamdb-33-all/config"
	"github.com/SergSukh/api-yamdb-33-all/internal/dto"
	"github.com/SergSukh/api-yamdb-33-all/internal/model/user"
	"github.com/SergSukh/api-yamdb-33-all/internal/permission"
	authsdk "github.com/SergSukh/api-yamdb-33-all/packages/auth-sdk"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const subjectKey = "subject"

// UserResolver loads the account a token was issued to.
type UserResolver interface {
	FindByID(ctx context.Context, id uint) (*user.User, error)
}

// OptionalAuth resolves the bearer token, if any, into a permission.Subject.
// The account is reloaded on every request so role changes apply at once.
// Missing, invalid or orphaned tokens leave the caller anonymous.
func OptionalAuth(resolver UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		subject := resolveSubject(c, resolver)
		c.Set(subjectKey, subject)
		if subject.IsAuthenticated() {
			c.Set("user_id", subject.UserID)
			c.Set("username", subject.Username)
		}
		c.Next()
	}
}

func resolveSubject(c *gin.Context, resolver UserResolver) permission.Subject {
	header := c.GetHeader("Authorization")
	if header == "" {
		return permission.Anonymous()
	}

	token, err := authsdk.ExtractBearer(header)
	if err != nil {
		return permission.Anonymous()
	}

	claims, err := authsdk.ParseToken(token, config.Conf.JWT.Secret)
	if err != nil {
		return permission.Anonymous()
	}

	u, err := resolver.FindByID(c.Request.Context(), claims.UserID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			slog.Warn("resolve token subject", "user_id", claims.UserID, "err", err)
		}
		return permission.Anonymous()
	}

	return permission.SubjectFromUser(u)
}

// CurrentSubject returns the caller stored by OptionalAuth, anonymous otherwise.
func CurrentSubject(c *gin.Context) permission.Subject {
	if v, ok := c.Get(subjectKey); ok {
		if s, ok := v.(permission.Subject); ok {
			return s
		}
	}
	return permission.Anonymous()
}

// Require runs the object-independent permission check before the handler.
func Require(resource permission.Resource, action permission.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := permission.Precheck(CurrentSubject(c), action, resource)
		if err := decision.Err(); err != nil {
			dto.ErrorResponse(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}
