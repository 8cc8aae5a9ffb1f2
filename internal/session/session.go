// Package session resolves who is paying. It is not an authentication
// system: the user id arrives from the upstream app in a header or cookie.
package session

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"padrino-pay/internal/domain"
)

const (
	HeaderUserID = "X-User-ID"
	CookieName   = "padrino_user"

	cookieMaxAge = 7 * 24 * 60 * 60
)

type Session struct {
	UserID    string
	Simulated bool
}

type Resolver struct {
	allowSimulated bool
	logger         *zap.Logger
}

// NewResolver builds a resolver. With allowSimulated set, requests without a
// user get a fabricated one instead of ErrNoSession.
func NewResolver(allowSimulated bool, logger *zap.Logger) *Resolver {
	return &Resolver{allowSimulated: allowSimulated, logger: logger}
}

func (r *Resolver) Resolve(c *gin.Context) (Session, error) {
	if id := strings.TrimSpace(c.GetHeader(HeaderUserID)); id != "" {
		return Session{UserID: id}, nil
	}
	if id, err := c.Cookie(CookieName); err == nil && strings.TrimSpace(id) != "" {
		return Session{UserID: strings.TrimSpace(id)}, nil
	}

	if !r.allowSimulated {
		return Session{}, domain.ErrNoSession
	}

	s := Session{UserID: uuid.NewString(), Simulated: true}
	r.logger.Warn("No logged-in user, created simulated user", zap.String("user_id", s.UserID))
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, s.UserID, cookieMaxAge, "/", "", false, true)
	return s, nil
}
