// auth_middleware.go
package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront-service/internal/httpx"
	"storefront-service/internal/model"
	"storefront-service/internal/session"
	"storefront-service/internal/token"
)

// CookieName is the HTTP-only cookie carrying the signed credential.
const CookieName = "token"

const principalKey = "principal"

// ErrNoCredential means the resolver found nothing to verify. It is a miss,
// not a failure.
var ErrNoCredential = errors.New("no credential presented")

// Resolver derives a Principal from the request. Resolvers are tried in a
// fixed order; the first success wins and misses are only logged at debug.
type Resolver interface {
	Name() string
	Resolve(c *gin.Context) (*model.Principal, error)
}

// SessionResolver asks the external session-identity provider first. Its
// failures are swallowed so the chain can fall through to token checks.
type SessionResolver struct {
	Client *session.Client
}

func (r *SessionResolver) Name() string { return "session" }

func (r *SessionResolver) Resolve(c *gin.Context) (*model.Principal, error) {
	if r.Client == nil || !r.Client.Enabled() {
		return nil, ErrNoCredential
	}
	cred := extractCredential(c)
	if cred == "" {
		return nil, ErrNoCredential
	}
	return r.Client.Resolve(cred)
}

// TokenResolver verifies the locally issued JWT.
type TokenResolver struct {
	Manager *token.Manager
}

func (r *TokenResolver) Name() string { return "token" }

func (r *TokenResolver) Resolve(c *gin.Context) (*model.Principal, error) {
	cred := extractCredential(c)
	if cred == "" {
		return nil, ErrNoCredential
	}
	return r.Manager.Verify(cred)
}

func extractCredential(c *gin.Context) string {
	if cookie, err := c.Cookie(CookieName); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
}

// Auth runs the resolver chain and stores the winning principal in the
// request context.
func Auth(resolvers ...Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		credentialSeen := false
		for _, r := range resolvers {
			principal, err := r.Resolve(c)
			if err == nil {
				c.Set(principalKey, principal)
				c.Next()
				return
			}
			if !errors.Is(err, ErrNoCredential) {
				credentialSeen = true
			}
			slog.Debug("credential resolver miss",
				"resolver", r.Name(),
				"path", c.Request.URL.Path,
				"error", err,
			)
		}

		if credentialSeen {
			httpx.Error(c, http.StatusUnauthorized, "invalid or expired credential")
		} else {
			httpx.Error(c, http.StatusUnauthorized, "authentication required")
		}
		c.Abort()
	}
}

// Principal returns the identity resolved for this request.
func Principal(c *gin.Context) (*model.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil, false
	}
	p, ok := v.(*model.Principal)
	return p, ok
}
