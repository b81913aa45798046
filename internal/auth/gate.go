// Package auth implements the admin session gate: a single shared-secret
// credential pair checked against env config, with the privileged flag
// held in a signed cookie session.
package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/community-cms/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/rs/zerolog"
)

const (
	sessionName = "community_session"
	sessionKey  = "admin_logged_in"

	// LoginPath is where unauthenticated admin requests are redirected.
	LoginPath = "/admin/login"

	// ContextKeyAdmin marks the verified privilege flag in the gin context,
	// set once per request by RequireAdmin.
	ContextKeyAdmin = "is_admin"
)

// Gate validates the admin credential pair and tracks the privileged flag
// per client session. It is not a general auth system: one credential
// pair, no hashing, no lockout.
type Gate struct {
	username string
	password string
	store    *sessions.CookieStore
	log      zerolog.Logger
}

// NewGate creates a Gate from the configured admin credentials and
// session-signing secret.
func NewGate(cfg *config.AdminConfig, log zerolog.Logger) *Gate {
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Gate{
		username: cfg.Username,
		password: cfg.Password,
		store:    store,
		log:      log.With().Str("component", "auth").Logger(),
	}
}

// Authenticate reports whether the pair matches the configured secrets.
// Exact, case-sensitive match; constant-time to keep both fields
// indistinguishable to a caller timing failures.
func (g *Gate) Authenticate(username, password string) bool {
	userMatch := subtle.ConstantTimeCompare([]byte(username), []byte(g.username))
	passMatch := subtle.ConstantTimeCompare([]byte(password), []byte(g.password))
	return userMatch&passMatch == 1
}

// LogIn marks the current session as privileged.
func (g *Gate) LogIn(c *gin.Context) error {
	session, _ := g.store.Get(c.Request, sessionName)
	session.Values[sessionKey] = true
	return session.Save(c.Request, c.Writer)
}

// LogOut clears the privileged flag unconditionally.
func (g *Gate) LogOut(c *gin.Context) error {
	session, _ := g.store.Get(c.Request, sessionName)
	delete(session.Values, sessionKey)
	return session.Save(c.Request, c.Writer)
}

// IsPrivileged reports whether the request's session carries the
// privileged flag. A malformed or unsigned cookie counts as logged out.
func (g *Gate) IsPrivileged(c *gin.Context) bool {
	session, err := g.store.Get(c.Request, sessionName)
	if err != nil {
		return false
	}
	privileged, ok := session.Values[sessionKey].(bool)
	return ok && privileged
}

// RequireAdmin guards admin-only routes. Requests without a privileged
// session are redirected to the login page and aborted before any handler
// runs, so no partial admin action can occur. Authorized requests get the
// verified flag placed in the gin context.
func (g *Gate) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !g.IsPrivileged(c) {
			g.log.Debug().
				Str("path", c.Request.URL.Path).
				Msg("Unauthenticated admin request redirected to login")
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		c.Set(ContextKeyAdmin, true)
		c.Next()
	}
}
