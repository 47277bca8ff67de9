package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"workspace-listing-api/internal/identity"
)

// visitorHeader is the request header that may carry a client-held token
const visitorHeader = "X-User-Id"

// identityAdapter bridges identity resolution to the HTTP layer. The
// resolver itself is pure; this adapter extracts the request signals and
// executes the resolver's cookie-sync instruction.
type identityAdapter struct {
	cookieName   string
	cookieMaxAge time.Duration
}

func newIdentityAdapter(cookieName string, cookieMaxAge time.Duration) identityAdapter {
	return identityAdapter{
		cookieName:   cookieName,
		cookieMaxAge: cookieMaxAge,
	}
}

// signals collects identity inputs from the request
func (a identityAdapter) signals(c *gin.Context, subjectScope string) identity.Signals {
	cookieToken, _ := c.Cookie(a.cookieName)
	return identity.Signals{
		CookieToken:  cookieToken,
		HeaderToken:  c.GetHeader(visitorHeader),
		ForwardedFor: c.GetHeader("X-Forwarded-For"),
		RealIP:       c.GetHeader("X-Real-Ip"),
		UserAgent:    c.GetHeader("User-Agent"),
		SubjectScope: subjectScope,
	}
}

// resolveForRead derives the visitor ID without side effects
func (a identityAdapter) resolveForRead(c *gin.Context, subjectScope string) string {
	return identity.Resolve(a.signals(c, subjectScope)).VisitorID
}

// resolveForWrite derives the visitor ID for a mutating request and
// (re)issues the visitor cookie when resolution asked for a sync. The cookie
// is long-lived, site-root scoped, Lax, and readable by client script so the
// front end can mirror it into the X-User-Id header.
func (a identityAdapter) resolveForWrite(c *gin.Context, subjectScope string) string {
	res := identity.ResolveForWrite(a.signals(c, subjectScope))
	if res.SyncCookie {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(a.cookieName, res.VisitorID, int(a.cookieMaxAge.Seconds()), "/", "", false, false)
	}
	return res.VisitorID
}
