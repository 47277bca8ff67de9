// Package identity derives a stable opaque visitor ID for unauthenticated
// callers. Resolution is a total function: it tries an ordered list of
// strategies and the last one always produces a value.
package identity

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// TokenPrefix is the fixed prefix of issued visitor tokens.
const TokenPrefix = "user_"

// maxSignatureLen caps the user-agent part of the fallback key so that
// fallback identities stay bounded.
const maxSignatureLen = 16

// Signals carries the request inputs identity resolution may use.
type Signals struct {
	CookieToken  string // value of the visitor cookie, if any
	HeaderToken  string // value of the X-User-Id header, if any
	ForwardedFor string // raw X-Forwarded-For header
	RealIP       string // X-Real-Ip header
	UserAgent    string
	SubjectScope string // subject ID to scope the fallback key by, optional
}

// Resolution is the outcome of resolving identity for one request.
// SyncCookie instructs the HTTP layer to (re)issue the visitor cookie with
// VisitorID; the resolver itself never touches the response.
type Resolution struct {
	VisitorID  string
	SyncCookie bool
}

// strategy inspects the signals and either claims the request or passes.
type strategy func(Signals) (Resolution, bool)

var readChain = []strategy{fromCookie, fromHeader}

// Resolve derives the visitor ID for read-only requests. When no durable
// token is present it degrades to the IP+signature composite, scoped by
// subject when one is given, and never issues a cookie.
func Resolve(sig Signals) Resolution {
	for _, s := range readChain {
		if res, ok := s(sig); ok {
			return res
		}
	}
	return Resolution{VisitorID: fallbackID(sig)}
}

// ResolveForWrite derives the visitor ID for mutating requests. Unlike the
// read path it mints a fresh token when none is supplied, so that the state
// being written stays addressable by the caller's next request.
func ResolveForWrite(sig Signals) Resolution {
	for _, s := range readChain {
		if res, ok := s(sig); ok {
			return res
		}
	}
	return Resolution{VisitorID: NewToken(), SyncCookie: true}
}

func fromCookie(sig Signals) (Resolution, bool) {
	if IsValidToken(sig.CookieToken) {
		return Resolution{VisitorID: sig.CookieToken}, true
	}
	return Resolution{}, false
}

func fromHeader(sig Signals) (Resolution, bool) {
	if IsValidToken(sig.HeaderToken) {
		// Cookie was absent or stale; sync it so the next request
		// resolves via the cookie branch.
		return Resolution{VisitorID: sig.HeaderToken, SyncCookie: true}, true
	}
	return Resolution{}, false
}

// fallbackID builds the coarse IP+client-signature identity.
func fallbackID(sig Signals) string {
	id := clientIP(sig) + "_" + truncate(sig.UserAgent, maxSignatureLen)
	if sig.SubjectScope != "" {
		id += "_" + sig.SubjectScope
	}
	return id
}

func clientIP(sig Signals) string {
	if sig.ForwardedFor != "" {
		first := strings.Split(sig.ForwardedFor, ",")[0]
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if sig.RealIP != "" {
		return sig.RealIP
	}
	return "unknown"
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// NewToken mints a visitor token of the form user_<unixnano>_<random>.
func NewToken() string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing is effectively fatal elsewhere; a
		// timestamp-only suffix keeps resolution total regardless.
		return fmt.Sprintf("%s%d_%d", TokenPrefix, time.Now().UnixNano(), time.Now().Unix())
	}
	return fmt.Sprintf("%s%d_%s", TokenPrefix, time.Now().UnixNano(), hex.EncodeToString(buf))
}

// IsValidToken reports whether v matches the issued token shape.
func IsValidToken(v string) bool {
	return strings.HasPrefix(v, TokenPrefix) && len(v) > len(TokenPrefix)
}
