package auth

import (
	"fmt"
	"net/http"
	"strings"
)

// cookie names are fixed and case-sensitive
const (
	SessionCookie  = "session"
	StateCookie    = "oauth_state"
	VerifierCookie = "code_verifier"
)

// cookie lifetimes in seconds
const (
	SessionMaxAge     = 604800 // 7 days, matches SessionLifetime
	TransactionMaxAge = 600
)

// ParseCookies parses a Cookie header into a name-to-value map. Pairs without
// "=" are skipped; duplicate names keep the last value seen.
func ParseCookies(header string) map[string]string {
	cookies := make(map[string]string)

	for _, pair := range strings.Split(header, ";") {
		idx := strings.Index(pair, "=")
		if idx == -1 {
			continue
		}

		name := strings.TrimSpace(pair[:idx])
		value := strings.TrimSpace(pair[idx+1:])
		cookies[name] = value
	}

	return cookies
}

// BuildCookie renders a Set-Cookie directive with the flags every cookie in
// this app carries: HttpOnly, SameSite=Lax, Path=/. Secure is added only when
// the request arrived over an encrypted connection, so local development
// still works.
func BuildCookie(name, value string, maxAge int, secure bool) string {
	cookie := fmt.Sprintf("%s=%s; HttpOnly; SameSite=Lax; Path=/; Max-Age=%d", name, value, maxAge)

	if secure {
		cookie += "; Secure"
	}

	return cookie
}

// ClearCookie renders a directive that expires a cookie immediately
func ClearCookie(name string, secure bool) string {
	return BuildCookie(name, "", 0, secure)
}

// RequestIsSecure reports whether the request arrived over TLS, either
// directly or via a forwarding proxy
func RequestIsSecure(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}

	return r.Header.Get("X-Forwarded-Proto") == "https"
}
