package auth

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Credentials carries everything the outbound FHIR transport needs to attach
// to a request. It is always passed explicitly; nothing in this package
// reads from global state.
type Credentials struct {
	Token     string
	UserID    string
	Role      string
	Portal    string
	XSRFToken string
}

// HasToken reports whether a bearer token is present.
func (c Credentials) HasToken() bool { return c.Token != "" }

// FromRequest extracts credentials from an inbound request: the bearer
// token from the Authorization header, the user id and role from its claims,
// the portal from the x-portal header and the XSRF token from the
// XSRF-TOKEN cookie.
//
// The token is not verified here — verification is the inbound auth
// middleware's job; this extraction only recovers claim values to propagate
// on the outbound call.
func FromRequest(r *http.Request) Credentials {
	creds := Credentials{Portal: r.Header.Get("x-portal")}

	authz := r.Header.Get("Authorization")
	if after, ok := strings.CutPrefix(authz, "Bearer "); ok {
		creds.Token = after
	}
	if creds.Token != "" {
		claims := jwt.MapClaims{}
		if _, _, err := jwt.NewParser().ParseUnverified(creds.Token, claims); err == nil {
			if sub, err := claims.GetSubject(); err == nil {
				creds.UserID = sub
			}
			if role, ok := claims["role"].(string); ok {
				creds.Role = role
			}
		}
	}
	if cookie, err := r.Cookie("XSRF-TOKEN"); err == nil {
		creds.XSRFToken = cookie.Value
	}
	return creds
}
