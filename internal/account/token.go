package account

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lexcard/lexcard-client/internal/storage"
)

const tokenKey = "authToken"

// TokenFromContext is the graphql.TokenSource for this gateway: it
// reads the access token out of whichever store the session's
// remember-me preference routed it to.
func TokenFromContext(ctx context.Context) (string, bool) {
	p, ok := storage.PrefsFrom(ctx)
	if !ok {
		return "", false
	}
	return p.GetItem(tokenKey)
}

// Claims are the fields the gateway reads out of the backend's access
// token for display and route gating. The token is NOT verified here —
// the backend holds the signing key and authorizes every call itself;
// these values are hints, nothing more.
type Claims struct {
	Subject   string
	Roles     []string
	ExpiresAt time.Time
}

func ParseClaims(token string) (Claims, error) {
	var mc jwt.MapClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &mc); err != nil {
		return Claims{}, err
	}
	var c Claims
	if sub, err := mc.GetSubject(); err == nil {
		c.Subject = sub
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		c.ExpiresAt = exp.Time
	}
	if raw, ok := mc["roles"].([]any); ok {
		for _, r := range raw {
			if s, ok := r.(string); ok {
				c.Roles = append(c.Roles, s)
			}
		}
	}
	return c, nil
}

func (c Claims) Expired() bool {
	return !c.ExpiresAt.IsZero() && time.Now().After(c.ExpiresAt)
}

func (c Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}
