package httpx

import (
	"context"

	"github.com/aussiebroadwan/clinic/pkg/jwtx"
)

type ctxKey string

const (
	CtxKeyPrincipal ctxKey = "principal"
	CtxKeyClaims    ctxKey = "claims"
)

// Principal is the authenticated caller as decoded from the access token.
type Principal struct {
	ID   string
	Role string
}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, CtxKeyPrincipal, p)
}

// PrincipalFrom returns the caller attached by Authenticate.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(CtxKeyPrincipal).(Principal)
	return p, ok
}

func ClaimsFrom(ctx context.Context) (jwtx.Claims, bool) {
	c, ok := ctx.Value(CtxKeyClaims).(jwtx.Claims)
	return c, ok
}

func contextWithAuth(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = WithPrincipal(ctx, Principal{ID: c.Subject, Role: c.Role})
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return ctx
}
