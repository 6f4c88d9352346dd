package http

import (
	"context"
	"net/http"

	"github.com/aussiebroadwan/clinic/internal/clinic/domain"
	"github.com/aussiebroadwan/clinic/pkg/errx"
	"github.com/aussiebroadwan/clinic/pkg/httpx"
)

// ownerFunc resolves who owns the resource a request targets.
type ownerFunc func(r *http.Request) (string, error)

// pathID treats the {id} path value itself as the owner, as for
// /patient/{id} where the record is the principal.
func pathID(r *http.Request) (string, error) {
	return r.PathValue("id"), nil
}

// ownerOf adapts a service lookup keyed by the {id} path value.
func ownerOf(lookup func(ctx context.Context, id string) (string, error)) ownerFunc {
	return func(r *http.Request) (string, error) {
		return lookup(r.Context(), r.PathValue("id"))
	}
}

func hasRole(required domain.Role) httpx.Predicate {
	return func(_ *http.Request, p httpx.Principal) (bool, error) {
		return domain.Role(p.Role).AtLeast(required), nil
	}
}

// isOwner treats a missing resource as not owned, so a caller without the
// elevated role sees 403 whether or not the id exists.
func isOwner(owner ownerFunc) httpx.Predicate {
	return func(r *http.Request, p httpx.Principal) (bool, error) {
		id, err := owner(r)
		if errx.IsKind(err, errx.KindNotFound) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return id != "" && id == p.ID, nil
	}
}

// requireRole passes principals at or above required in the role order.
func requireRole(required domain.Role) httpx.Middleware {
	return httpx.Authorize(hasRole(required))
}

// selfOr passes the resource's owner and anyone at or above elevated. The
// role is checked first so elevated callers skip the owner lookup.
func selfOr(elevated domain.Role, owner ownerFunc) httpx.Middleware {
	return httpx.Authorize(httpx.AnyOf(hasRole(elevated), isOwner(owner)))
}

// caller is the authenticated principal in domain terms.
func caller(r *http.Request) domain.Principal {
	p, _ := httpx.PrincipalFrom(r.Context())
	return domain.Principal{ID: p.ID, Role: domain.Role(p.Role)}
}
