package httpx

import (
	"net/http"

	"github.com/aussiebroadwan/clinic/pkg/errx"
)

// Predicate decides whether an authenticated principal may proceed. A non-nil
// error is written as-is (e.g. a failed owner lookup) instead of a 403.
type Predicate func(r *http.Request, p Principal) (bool, error)

// Authorize gates the next handler on pred. It must run after Authenticate;
// a request without a principal is refused with 403, never 401.
func Authorize(pred Predicate) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFrom(r.Context())
			if !ok {
				WriteError(w, r, errx.Forbidden("Forbidden user"))
				return
			}

			allowed, err := pred(r, p)
			if err != nil {
				WriteError(w, r, err)
				return
			}
			if !allowed {
				WriteError(w, r, errx.Forbidden("Forbidden user"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AnyOf passes when at least one predicate allows the request. The first
// error short-circuits.
func AnyOf(preds ...Predicate) Predicate {
	return func(r *http.Request, p Principal) (bool, error) {
		for _, pred := range preds {
			ok, err := pred(r, p)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	}
}
