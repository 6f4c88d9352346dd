package httpx

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/aussiebroadwan/clinic/pkg/errx"
	"github.com/aussiebroadwan/clinic/pkg/slogx"
)

// Recover turns a panicking handler into a 500 for that request only.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				slogx.FromContext(r.Context()).Error("handler panic",
					"panic", fmt.Sprint(rec),
					"stack", string(debug.Stack()),
				)
				WriteError(w, r, errx.Wrap(errx.KindInternal, "panic", fmt.Errorf("%v", rec)))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
