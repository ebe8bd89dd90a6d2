package middleware

import "net/http"

// Chain composes middleware so the first argument is outermost:
//
//	Chain(Recovery(logger), RequestID(), Timeout(d))(router)
//
// runs Recovery first on the way in and last on the way out.
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			h = middlewares[i](h)
		}
		return h
	}
}
