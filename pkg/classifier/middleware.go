package classifier

import "net/http"

// Middleware classifies each request with c and stores the Result in the
// request context.
func Middleware(c *Classifier) func(http.Handler) http.Handler {
	if c == nil {
		c = New()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res := c.Explain(SignalsFromRequest(r))
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), res)))
		})
	}
}
