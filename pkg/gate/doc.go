// Package gate keeps mobile devices away from desktop-only pages.
//
// Decide maps a request path and a device classification to a Decision:
// API routes, static assets and file-like paths always pass through, the
// unsupported route is always served, and mobile requests for anything else
// are redirected to it. Gate wraps Decide in HTTP middleware.
//
//	g := gate.New(
//		gate.WithClassifier(classifier.New()),
//		gate.WithLogger(log),
//		gate.WithMetrics(prometheus.DefaultRegisterer),
//	)
//	r.Use(g.Middleware)
//
// Redirects use 302 Found. Requests issued by DataStar receive an SSE
// redirect instead, so the browser navigates rather than patching the
// response into the page.
package gate
