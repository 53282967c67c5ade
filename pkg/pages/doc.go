// Package pages renders the HTML documents served by mobilegate: the fixed
// "mobile not supported" document and the desktop landing page.
//
// Pages are templ components built with templ.ComponentFunc, so they can be
// served with Handler, rendered to a string with Render, or patched into a
// page over DataStar.
//
//	r.Get("/", pages.Handler(pages.Index(pages.WithAppName("Acme"))).ServeHTTP)
package pages
