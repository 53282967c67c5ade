package pages

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/mobilegate/pkg/viewportguard"
)

// MobileNotSupported is the document served on the unsupported route. Its
// content does not depend on the request.
func MobileNotSupported(opts ...PageOption) templ.Component {
	cfg := newPageConfig("Mobile not supported", opts)
	return document(cfg, templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<main class="unsupported">`+
			`<h1>Mobile not supported</h1>`+
			`<p>`+templ.EscapeString(cfg.appName)+` is built for desktop screens. `+
			`Please open it on a computer or widen your browser window.</p>`+
			`<p><a href="`+viewportguard.RootPath+`">Try again</a></p>`+
			`</main>`)
		return err
	}))
}

// Index is the desktop landing page. It embeds the viewport guard script so
// that shrinking the window below the threshold leaves the page.
func Index(opts ...PageOption) templ.Component {
	cfg := newPageConfig("Home", opts)
	return document(cfg, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<main class="index">`+
			`<h1>`+templ.EscapeString(cfg.appName)+`</h1>`+
			`<p>You are on a desktop-sized screen.</p>`+
			`</main>`); err != nil {
			return err
		}
		return viewportguard.Script().Render(ctx, w)
	}))
}

func document(cfg pageConfig, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var head strings.Builder
		head.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		head.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		head.WriteString(`<title>` + templ.EscapeString(cfg.title) + `</title>`)
		if cfg.stylesheet != "" {
			head.WriteString(`<link rel="stylesheet" href="` + templ.EscapeString(cfg.stylesheet) + `">`)
		}
		head.WriteString(`</head><body>`)
		if _, err := io.WriteString(w, head.String()); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

// Handler serves c as an HTML response.
func Handler(c templ.Component) http.Handler {
	return templ.Handler(c)
}

// Render renders c to a string.
func Render(ctx context.Context, c templ.Component) (string, error) {
	var b strings.Builder
	if err := c.Render(ctx, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}
