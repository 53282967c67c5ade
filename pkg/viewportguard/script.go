package viewportguard

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// scriptSource runs the guard in the browser. A second copy on the same page
// finds window.mobilegateGuard and does not add another resize listener.
const scriptSource = `(function(){
if (window.mobilegateGuard) { return; }
var threshold = %d, unsupported = %s, root = %s;
function check() {
	var small = window.innerWidth <= threshold;
	var onUnsupported = window.location.pathname.indexOf(unsupported) !== -1;
	if (small && !onUnsupported) { window.location.href = unsupported; }
	else if (!small && onUnsupported) { window.location.href = root; }
}
check();
window.addEventListener("resize", check);
window.mobilegateGuard = {
	teardown: function() {
		window.removeEventListener("resize", check);
		delete window.mobilegateGuard;
	}
};
})();`

// Script renders an inline <script> element that runs the guard in the
// browser on load and on every resize event.
func Script() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, "<script>"+scriptSource+"</script>", Threshold, jsString(UnsupportedPath), jsString(RootPath))
		return err
	})
}

func jsString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
