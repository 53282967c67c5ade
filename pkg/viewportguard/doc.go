// Package viewportguard keeps small viewports on the "mobile not supported"
// page and sends large viewports back to the root route.
//
// The decision itself is a pure function of the viewport width and the
// current location (Target). Everything that depends on the execution
// environment (reading the width, reading the location, navigating,
// listening for resize events) sits behind the Environment interface, so the
// same logic runs:
//
//   - in tests and server-side simulations, via MemoryEnvironment;
//   - behind a DataStar endpoint (Handler), where the browser reports its
//     viewport as signals and navigation becomes an SSE redirect;
//   - directly in the browser, via the inline script rendered by Script.
//
// Setup checks once (page load) and then on every resize notification. The
// returned teardown removes the resize listener; calling it more than once,
// or after the guard was mounted again, has no effect.
//
//	env := viewportguard.NewMemoryEnvironment(1280, "/")
//	teardown := viewportguard.Setup(env)
//	defer teardown()
//
//	env.Resize(700) // navigates to /mobile-not-supported
package viewportguard
