package gate

import "errors"

// ErrRegisteringMetrics is returned when the decision counter cannot be registered.
var ErrRegisteringMetrics = errors.New("failed to register gate metrics")
