package gate

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricDecisions is the name of the decision counter.
const MetricDecisions = "mobilegate_decisions_total"

type metrics struct {
	decisions *prometheus.CounterVec
}

// newMetrics registers the decision counter with reg. A counter already
// registered under the same name is reused, so several gates can share one
// registry.
func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	decisions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: MetricDecisions,
		Help: "Gate decisions by outcome and device classification.",
	}, []string{"decision", "classification"})

	if err := reg.Register(decisions); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, errors.Join(ErrRegisteringMetrics, err)
		}
		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, errors.Join(ErrRegisteringMetrics, err)
		}
		decisions = existing
	}
	return &metrics{decisions: decisions}, nil
}

func (m *metrics) observe(d Decision, class string) {
	if m == nil {
		return
	}
	m.decisions.WithLabelValues(d.String(), class).Inc()
}
