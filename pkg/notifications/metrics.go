package notifications

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeOK    = "ok"
	outcomeError = "error"
)

// Metrics counts sends per category and outcome.
type Metrics struct {
	sent     *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the collectors with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		sent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "notifykit",
			Subsystem: "notifications",
			Name:      "sent_total",
			Help:      "Notifications sent, by category and outcome.",
		}, []string{"category", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "notifykit",
			Subsystem: "notifications",
			Name:      "send_duration_seconds",
			Help:      "Time spent in Send, by category.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"category"}),
	}
	for _, c := range []prometheus.Collector{m.sent, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Instrument wraps n so that every Send is counted in m.
func Instrument(n Notification, m *Metrics) Notification {
	return &instrumented{next: n, metrics: m}
}

type instrumented struct {
	next    Notification
	metrics *Metrics
}

func (i *instrumented) Category() Category { return i.next.Category() }

func (i *instrumented) Send(ctx context.Context, recipient, subject, content string) error {
	category := i.next.Category().String()
	start := time.Now()

	err := i.next.Send(ctx, recipient, subject, content)

	i.metrics.duration.WithLabelValues(category).Observe(time.Since(start).Seconds())
	outcome := outcomeOK
	if err != nil {
		outcome = outcomeError
	}
	i.metrics.sent.WithLabelValues(category, outcome).Inc()
	return err
}
