package notify

import (
	"context"
	"time"

	"cargo/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
)

var _ ports.Notifier = (*InstrumentedNotifier)(nil)

// InstrumentedNotifier counts and times sends of the wrapped notifier.
type InstrumentedNotifier struct {
	next     ports.Notifier
	sent     *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewInstrumentedNotifier registers cargo_notifications_sent_total{outcome}
// and cargo_notification_duration_seconds with reg, or with
// prometheus.DefaultRegisterer when reg is nil.
func NewInstrumentedNotifier(next ports.Notifier, reg prometheus.Registerer, channel string) (*InstrumentedNotifier, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	sent := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   "cargo",
		Name:        "notifications_sent_total",
		Help:        "Parcel status notifications by outcome.",
		ConstLabels: prometheus.Labels{"channel": channel},
	}, []string{"outcome"})

	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace:   "cargo",
		Name:        "notification_duration_seconds",
		Help:        "Time spent sending one notification.",
		ConstLabels: prometheus.Labels{"channel": channel},
		Buckets:     []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
	})

	for _, c := range []prometheus.Collector{sent, duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return &InstrumentedNotifier{next: next, sent: sent, duration: duration}, nil
}

func (n *InstrumentedNotifier) Send(ctx context.Context, recipient, text string) error {
	start := time.Now()
	err := n.next.Send(ctx, recipient, text)
	n.duration.Observe(time.Since(start).Seconds())

	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	n.sent.WithLabelValues(outcome).Inc()

	return err
}
