package unsubscribe

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dmitrymomot/oneclick/pkg/jwt"
)

// Metric label values besides the jwt.Reason names.
const (
	ResultValid          = "Valid"
	ResultWrongPurpose   = "WrongPurpose"
	ResultMissingEmail   = "MissingEmail"
	ResultStoreFailure   = "StoreFailure"
	ResultNotifyFailure  = "NotifyFailure"
	ResultNotifyDelivery = "NotifyDelivered"
)

// Metrics counts verification outcomes and notification deliveries.
type Metrics struct {
	verifications *prometheus.CounterVec
	notifications *prometheus.CounterVec
}

// NewMetrics registers the module collectors with reg.
// Pass prometheus.DefaultRegisterer to expose them on promhttp.Handler().
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		verifications: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "oneclick",
			Name:      "token_verifications_total",
			Help:      "Unsubscribe token verification outcomes by result.",
		}, []string{"result"}),
		notifications: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "oneclick",
			Name:      "notifications_total",
			Help:      "Unsubscribe chat notifications by result.",
		}, []string{"result"}),
	}
}

func (m *Metrics) verification(result string) {
	if m == nil {
		return
	}
	m.verifications.WithLabelValues(result).Inc()
}

func (m *Metrics) rejected(reason jwt.Reason) {
	m.verification(string(reason))
}

func (m *Metrics) notification(err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.notifications.WithLabelValues(ResultNotifyFailure).Inc()
		return
	}
	m.notifications.WithLabelValues(ResultNotifyDelivery).Inc()
}

// VerificationsCounter exposes oneclick_token_verifications_total.
func (m *Metrics) VerificationsCounter() *prometheus.CounterVec {
	return m.verifications
}
