package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	leadsCaptured = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leads_captured_total",
			Help: "Total number of leads captured",
		},
		[]string{"source"},
	)

	bookingsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Total number of bookings created",
		},
	)

	reviewsIngested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reviews_ingested_total",
			Help: "Webhook review records by outcome",
		},
		[]string{"outcome"},
	)

	storeFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_fallbacks_total",
			Help: "Primary store failures recovered by the fallback store",
		},
		[]string{"entity"},
	)

	notificationErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "notification_errors_total",
			Help: "Failed notification publishes or sends",
		},
	)
)

func RecordLeadCaptured(source string) {
	leadsCaptured.WithLabelValues(source).Inc()
}

func RecordBookingCreated() {
	bookingsCreated.Inc()
}

func RecordReviewIngested(outcome string) {
	reviewsIngested.WithLabelValues(outcome).Inc()
}

func RecordStoreFallback(entity string) {
	storeFallbacks.WithLabelValues(entity).Inc()
}

func RecordNotificationError() {
	notificationErrors.Inc()
}
