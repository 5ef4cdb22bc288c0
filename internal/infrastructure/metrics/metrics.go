package metrics

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ListingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "mirnito_listings_created_total",
			Help: "Total number of listings submitted.",
		},
	)
	MessagesSent = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "mirnito_messages_sent_total",
			Help: "Total number of chat messages sent by the current user.",
		},
	)
	ToastsShown = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mirnito_toasts_shown_total",
			Help: "Total number of toasts shown, by severity.",
		},
		[]string{"severity"},
	)
	NotificationsAdded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "mirnito_notifications_added_total",
			Help: "Total number of notifications added to the list.",
		},
	)
	DeferredEffectsFired = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "mirnito_deferred_effects_fired_total",
			Help: "Total number of deferred (simulated latency) callbacks fired.",
		},
	)
	WSActiveConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "mirnito_ws_active_connections",
			Help: "Number of active websocket connections.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		ListingsCreated,
		MessagesSent,
		ToastsShown,
		NotificationsAdded,
		DeferredEffectsFired,
		WSActiveConnections,
	)
}

// Handler exposes the Prometheus registry on an echo route.
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
