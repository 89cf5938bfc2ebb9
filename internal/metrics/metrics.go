package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SOSAlertsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "safety_sos_alerts_total",
		Help: "Total number of accepted SOS alerts",
	})
	SOSRejectedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "safety_sos_rejected_total",
		Help: "Total number of rejected SOS requests by reason",
	}, []string{"reason"})
	SOSDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "safety_sos_duration_ms",
		Help:    "SOS handling duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	})
	BroadcastFailedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "safety_broadcast_failed_total",
		Help: "Total number of failed alert publications by publisher",
	}, []string{"publisher"})
	DashboardClients = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "safety_dashboard_clients",
		Help: "Number of connected dashboard websocket clients",
	})
	DashboardDroppedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "safety_dashboard_dropped_total",
		Help: "Total number of dashboard clients dropped as slow consumers",
	})
	WebhookDeliveredTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "safety_webhook_delivered_total",
		Help: "Total number of webhook events delivered",
	})
	WebhookFailedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "safety_webhook_failed_total",
		Help: "Total number of webhook deliveries that failed",
	})
	UsersEvictedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "safety_users_evicted_total",
		Help: "Total number of stale users removed from the directory",
	})
	CrimeRecordsLoaded = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "safety_crime_records_loaded",
		Help: "Number of crime records in the current dataset generation",
	})
	CrimeRowsDroppedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "safety_crime_rows_dropped_total",
		Help: "Total number of crime csv rows dropped during load",
	})
	CrimeQueriesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "safety_crime_queries_total",
		Help: "Total number of crime zone queries",
	})
)

func init() {
	prometheus.MustRegister(SOSAlertsTotal)
	prometheus.MustRegister(SOSRejectedTotal)
	prometheus.MustRegister(SOSDurationMs)
	prometheus.MustRegister(BroadcastFailedTotal)
	prometheus.MustRegister(DashboardClients)
	prometheus.MustRegister(DashboardDroppedTotal)
	prometheus.MustRegister(WebhookDeliveredTotal)
	prometheus.MustRegister(WebhookFailedTotal)
	prometheus.MustRegister(UsersEvictedTotal)
	prometheus.MustRegister(CrimeRecordsLoaded)
	prometheus.MustRegister(CrimeRowsDroppedTotal)
	prometheus.MustRegister(CrimeQueriesTotal)
}

// Handler возвращает HTTP-обработчик для эндпоинта /metrics
func Handler() http.Handler { return promhttp.Handler() }
