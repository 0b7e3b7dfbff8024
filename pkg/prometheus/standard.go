package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	PanicCounterVec = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "usercenter_panic_num",
		Help: "panic total counter.",
	}, []string{"method", "path"})

	RequestCounterVec = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "usercenter_http_requests_total",
		Help: "http requests by route and status.",
	}, []string{"method", "path", "status"})

	RequestDurationVec = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "usercenter_http_request_duration_seconds",
		Help:    "http request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	UserGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "usercenter_users",
		Help: "records in the canonical user set.",
	})

	ViewGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "usercenter_views",
		Help: "mounted console views.",
	})
)

func init() {
	prometheus.MustRegister(PanicCounterVec, RequestCounterVec, RequestDurationVec, UserGauge, ViewGauge)
}
