package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds the service collectors on a private registry
type Registry struct {
	reg *prometheus.Registry

	HTTPRequests        *prometheus.CounterVec
	HTTPDuration        *prometheus.HistogramVec
	DPSBuilt            prometheus.Counter
	DPSRejected         *prometheus.CounterVec
	DocumentValidations *prometheus.CounterVec
	CacheLookups        *prometheus.CounterVec
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "nfse_http_requests_total",
		Help: "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})
	httpDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "nfse_http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
	built := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "nfse_dps_built_total",
		Help: "DPS payloads built successfully.",
	})
	rejected := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "nfse_dps_rejected_total",
		Help: "DPS builds rejected by validation, by error code.",
	}, []string{"code"})
	documents := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "nfse_document_validations_total",
		Help: "CPF/CNPJ checksum validations by type and outcome.",
	}, []string{"type", "valid"})
	cache := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "nfse_profile_cache_lookups_total",
		Help: "Company profile cache lookups by result.",
	}, []string{"result"})

	r.MustRegister(
		httpRequests, httpDuration, built, rejected, documents, cache,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Registry{
		reg:                 r,
		HTTPRequests:        httpRequests,
		HTTPDuration:        httpDuration,
		DPSBuilt:            built,
		DPSRejected:         rejected,
		DocumentValidations: documents,
		CacheLookups:        cache,
	}
}

// Gatherer exposes the underlying registry
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
