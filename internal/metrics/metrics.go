package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const namespace = "fundraiser"

type Registry struct {
	mu       sync.Mutex
	registry *prometheus.Registry
	counters map[string]prometheus.Counter
	vectors  map[string]*prometheus.CounterVec
}

func NewRegistry() *Registry {
	return &Registry{
		registry: prometheus.NewRegistry(),
		counters: make(map[string]prometheus.Counter),
		vectors:  make(map[string]*prometheus.CounterVec),
	}
}

// Counter returns the counter registered under opts.Name, creating it on first use.
func (r *Registry) Counter(opts prometheus.CounterOpts) prometheus.Counter {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c, ok := r.counters[opts.Name]; ok {
		return c
	}
	opts.Namespace = namespace
	c := prometheus.NewCounter(opts)
	if err := r.registry.Register(c); err != nil {
		zap.L().Error("failed to register metric", zap.String("metric", opts.Name), zap.Error(err))
		return c
	}
	r.counters[opts.Name] = c
	return c
}

func (r *Registry) CounterVec(opts prometheus.CounterOpts, labels ...string) *prometheus.CounterVec {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := r.vectors[opts.Name]; ok {
		return v
	}
	opts.Namespace = namespace
	v := prometheus.NewCounterVec(opts, labels)
	if err := r.registry.Register(v); err != nil {
		zap.L().Error("failed to register metric", zap.String("metric", opts.Name), zap.Error(err))
		return v
	}
	r.vectors[opts.Name] = v
	return v
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{
		ErrorLog:      zap.NewStdLog(zap.L()),
		ErrorHandling: promhttp.ContinueOnError,
	})
}

type LedgerMetrics struct {
	CampaignsCreated prometheus.Counter
	Donations        prometheus.Counter
	DonatedAmount    prometheus.Counter
	Withdrawals      prometheus.Counter
	WithdrawnAmount  prometheus.Counter
	TransferFailures prometheus.Counter
}

func NewLedgerMetrics(r *Registry) *LedgerMetrics {
	return &LedgerMetrics{
		CampaignsCreated: r.Counter(prometheus.CounterOpts{
			Name: "campaigns_created_total",
			Help: "Number of campaigns created in the registry.",
		}),
		Donations: r.Counter(prometheus.CounterOpts{
			Name: "donations_total",
			Help: "Number of donations recorded.",
		}),
		DonatedAmount: r.Counter(prometheus.CounterOpts{
			Name: "donated_amount_total",
			Help: "Sum of all donated values.",
		}),
		Withdrawals: r.Counter(prometheus.CounterOpts{
			Name: "withdrawals_total",
			Help: "Number of withdrawals that moved a non-zero balance.",
		}),
		WithdrawnAmount: r.Counter(prometheus.CounterOpts{
			Name: "withdrawn_amount_total",
			Help: "Sum of all amounts transferred to beneficiaries.",
		}),
		TransferFailures: r.Counter(prometheus.CounterOpts{
			Name: "transfer_failures_total",
			Help: "Number of withdrawals rolled back because the payout transfer failed.",
		}),
	}
}

type DispatchMetrics struct {
	Events *prometheus.CounterVec
}

func NewDispatchMetrics(r *Registry) *DispatchMetrics {
	return &DispatchMetrics{
		Events: r.CounterVec(prometheus.CounterOpts{
			Name: "events_dispatched_total",
			Help: "Number of events pushed to the observer webhook by outcome.",
		}, "type", "status"),
	}
}
