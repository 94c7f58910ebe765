package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_CounterIsShared(t *testing.T) {
	r := NewRegistry()
	opts := prometheus.CounterOpts{Name: "things_total", Help: "Things."}

	first := r.Counter(opts)
	second := r.Counter(opts)
	first.Inc()
	second.Add(2)

	assert.Same(t, first, second)
	assert.Equal(t, float64(3), testutil.ToFloat64(first))
}

func TestRegistry_CounterVec(t *testing.T) {
	r := NewRegistry()
	m := NewDispatchMetrics(r)
	again := NewDispatchMetrics(r)

	m.Events.WithLabelValues("Withdraw", "ok").Inc()
	again.Events.WithLabelValues("Withdraw", "ok").Inc()
	m.Events.WithLabelValues("Withdraw", "failed").Inc()

	assert.Same(t, m.Events, again.Events)
	assert.Equal(t, float64(2), testutil.ToFloat64(m.Events.WithLabelValues("Withdraw", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Events.WithLabelValues("Withdraw", "failed")))
}

func TestRegistry_Handler(t *testing.T) {
	r := NewRegistry()
	m := NewLedgerMetrics(r)
	m.Donations.Inc()
	m.DonatedAmount.Add(289)

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "fundraiser_donations_total 1")
	assert.Contains(t, string(body), "fundraiser_donated_amount_total 289")
	assert.Contains(t, string(body), "fundraiser_campaigns_created_total 0")
}
