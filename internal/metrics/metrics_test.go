package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordReply(t *testing.T) {
	before := testutil.ToFloat64(repliesTotal.WithLabelValues(OutcomeKeyMissing))
	RecordReply(OutcomeKeyMissing)
	RecordReply(OutcomeKeyMissing)

	if got := testutil.ToFloat64(repliesTotal.WithLabelValues(OutcomeKeyMissing)) - before; got != 2 {
		t.Errorf("key_missing replies delta = %v, want 2", got)
	}
}

func TestSetUpstreamUp(t *testing.T) {
	SetUpstreamUp(true)
	if got := testutil.ToFloat64(upstreamUp); got != 1 {
		t.Errorf("upstream gauge = %v, want 1", got)
	}
	SetUpstreamUp(false)
	if got := testutil.ToFloat64(upstreamUp); got != 0 {
		t.Errorf("upstream gauge = %v, want 0", got)
	}
}

func TestObserveCompletion(t *testing.T) {
	ObserveCompletion(150*time.Millisecond, true)
	ObserveCompletion(2*time.Second, false)

	if n := testutil.CollectAndCount(completionDuration); n < 2 {
		t.Errorf("completion histogram series = %d, want at least 2", n)
	}
}

func TestServerRoutes(t *testing.T) {
	reg := prometheus.NewRegistry()
	MustRegister(reg)
	UpdateReceived("text")

	srv := NewServer("127.0.0.1:0", reg, nil)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz error = %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || string(body) != "OK" {
		t.Errorf("/healthz = %d %q, want 200 OK", resp.StatusCode, body)
	}

	resp, err = http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics error = %v", err)
	}
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("/metrics status = %d, want 200", resp.StatusCode)
	}
	if !strings.Contains(string(body), `relay_updates_total{kind="text"}`) {
		t.Errorf("/metrics output missing relay_updates_total: %s", body)
	}
}
