package probe

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skiff/internal/testutils"
)

func TestProber_Probe_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Skiff-HealthCheck/1.0", r.Header.Get("User-Agent"))
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	prober := New()
	ctx := testutils.TestContext(t)

	statusCode, elapsed, err := prober.Probe(ctx, ts.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, statusCode)
	assert.GreaterOrEqual(t, elapsed, int64(0))
}

func TestProber_Probe_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	prober := New()
	ctx := testutils.TestContext(t)

	statusCode, _, err := prober.Probe(ctx, ts.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, statusCode)
}

func TestProber_Probe_Unreachable(t *testing.T) {
	prober := New(WithTimeout(200 * time.Millisecond))
	ctx := testutils.TestContext(t)

	_, _, err := prober.Probe(ctx, "http://127.0.0.1:1/health")
	require.Error(t, err)
}

func TestProber_Probe_DoesNotFollowRedirects(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/elsewhere", http.StatusFound)
	}))
	defer ts.Close()

	prober := New()
	ctx := testutils.TestContext(t)

	statusCode, _, err := prober.Probe(ctx, ts.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, statusCode)
}

func TestProber_Healthy(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		want       bool
	}{
		{name: "ok", statusCode: http.StatusOK, want: true},
		{name: "redirect", statusCode: http.StatusFound, want: true},
		{name: "not found", statusCode: http.StatusNotFound, want: false},
		{name: "server error", statusCode: http.StatusInternalServerError, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer ts.Close()

			prober := New()
			assert.Equal(t, tt.want, prober.Healthy(testutils.TestContext(t), ts.URL))
		})
	}
}

func TestProber_WaitHealthy_ImmediateSuccess(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	prober := New(WithInterval(10 * time.Millisecond))
	err := prober.WaitHealthy(testutils.TestContext(t), ts.URL)
	require.NoError(t, err)
}

func TestProber_WaitHealthy_RecoversWithinStartPeriod(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Unhealthy for the first two probes, healthy afterwards.
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	prober := New(
		WithInterval(10*time.Millisecond),
		WithRetries(1),
		WithStartPeriod(5*time.Second),
	)

	err := prober.WaitHealthy(testutils.TestContext(t), ts.URL)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, calls.Load(), int32(3))
}

func TestProber_WaitHealthy_FailsAfterRetries(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	prober := New(
		WithInterval(10*time.Millisecond),
		WithRetries(3),
		WithStartPeriod(0),
	)

	err := prober.WaitHealthy(testutils.TestContext(t), ts.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "3 consecutive probe failures")
	assert.GreaterOrEqual(t, calls.Load(), int32(3))
}
