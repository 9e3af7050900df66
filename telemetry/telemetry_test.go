package telemetry

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lainsato/valuecell/rest"
)

func useTestBackend(t *testing.T, handler http.Handler) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	viper.Set("test_only_disable_https", true)
	t.Cleanup(func() { viper.Set("test_only_disable_https", false) })

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)

	prev := newAnalyticsClient
	newAnalyticsClient = func() rest.AnalyticsClient {
		return rest.NewAnalyticsClient(u.Host)
	}
	t.Cleanup(func() { newAnalyticsClient = prev })
}

func TestReportFirstRunPostsInitEvent(t *testing.T) {
	events := make(chan rest.Event, 1)
	useTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var e rest.Event
		require.NoError(t, json.NewDecoder(r.Body).Decode(&e))
		events <- e
		w.WriteHeader(http.StatusOK)
	}))

	ReportFirstRun("0190163d-8ba6-7fb4-93e5-4f57a80f19ab")

	require.Len(t, events, 1)
	e := <-events
	assert.Equal(t, "init", e.Event)
	assert.Equal(t, "0190163d-8ba6-7fb4-93e5-4f57a80f19ab", e.ClientID)
	assert.NotEmpty(t, e.OS)
}

func TestReportFirstRunSwallowsServerErrors(t *testing.T) {
	useTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusServiceUnavailable)
	}))

	// Must not panic or propagate anything.
	ReportFirstRun("abc-123")
}

func TestOptOutDisablesBeacon(t *testing.T) {
	called := false
	useTestBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	t.Setenv("VALUECELL_DISABLE_ANALYTICS", "true")
	Init()
	t.Cleanup(func() { analyticsEnabled = true })

	assert.False(t, Enabled())
	ReportFirstRun("abc-123")
	assert.False(t, called)
}
