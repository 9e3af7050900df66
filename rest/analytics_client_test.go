package rest

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method      string
	path        string
	contentType string
	userAgent   string
	body        string
}

func newTestClient(t *testing.T, handler http.Handler) (AnalyticsClient, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	viper.Set("test_only_disable_https", true)
	t.Cleanup(func() { viper.Set("test_only_disable_https", false) })

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)

	return NewAnalyticsClient(u.Host), srv
}

func TestPostEvent(t *testing.T) {
	var got recordedRequest
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got = recordedRequest{
			method:      r.Method,
			path:        r.URL.Path,
			contentType: r.Header.Get("content-type"),
			userAgent:   r.Header.Get("user-agent"),
			body:        string(body),
		}
		w.WriteHeader(http.StatusOK)
	}))

	err := client.PostEvent(context.Background(), &Event{
		Event:    "init",
		ClientID: "0190163d-8ba6-7fb4-93e5-4f57a80f19ab",
		OS:       "linux",
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/api/v1/analytics/event", got.path)
	assert.Equal(t, "application/json", got.contentType)
	assert.True(t, strings.HasPrefix(got.userAgent, "valuecell-agent/"), "user-agent was %q", got.userAgent)
	assert.JSONEq(t,
		`{"event":"init","client_id":"0190163d-8ba6-7fb4-93e5-4f57a80f19ab","os":"linux"}`,
		got.body)
}

func TestPostEventNon2xxStatus(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))

	err := client.PostEvent(context.Background(), &Event{Event: "init"})
	require.Error(t, err)

	httpErr, ok := err.(HTTPError)
	require.True(t, ok, "expected HTTPError, got %T", err)
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
}

func TestPostEventServerUnreachable(t *testing.T) {
	viper.Set("test_only_disable_https", true)
	t.Cleanup(func() { viper.Set("test_only_disable_https", false) })

	// Reserve a port, then close it so the connection is refused.
	srv := httptest.NewServer(http.NotFoundHandler())
	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	srv.Close()

	client := NewAnalyticsClient(u.Host)
	err = client.PostEvent(context.Background(), &Event{Event: "init"})
	assert.Error(t, err)
}
