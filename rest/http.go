package rest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"

	"github.com/lainsato/valuecell/printer"
)

const (
	// Shorter than a typical API client timeout because the agent runs inside
	// an interactive application and must never hold it up.
	defaultClientTimeout = 5 * time.Second
)

var (
	// Shared client to maximize connection re-use.
	httpClient *retryablehttp.Client

	initHTTPClientOnce sync.Once
)

// Error type for non-2xx HTTP errors.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

func (he HTTPError) Error() string {
	printer.Debugln("Unexpected error, received status code:", he.StatusCode, "body:", string(he.Body))
	return fmt.Sprintf("server returned status code %d", he.StatusCode)
}

// Implements retryablehttp LeveledLogger interface using printer.
type printerLogger struct{}

func (printerLogger) Error(f string, args ...interface{}) {
	printer.Errorln(f, args)
}

func (printerLogger) Info(f string, args ...interface{}) {
	printer.Infoln(f, args)
}

func (printerLogger) Debug(f string, args ...interface{}) {
	// Use verbose logging so users don't see every interaction with the
	// ValueCell backend by default when they enable --debug.
	printer.V(4).Debugln(f, args)
}

func (printerLogger) Warn(f string, args ...interface{}) {
	printer.Warningln(f, args)
}

func initHTTPClient() {
	httpClient = retryablehttp.NewClient()

	transport := &http.Transport{
		MaxIdleConns:    3,
		IdleConnTimeout: 60 * time.Second,
	}
	httpClient.HTTPClient = &http.Client{
		Transport: transport,
	}

	// Analytics delivery is best effort; a failed request is dropped, not
	// retried.
	httpClient.RetryMax = 0
	httpClient.Logger = printerLogger{}
	httpClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
}

func sendRequest(ctx context.Context, req *http.Request) ([]byte, error) {
	initHTTPClientOnce.Do(initHTTPClient)

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		c, cancel := context.WithTimeout(ctx, defaultClientTimeout)
		defer cancel()
		ctx = c
	}

	req.Header.Set("user-agent", GetUserAgent())

	retryableReq, err := retryablehttp.FromRequest(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to convert HTTP request into retryable request")
	}
	resp, err := httpClient.Do(retryableReq.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if respBody, err := io.ReadAll(resp.Body); err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	} else if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, HTTPError{StatusCode: resp.StatusCode, Body: respBody}
	} else {
		return respBody, nil
	}
}
