package rest

import (
	"context"
)

const analyticsEventPath = "/api/v1/analytics/event"

// An analytics event as accepted by the ValueCell backend. The backend does
// not return a meaningful body, so none is consumed.
type Event struct {
	Event    string `json:"event"`
	ClientID string `json:"client_id"`
	OS       string `json:"os"`
}

type AnalyticsClient interface {
	PostEvent(ctx context.Context, event *Event) error
}

type analyticsClientImpl struct {
	baseClient
}

func NewAnalyticsClient(host string) AnalyticsClient {
	return &analyticsClientImpl{
		baseClient: newBaseClient(host),
	}
}

func (c *analyticsClientImpl) PostEvent(ctx context.Context, event *Event) error {
	return c.post(ctx, analyticsEventPath, event, nil)
}
