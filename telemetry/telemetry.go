package telemetry

import (
	"context"
	"time"

	"github.com/lainsato/valuecell/cfg"
	"github.com/lainsato/valuecell/env"
	"github.com/lainsato/valuecell/printer"
	"github.com/lainsato/valuecell/rest"
)

var (
	// Is analytics enabled? Init() applies the opt-out.
	analyticsEnabled = true

	// Timeout talking to the backend. Shorter than normal because the beacon
	// must never hold up the host application.
	beaconTimeout = 5 * time.Second

	// Overridable for tests.
	newAnalyticsClient = defaultAnalyticsClient
)

// Initialize the telemetry state. This should be called once at startup,
// before the first identifier lookup.
func Init() {
	if cfg.GetAnalyticsDisabled() {
		printer.Debugf("Analytics disabled via opt-out.\n")
		analyticsEnabled = false
		return
	}
	analyticsEnabled = true
}

func Enabled() bool {
	return analyticsEnabled
}

func defaultAnalyticsClient() rest.AnalyticsClient {
	host := rest.Domain
	if host == "" {
		host = rest.DefaultDomain()
	}
	return rest.NewAnalyticsClient(host)
}

// ReportFirstRun sends the init event for a newly created client ID. Delivery
// is best effort: any network or status error is logged at warning level and
// swallowed.
func ReportFirstRun(clientID string) {
	if !analyticsEnabled {
		return
	}
	if err := sendInitEvent(clientID); err != nil {
		printer.Warningf("Failed to send init analytics event: %v\n", err)
	}
}

func sendInitEvent(clientID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), beaconTimeout)
	defer cancel()

	event := &rest.Event{
		Event:    "init",
		ClientID: clientID,
		OS:       env.Platform(),
	}
	return newAnalyticsClient().PostEvent(ctx, event)
}
