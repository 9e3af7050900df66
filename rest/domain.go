package rest

import (
	"os"
	"strings"

	"github.com/lainsato/valuecell/cfg"
	"github.com/lainsato/valuecell/printer"
)

// This global setting identifies which backend to use, and defaults to
// backend.valuecell.ai.
//
// The domain is chosen based on the selected ValueCell environment (which may
// be the default or set in an environment variable.)
//
// If the --domain flag is used, it unconditionally overrides this choice.
var Domain string

// Return the default domain, given the settings in use.
func DefaultDomain() string {
	if endpoint := cfg.GetAnalyticsEndpoint(); endpoint != "" {
		printer.Debugf("Using analytics endpoint override %q.\n", endpoint)
		return endpoint
	}

	switch strings.ToUpper(os.Getenv("VALUECELL_ENV")) {
	case "":
		// Not specified by user, default to PRODUCTION
		return "backend.valuecell.ai"
	case "DEV":
		printer.Debugf("Selecting localhost backend for DEV environment.\n")
		return "localhost:8000"
	case "STAGE":
		printer.Debugf("Selecting staging backend for pre-production testing.\n")
		return "backend.valuecell-stage.ai"
	case "PRODUCTION":
		printer.Debugf("Selecting production backend.\n")
		return "backend.valuecell.ai"
	default:
		printer.Warningf("Unknown ValueCell environment %q, using production.\n", os.Getenv("VALUECELL_ENV"))
		return "backend.valuecell.ai"
	}
}
