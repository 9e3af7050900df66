package cfg

import (
	"github.com/spf13/viper"

	"github.com/lainsato/valuecell/printer"
)

// Agent settings can be set in 2 ways:
//
//  1. Via YAML config file at <data-dir>/config.yaml. For example:
//
//     ```yaml
//     analytics:
//     endpoint: backend.valuecell.ai
//     disable: false
//     ```
//
//  2. Via environment variables `VALUECELL_ANALYTICS_ENDPOINT` and
//     `VALUECELL_DISABLE_ANALYTICS`.
var settings = viper.New()

const (
	settingsFileName = "config"
)

func init() {
	settings.SetConfigType("yaml")
	settings.SetConfigName(settingsFileName)
	if dir, err := DataDir(); err == nil {
		settings.AddConfigPath(dir)
	}

	// Allow settings to be overridden via the environment.
	settings.AutomaticEnv()
	settings.BindEnv("analytics.endpoint", "VALUECELL_ANALYTICS_ENDPOINT")
	settings.BindEnv("analytics.disable", "VALUECELL_DISABLE_ANALYTICS")

	if err := settings.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Ignore config file not found error; all settings have
			// sensible defaults and may be set by environment variables.
		} else {
			printer.Stderr.Warningf("Failed to read agent config, using defaults: %v\n", err)
		}
	}
}

// Host of the analytics backend, if overridden. Empty means use the default
// domain for the selected environment.
func GetAnalyticsEndpoint() string {
	return settings.GetString("analytics.endpoint")
}

// Whether the user opted out of analytics.
func GetAnalyticsDisabled() bool {
	return settings.GetBool("analytics.disable")
}
