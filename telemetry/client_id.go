package telemetry

import (
	"sync"

	"github.com/lainsato/valuecell/cfg"
	"github.com/lainsato/valuecell/clientid"
)

var (
	defaultManager     *clientid.Manager
	defaultManagerOnce sync.Once
)

func getDefaultManager() *clientid.Manager {
	defaultManagerOnce.Do(func() {
		defaultManager = clientid.NewManager(cfg.DataDir)
		defaultManager.OnCreate = ReportFirstRun
	})
	return defaultManager
}

// GetOrCreateClientID returns the persistent per-installation client ID. On
// first run it creates the identifier and fires the init beacon without
// awaiting it.
func GetOrCreateClientID() (string, error) {
	return getDefaultManager().GetOrCreate()
}

// Shutdown waits for any in-flight beacon to finish. Call before a
// short-lived process exits, otherwise a just-created identifier's beacon may
// never leave the machine.
func Shutdown() {
	getDefaultManager().Wait()
}
