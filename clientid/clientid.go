// Package clientid owns the persistent per-installation client identifier.
//
// The identifier lives in a single file under the agent's private data
// directory. Existing non-empty file content is authoritative and is never
// rewritten or validated; only absence (or a whitespace-only file) triggers
// generation of a new identifier.
package clientid

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// File holding the identifier, relative to the data directory.
const ClientIDFile = "client_id.txt"

// Resolves the directory where the identifier is persisted. Injected so the
// manager is testable without a real $HOME.
type DataDirResolver func() (string, error)

type Manager struct {
	resolveDataDir DataDirResolver

	// Invoked on a fresh goroutine with the new identifier when one is
	// created. Never invoked on the read-existing path. The callback owns its
	// own error handling; nothing it does affects GetOrCreate.
	OnCreate func(clientID string)

	pending sync.WaitGroup
}

func NewManager(resolve DataDirResolver) *Manager {
	return &Manager{resolveDataDir: resolve}
}

// GetOrCreate returns the stable identifier for this installation, creating
// and persisting one if absent.
//
// Concurrent first runs racing to create the file are last-writer-wins; the
// file is not guarded by a lock.
func (m *Manager) GetOrCreate() (string, error) {
	dir, err := m.resolveDataDir()
	if err != nil {
		return "", DirectoryResolutionError{Err: err}
	}
	clientIDPath := filepath.Join(dir, ClientIDFile)

	// Try to read existing client ID.
	if data, err := os.ReadFile(clientIDPath); err == nil {
		if clientID := strings.TrimSpace(string(data)); clientID != "" {
			return clientID, nil
		}
	}

	// Generate a new client ID. UUIDv7 is time-ordered, so identifiers are
	// unique across devices and installs without coordination.
	id, err := uuid.NewV7()
	if err != nil {
		return "", errors.Wrap(err, "failed to generate client ID")
	}
	clientID := id.String()

	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", DirectoryCreationError{Path: dir, Err: err}
	}
	if err := os.WriteFile(clientIDPath, []byte(clientID), 0600); err != nil {
		return "", FileWriteError{Path: clientIDPath, Err: err}
	}

	if m.OnCreate != nil {
		m.pending.Add(1)
		go func() {
			defer m.pending.Done()
			m.OnCreate(clientID)
		}()
	}

	return clientID, nil
}

// Wait blocks until any in-flight creation callbacks have finished. The
// callbacks are fire-and-forget from the caller's point of view; Wait exists
// so short-lived processes can flush before exiting.
func (m *Manager) Wait() {
	m.pending.Wait()
}
