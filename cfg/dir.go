package cfg

import (
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

const (
	// Name of the agent's private directory under $HOME.
	dataDirName = ".valuecell"

	// Overrides the data directory location, e.g. for tests or sandboxed
	// installs where $HOME is not the right place.
	dataDirEnvVar = "VALUECELL_DATA_DIR"
)

// DataDir resolves the agent's private data directory. The directory is not
// created here; callers that need it on disk create it themselves.
func DataDir() (string, error) {
	if dir := os.Getenv(dataDirEnvVar); dir != "" {
		return dir, nil
	}

	home, err := homedir.Dir()
	if err != nil {
		return "", errors.Wrap(err, "failed to find $HOME")
	}
	return filepath.Join(home, dataDirName), nil
}
