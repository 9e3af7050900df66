package cfg

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataDirEnvOverride(t *testing.T) {
	t.Setenv("VALUECELL_DATA_DIR", "/tmp/valuecell-test")

	dir, err := DataDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/valuecell-test", dir)
}

func TestDataDirDefaultsToHome(t *testing.T) {
	t.Setenv("VALUECELL_DATA_DIR", "")

	dir, err := DataDir()
	require.NoError(t, err)
	assert.Equal(t, ".valuecell", filepath.Base(dir))
}
