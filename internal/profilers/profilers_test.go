package profilers

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func TestSetup(t *testing.T) {
	dir := t.TempDir()
	cpuPath, memPath := filepath.Join(dir, "cpu.prof"), filepath.Join(dir, "mem.prof")
	*flagCPUProfile, *flagMemProfile = cpuPath, memPath
	defer func() { *flagCPUProfile, *flagMemProfile = "", "" }()

	onQuit, err := Setup()
	require.NoError(t, err)
	onQuit()
	for _, path := range []string{cpuPath, memPath} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0), "profile %q is empty", path)
	}

	*flagCPUProfile = filepath.Join(dir, "missing", "cpu.prof")
	_, err = Setup()
	assert.Error(t, err)
}
