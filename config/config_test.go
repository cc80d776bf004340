package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/esitarski/llrp-go/config"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "reader.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
name: dock-door-1
address: 10.0.0.5:5084
`)
	c, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "dock-door-1", c.Name)
	require.Equal(t, "10.0.0.5:5084", c.Address)
	require.Equal(t, uint64(5000), c.ConnectTimeout_ms)
	require.Equal(t, uint64(10000), c.TransactTimeout_ms)
}

func TestLoadRejectsMissingAddress(t *testing.T) {
	path := writeConfig(t, `name: dock-door-1`)
	_, err := config.Load(path)
	require.Error(t, err)
}

func TestLoadRejectsDuplicateROSpecID(t *testing.T) {
	path := writeConfig(t, `
address: 10.0.0.5:5084
rospecs:
  - rospec_id: 1
    priority: 0
  - rospec_id: 1
    priority: 1
`)
	_, err := config.Load(path)
	require.Error(t, err)
}

func TestLoadParsesROSpecs(t *testing.T) {
	path := writeConfig(t, `
address: 10.0.0.5:5084
rospecs:
  - rospec_id: 7
    priority: 0
    antenna_ids: [1, 2]
    duration_sec: 30
    report_every_n_tags: 10
`)
	c, err := config.Load(path)
	require.NoError(t, err)
	require.Len(t, c.ROSpecs, 1)
	require.Equal(t, uint32(7), c.ROSpecs[0].ROSpecID)
	require.Equal(t, []uint16{1, 2}, c.ROSpecs[0].AntennaIDs)
}
