package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stratigraph/project"
)

const testMapJSON = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "geometry": {
        "type": "Polygon",
        "coordinates": [[[0, 0], [100, 0], [100, 100], [0, 100], [0, 0]]]
      },
      "properties": {"UNITNAME": "cover", "MIN_AGE": 0, "MAX_AGE": 10}
    },
    {
      "type": "Feature",
      "geometry": {
        "type": "Polygon",
        "coordinates": [[[100, 0], [200, 0], [200, 100], [100, 100], [100, 0]]]
      },
      "properties": {"UNITNAME": "basement", "MIN_AGE": 20, "MAX_AGE": 30}
    }
  ]
}`

func writeTestProject(t *testing.T, snapshot bool) string {
	t.Helper()
	dir := t.TempDir()
	mapPath := filepath.Join(dir, "map.geojson")
	require.NoError(t, os.WriteFile(mapPath, []byte(testMapJSON), 0o644))

	cfg := fmt.Sprintf("geology: %s\ntake_best: true\n", mapPath)
	if snapshot {
		cfg += fmt.Sprintf("snapshot: %s\n", filepath.Join(dir, "run.msgpack"))
	}
	cfgPath := filepath.Join(dir, "project.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o644))

	return cfgPath
}

func TestRunSort_EndToEnd(t *testing.T) {
	rootFlags.configPath = writeTestProject(t, true)

	var buf bytes.Buffer
	sortCmd.SetOut(&buf)
	require.NoError(t, runSort(sortCmd, nil))

	out := buf.String()
	assert.Contains(t, out, "cover")
	assert.Contains(t, out, "basement")
	assert.Contains(t, out, "Basal contact length: 100.0")
	assert.Contains(t, out, "Snapshot written to")

	cfg, err := project.LoadConfig(rootFlags.configPath)
	require.NoError(t, err)
	snap, err := project.LoadSnapshot(cfg.Snapshot)
	require.NoError(t, err)
	assert.Equal(t, []string{"cover", "basement"}, snap.Column)
	assert.InDelta(t, 100.0, snap.BasalLength, 1e-6)
}

func TestRunContacts_Classified(t *testing.T) {
	rootFlags.configPath = writeTestProject(t, false)
	contactsFlags.classify = true
	t.Cleanup(func() { contactsFlags.classify = false })

	var buf bytes.Buffer
	contactsCmd.SetOut(&buf)
	require.NoError(t, runContacts(contactsCmd, nil))

	out := buf.String()
	assert.Contains(t, out, "1 contacts")
	assert.Contains(t, out, "BASAL")
	assert.Contains(t, out, "distance 1")
}

func TestRunSort_MissingConfig(t *testing.T) {
	rootFlags.configPath = filepath.Join(t.TempDir(), "absent.yaml")
	assert.Error(t, runSort(sortCmd, nil))
}
