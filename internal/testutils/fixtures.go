package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// IntercessorsJSON is a single-unit export in the JSON layout: a 5 model
// squad with bolt rifles, 80 points.
const IntercessorsJSON = `[
    {
        "name": "Intercessors",
        "pts": 80,
        "models": 5,
        "t": 4,
        "sv": 3,
        "w": 2,
        "ld": 6,
        "oc": 2,
        "weapons": [
            {"name": "Bolt rifle", "a": 2, "hit": 3, "s": 4, "ap": 1, "d": 1}
        ]
    }
]`

// IntercessorsYAML is IntercessorsJSON in the YAML layout
const IntercessorsYAML = `- name: Intercessors
  pts: 80
  models: 5
  t: 4
  sv: 3
  w: 2
  ld: 6
  oc: 2
  weapons:
    - name: Bolt rifle
      a: 2
      hit: 3
      s: 4
      ap: 1
      d: 1
`

// WriteArmyFile writes content into a temp dir owned by t and returns the path
func WriteArmyFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600), "failed to write army file")
	return path
}
