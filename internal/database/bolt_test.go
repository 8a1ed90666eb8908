package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenBolt_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "kasa.db")

	db, err := OpenBolt(path)
	require.NoError(t, err)
	defer db.Close()

	assert.FileExists(t, path)
}
