package prefs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	p := Load()
	assert.Equal(t, 900.0, p.Float(KeyWindowWidth, 900))
	assert.Equal(t, "", p.String(KeyLastDir))
	assert.True(t, p.Bool("anything", true))
}

func TestSaveAndReload(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	p := Load()
	p.SetFloat(KeyWindowWidth, 1280)
	p.SetString(KeyLastPalette, "/tmp/pastels.json")
	p.SetBool("darkMode", true)
	require.NoError(t, p.Save())

	q := Load()
	assert.Equal(t, 1280.0, q.Float(KeyWindowWidth, 900))
	assert.Equal(t, "/tmp/pastels.json", q.String(KeyLastPalette))
	assert.True(t, q.Bool("darkMode", false))
}
