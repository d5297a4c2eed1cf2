package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/acibeam/internal/design"
	"github.com/alexiusacademia/acibeam/internal/section"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "acibeam.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, cfg.FileUsed())

	s, err := cfg.Section()
	require.NoError(t, err)
	assert.Equal(t, section.MustNew(30, 50, 28, 420, 4), s)

	in, err := cfg.DesignInputs()
	require.NoError(t, err)
	assert.Equal(t, design.Defaults(), in)
	assert.False(t, cfg.Debug())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
section:
  b: 25
  h: 60
  fc: 35
loads:
  mu_pos: 180
  vu: 120
detailing:
  n_legs: 4
  stirrup_bar: "#4"
log:
  debug: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.FileUsed())
	assert.True(t, cfg.Debug())

	s, err := cfg.Section()
	require.NoError(t, err)
	assert.Equal(t, 25.0, s.B())
	assert.Equal(t, 56.0, s.D())
	assert.Equal(t, 35.0, s.Fc())
	assert.Equal(t, 420.0, s.Fy())

	in, err := cfg.DesignInputs()
	require.NoError(t, err)
	assert.Equal(t, 180.0, in.MuPos)
	assert.Equal(t, 4, in.NLegs)
	// shear for torsion follows vu when not given
	assert.Equal(t, 120.0, in.VuTorsion)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("ACIBEAM_SECTION_COVER", "5")
	t.Setenv("ACIBEAM_LOADS_VU_TORSION", "75")

	cfg, err := Load("")
	require.NoError(t, err)

	s, err := cfg.Section()
	require.NoError(t, err)
	assert.Equal(t, 5.0, s.Cover())

	in, err := cfg.DesignInputs()
	require.NoError(t, err)
	assert.Equal(t, 75.0, in.VuTorsion)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid section", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "section:\n  b: -1\n"))
		require.NoError(t, err)
		_, err = cfg.Section()
		assert.True(t, errors.Is(err, section.ErrInvalidGeometry))
	})

	t.Run("invalid detailing", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "detailing:\n  n_bars_torsion: 2\n"))
		require.NoError(t, err)
		_, err = cfg.DesignInputs()
		assert.True(t, errors.Is(err, design.ErrInvalidInputs))
	})
}

func TestSetOverride(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	cfg.Set("loads.tu", 42.0)
	in, err := cfg.DesignInputs()
	require.NoError(t, err)
	assert.Equal(t, 42.0, in.Tu)
}
