package seawater

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_DefaultEnvironment(t *testing.T) {
	env := DefaultEnvironment()
	assert.Equal(t, Environment{S: 35, T: 10, PH: 7.8, D: 500}, env)
}

// 記載のない項目は既定値のまま
func Test_DecodeEnvironment_Partial(t *testing.T) {
	env, err := DecodeEnvironment(strings.NewReader("temperature: 25\ndepth: 1000\n"))
	require.NoError(t, err)
	assert.Equal(t, Environment{S: 35, T: 25, PH: 7.8, D: 1000}, env)
}

func Test_DecodeEnvironment_Empty(t *testing.T) {
	env, err := DecodeEnvironment(strings.NewReader("\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultEnvironment(), env)
}

func Test_DecodeEnvironment_UnknownKey(t *testing.T) {
	_, err := DecodeEnvironment(strings.NewReader("salnity: 30\n"))
	assert.Error(t, err)
}

func Test_LoadEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.yaml")
	require.NoError(t, os.WriteFile(path, []byte("salinity: 30\nph: 8.1\n"), 0o644))

	env, err := LoadEnvironment(path)
	require.NoError(t, err)
	assert.Equal(t, Environment{S: 30, T: 10, PH: 8.1, D: 500}, env)
}

func Test_LoadEnvironment_NotFound(t *testing.T) {
	_, err := LoadEnvironment(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
