package seawater

import (
	"bytes"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Plot(t *testing.T) {
	f, err := Arange(0.01, 100, 1)
	require.NoError(t, err)

	p, err := Compute(DefaultEnvironment(), f).Plot()
	require.NoError(t, err)
	assert.Equal(t, "Frequency - kHz", p.X.Label.Text)
	assert.Equal(t, "Attenuation - dB/km", p.Y.Label.Text)
	assert.Less(t, p.X.Min, p.X.Max)
	assert.Less(t, p.Y.Min, p.Y.Max)
}

func Test_WritePNG(t *testing.T) {
	f, err := Arange(0.01, 100, 1)
	require.NoError(t, err)

	buf := bytes.NewBuffer([]byte{})
	require.NoError(t, Compute(DefaultEnvironment(), f).WritePNG(buf, 30))

	cfg, format, err := image.DecodeConfig(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, "png", format)

	// 12x8インチ
	assert.InDelta(t, 360, cfg.Width, 1)
	assert.InDelta(t, 240, cfg.Height, 1)
}

// 0kHzでは全成分が0となり対数軸に描画できない
func Test_WritePNG_NonPositive(t *testing.T) {
	f, err := Arange(0, 3, 1)
	require.NoError(t, err)

	err = Compute(DefaultEnvironment(), f).WritePNG(bytes.NewBuffer([]byte{}), 30)
	assert.Error(t, err)
}

func Test_WritePNG_Invalid(t *testing.T) {
	err := Compute(DefaultEnvironment(), nil).WritePNG(bytes.NewBuffer([]byte{}), 30)
	assert.ErrorIs(t, err, ErrNoSamples)

	err = Compute(DefaultEnvironment(), []float64{1, 2}).WritePNG(bytes.NewBuffer([]byte{}), 0)
	assert.Error(t, err)
}

func Test_SavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultOutput)
	f, err := Arange(0.01, 50, 1)
	require.NoError(t, err)

	require.NoError(t, Compute(DefaultEnvironment(), f).SavePNG(path, 20))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func Test_SavePNG_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", DefaultOutput)
	err := Compute(DefaultEnvironment(), []float64{1, 2}).SavePNG(path, 20)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
