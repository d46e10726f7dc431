package seawater

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ToCSV(t *testing.T) {
	a := Compute(DefaultEnvironment(), []float64{0.01, 1, 1000})

	buf := bytes.NewBuffer([]byte{})
	a.ToCSV(buf)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "f_kHz,Boric_acid,Magnesium_sulphate,Pure_water,Total_absorption", lines[0])

	row := strings.Split(lines[2], ",")
	require.Len(t, row, 5)
	assert.Equal(t, "1", row[0])

	// 全桁を出力する
	for j, want := range []float64{a.Boric_acid[1], a.Magnesium_sulphate[1], a.Pure_water[1], a.Total_absorption[1]} {
		v, err := strconv.ParseFloat(row[j+1], 64)
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}

	assert.True(t, strings.HasPrefix(lines[1], "0.01,"))
}

func Test_ToCSV_Empty(t *testing.T) {
	buf := bytes.NewBuffer([]byte{})
	Compute(DefaultEnvironment(), nil).ToCSV(buf)
	assert.Equal(t, "f_kHz,Boric_acid,Magnesium_sulphate,Pure_water,Total_absorption\n", buf.String())
}
