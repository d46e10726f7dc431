package seawater

import (
	"bytes"
	"strconv"
)

// CSV形式
func (a *Absorption) ToCSV(buf *bytes.Buffer) {
	buf.WriteString("f_kHz")
	buf.WriteString(",Boric_acid")
	buf.WriteString(",Magnesium_sulphate")
	buf.WriteString(",Pure_water")
	buf.WriteString(",Total_absorption")
	buf.WriteString("\n")

	writeFloat := func(v float64) {
		buf.WriteString(",")
		buf.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	for i := 0; i < len(a.Frequency); i++ {
		buf.WriteString(strconv.FormatFloat(a.Frequency[i], 'f', -1, 64))
		writeFloat(a.Boric_acid[i])
		writeFloat(a.Magnesium_sulphate[i])
		writeFloat(a.Pure_water[i])
		writeFloat(a.Total_absorption[i])
		buf.WriteString("\n")
	}
}
