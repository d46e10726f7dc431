package seawater

import (
	"errors"
	"math"
)

// 既定の周波数範囲 (単位:kHz)
const (
	SweepStart = 0.01
	SweepStop  = 10000.0
	SweepStep  = 1.0
)

var ErrZeroStep = errors.New("seawater: step must not be zero")

// start から stop の手前まで step 刻みの等間隔列を作成します。
// 要素数は ceil((stop-start)/step) で、stop は含みません。
func Arange(start, stop, step float64) ([]float64, error) {
	if step == 0 {
		return nil, ErrZeroStep
	}
	n := int(math.Ceil((stop - start) / step))
	if n <= 0 {
		return []float64{}, nil
	}
	x := make([]float64, n)
	for i := range x {
		x[i] = start + float64(i)*step
	}
	return x, nil
}

// 既定の周波数列 0.01, 1.01, ..., 9999.01 (単位:kHz)
//
// Note:
//
//	対数軸で描画しますが、サンプリングは1kHz刻みの線形です。
func FrequencySweep() []float64 {
	f, _ := Arange(SweepStart, SweepStop, SweepStep)
	return f
}
