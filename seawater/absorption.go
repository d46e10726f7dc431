package seawater

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// 吸収係数の計算結果 (単位:dB/km)
type Absorption struct {
	Frequency []float64 //周波数 (単位:kHz)

	Boric_acid         []float64 //ホウ酸
	Magnesium_sulphate []float64 //硫酸マグネシウム
	Pure_water         []float64 //純水
	Total_absorption   []float64 //合計
}

// """周波数列 f について各成分の吸収係数とその合計を計算します。
// Args:
//
//	env(Environment): 環境条件
//	f([]float64): 周波数列 (単位:kHz)
//
// Returns:
//
//	*Absorption: 周波数と同じ長さの4系列
//
// """
func Compute(env Environment, f []float64) *Absorption {
	return NewCoefficients(env).Absorption(f)
}

// 係数を周波数列に適用します。
func (c Coefficients) Absorption(f []float64) *Absorption {
	n := len(f)
	a := &Absorption{
		Frequency:          append([]float64{}, f...),
		Boric_acid:         make([]float64, n),
		Magnesium_sulphate: make([]float64, n),
		Pure_water:         make([]float64, n),
		Total_absorption:   make([]float64, n),
	}

	for i := 0; i < n; i++ {
		a.Boric_acid[i] = c.BoricAcid(f[i])
		a.Magnesium_sulphate[i] = c.MagnesiumSulphate(f[i])
		a.Pure_water[i] = c.PureWater(f[i])
	}

	floats.AddTo(a.Total_absorption, a.Boric_acid, a.Magnesium_sulphate)
	floats.Add(a.Total_absorption, a.Pure_water)

	return a
}

func (a *Absorption) Len() int {
	return len(a.Frequency)
}

// fmin 以上 fmax 以下の周波数帯を抜き出して新しい構造体を作成します。
// 周波数列は昇順である必要があります。
func (a *Absorption) ExtractBand(fmin float64, fmax float64) (*Absorption, error) {
	if fmin > fmax {
		return nil, fmt.Errorf("invalid band: fmin %g > fmax %g", fmin, fmax)
	}
	start_index := sort.Search(len(a.Frequency), func(i int) bool {
		return a.Frequency[i] >= fmin
	})
	end_index := sort.Search(len(a.Frequency), func(i int) bool {
		return a.Frequency[i] > fmax
	})
	if start_index >= end_index {
		return nil, fmt.Errorf("no samples in band [%g, %g] kHz", fmin, fmax)
	}

	return &Absorption{
		Frequency:          append([]float64{}, a.Frequency[start_index:end_index]...),
		Boric_acid:         append([]float64{}, a.Boric_acid[start_index:end_index]...),
		Magnesium_sulphate: append([]float64{}, a.Magnesium_sulphate[start_index:end_index]...),
		Pure_water:         append([]float64{}, a.Pure_water[start_index:end_index]...),
		Total_absorption:   append([]float64{}, a.Total_absorption[start_index:end_index]...),
	}, nil
}
