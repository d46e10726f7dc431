package seawater

import (
	"math"
)

//--------------------------------------
// 海水の吸収係数 (Francois-Garrison型)
//--------------------------------------

// 環境条件から一度だけ算出される係数
type Coefficients struct {
	Theta float64 //絶対温度の近似値 273+T (単位:K)
	C     float64 //音速 (単位:m/s)

	//ホウ酸
	A1 float64 //吸収係数
	P1 float64 //圧力補正係数
	F1 float64 //緩和周波数 (単位:kHz)

	//硫酸マグネシウム
	A2 float64
	P2 float64
	F2 float64

	//純水
	A3 float64
	P3 float64
}

// """環境条件から各成分の係数を計算します。
// Args:
//
//	env(Environment): 塩分, 水温, pH, 深度
//
// Returns:
//
//	Coefficients: 音速, 吸収係数, 圧力補正係数, 緩和周波数
//
// """
func NewCoefficients(env Environment) Coefficients {
	S, T, D := env.S, env.T, env.D

	theta := 273 + T
	c := SoundSpeed(env)

	// ホウ酸
	A1 := 8.86 / c * math.Pow(10, 0.78*env.PH-5)
	p1 := 1.0
	f1 := 2.8 * math.Sqrt(S/35) * math.Pow(10, 4-1245/theta)

	// 硫酸マグネシウム
	A2 := 21.44 * S / c * (1 + 0.025*T)
	p2 := 1 - 1.37e-4*D + 6.2e-9*D*D
	f2 := 8.17 * math.Pow(10, 8-1990/theta) / (1 + 0.0018*(S-35))

	// 純水
	A3 := PureWaterA3(T)
	p3 := 1 - 3.83e-5*D + 4.9e-10*D*D

	return Coefficients{
		Theta: theta,
		C:     c,
		A1:    A1,
		P1:    p1,
		F1:    f1,
		A2:    A2,
		P2:    p2,
		F2:    f2,
		A3:    A3,
		P3:    p3,
	}
}

// 音速 (単位:m/s)
func SoundSpeed(env Environment) float64 {
	return 1412 + 3.21*env.T + 1.19*env.S + 0.0167*env.D
}

// 純水の吸収係数 A3
// 水温20℃以下とそれ以上で近似式を切り替える
func PureWaterA3(T float64) float64 {
	if T <= 20 {
		return 4.937e-4 - 2.59e-5*T + 9.11e-7*T*T - 1.50e-8*T*T*T
	}
	return 3.964e-4 - 1.146e-5*T + 1.45e-7*T*T - 6.5e-10*T*T*T
}

// ホウ酸の緩和による吸収 (単位:dB/km)
func (c Coefficients) BoricAcid(f float64) float64 {
	x := c.A1 * c.P1 * c.F1 * f
	return x * x / (c.F1*c.F1 + f*f)
}

// 硫酸マグネシウムの緩和による吸収 (単位:dB/km)
func (c Coefficients) MagnesiumSulphate(f float64) float64 {
	return c.A2 * c.P2 * c.F2 * f * f / (c.F2*c.F2 + f*f)
}

// 純水の粘性による吸収 (単位:dB/km)
func (c Coefficients) PureWater(f float64) float64 {
	return c.A3 * c.P3 * f * f
}
