package seawater

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"github.com/hhkbp2/go-logging"
)

// 実行条件
type Options struct {
	Environment Environment

	Output string //PNG保存ファイルパス
	CSV    string //CSV保存ファイルパス (空の場合は出力しない)
	DPI    int

	//描画する周波数帯 (単位:kHz)
	FMin float64
	FMax float64

	Show bool //保存後に画像を表示する
}

func DefaultOptions() Options {
	return Options{
		Environment: DefaultEnvironment(),
		Output:      DefaultOutput,
		DPI:         DefaultDPI,
		FMin:        math.Inf(-1),
		FMax:        math.Inf(1),
		Show:        true,
	}
}

// """吸収係数を計算し、グラフを保存・表示します。
// Args:
//
//	opts(Options): 実行条件
//
// Returns:
//
//	*Absorption: 描画に使用した計算結果
//
// """
func Run(opts Options) (*Absorption, error) {
	logger := logging.GetLogger("seawater")

	env := opts.Environment
	logger.Infof("環境条件: S=%g T=%g pH=%g D=%g", env.S, env.T, env.PH, env.D)

	coef := NewCoefficients(env)
	logger.Debugf("音速 c=%g m/s, f1=%g kHz, f2=%g kHz", coef.C, coef.F1, coef.F2)
	logger.Debugf("A1=%g A2=%g A3=%g p1=%g p2=%g p3=%g", coef.A1, coef.A2, coef.A3, coef.P1, coef.P2, coef.P3)

	f := FrequencySweep()
	res := coef.Absorption(f)
	logger.Infof("吸収係数の計算: %d点", res.Len())

	if !math.IsInf(opts.FMin, -1) || !math.IsInf(opts.FMax, 1) {
		band, err := res.ExtractBand(opts.FMin, opts.FMax)
		if err != nil {
			return nil, err
		}
		logger.Infof("周波数帯 %g - %g kHz: %d点", opts.FMin, opts.FMax, band.Len())
		res = band
	}

	// 保存
	if fileExists(opts.Output) {
		logger.Warnf("既存のファイルを上書きします: %s", opts.Output)
	}
	logger.Infof("PNG保存: %s (%d dpi)", opts.Output, opts.DPI)
	if err := res.SavePNG(opts.Output, opts.DPI); err != nil {
		return nil, fmt.Errorf("save chart %s: %w", opts.Output, err)
	}

	if opts.CSV != "" {
		logger.Infof("CSV保存: %s", opts.CSV)
		buf := bytes.NewBuffer([]byte{})
		res.ToCSV(buf)
		if err := os.WriteFile(opts.CSV, buf.Bytes(), 0o644); err != nil {
			return nil, fmt.Errorf("save csv %s: %w", opts.CSV, err)
		}
	}

	// 表示
	if opts.Show {
		logger.Infof("表示: %s", opts.Output)
		if err := Show(opts.Output); err != nil {
			return nil, err
		}
	}

	return res, nil
}
