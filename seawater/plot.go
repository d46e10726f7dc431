package seawater

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// 既定の出力
const (
	DefaultOutput = "SoundWavesinWater.png"
	DefaultDPI    = 300
)

const (
	figureWidth  = 12 * vg.Inch
	figureHeight = 8 * vg.Inch
	lineWidth    = 3.5
	fontSize     = 16
)

var ErrNoSamples = errors.New("seawater: no samples to plot")

// 描画する系列
type series struct {
	name   string
	y      []float64
	color  color.Color
	dashes []vg.Length
}

func (a *Absorption) series() []series {
	return []series{
		{"Boric acid", a.Boric_acid, color.RGBA{R: 255, A: 255}, []vg.Length{vg.Points(12), vg.Points(6)}},
		{"Magnesium sulphate", a.Magnesium_sulphate, color.RGBA{G: 128, A: 255}, nil},
		{"Pure water", a.Pure_water, color.RGBA{B: 255, A: 255}, nil},
		{"Total absorption", a.Total_absorption, color.RGBA{R: 255, G: 165, A: 255}, nil},
	}
}

// """両対数グラフを作成します。
// Returns:
//
//	*plot.Plot: 4系列, 凡例, グリッド付きのグラフ
//
// Note:
//
//	対数軸のため、0以下またはNaNの値が含まれる場合はエラーとします。
//
// """
func (a *Absorption) Plot() (*plot.Plot, error) {
	if a.Len() == 0 {
		return nil, ErrNoSamples
	}

	p := plot.New()
	p.X.Label.Text = "Frequency - kHz"
	p.Y.Label.Text = "Attenuation - dB/km"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	for _, s := range []*text.Style{
		&p.X.Label.TextStyle,
		&p.Y.Label.TextStyle,
		&p.X.Tick.Label,
		&p.Y.Tick.Label,
		&p.Legend.TextStyle,
	} {
		bold(s)
	}
	p.Legend.Top = true
	p.Legend.Left = true

	p.Add(plotter.NewGrid())

	if err := checkPositive("Frequency", a.Frequency); err != nil {
		return nil, err
	}
	for _, s := range a.series() {
		if err := checkPositive(s.name, s.y); err != nil {
			return nil, err
		}

		xys := make(plotter.XYs, a.Len())
		for i := range xys {
			xys[i].X = a.Frequency[i]
			xys[i].Y = s.y[i]
		}
		l, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.name, err)
		}
		l.LineStyle.Width = vg.Points(lineWidth)
		l.LineStyle.Color = s.color
		l.LineStyle.Dashes = s.dashes

		p.Add(l)
		p.Legend.Add(s.name, l)
	}

	return p, nil
}

// PNG形式で書き出します。
func (a *Absorption) WritePNG(w io.Writer, dpi int) error {
	if dpi <= 0 {
		return fmt.Errorf("invalid dpi %d", dpi)
	}
	p, err := a.Plot()
	if err != nil {
		return err
	}

	c := vgimg.NewWith(vgimg.UseWH(figureWidth, figureHeight), vgimg.UseDPI(dpi))
	p.Draw(draw.New(c))

	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// PNGファイルを保存します。既存のファイルは上書きされます。
func (a *Absorption) SavePNG(path string, dpi int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return a.WritePNG(f, dpi)
}

func bold(s *text.Style) {
	s.Font.Size = vg.Points(fontSize)
	s.Font.Weight = xfont.WeightBold
}

func checkPositive(name string, y []float64) error {
	if floats.HasNaN(y) {
		return fmt.Errorf("%s: NaN cannot be drawn on a log axis", name)
	}
	if m := floats.Min(y); m <= 0 {
		return fmt.Errorf("%s: non-positive value %g cannot be drawn on a log axis", name, m)
	}
	return nil
}
