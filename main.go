// seawater-go
package main

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/akamensky/argparse"
	"github.com/hhkbp2/go-logging"
	"github.com/udawtr/seawater-go/seawater"
)

func main() {
	defer logging.Shutdown()

	// コマンドライン引数の処理
	parser := argparse.NewParser("SoundWavesinWater", "Absorption of sound waves in seawater (boric acid, magnesium sulphate, pure water)")

	filename := parser.String("o", "output", &argparse.Options{
		Default: seawater.DefaultOutput,
		Help:    "グラフの保存ファイルパス (PNG)"})

	csvname := parser.String("", "csv", &argparse.Options{
		Default: "",
		Help:    "計算結果のCSV保存ファイルパス"})

	config := parser.String("", "config", &argparse.Options{
		Default: "",
		Help:    "環境条件の設定ファイル (YAML)"})

	salinity := parser.String("", "salinity", &argparse.Options{
		Help: "塩分 (‰)"})

	temperature := parser.String("", "temperature", &argparse.Options{
		Help: "水温 (℃)"})

	ph := parser.String("", "ph", &argparse.Options{
		Help: "pH"})

	depth := parser.String("", "depth", &argparse.Options{
		Help: "深度 (m)"})

	dpi := parser.Int("", "dpi", &argparse.Options{
		Default: seawater.DefaultDPI,
		Help:    "PNGの解像度"})

	fmin := parser.Float("", "fmin", &argparse.Options{
		Default: math.Inf(-1),
		Help:    "描画する周波数の下限 (kHz)"})

	fmax := parser.Float("", "fmax", &argparse.Options{
		Default: math.Inf(1),
		Help:    "描画する周波数の上限 (kHz)"})

	noShow := parser.Flag("", "no_show", &argparse.Options{
		Help: "保存後に画像を表示しない"})

	logLevel := parser.Selector("", "log_level", []string{"DEBUG", "INFO", "WARN", "ERROR", "CRITICAL"}, &argparse.Options{
		Default: "INFO",
		Help:    "ログレベルの設定"})

	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	// ログ設定
	logger := logging.GetLogger("seawater")
	handler := logging.NewStdoutHandler()
	handler.SetFormatter(logging.NewStandardFormatter(
		"%(asctime)s %(levelname)s %(name)s %(message)s",
		"%H:%M:%S.%3n"))
	logger.AddHandler(handler)
	if *logLevel == "DEBUG" {
		logger.SetLevel(logging.LevelDebug)
	} else if *logLevel == "INFO" {
		logger.SetLevel(logging.LevelInfo)
	} else if *logLevel == "WARN" {
		logger.SetLevel(logging.LevelWarn)
	} else if *logLevel == "ERROR" {
		logger.SetLevel(logging.LevelError)
	} else if *logLevel == "CRITICAL" {
		logger.SetLevel(logging.LevelCritical)
	}

	opts := seawater.DefaultOptions()
	opts.Output = *filename
	opts.CSV = *csvname
	opts.DPI = *dpi
	opts.FMin = *fmin
	opts.FMax = *fmax
	opts.Show = !*noShow

	// 環境条件: 既定値 < 設定ファイル < コマンドライン引数
	if *config != "" {
		logger.Infof("設定ファイル読込: %s", *config)
		env, err := seawater.LoadEnvironment(*config)
		if err != nil {
			exitWithError(err)
		}
		opts.Environment = env
	}
	for _, o := range []struct {
		name  string
		value string
		dst   *float64
	}{
		{"salinity", *salinity, &opts.Environment.S},
		{"temperature", *temperature, &opts.Environment.T},
		{"ph", *ph, &opts.Environment.PH},
		{"depth", *depth, &opts.Environment.D},
	} {
		if o.value == "" {
			continue
		}
		v, err := strconv.ParseFloat(o.value, 64)
		if err != nil {
			exitWithError(fmt.Errorf("--%s: %w", o.name, err))
		}
		*o.dst = v
	}

	if _, err := seawater.Run(opts); err != nil {
		exitWithError(err)
	}

	logger.Infof("計算が終了しました")
}

func exitWithError(err error) {
	logging.GetLogger("seawater").Errorf("%v", err)
	logging.Shutdown()
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
