package seawater

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// 海水の環境条件
type Environment struct {
	S  float64 `yaml:"salinity"`    //塩分 (単位:‰)
	T  float64 `yaml:"temperature"` //水温 (単位:℃)
	PH float64 `yaml:"ph"`          //pH
	D  float64 `yaml:"depth"`       //深度 (単位:m)
}

// 既定の環境条件 (塩分35‰, 水温10℃, pH7.8, 深度500m)
func DefaultEnvironment() Environment {
	return Environment{
		S:  35,
		T:  10,
		PH: 7.8,
		D:  500,
	}
}

// """YAMLファイルから環境条件を読み込みます。
// Args:
//
//	path(string): 設定ファイルのパス
//
// Returns:
//
//	Environment: 既定値をファイルの値で上書きした環境条件
//
// Note:
//
//	ファイルに記載のない項目は既定値のままとなります。
//	未知のキーはエラーとします。
//
// """
func LoadEnvironment(path string) (Environment, error) {
	f, err := os.Open(path)
	if err != nil {
		return Environment{}, fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	env, err := DecodeEnvironment(f)
	if err != nil {
		return Environment{}, fmt.Errorf("config %s: %w", path, err)
	}
	return env, nil
}

// YAMLを読み取り、既定値に上書きします。
func DecodeEnvironment(r io.Reader) (Environment, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Environment{}, err
	}

	env := DefaultEnvironment()
	if len(bytes.TrimSpace(b)) == 0 {
		return env, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&env); err != nil && !errors.Is(err, io.EOF) {
		return Environment{}, fmt.Errorf("decode environment: %w", err)
	}
	return env, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
