package seawater

import (
	"fmt"

	"github.com/skratchdot/open-golang/open"
)

// 保存した画像を既定のビューアで表示します。
// 表示できない環境ではエラーを返します。
func Show(path string) error {
	if !fileExists(path) {
		return fmt.Errorf("display %s: file not found", path)
	}
	if err := open.Run(path); err != nil {
		return fmt.Errorf("display %s: %w", path, err)
	}
	return nil
}
