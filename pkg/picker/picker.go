// Package picker 提供基于 fuzzyfinder 的交互式调色板选择
package picker

import (
	"errors"
	"fmt"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/yeisme/dcolor/pkg/palette"
)

// ErrAborted 用户取消选择
var ErrAborted = errors.New("color selection aborted")

// Func 从候选项中选择一个调色板项
type Func func(role palette.Role, entries []palette.Entry) (palette.Entry, error)

// Label 返回候选项在列表中的显示文本
func Label(e palette.Entry) string {
	return fmt.Sprintf("%-18s %s  (%s)", e.Name, e.Hex, e.Code)
}

// Fuzzy 使用 fuzzyfinder 在终端中交互选择
func Fuzzy(role palette.Role, entries []palette.Entry) (palette.Entry, error) {
	if len(entries) == 0 {
		return palette.Entry{}, fmt.Errorf("no %s colors to select", role)
	}
	idx, err := fuzzyfinder.Find(entries,
		func(i int) string { return Label(entries[i]) },
		fuzzyfinder.WithPromptString(role.String()+"> "),
		fuzzyfinder.WithHeader("select a "+role.String()+" color"),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return palette.Entry{}, ErrAborted
		}
		return palette.Entry{}, err
	}
	if idx < 0 || idx >= len(entries) {
		return palette.Entry{}, fmt.Errorf("invalid selection")
	}
	return entries[idx], nil
}
