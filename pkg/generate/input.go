package generate

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/yeisme/dcolor/pkg/ansi"
	"github.com/yeisme/dcolor/pkg/palette"
	"github.com/yeisme/dcolor/pkg/picker"
)

var (
	// ErrNoInput 没有提供任何输入文本
	ErrNoInput = errors.New("no input text: pass text arguments, --file or pipe stdin")
	// ErrSelectionNotFound --select 指定的子串不在文本中
	ErrSelectionNotFound = errors.New("selection not found in text")
	// ErrUnknownColor 颜色既不是十六进制标识也不是调色板中的名称
	ErrUnknownColor = errors.New("unknown color")
)

// PickQuery 在颜色参数中使用该值时打开交互式选择
const PickQuery = "?"

var hexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ReadText 按优先级读取输入：参数 > --file > stdin
//
// 从文件或 stdin 读取时去掉末尾的一个换行符。
func ReadText(opts Options, stdin io.Reader) (string, error) {
	if len(opts.Args) > 0 {
		return strings.Join(opts.Args, " "), nil
	}

	var (
		data []byte
		err  error
	)
	switch {
	case opts.File != "" && opts.File != "-":
		data, err = os.ReadFile(opts.File)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
	case stdin != nil:
		data, err = io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
	default:
		return "", ErrNoInput
	}

	text := string(data)
	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")
	return text, nil
}

// ResolveSpan 计算选区
//
// --select 优先，取子串第一次出现的位置；否则使用 --start/--end，
// 负值表示未设置。两者都未设置时返回空跨度（整个缓冲区）。
func ResolveSpan(text string, opts Options) (ansi.Span, error) {
	if opts.Select != "" {
		idx := strings.Index(text, opts.Select)
		if idx < 0 {
			return ansi.Span{}, fmt.Errorf("%w: %q", ErrSelectionNotFound, opts.Select)
		}
		start := utf8.RuneCountInString(text[:idx])
		return ansi.Span{Start: start, End: start + utf8.RuneCountInString(opts.Select)}, nil
	}

	if opts.Start < 0 && opts.End < 0 {
		return ansi.Span{}, nil
	}
	span := ansi.Span{Start: opts.Start, End: opts.End}
	if span.Start < 0 {
		span.Start = 0
	}
	if span.End < 0 {
		span.End = utf8.RuneCountInString(text)
	}
	return span, nil
}

// ResolveColor 将用户输入解析为调色板的十六进制标识
//
//   - 空值: 返回空字符串，由调用方决定默认值
//   - "?": 调用 pick 交互选择
//   - #rrggbb: 原样返回，不在调色板中的值由格式化引擎回退到默认代码
//   - 其他: 按名称匹配，歧义或未找到时返回错误
func ResolveColor(table *palette.Table, query string, pick picker.Func) (string, error) {
	q := strings.TrimSpace(query)
	switch {
	case q == "":
		return "", nil
	case q == PickQuery:
		if pick == nil {
			return "", fmt.Errorf("interactive %s selection is not available", table.Role())
		}
		e, err := pick(table.Role(), table.Entries())
		if err != nil {
			return "", err
		}
		return e.Hex, nil
	case hexPattern.MatchString(q):
		return q, nil
	}

	exact, candidates := table.Match(q)
	if exact.Hex != "" {
		return exact.Hex, nil
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("%w %q for %s", ErrUnknownColor, q, table.Role())
	}
	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.Name
	}
	return "", fmt.Errorf("ambiguous %s color %q, candidates: %s", table.Role(), q, strings.Join(names, ", "))
}
