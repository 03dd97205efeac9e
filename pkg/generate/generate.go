// Package generate 实现 format 命令：读取输入、解析颜色与选区、调用格式化引擎并输出结果
package generate

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/yeisme/dcolor/pkg/ansi"
	"github.com/yeisme/dcolor/pkg/configs"
	"github.com/yeisme/dcolor/pkg/palette"
	"github.com/yeisme/dcolor/pkg/picker"
	"github.com/yeisme/dcolor/pkg/session"
	"github.com/yeisme/dcolor/pkg/style"
	"github.com/yeisme/dcolor/pkg/utils/hotload"
	"github.com/yeisme/dcolor/pkg/utils/log"
)

// OutputSegments 以表格形式输出预览片段
const OutputSegments = "segments"

// Options format 命令的选项
type Options struct {
	Args       []string
	File       string
	Select     string
	Start      int
	End        int
	Profile    string
	Foreground string
	Background string
	Bold       bool
	Underline  bool
	Preview    bool
	Output     string
	Watch      bool
	Debounce   time.Duration
	// Pick 用于 "?" 颜色参数，nil 时不支持交互选择
	Pick picker.Func
}

// ValidOutputs 返回所有有效的 --output 取值
func ValidOutputs() []string {
	return append(configs.ValidFormats(), OutputSegments)
}

// Validate 检查选项之间的冲突
func (o Options) Validate() error {
	if o.Select != "" && (o.Start >= 0 || o.End >= 0) {
		return fmt.Errorf("--select cannot be combined with --start/--end")
	}
	if o.Watch && (o.File == "" || o.File == "-") {
		return fmt.Errorf("--watch requires --file")
	}
	if o.Watch && len(o.Args) > 0 {
		return fmt.Errorf("--watch cannot be combined with text arguments")
	}
	if o.Output != "" && o.Output != OutputSegments {
		if _, err := configs.ParseOutputFormat(o.Output); err != nil {
			return fmt.Errorf("invalid --output: %w (or %s)", err, OutputSegments)
		}
	}
	return nil
}

// Output 结构化输出（json/yaml/toml）
type Output struct {
	Profile  string         `json:"profile" yaml:"profile" toml:"profile"`
	Span     ansi.Span      `json:"span" yaml:"span" toml:"span"`
	Style    ansi.Style     `json:"style" yaml:"style" toml:"style"`
	Codes    string         `json:"codes" yaml:"codes" toml:"codes"`
	ANSI     string         `json:"ansi" yaml:"ansi" toml:"ansi"`
	Segments []ansi.Segment `json:"segments" yaml:"segments" toml:"segments"`
}

// Runner 绑定一次命令执行所需的全部依赖
type Runner struct {
	opts    Options
	profile *palette.Profile
	fg, bg  string
	stdin   io.Reader
	out     io.Writer
	errOut  io.Writer
}

// NewRunner 解析配置与颜色；颜色只解析一次，watch 模式下保持不变
func NewRunner(opts Options, stdin io.Reader, out, errOut io.Writer) (*Runner, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	profile, err := palette.Get(opts.Profile)
	if err != nil {
		return nil, err
	}
	fg, err := ResolveColor(profile.Foreground, opts.Foreground, opts.Pick)
	if err != nil {
		return nil, err
	}
	bg, err := ResolveColor(profile.Background, opts.Background, opts.Pick)
	if err != nil {
		return nil, err
	}
	if opts.Underline && !profile.Underline {
		log.Warn().Str("profile", profile.Name).Msg("profile has no underline, --underline is ignored")
	}
	return &Runner{opts: opts, profile: profile, fg: fg, bg: bg, stdin: stdin, out: out, errOut: errOut}, nil
}

// Run 执行一次格式化；watch 模式下在输入文件变化后重新执行，直到 ctx 结束
func (r *Runner) Run(ctx context.Context) error {
	if err := r.Once(); err != nil {
		return err
	}
	if !r.opts.Watch {
		return nil
	}
	return hotload.WatchFile(ctx, r.opts.File, r.opts.Debounce, func() {
		if err := r.Once(); err != nil {
			log.Error().Err(err).Msg("re-format failed")
		}
	})
}

// Once 读取输入并输出一次结果
func (r *Runner) Once() error {
	text, err := ReadText(r.opts, r.stdin)
	if err != nil {
		return err
	}
	span, err := ResolveSpan(text, r.opts)
	if err != nil {
		return err
	}

	state := session.New(r.profile,
		session.WithText(text),
		session.WithForeground(r.fg),
		session.WithBackground(r.bg),
	)
	state.Select(span)
	res := state.Apply(r.opts.Bold, r.opts.Underline)

	st := ansi.Style{Foreground: state.Foreground, Background: state.Background, Bold: r.opts.Bold, Underline: r.opts.Underline}
	codes := strings.Join(state.Formatter().Codes(st), ";")
	log.Debug().
		Str("profile", r.profile.Name).
		Int("start", span.Start).
		Int("end", span.End).
		Str("codes", codes).
		Int("segments", len(res.Segments)).
		Msg("formatted")

	if r.opts.Preview && state.HasOutput() {
		if err := style.PrintPreview(r.errOut, res.Segments); err != nil {
			return err
		}
	}
	return r.write(Output{
		Profile:  r.profile.Name,
		Span:     span,
		Style:    state.Formatter().Effective(st),
		Codes:    codes,
		ANSI:     res.ANSI,
		Segments: res.Segments,
	})
}

func (r *Runner) write(o Output) error {
	switch r.opts.Output {
	case "", string(configs.FormatText):
		_, err := fmt.Fprintln(r.out, o.ANSI)
		return err
	case OutputSegments:
		return style.PrintSegments(r.out, o.Segments, 0)
	default:
		format, err := configs.ParseOutputFormat(r.opts.Output)
		if err != nil {
			return err
		}
		return configs.OutputData(o, format, r.out)
	}
}
